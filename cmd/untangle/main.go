package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/karlbd/untangle"
	engine "github.com/karlbd/untangle/untangle"
)

// Demo of decomposition. Input on stdin should be newline separated points
// in the form "x y", describing one closed path in order. The path may cross
// itself. The resulting simple polygons are printed, and if an output file
// is given as the first argument, rendered to it as a PNG.
func main() {
	points := readPoints(os.Stdin)
	fmt.Printf("Read %d points\n", len(points))

	polygons, err := untangle.Decompose(points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decompose: %v\n", err)
		os.Exit(1)
	}

	for i, poly := range polygons {
		fmt.Printf("polygon %d: area=%g points=%v\n", i, poly.SignedArea(), poly.Points)
	}

	if len(os.Args) > 1 {
		if err := engine.DrawPolygons(polygons, 4, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
	}
}

func readPoints(in *os.File) []untangle.Point {
	points := []untangle.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) untangle.Point {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		fmt.Fprintf(os.Stderr, "invalid point line %q\n", line)
		os.Exit(1)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid x value %q: %v\n", fields[0], err)
		os.Exit(1)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid y value %q: %v\n", fields[1], err)
		os.Exit(1)
	}
	return untangle.Point{X: x, Y: y}
}
