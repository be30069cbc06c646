package untangle

import "github.com/pkg/errors"

// Threading errors through every stage would clutter code whose numeric edge
// cases are all absorbed locally anyway. The only failures that abort a
// decomposition are gross structural ones caught up front, so those panic,
// and the public API recovers the panic into an error.

type DecomposeError error

// Panic with a DecomposeError.
func fatalf(format string, args ...interface{}) {
	panic(DecomposeError(errors.Errorf(format, args...)))
}

func HandleDecomposePanicRecover(r interface{}) error {
	if r != nil {
		if decomposeError, ok := r.(DecomposeError); ok {
			return decomposeError
		}
		panic(r)
	}
	return nil
}
