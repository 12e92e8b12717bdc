package specs

import "fmt"

// NewOpError creates a new OpError with the specified operation and formatted error message.
func NewOpError(op OpName, format string, a ...any) error {
	return &OpError{
		Op:  op,
		Err: fmt.Errorf(format, a...),
	}
}

// OpName represents an operation in furrow.
type OpName string

// OpError represents an error that occurred during a furrow operation.
type OpError struct {
	Op  OpName
	Err error
}

// String formats the OpError as a string, including the operation if it exists.
func (e *OpError) String() string {
	if e.Op != "" {
		return fmt.Sprintf("furrow/%s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("furrow: %s", e.Err)
}

// Error implements the error interface for OpError.
func (e *OpError) Error() string {
	return e.String()
}

// Unwrap exposes the underlying error for errors.Is and errors.As.
func (e *OpError) Unwrap() error {
	return e.Err
}
