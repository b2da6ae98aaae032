package extraction

import "fmt"

// UnsupportedFormatError is returned when no adapter handles a document format
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// DecodeError represents a document that could not be decoded at all
type DecodeError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error (%s): %s", e.Format, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
