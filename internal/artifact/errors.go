package artifact

import "fmt"

// DecodeError reports malformed structured-data syntax. Err carries the
// original parser message.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Name, e.Err)
}
func (e *DecodeError) Unwrap() error { return e.Err }

// ReadError reports an I/O failure while reading an upload.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Name, e.Err)
}
func (e *ReadError) Unwrap() error { return e.Err }

// SizeLimitError reports an image upload over MaxImageBytes.
type SizeLimitError struct {
	Name string
	Size int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("image %s is too large (%d bytes, limit %d)", e.Name, e.Size, MaxImageBytes)
}
