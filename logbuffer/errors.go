package logbuffer

import "errors"

// ErrBufferIO wraps a failure from the file-backed buffer; the in-memory
// buffer never returns one.
type ErrBufferIO struct {
	Op  string
	Err error
}

func (e ErrBufferIO) Error() string { return "logbuffer: " + e.Op + ": " + e.Err.Error() }
func (e ErrBufferIO) Unwrap() error { return e.Err }

func IsErrBufferIO(err error) bool {
	var e ErrBufferIO
	return errors.As(err, &e)
}
