package pipeline

import "errors"

var (
	ErrFormat = errors.New("format error")
	ErrEncode = errors.New("encode error")
	ErrSink   = errors.New("sink error")
	ErrPanic  = errors.New("collaborator panic")
)
