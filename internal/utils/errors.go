package util

import "errors"

var (
	ErrInvalidCapacity    = errors.New("invalid capacity")
	ErrInvalidSequence    = errors.New("invalid page sequence")
	ErrUnknownPolicy      = errors.New("unknown replacement policy")
	ErrInvalidTraceFormat = errors.New("invalid trace format")
	ErrTraceFileNil       = errors.New("trace file is nil")
	ErrInvalidOptions     = errors.New("invalid options")
	ErrOutBoundOfFrame    = errors.New("frame idx out of bound")
	ErrInvalidGenerator   = errors.New("invalid generator parameters")
	ErrTraceTooLarge      = errors.New("trace exceeds maximum mapping size")
)
