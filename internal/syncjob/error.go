package syncjob

import "errors"

var (
	ErrJobNotFound   = errors.New("sync job not found")
	ErrJobTerminal   = errors.New("sync job already completed")
	ErrInvalidStatus = errors.New("invalid sync job status")
)
