package credential

import "errors"

var (
	ErrKeyNotFound   = errors.New("credential not found")
	ErrEmptyValue    = errors.New("credential value required")
	ErrEmptyKeyName  = errors.New("credential key name required")
	ErrEmptyPlatform = errors.New("platform name required")
)
