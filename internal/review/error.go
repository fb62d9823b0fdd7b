package review

import "errors"

var (
	ErrInvalidSentiment = errors.New("invalid sentiment label")
	ErrEmptyKeyword     = errors.New("search keyword required")
)
