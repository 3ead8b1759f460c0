package switchback

import "errors"

var (
	ErrBadConfig = errors.New("bad config")
	ErrNotFound  = errors.New("not found")
	ErrNotValid  = errors.New("invalid")
)
