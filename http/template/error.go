package template

import "errors"

var ErrNoTemplate = errors.New("no template provided")
