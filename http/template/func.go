package template

import (
	"encoding/json"

	"github.com/google/uuid"
)

// JSON returns "json" as the name of the function for convenient passing to WithFn
// and returns a function marshaling its argument.
// It eases authoring JSON representations as text templates.
func JSON() (string, func(any) (string, error)) {
	return "json", func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	}
}

// Nonce returns "nonce" as the name of the function for convenient passing to WithFn
// and returns a function generating a uuid.
func Nonce() (string, func() string) {
	return "nonce", func() string { return uuid.NewString() }
}
