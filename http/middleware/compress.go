package middleware

import (
	"github.com/gorilla/handlers"
)

// Compress gzip or deflate compresses responses
// when the request's Accept-Encoding header asks for it,
// negotiating the encoding the same way a Responder negotiates the type.
func Compress() Adapter {
	return handlers.CompressHandler
}
