/*
The middleware package defines what a middleware is in switchback and a set of basic middlewares.

The available middlewares are:
- Compress
- InjectResponder
- LogRequest
- RequestID
- Vary

Due to the amount of configuration required, middleware does not provide a default middleware chain
Instead, the following can be copy-pasted:

	adpts := []middleware.Adapter{
		middleware.RequestID(switchback.RequestIDKey),
		middleware.LogRequest(log),
		middleware.Vary(),
		middleware.Compress(),
		middleware.InjectResponder(responder, switchback.ResponderKey),
	}

*/
package middleware
