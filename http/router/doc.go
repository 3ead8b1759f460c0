/*

Package router registers routes on a web server in a standard switchback app layout.

A [*Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

It is often the case that many routes for a web server share identical middleware stacks,
which aid in directing, redirecting, or adding contextual information to a request.
It is also often the case that small errors can lead to registering a route incorrectly,
thereby unintentionally exposing a resource or not collecting data necessary for actually handling a request.
Thus, a [*Router] provides conveniences for making a single call to register many logically associated Routes,
and for declaring - once, with [*Router.OnEveryRequest] - the middlewares every one of them shares.

Every registered handler is wrapped in panic recovery,
so a panic deep in a template or handler ends in a 500, not a dead server.

*/
package router
