/*

The negotiate package selects which of several registered response
representations an HTTP request receives.

A Registry pairs short mime keys ("html", "json", ...) with template names.
An AcceptMap translates full mime types ("application/json") into those short
keys. A Strategy reads the request's Accept header or URL path against both
and produces a Result naming the winning content type and template, or
reports no match so the caller can fall back to the Registry's default.

Two strategies ship with the package: BestMatch, which delegates weighted
Accept header matching to a Matcher, and PathExtension, which trusts a
trailing URL path segment corroborated by the Accept header.

*/
package negotiate
