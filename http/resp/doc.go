/*

The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

A Responder negotiates which of the representations a handler registers -
short mime key, template pairings - a request receives,
renders the winning template, and writes it with the negotiated Content-Type.
How negotiation reads the request is pluggable through negotiate.Strategy.

*/
package resp
