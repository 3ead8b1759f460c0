/*
Package trailhead initializes and manages a switchback app with sane defaults.

# Trailhead

The main entrypoint to package trailhead is the [Trailhead] type.
A [Trailhead] ought to be constructed with [New].
Zero [Option] arguments produce a working app:
a Responder negotiating with the builtin accept table,
a Router applying the standard middleware stack to every route,
and a web server configured through environment variables.

[*Trailhead.Serve] begins a switchback app's web server.
By default, [*Trailhead.Serve] listens on :3000,
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the switchback web server.

Upon calling [*Trailhead.Serve], all routes configured up to that point are now active.
Stop that web server with [*Trailhead.Shutdown],
cancel the context supplied through [WithContext],
or send a signal [*Trailhead.Serve] listens for.

# Configuration

A developer configures a switchback app through environment variables
and the Options passed to [New].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - ACCEPT_MAP_FILE: path to a YAML file pairing full mime types with short keys, merged over the builtin table; cf. [negotiate.AcceptMapFromFile]
  - ENVIRONMENT: the environment the application is running in; cf. [switchback.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - SENTRY_DSN: a Sentry DSN; when set, the default logger reports to Sentry
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package trailhead
