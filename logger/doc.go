/*
Package logger provides the logging functionality waypoint's adapters use,
defining the required behavior in [Logger] and an implementation of it with [WaypointLogger].

The core enum packages never log; only collaborators embedding them do,
chiefly to fail loudly when a schema is misconfigured at startup.

An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.

Log messages emitted by [WaypointLogger] are composed of a timestamp, log level,
call site, message and an optional JSON-encoded [*LogContext]:

	2022/04/28 15:55:21 [ERROR] postgres/registry.go:43 'cannot register table' log_context: "{"error":"not_an_enum: ..."}"

When the SENTRY_DSN environment variable is set,
[NewLogger] decorates the WaypointLogger with a [SentryLogger]
so warning and worse messages also reach Sentry.
*/
package logger
