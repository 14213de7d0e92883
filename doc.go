/*
Package main provides the entry point for the poll service.

The service is the voting subsystem of a menu-driven catalog bot: an
admin creates polls that are posted into a channel, voters pick
options via inline buttons (draft + confirm in multi mode, instant in
single mode), and the admin pulls or finalizes results.

# Starting the Service

	ADMIN_ID=123456 go run .

Or with flags:

	go run . -admin 123456 -channel -1001234567890 -store sqlite -d votes.db

# Configuration

Required settings:

  - ADMIN_ID (-admin): user id allowed to run privileged commands

Optional settings:

  - CHANNEL_ID (-channel): default target channel for new polls
  - VOTE_MODE (-mode): multi (default) or single
  - POLL_DURATION (-duration): poll lifetime in seconds (default 7 days)
  - STORE_TYPE (-store): json (default), sqlite or postgres
  - DATABASE_URL (-d): DSN or state file path
  - PORT (-p): gateway port (default: 3318)

# Architecture

  - poll: command parser, vote session engine, results aggregator
  - store: state persistence (json file or sql document rows)
  - handlers: HTTP gateway mapping inbound events onto the engine
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers
  - models: domain and request/response types
  - auth: admin gate and id generation
  - cliparse: configuration parsing

The engine talks to the outside world only through the store and the
models.Sender interface; main wires a logging Sender in place of a
real messaging transport.

See package documentation for each component.
*/
package main
