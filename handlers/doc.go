/*
Package handlers contains the HTTP handlers of the development gateway.

The gateway exposes the bot's inbound events as JSON endpoints; the
core engine never depends on it, and a real messaging transport would
call the same engine methods.

# Handler Types

  - CommandHandler: admin commands (create, results, close, help)
  - CallbackHandler: voter button presses (toggle, confirm)

Handlers are created via constructors that accept the engine:

	commandHandler := handlers.NewCommandHandler(engine)

# Event Flow

	POST /commands/vote          {invoker_id, text}
	POST /commands/vote_results  {invoker_id, text}
	POST /commands/vote_close    {invoker_id, text}
	POST /commands/help          {invoker_id}
	POST /callbacks              {invoker_id, username, name, data}

Replies are {"message": "..."} acknowledgments with status 200, even
for rule violations - those are messages for the user, not transport
errors. A denied admin command returns 204 with an empty body so the
privileged surface stays invisible.
*/
package handlers
