/*
Package poll is the core of the voting feature: command parsing, the
vote session engine, and the results aggregator.

# Engine

Engine methods correspond one-to-one to the inbound events of the bot:

	Create(invokerID, text)           /vote command (admin)
	HandleCallback(voter, data)       button press -> Toggle or Confirm
	Results(invokerID, text)          /vote_results command (admin)
	Close(invokerID, text)            /vote_close command (admin)
	Help(invokerID)                   /help command (admin)

Admin-only methods return ErrUnauthorized on a non-admin invoker; the
caller must emit nothing in that case. Everything else resolves to a
user-facing reply string - rule violations ("You already voted.",
"Poll is closed.", ...) are acknowledgments, not errors. The error
return is reserved for store and transport failures.

# Session states

Per (poll, user) in multi mode: no interaction -> drafting -> confirmed.
Toggling flips an option in the mutable draft set; confirm freezes the
draft into an immutable vote record. Single mode skips the draft: each
press records the choice directly, last write wins.

Poll-level: open -> closed, closed being terminal. Expiry is lazy: the
first voting interaction at or past the deadline flips the closed flag
and persists it; nothing sweeps in the background.

# Concurrency

Every mutating operation is a load-mutate-save of the full state. The
engine's mutex serializes those cycles, which is what makes two
concurrent toggles on the same poll safe with a whole-document store.
*/
package poll
