/*
Package models defines request, response, and domain types shared across
the poll service.

# Request Types

Types for parsing incoming JSON events:

  - CommandRequest: invoker_id, text (raw command payload)
  - CallbackRequest: invoker_id, username, name, data (button payload)

# Response Types

  - MessageResponse: message
  - CreatePollResponse: poll_id, message
  - ErrorResponse: error, message

# Domain Types

  - Poll: one question with ordered options, expiry, votes, drafts,
    confirmations, and identity snapshots
  - State: the full persisted document, poll id -> Poll
  - Voter / UserInfo: interacting user and the stored snapshot of them
  - Button / Sender: the outbound messaging surface of the host platform

# Constants

Voting modes stored on each poll:

	ModeMulti  = "multi"   // draft set + explicit confirm, then immutable
	ModeSingle = "single"  // one choice, last write wins

Poll JSON tags match the legacy votes.json document, so state written by
earlier deployments loads unchanged.
*/
package models
