/*
Package store owns the durable representation of all poll records.

# Contract

	state, err := st.Load()   // full document; missing/corrupt -> empty
	err = st.Save(state)      // replaces the full document

There is no partial update. Every mutating code path loads the full
state, changes the one affected poll, and writes everything back. The
engine serializes those cycles with its own lock; the store's job is
only to make each individual Load and Save safe against torn reads.

# Implementations

  - JSONStore: one indented JSON file. Writes land in a temp file and
    are renamed into place. encoding/json marshals map keys in sorted
    order, so the document diffs cleanly between saves.
  - SQLStore: one row per poll holding the serialized document,
    upserted transactionally. Drivers: modernc.org/sqlite ("sqlite")
    and github.com/lib/pq ("postgres"); main selects one from config.

A file that is absent or fails to parse loads as an empty state. That
is deliberate: a corrupt store must never take the bot down, it only
costs history.
*/
package store
