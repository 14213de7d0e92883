package store

import (
	"github.com/2008cattiger-cyber/miniature/models"
)

// Store is the durable home of all poll records. Load returns the full
// persisted state; a missing or unreadable document loads as an empty
// state rather than an error. Save replaces the entire persisted state;
// there is no partial-update primitive, callers run a full
// load-mutate-save cycle under their own lock.
type Store interface {
	Load() (models.State, error)
	Save(models.State) error
}
