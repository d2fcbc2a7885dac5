package models

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is one loaded dataset: the immutable record set plus an identity
// assigned at load time. Derived views carry the snapshot id so responses
// computed from different generations are distinguishable.
type Snapshot struct {
	ID       uuid.UUID `json:"id"`
	LoadedAt time.Time `json:"loadedAt"`
	Source   string    `json:"source"`
	Records  []Record  `json:"-"`
}
