package models

// InsertResult reports the outcome of a single-document insert.
// InsertedID is nil when nothing was written.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged,omitempty"`
	InsertedID   any    `json:"insertedId"`
	Message      string `json:"message,omitempty"`
}

// UpdateResult reports the outcome of a single-document update
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// DeleteResult reports the outcome of a single-document delete
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
