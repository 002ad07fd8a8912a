package models

// SyncAcceptedResponse is returned by every sync endpoint on success.
type SyncAcceptedResponse struct {
	// Accepted is true when the mutation was applied or recognised as a
	// duplicate of an already-applied one.
	Accepted bool `json:"accepted"`

	// Duplicate is true when the server had already applied this
	// mutation and deduplicated the delivery by its identity key.
	Duplicate bool `json:"duplicate,omitempty"`
}
