package domain

// DestinationID is the dataset-assigned identifier of a catalog entry.
// We model it as an opaque identifier: its format is controlled by the dataset.
type DestinationID string

// ListID is the server-assigned identifier of a curated list.
type ListID string
