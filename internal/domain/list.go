package domain

import "time"

type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// ListEntry is a Destination reference carried by a List. The server stores a
// display name plus the referenced destination id; entries missing a name are
// invalid and filtered out before display.
type ListEntry struct {
	Name          string
	DestinationID DestinationID
}

// Valid reports whether the entry may be displayed.
func (e ListEntry) Valid() bool { return e.Name != "" }

// Review is a rating/comment pair appended to a List. Reviews are never
// independently addressable.
type Review struct {
	Rating   int // 1..5; 0 means "not yet set" and is invalid for submission
	Comment  string
	Nickname string // empty renders as "Anonymous"
	Date     time.Time
}

// List is a user-curated, named, ordered collection of destinations.
// AverageRating and LastModified are server-derived; the client never
// recomputes them locally.
type List struct {
	ID            ListID
	Name          string
	Description   string
	Visibility    Visibility
	OwnerNickname string

	Destinations []ListEntry
	Reviews      []Review

	AverageRating float64
	LastModified  time.Time
}

// ValidDestinations returns the entries safe to display, preserving order.
func (l List) ValidDestinations() []ListEntry {
	out := make([]ListEntry, 0, len(l.Destinations))
	for _, e := range l.Destinations {
		if e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
