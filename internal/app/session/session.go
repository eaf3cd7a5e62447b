// Package session tracks the in-memory browsing session: the currently
// selected destination, the list whose reviews are open, the draft review
// being composed, and the draft list being created or edited. Nothing here is
// persisted.
package session

import (
	"strings"

	"github.com/destination-europe/explorer-client/internal/domain"
)

// DraftReview is the review form state. Rating 0 means "not yet set".
type DraftReview struct {
	Rating  int
	Comment string
}

// Validate enforces the submission rules: rating in [1,5] and a non-blank
// comment. A failing draft must never reach the network.
func (d DraftReview) Validate() error {
	details := map[string]any{}
	if d.Rating < 1 || d.Rating > 5 {
		details["rating"] = "must be between 1 and 5"
	}
	if strings.TrimSpace(d.Comment) == "" {
		details["comment"] = "must be non-empty"
	}
	if len(details) > 0 {
		return &Error{Code: "VALIDATION_ERROR", Message: "invalid review", Details: details}
	}
	return nil
}

// ReviewContext is the list whose review popup is open.
type ReviewContext struct {
	ListID   domain.ListID
	ListName string
	Reviews  []domain.Review
	Draft    DraftReview
}

// DraftList is the manage-lists form state, used both for creating a new list
// and for editing an existing one (EditingID non-empty).
type DraftList struct {
	EditingID   domain.ListID
	Name        string
	Description string
	Visibility  domain.Visibility
	Entries     []domain.ListEntry
}

// Session is the in-memory selection/review state. Not safe for concurrent
// use; driven from the same event loop as the synchronizer.
type Session struct {
	selected *domain.Destination
	review   *ReviewContext
	draft    *DraftList
}

func New() *Session { return &Session{} }

// Select records the chosen destination. The caller is responsible for
// routing the selection to the map controller.
func (s *Session) Select(d domain.Destination) {
	cp := d
	s.selected = &cp
}

// ClearSelection drops the selected destination (e.g. after a failed lookup).
func (s *Session) ClearSelection() { s.selected = nil }

// Selected returns the current selection, if any.
func (s *Session) Selected() (domain.Destination, bool) {
	if s.selected == nil {
		return domain.Destination{}, false
	}
	return *s.selected, true
}

// OpenReviews loads a list's review sequence into the popup state and resets
// the draft review.
func (s *Session) OpenReviews(l domain.List) {
	s.review = &ReviewContext{
		ListID:   l.ID,
		ListName: l.Name,
		Reviews:  append([]domain.Review(nil), l.Reviews...),
	}
}

// CloseReviews discards the popup state, draft included.
func (s *Session) CloseReviews() { s.review = nil }

// Reviews returns the open review context, if any.
func (s *Session) Reviews() (*ReviewContext, bool) {
	if s.review == nil {
		return nil, false
	}
	return s.review, true
}

// SetDraftReview updates the review form in place. No-op when no popup is open.
func (s *Session) SetDraftReview(d DraftReview) {
	if s.review != nil {
		s.review.Draft = d
	}
}

// ReplaceReviews swaps in the server's authoritative review sequence after a
// successful submission. The sequence is never locally appended, so
// server-side derived fields (recomputed average rating) cannot drift.
func (s *Session) ReplaceReviews(id domain.ListID, reviews []domain.Review) {
	if s.review == nil || s.review.ListID != id {
		return
	}
	s.review.Reviews = append([]domain.Review(nil), reviews...)
	s.review.Draft = DraftReview{}
}

// StartDraftList opens a fresh create form. New lists default to private.
func (s *Session) StartDraftList() {
	s.draft = &DraftList{Visibility: domain.VisibilityPrivate}
}

// EditList loads an existing list into the form.
func (s *Session) EditList(l domain.List) {
	s.draft = &DraftList{
		EditingID:   l.ID,
		Name:        l.Name,
		Description: l.Description,
		Visibility:  l.Visibility,
		Entries:     append([]domain.ListEntry(nil), l.Destinations...),
	}
}

// Draft returns the open draft list, if any.
func (s *Session) Draft() (*DraftList, bool) {
	if s.draft == nil {
		return nil, false
	}
	return s.draft, true
}

// CloseDraft discards the form state.
func (s *Session) CloseDraft() { s.draft = nil }

// AddDraftEntry appends a destination to the draft. Entries without a name are
// rejected and duplicates (by id) are refused.
func (s *Session) AddDraftEntry(d domain.Destination) error {
	if s.draft == nil {
		return &Error{Code: "VALIDATION_ERROR", Message: "no draft list open"}
	}
	if !d.Valid() {
		return &Error{Code: "VALIDATION_ERROR", Message: "invalid destination", Details: map[string]any{"destination": "must have an id and a name"}}
	}
	for _, e := range s.draft.Entries {
		if e.DestinationID == d.ID {
			return &Error{Code: "VALIDATION_ERROR", Message: "destination already in the list", Details: map[string]any{"id": string(d.ID)}}
		}
	}
	s.draft.Entries = append(s.draft.Entries, domain.ListEntry{Name: d.Name, DestinationID: d.ID})
	return nil
}

// RemoveDraftEntry removes the entry at index. Out-of-range indices are a
// no-op.
func (s *Session) RemoveDraftEntry(i int) {
	if s.draft == nil || i < 0 || i >= len(s.draft.Entries) {
		return
	}
	s.draft.Entries = append(s.draft.Entries[:i], s.draft.Entries[i+1:]...)
}

// ValidateDraft enforces the create/save rules before any network call: name
// and description must be non-blank.
func (s *Session) ValidateDraft() error {
	if s.draft == nil {
		return &Error{Code: "VALIDATION_ERROR", Message: "no draft list open"}
	}
	details := map[string]any{}
	if strings.TrimSpace(s.draft.Name) == "" {
		details["name"] = "must be non-empty"
	}
	if strings.TrimSpace(s.draft.Description) == "" {
		details["description"] = "must be non-empty"
	}
	if len(details) > 0 {
		return &Error{Code: "VALIDATION_ERROR", Message: "invalid list", Details: details}
	}
	return nil
}
