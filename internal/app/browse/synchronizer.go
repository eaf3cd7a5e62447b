// Package browse is the synchronizer keeping search results, the two list
// collections (personal + public), the map controller, and the review session
// consistent as server responses and user actions interleave.
package browse

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/oapi-codegen/nullable"

	"github.com/destination-europe/explorer-client/internal/app/mapview"
	"github.com/destination-europe/explorer-client/internal/app/pagination"
	"github.com/destination-europe/explorer-client/internal/app/session"
	"github.com/destination-europe/explorer-client/internal/domain"
	"github.com/destination-europe/explorer-client/internal/ports/out/directory"
	"github.com/destination-europe/explorer-client/internal/ports/out/listrepo"
	"github.com/destination-europe/explorer-client/internal/ports/out/maprender"
)

const (
	defaultSearchPageSize = 5
	defaultListsPageSize  = 10

	// guestListLimit mirrors the server-side cap on the guest lists endpoint.
	guestListLimit = 10
)

// Synchronizer orchestrates the directory, the list repository, the map
// controller, and the session. State updates from a completed request are
// applied atomically under one lock; no ordering is guaranteed between two
// independently-issued requests, so list loads carry sequence numbers and
// stale completions are discarded.
type Synchronizer struct {
	dir   directory.Client
	lists listrepo.Client

	mapCtl *mapview.Controller
	sess   *session.Session

	mu sync.Mutex

	searchResults  []domain.Destination
	searchPager    *pagination.Pager
	searchInflight bool

	personal  []domain.List
	public    []domain.List
	listPager *pagination.Pager
	loadSeq   uint64

	details map[domain.DestinationID]domain.Destination
}

func New(dir directory.Client, lists listrepo.Client, engine maprender.Engine) *Synchronizer {
	return &Synchronizer{
		dir:         dir,
		lists:       lists,
		mapCtl:      mapview.NewController(engine),
		sess:        session.New(),
		searchPager: pagination.NewPager(defaultSearchPageSize),
		listPager:   pagination.NewPager(defaultListsPageSize),
		details:     make(map[domain.DestinationID]domain.Destination),
	}
}

// Map exposes the map controller for presentation wiring.
func (s *Synchronizer) Map() *mapview.Controller { return s.mapCtl }

// Session exposes the selection/review session for presentation wiring.
func (s *Synchronizer) Session() *session.Session { return s.sess }

// Search runs a field search and resets the result pager to page 1. Both
// arguments are validated locally; an empty field set or blank term never
// issues a network call. While a search is outstanding, further submissions
// are gated: they return the current view without issuing another call.
func (s *Synchronizer) Search(ctx context.Context, fields []directory.SearchField, term string) (pagination.View[domain.Destination], error) {
	if len(fields) == 0 || strings.TrimSpace(term) == "" {
		return pagination.View[domain.Destination]{}, &Error{
			Code:    "VALIDATION_ERROR",
			Message: "select at least one field and enter a search term",
		}
	}

	s.mu.Lock()
	if s.searchInflight {
		v := pagination.ViewOf(s.searchPager, s.searchResults)
		s.mu.Unlock()
		return v, nil
	}
	s.searchInflight = true
	s.mu.Unlock()

	results, err := s.dir.SearchByFields(ctx, fields, strings.TrimSpace(term))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchInflight = false
	if err != nil {
		// A 404 is "zero results", mapped by the directory adapter to an
		// empty slice; any error reaching here is a real failure.
		return pagination.ViewOf(s.searchPager, s.searchResults), mapDirectoryErr(err)
	}
	s.searchResults = results
	s.searchPager.SetPageSize(s.searchPager.PageSize()) // reset to page 1
	return pagination.ViewOf(s.searchPager, s.searchResults), nil
}

// Searching reports whether a search request is outstanding.
func (s *Synchronizer) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchInflight
}

// SearchView returns the current page of search results.
func (s *Synchronizer) SearchView() pagination.View[domain.Destination] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pagination.ViewOf(s.searchPager, s.searchResults)
}

func (s *Synchronizer) NextSearchPage() pagination.View[domain.Destination] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchPager.Next(len(s.searchResults))
	return pagination.ViewOf(s.searchPager, s.searchResults)
}

func (s *Synchronizer) PrevSearchPage() pagination.View[domain.Destination] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchPager.Prev()
	return pagination.ViewOf(s.searchPager, s.searchResults)
}

// SetSearchPageSize changes the page size and resets to page 1.
func (s *Synchronizer) SetSearchPageSize(size int) pagination.View[domain.Destination] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchPager.SetPageSize(size)
	return pagination.ViewOf(s.searchPager, s.searchResults)
}

// SetListsPageSize changes the merged-collection page size and resets to
// page 1.
func (s *Synchronizer) SetListsPageSize(size int) pagination.View[TaggedList] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listPager.SetPageSize(size)
	return pagination.ViewOf(s.listPager, MergeLists(s.personal, s.public))
}

// SelectDestination routes a selection to the session and the map: the map is
// made visible, and when the destination carries valid coordinates the marker
// is placed there, labeled with the destination name.
func (s *Synchronizer) SelectDestination(d domain.Destination) {
	s.sess.Select(d)
	s.mapCtl.SetVisible(true)
	if coords, ok := d.Coordinates(); ok {
		s.mapCtl.ShowPoint(coords, markerLabel(d.Name))
	}
}

// LookupByID fetches a destination by id and selects it. On a 404 the current
// selection is cleared and the map is hidden; the NOT_FOUND message is
// distinct from other failures.
func (s *Synchronizer) LookupByID(ctx context.Context, id domain.DestinationID) (domain.Destination, error) {
	if strings.TrimSpace(string(id)) == "" {
		return domain.Destination{}, &Error{Code: "VALIDATION_ERROR", Message: "enter a destination id"}
	}
	d, err := s.dir.GetByID(ctx, domain.DestinationID(strings.TrimSpace(string(id))))
	if err != nil {
		s.sess.ClearSelection()
		s.mapCtl.SetVisible(false)
		if errors.Is(err, directory.ErrNotFound) {
			return domain.Destination{}, &Error{Code: "NOT_FOUND", Message: "destination not found"}
		}
		return domain.Destination{}, mapDirectoryErr(err)
	}
	s.mu.Lock()
	s.details[d.ID] = d
	s.mu.Unlock()
	s.SelectDestination(d)
	return d, nil
}

// RecenterOnCoordinates moves the map to a destination's coordinates without
// a full detail fetch. It only re-centers an already-visible map.
func (s *Synchronizer) RecenterOnCoordinates(ctx context.Context, id domain.DestinationID) error {
	coords, err := s.dir.GetCoordinates(ctx, id)
	if err != nil {
		return mapDirectoryErr(err)
	}
	s.mapCtl.ShowPoint(coords, markerLabel(""))
	return nil
}

// Suggest returns autocomplete candidates for a name prefix. A blank prefix
// clears suggestions without a network call.
func (s *Synchronizer) Suggest(ctx context.Context, prefix string) ([]domain.Destination, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, nil
	}
	ds, err := s.dir.SuggestByNamePrefix(ctx, prefix)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return ds, nil
}

// Countries returns the dataset's country names.
func (s *Synchronizer) Countries(ctx context.Context) ([]string, error) {
	cs, err := s.dir.Countries(ctx)
	if err != nil {
		return nil, mapDirectoryErr(err)
	}
	return cs, nil
}

// LoadLists fetches both list collections. With a credential the personal and
// public collections are fetched concurrently; without one, only the capped
// public collection is loaded (guest mode). Completions of an older load that
// arrive after a newer load was issued are discarded.
func (s *Synchronizer) LoadLists(ctx context.Context, cred listrepo.Credential) error {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	limit := s.listPager.PageSize()
	s.mu.Unlock()

	if cred == "" {
		public, err := s.lists.ListPublic(ctx, guestListLimit)
		if err != nil {
			return mapListErr(err)
		}
		s.applyCollections(seq, nil, public)
		return nil
	}

	var (
		wg      sync.WaitGroup
		home    listrepo.HomeCollections
		mine    []domain.List
		homeErr error
		mineErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		home, homeErr = s.lists.ListHome(ctx, cred, 1, limit)
	}()
	go func() {
		defer wg.Done()
		mine, mineErr = s.lists.ListMine(ctx, cred)
	}()
	wg.Wait()

	if homeErr != nil {
		return mapListErr(homeErr)
	}
	if mineErr != nil {
		return mapListErr(mineErr)
	}
	s.applyCollections(seq, sanitizeLists(mine), home.PublicLists)
	return nil
}

// applyCollections installs freshly fetched collections unless a newer load
// has been issued since seq was taken.
func (s *Synchronizer) applyCollections(seq uint64, personal, public []domain.List) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		return
	}
	s.personal = personal
	s.public = public
	s.listPager.Clamp(len(personal) + len(public))
}

// sanitizeLists drops destination entries missing a display name; they are
// invalid dataset references and must never render.
func sanitizeLists(ls []domain.List) []domain.List {
	out := make([]domain.List, 0, len(ls))
	for _, l := range ls {
		l.Destinations = l.ValidDestinations()
		out = append(out, l)
	}
	return out
}

// ListsView returns the current page of the merged, tagged collection.
func (s *Synchronizer) ListsView() pagination.View[TaggedList] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pagination.ViewOf(s.listPager, MergeLists(s.personal, s.public))
}

func (s *Synchronizer) NextListsPage() pagination.View[TaggedList] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listPager.Next(len(s.personal) + len(s.public))
	return pagination.ViewOf(s.listPager, MergeLists(s.personal, s.public))
}

func (s *Synchronizer) PrevListsPage() pagination.View[TaggedList] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listPager.Prev()
	return pagination.ViewOf(s.listPager, MergeLists(s.personal, s.public))
}

// PersonalLists returns the cached personal collection (the manage view).
func (s *Synchronizer) PersonalLists() []domain.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.List(nil), s.personal...)
}

// CreateList submits the session's draft. On success the created list is
// appended to the cached personal collection (no refetch) and the draft is
// closed.
func (s *Synchronizer) CreateList(ctx context.Context, cred listrepo.Credential) (domain.List, error) {
	draft, ok := s.sess.Draft()
	if !ok {
		return domain.List{}, &Error{Code: "VALIDATION_ERROR", Message: "no draft list open"}
	}
	if err := s.sess.ValidateDraft(); err != nil {
		return domain.List{}, err
	}
	created, err := s.lists.Create(ctx, cred, listrepo.CreateListInput{
		Name:         strings.TrimSpace(draft.Name),
		Description:  strings.TrimSpace(draft.Description),
		Destinations: append([]domain.ListEntry(nil), draft.Entries...),
		Visibility:   draft.Visibility,
	})
	if err != nil {
		return domain.List{}, mapListErr(err)
	}
	s.sess.CloseDraft()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.personal = append(s.personal, created)
	s.listPager.Clamp(len(s.personal) + len(s.public))
	return created, nil
}

// SaveEditedList submits the session's draft for an existing list. On success
// the cached personal collection entry is replaced in place.
func (s *Synchronizer) SaveEditedList(ctx context.Context, cred listrepo.Credential) (domain.List, error) {
	draft, ok := s.sess.Draft()
	if !ok || draft.EditingID == "" {
		return domain.List{}, &Error{Code: "VALIDATION_ERROR", Message: "no list is being edited"}
	}
	if err := s.sess.ValidateDraft(); err != nil {
		return domain.List{}, err
	}
	entries := append([]domain.ListEntry(nil), draft.Entries...)
	updated, err := s.lists.Update(ctx, cred, draft.EditingID, listrepo.UpdateListInput{
		Name:         nullable.NewNullableWithValue(strings.TrimSpace(draft.Name)),
		Description:  nullable.NewNullableWithValue(strings.TrimSpace(draft.Description)),
		Visibility:   nullable.NewNullableWithValue(string(draft.Visibility)),
		Destinations: &entries,
	})
	if err != nil {
		return domain.List{}, mapListErr(err)
	}
	s.sess.CloseDraft()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.personal {
		if s.personal[i].ID == updated.ID {
			s.personal[i] = updated
			break
		}
	}
	return updated, nil
}

// DeleteList removes a list. Deletion is destructive and irreversible from
// the client's perspective, so the caller must have obtained an explicit user
// confirmation first. On success the cached personal collection is reconciled
// locally and the merged pager re-clamped.
func (s *Synchronizer) DeleteList(ctx context.Context, cred listrepo.Credential, id domain.ListID, confirmed bool) error {
	if !confirmed {
		return &Error{Code: "VALIDATION_ERROR", Message: "deletion requires confirmation"}
	}
	if err := s.lists.Delete(ctx, cred, id); err != nil {
		return mapListErr(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.personal[:0]
	for _, l := range s.personal {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.personal = kept
	s.listPager.Clamp(len(s.personal) + len(s.public))
	return nil
}

// OpenReviews loads a list's reviews into the session for the popup.
func (s *Synchronizer) OpenReviews(id domain.ListID) error {
	s.mu.Lock()
	var found *domain.List
	for _, t := range MergeLists(s.personal, s.public) {
		if t.List.ID == id {
			l := t.List
			found = &l
			break
		}
	}
	s.mu.Unlock()
	if found == nil {
		return &Error{Code: "NOT_FOUND", Message: "list not found"}
	}
	s.sess.OpenReviews(*found)
	return nil
}

// SubmitReview validates the session's draft review and submits it. The
// session's review sequence is replaced with the server's authoritative
// sequence, never locally appended.
func (s *Synchronizer) SubmitReview(ctx context.Context, cred listrepo.Credential) error {
	rc, ok := s.sess.Reviews()
	if !ok {
		return &Error{Code: "VALIDATION_ERROR", Message: "no review popup open"}
	}
	if err := rc.Draft.Validate(); err != nil {
		return err
	}
	reviews, err := s.lists.AddReview(ctx, cred, rc.ListID, rc.Draft.Rating, strings.TrimSpace(rc.Draft.Comment))
	if err != nil {
		return mapListErr(err)
	}
	s.sess.ReplaceReviews(rc.ListID, reviews)
	return nil
}

// DestinationDetails returns the destination for id, fetching it at most once
// per session.
func (s *Synchronizer) DestinationDetails(ctx context.Context, id domain.DestinationID) (domain.Destination, error) {
	s.mu.Lock()
	if d, ok := s.details[id]; ok {
		s.mu.Unlock()
		return d, nil
	}
	s.mu.Unlock()

	d, err := s.dir.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return domain.Destination{}, &Error{Code: "NOT_FOUND", Message: "destination not found"}
		}
		return domain.Destination{}, mapDirectoryErr(err)
	}
	s.mu.Lock()
	s.details[d.ID] = d
	s.mu.Unlock()
	return d, nil
}

func markerLabel(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Destination Location"
	}
	return name
}

func mapDirectoryErr(err error) error {
	if errors.Is(err, directory.ErrNotFound) {
		return &Error{Code: "NOT_FOUND", Message: "destination not found"}
	}
	return &Error{Code: "NETWORK_ERROR", Message: "request failed, please try again"}
}

func mapListErr(err error) error {
	switch {
	case errors.Is(err, listrepo.ErrNotFound):
		return &Error{Code: "NOT_FOUND", Message: "list not found"}
	case errors.Is(err, listrepo.ErrUnauthorized):
		// Surfaced as a generic failure; no automatic redirect to login.
		return &Error{Code: "AUTH_FAILED", Message: "request failed, please try again"}
	default:
		return &Error{Code: "NETWORK_ERROR", Message: "request failed, please try again"}
	}
}
