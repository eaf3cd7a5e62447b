package browse

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	memmaprender "github.com/destination-europe/explorer-client/internal/adapters/memory/maprender"
	"github.com/destination-europe/explorer-client/internal/app/pagination"
	"github.com/destination-europe/explorer-client/internal/app/session"
	"github.com/destination-europe/explorer-client/internal/domain"
	"github.com/destination-europe/explorer-client/internal/ports/out/directory"
	"github.com/destination-europe/explorer-client/internal/ports/out/listrepo"
)

// stubDirectory implements directory.Client with overridable behavior.
type stubDirectory struct {
	searchFn    func(ctx context.Context, fields []directory.SearchField, term string) ([]domain.Destination, error)
	getFn       func(ctx context.Context, id domain.DestinationID) (domain.Destination, error)
	coordsFn    func(ctx context.Context, id domain.DestinationID) (domain.Coordinates, error)
	suggestFn   func(ctx context.Context, prefix string) ([]domain.Destination, error)
	countriesFn func(ctx context.Context) ([]string, error)
}

func (s *stubDirectory) SearchByFields(ctx context.Context, fields []directory.SearchField, term string) ([]domain.Destination, error) {
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(ctx, fields, term)
}

func (s *stubDirectory) GetByID(ctx context.Context, id domain.DestinationID) (domain.Destination, error) {
	if s.getFn == nil {
		return domain.Destination{}, directory.ErrNotFound
	}
	return s.getFn(ctx, id)
}

func (s *stubDirectory) GetCoordinates(ctx context.Context, id domain.DestinationID) (domain.Coordinates, error) {
	if s.coordsFn == nil {
		return domain.Coordinates{}, directory.ErrNotFound
	}
	return s.coordsFn(ctx, id)
}

func (s *stubDirectory) SuggestByNamePrefix(ctx context.Context, prefix string) ([]domain.Destination, error) {
	if s.suggestFn == nil {
		return nil, nil
	}
	return s.suggestFn(ctx, prefix)
}

func (s *stubDirectory) Countries(ctx context.Context) ([]string, error) {
	if s.countriesFn == nil {
		return nil, nil
	}
	return s.countriesFn(ctx)
}

// stubListRepo implements listrepo.Client with overridable behavior.
type stubListRepo struct {
	publicFn    func(ctx context.Context, limit int) ([]domain.List, error)
	mineFn      func(ctx context.Context, cred listrepo.Credential) ([]domain.List, error)
	homeFn      func(ctx context.Context, cred listrepo.Credential, page, limit int) (listrepo.HomeCollections, error)
	createFn    func(ctx context.Context, cred listrepo.Credential, in listrepo.CreateListInput) (domain.List, error)
	updateFn    func(ctx context.Context, cred listrepo.Credential, id domain.ListID, in listrepo.UpdateListInput) (domain.List, error)
	deleteFn    func(ctx context.Context, cred listrepo.Credential, id domain.ListID) error
	addReviewFn func(ctx context.Context, cred listrepo.Credential, id domain.ListID, rating int, comment string) ([]domain.Review, error)
}

func (s *stubListRepo) ListPublic(ctx context.Context, limit int) ([]domain.List, error) {
	if s.publicFn == nil {
		return nil, nil
	}
	return s.publicFn(ctx, limit)
}

func (s *stubListRepo) ListMine(ctx context.Context, cred listrepo.Credential) ([]domain.List, error) {
	if s.mineFn == nil {
		return nil, nil
	}
	return s.mineFn(ctx, cred)
}

func (s *stubListRepo) ListHome(ctx context.Context, cred listrepo.Credential, page, limit int) (listrepo.HomeCollections, error) {
	if s.homeFn == nil {
		return listrepo.HomeCollections{}, nil
	}
	return s.homeFn(ctx, cred, page, limit)
}

func (s *stubListRepo) Create(ctx context.Context, cred listrepo.Credential, in listrepo.CreateListInput) (domain.List, error) {
	if s.createFn == nil {
		return domain.List{}, listrepo.ErrUnavailable
	}
	return s.createFn(ctx, cred, in)
}

func (s *stubListRepo) Update(ctx context.Context, cred listrepo.Credential, id domain.ListID, in listrepo.UpdateListInput) (domain.List, error) {
	if s.updateFn == nil {
		return domain.List{}, listrepo.ErrUnavailable
	}
	return s.updateFn(ctx, cred, id, in)
}

func (s *stubListRepo) Delete(ctx context.Context, cred listrepo.Credential, id domain.ListID) error {
	if s.deleteFn == nil {
		return listrepo.ErrUnavailable
	}
	return s.deleteFn(ctx, cred, id)
}

func (s *stubListRepo) AddReview(ctx context.Context, cred listrepo.Credential, id domain.ListID, rating int, comment string) ([]domain.Review, error) {
	if s.addReviewFn == nil {
		return nil, listrepo.ErrUnavailable
	}
	return s.addReviewFn(ctx, cred, id, rating, comment)
}

func sessionDraft(rating int, comment string) session.DraftReview {
	return session.DraftReview{Rating: rating, Comment: comment}
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("expected *browse.Error, got %T: %v", err, err)
	}
	return be.Code
}

func destinations(names ...string) []domain.Destination {
	out := make([]domain.Destination, 0, len(names))
	for i, n := range names {
		out = append(out, domain.Destination{ID: domain.DestinationID(string(rune('0' + i))), Name: n})
	}
	return out
}

func TestSearchValidatesLocally(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	dir := &stubDirectory{searchFn: func(context.Context, []directory.SearchField, string) ([]domain.Destination, error) {
		calls.Add(1)
		return nil, nil
	}}
	s := New(dir, &stubListRepo{}, memmaprender.NewEngine())

	_, err := s.Search(context.Background(), nil, "paris")
	if errCode(t, err) != "VALIDATION_ERROR" {
		t.Fatalf("empty field set: got %v", err)
	}
	_, err = s.Search(context.Background(), []directory.SearchField{directory.FieldDestination}, "   ")
	if errCode(t, err) != "VALIDATION_ERROR" {
		t.Fatalf("blank term: got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("validation failures issued %d network calls", calls.Load())
	}
}

func TestSearchGateSuppressesConcurrentSubmission(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	dir := &stubDirectory{searchFn: func(context.Context, []directory.SearchField, string) ([]domain.Destination, error) {
		calls.Add(1)
		close(started)
		<-release
		return destinations("Paris", "Porto"), nil
	}}
	s := New(dir, &stubListRepo{}, memmaprender.NewEngine())

	fields := []directory.SearchField{directory.FieldDestination}
	type result struct {
		view pagination.View[domain.Destination]
		err  error
	}
	done := make(chan result, 1)
	go func() {
		v, err := s.Search(context.Background(), fields, "p")
		done <- result{v, err}
	}()
	<-started

	if !s.Searching() {
		t.Fatalf("Searching() = false while a request is outstanding")
	}
	// The second submission is gated: current (empty) view, no error, no call.
	v, err := s.Search(context.Background(), fields, "p")
	if err != nil {
		t.Fatalf("gated search returned error: %v", err)
	}
	if len(v.Items) != 0 {
		t.Fatalf("gated search returned new items: %+v", v.Items)
	}
	if calls.Load() != 1 {
		t.Fatalf("gated search issued a second call")
	}

	close(release)
	r := <-done
	if r.err != nil {
		t.Fatalf("first search failed: %v", r.err)
	}
	if len(r.view.Items) != 2 || r.view.Page != 1 {
		t.Fatalf("unexpected result view: %+v", r.view)
	}
	if s.Searching() {
		t.Fatalf("Searching() = true after completion")
	}
}

func TestSearchResetsPagerToFirstPage(t *testing.T) {
	t.Parallel()

	dir := &stubDirectory{searchFn: func(context.Context, []directory.SearchField, string) ([]domain.Destination, error) {
		return destinations("a", "b", "c", "d", "e", "f", "g"), nil
	}}
	s := New(dir, &stubListRepo{}, memmaprender.NewEngine())
	s.SetSearchPageSize(3)

	fields := []directory.SearchField{directory.FieldDestination}
	if _, err := s.Search(context.Background(), fields, "x"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	v := s.NextSearchPage()
	if v.Page != 2 {
		t.Fatalf("setup: page = %d, want 2", v.Page)
	}
	v, err := s.Search(context.Background(), fields, "y")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if v.Page != 1 {
		t.Fatalf("new search landed on page %d, want 1", v.Page)
	}
	if v.PageSize != 3 {
		t.Fatalf("page size changed across searches: %d", v.PageSize)
	}
}

func TestSelectDestinationShowsMapAndMarker(t *testing.T) {
	t.Parallel()

	engine := memmaprender.NewEngine()
	s := New(&stubDirectory{}, &stubListRepo{}, engine)

	s.SelectDestination(domain.Destination{ID: "d1", Name: "Paris", Latitude: "48.8566", Longitude: "2.3522"})

	if !s.Map().Shown() || !s.Map().HasMarker() {
		t.Fatalf("map shown=%v marker=%v after selection", s.Map().Shown(), s.Map().HasMarker())
	}
	surf := engine.Last()
	if surf.MarkerLabel != "Paris" {
		t.Fatalf("marker label = %q, want destination name", surf.MarkerLabel)
	}
	if sel, ok := s.Session().Selected(); !ok || sel.ID != "d1" {
		t.Fatalf("selection not recorded: %+v ok=%v", sel, ok)
	}
}

func TestSelectDestinationWithoutCoordinatesShowsBareMap(t *testing.T) {
	t.Parallel()

	engine := memmaprender.NewEngine()
	s := New(&stubDirectory{}, &stubListRepo{}, engine)

	s.SelectDestination(domain.Destination{ID: "d1", Name: "Atlantis", Latitude: "not-a-number"})

	if !s.Map().Shown() {
		t.Fatalf("map hidden after selection")
	}
	if s.Map().HasMarker() {
		t.Fatalf("marker placed despite malformed coordinates")
	}
}

func TestLookupByIDNotFoundClearsSelectionAndHidesMap(t *testing.T) {
	t.Parallel()

	engine := memmaprender.NewEngine()
	dir := &stubDirectory{getFn: func(_ context.Context, id domain.DestinationID) (domain.Destination, error) {
		if id == "known" {
			return domain.Destination{ID: "known", Name: "Lisbon", Latitude: "38.72", Longitude: "-9.14"}, nil
		}
		return domain.Destination{}, directory.ErrNotFound
	}}
	s := New(dir, &stubListRepo{}, engine)

	if _, err := s.LookupByID(context.Background(), "known"); err != nil {
		t.Fatalf("LookupByID known: %v", err)
	}
	if !s.Map().Shown() {
		t.Fatalf("map hidden after successful lookup")
	}

	_, err := s.LookupByID(context.Background(), "missing")
	if errCode(t, err) != "NOT_FOUND" {
		t.Fatalf("missing id: got %v", err)
	}
	if _, ok := s.Session().Selected(); ok {
		t.Fatalf("stale selection survived a failed lookup")
	}
	if s.Map().Shown() {
		t.Fatalf("map still shown after failed lookup")
	}
}

func TestLoadListsGuestUsesCappedPublicCollection(t *testing.T) {
	t.Parallel()

	var gotLimit atomic.Int32
	lists := &stubListRepo{publicFn: func(_ context.Context, limit int) ([]domain.List, error) {
		gotLimit.Store(int32(limit))
		return []domain.List{{ID: "p1", Name: "Public"}}, nil
	}}
	s := New(&stubDirectory{}, lists, memmaprender.NewEngine())

	if err := s.LoadLists(context.Background(), ""); err != nil {
		t.Fatalf("LoadLists: %v", err)
	}
	if gotLimit.Load() != guestListLimit {
		t.Fatalf("guest load used limit %d, want %d", gotLimit.Load(), guestListLimit)
	}
	v := s.ListsView()
	if len(v.Items) != 1 || v.Items[0].Origin != OriginPublic {
		t.Fatalf("unexpected guest view: %+v", v.Items)
	}
	if len(s.PersonalLists()) != 0 {
		t.Fatalf("guest load produced personal lists")
	}
}

func TestLoadListsMergesPersonalBeforePublic(t *testing.T) {
	t.Parallel()

	lists := &stubListRepo{
		homeFn: func(context.Context, listrepo.Credential, int, int) (listrepo.HomeCollections, error) {
			return listrepo.HomeCollections{PublicLists: []domain.List{{ID: "c", Name: "C"}}}, nil
		},
		mineFn: func(context.Context, listrepo.Credential) ([]domain.List, error) {
			return []domain.List{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, nil
		},
	}
	s := New(&stubDirectory{}, lists, memmaprender.NewEngine())

	if err := s.LoadLists(context.Background(), "token"); err != nil {
		t.Fatalf("LoadLists: %v", err)
	}
	v := s.ListsView()
	wantIDs := []domain.ListID{"a", "b", "c"}
	if len(v.Items) != 3 {
		t.Fatalf("merged view = %+v", v.Items)
	}
	for i, item := range v.Items {
		if item.List.ID != wantIDs[i] {
			t.Fatalf("merged[%d] = %s, want %s", i, item.List.ID, wantIDs[i])
		}
	}
}

func TestLoadListsDropsInvalidPersonalEntries(t *testing.T) {
	t.Parallel()

	lists := &stubListRepo{
		homeFn: func(context.Context, listrepo.Credential, int, int) (listrepo.HomeCollections, error) {
			return listrepo.HomeCollections{}, nil
		},
		mineFn: func(context.Context, listrepo.Credential) ([]domain.List, error) {
			return []domain.List{{ID: "a", Name: "A", Destinations: []domain.ListEntry{
				{Name: "Paris", DestinationID: "d1"},
				{Name: "", DestinationID: "ghost"},
			}}}, nil
		},
	}
	s := New(&stubDirectory{}, lists, memmaprender.NewEngine())

	if err := s.LoadLists(context.Background(), "token"); err != nil {
		t.Fatalf("LoadLists: %v", err)
	}
	personal := s.PersonalLists()
	if len(personal) != 1 || len(personal[0].Destinations) != 1 {
		t.Fatalf("invalid entry not dropped: %+v", personal)
	}
	if personal[0].Destinations[0].Name != "Paris" {
		t.Fatalf("wrong entry kept: %+v", personal[0].Destinations)
	}
}

func TestLoadListsDiscardsStaleCompletion(t *testing.T) {
	t.Parallel()

	firstEntered := make(chan struct{})
	firstRelease := make(chan struct{})
	var call atomic.Int32
	lists := &stubListRepo{publicFn: func(context.Context, int) ([]domain.List, error) {
		if call.Add(1) == 1 {
			close(firstEntered)
			<-firstRelease
			return []domain.List{{ID: "stale", Name: "Old"}}, nil
		}
		return []domain.List{{ID: "fresh", Name: "New"}}, nil
	}}
	s := New(&stubDirectory{}, lists, memmaprender.NewEngine())

	done := make(chan error, 1)
	go func() { done <- s.LoadLists(context.Background(), "") }()
	<-firstEntered

	// A newer load completes while the first is still outstanding.
	if err := s.LoadLists(context.Background(), ""); err != nil {
		t.Fatalf("second LoadLists: %v", err)
	}

	close(firstRelease)
	if err := <-done; err != nil {
		t.Fatalf("first LoadLists: %v", err)
	}

	v := s.ListsView()
	if len(v.Items) != 1 || v.Items[0].List.ID != "fresh" {
		t.Fatalf("stale completion overwrote the newer collections: %+v", v.Items)
	}
}

func TestCreateListValidatesDraftBeforeNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	lists := &stubListRepo{createFn: func(_ context.Context, _ listrepo.Credential, in listrepo.CreateListInput) (domain.List, error) {
		calls.Add(1)
		return domain.List{ID: "new", Name: in.Name}, nil
	}}
	s := New(&stubDirectory{}, lists, memmaprender.NewEngine())

	_, err := s.CreateList(context.Background(), "token")
	if errCode(t, err) != "VALIDATION_ERROR" {
		t.Fatalf("create without a draft: got %v", err)
	}

	s.Session().StartDraftList()
	draft, _ := s.Session().Draft()
	draft.Name = ""
	draft.Description = "desc"
	if _, err := s.CreateList(context.Background(), "token"); err == nil {
		t.Fatalf("blank name accepted")
	}
	if calls.Load() != 0 {
		t.Fatalf("invalid draft reached the network")
	}

	draft.Name = "Summer"
	created, err := s.CreateList(context.Background(), "token")
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	if created.ID != "new" {
		t.Fatalf("unexpected created list: %+v", created)
	}
	if _, ok := s.Session().Draft(); ok {
		t.Fatalf("draft still open after successful create")
	}
	personal := s.PersonalLists()
	if len(personal) != 1 || personal[0].ID != "new" {
		t.Fatalf("created list not appended locally: %+v", personal)
	}
}

func TestDeleteListRequiresConfirmationAndReclamps(t *testing.T) {
	t.Parallel()

	var deleted atomic.Int32
	lists := &stubListRepo{
		homeFn: func(context.Context, listrepo.Credential, int, int) (listrepo.HomeCollections, error) {
			return listrepo.HomeCollections{}, nil
		},
		mineFn: func(context.Context, listrepo.Credential) ([]domain.List, error) {
			return []domain.List{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}}, nil
		},
		deleteFn: func(context.Context, listrepo.Credential, domain.ListID) error {
			deleted.Add(1)
			return nil
		},
	}
	s := New(&stubDirectory{}, lists, memmaprender.NewEngine())
	s.SetListsPageSize(2)
	if err := s.LoadLists(context.Background(), "token"); err != nil {
		t.Fatalf("LoadLists: %v", err)
	}
	s.NextListsPage() // page 2 holds only "c"

	err := s.DeleteList(context.Background(), "token", "c", false)
	if errCode(t, err) != "VALIDATION_ERROR" {
		t.Fatalf("unconfirmed delete: got %v", err)
	}
	if deleted.Load() != 0 {
		t.Fatalf("unconfirmed delete reached the network")
	}

	if err := s.DeleteList(context.Background(), "token", "c", true); err != nil {
		t.Fatalf("DeleteList: %v", err)
	}
	v := s.ListsView()
	if v.Page != 1 {
		t.Fatalf("pager not re-clamped after shrink: page %d", v.Page)
	}
	wantIDs := []domain.ListID{"a", "b"}
	if len(v.Items) != 2 || v.Items[0].List.ID != wantIDs[0] || v.Items[1].List.ID != wantIDs[1] {
		t.Fatalf("unexpected view after delete: %+v", v.Items)
	}
}

func TestSaveEditedListReplacesCachedEntry(t *testing.T) {
	t.Parallel()

	lists := &stubListRepo{
		homeFn: func(context.Context, listrepo.Credential, int, int) (listrepo.HomeCollections, error) {
			return listrepo.HomeCollections{}, nil
		},
		mineFn: func(context.Context, listrepo.Credential) ([]domain.List, error) {
			return []domain.List{{ID: "a", Name: "Before", Description: "d"}}, nil
		},
		updateFn: func(_ context.Context, _ listrepo.Credential, id domain.ListID, in listrepo.UpdateListInput) (domain.List, error) {
			name, _ := in.Name.Get()
			return domain.List{ID: id, Name: name, Description: "d"}, nil
		},
	}
	s := New(&stubDirectory{}, lists, memmaprender.NewEngine())
	if err := s.LoadLists(context.Background(), "token"); err != nil {
		t.Fatalf("LoadLists: %v", err)
	}

	s.Session().EditList(s.PersonalLists()[0])
	draft, _ := s.Session().Draft()
	draft.Name = "After"

	updated, err := s.SaveEditedList(context.Background(), "token")
	if err != nil {
		t.Fatalf("SaveEditedList: %v", err)
	}
	if updated.Name != "After" {
		t.Fatalf("unexpected updated list: %+v", updated)
	}
	personal := s.PersonalLists()
	if len(personal) != 1 || personal[0].Name != "After" {
		t.Fatalf("cached entry not replaced: %+v", personal)
	}
}

func TestSubmitReviewReplacesSequenceWithServerResponse(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	lists := &stubListRepo{
		homeFn: func(context.Context, listrepo.Credential, int, int) (listrepo.HomeCollections, error) {
			return listrepo.HomeCollections{PublicLists: []domain.List{{
				ID: "l1", Name: "Trips",
				Reviews: []domain.Review{{Rating: 3, Comment: "old", Nickname: "ann"}},
			}}}, nil
		},
		mineFn: func(context.Context, listrepo.Credential) ([]domain.List, error) { return nil, nil },
		addReviewFn: func(_ context.Context, _ listrepo.Credential, _ domain.ListID, rating int, comment string) ([]domain.Review, error) {
			calls.Add(1)
			return []domain.Review{
				{Rating: 3, Comment: "old", Nickname: "ann"},
				{Rating: rating, Comment: comment, Nickname: "bob"},
			}, nil
		},
	}
	s := New(&stubDirectory{}, lists, memmaprender.NewEngine())
	if err := s.LoadLists(context.Background(), "token"); err != nil {
		t.Fatalf("LoadLists: %v", err)
	}
	if err := s.OpenReviews("l1"); err != nil {
		t.Fatalf("OpenReviews: %v", err)
	}

	// An invalid draft never reaches the network.
	s.Session().SetDraftReview(sessionDraft(0, "nice"))
	if err := s.SubmitReview(context.Background(), "token"); err == nil {
		t.Fatalf("zero rating accepted")
	}
	if calls.Load() != 0 {
		t.Fatalf("invalid review reached the network")
	}

	s.Session().SetDraftReview(sessionDraft(5, "nice"))
	if err := s.SubmitReview(context.Background(), "token"); err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	rc, _ := s.Session().Reviews()
	if len(rc.Reviews) != 2 || rc.Reviews[1].Nickname != "bob" {
		t.Fatalf("server sequence not installed: %+v", rc.Reviews)
	}
}

func TestListErrorsFollowTaxonomy(t *testing.T) {
	t.Parallel()

	lists := &stubListRepo{deleteFn: func(context.Context, listrepo.Credential, domain.ListID) error {
		return listrepo.ErrUnauthorized
	}}
	s := New(&stubDirectory{}, lists, memmaprender.NewEngine())

	err := s.DeleteList(context.Background(), "expired", "a", true)
	if errCode(t, err) != "AUTH_FAILED" {
		t.Fatalf("unauthorized delete: got %v", err)
	}

	lists.deleteFn = func(context.Context, listrepo.Credential, domain.ListID) error {
		return listrepo.ErrNotFound
	}
	err = s.DeleteList(context.Background(), "token", "a", true)
	if errCode(t, err) != "NOT_FOUND" {
		t.Fatalf("missing list delete: got %v", err)
	}

	lists.deleteFn = func(context.Context, listrepo.Credential, domain.ListID) error {
		return listrepo.ErrUnavailable
	}
	err = s.DeleteList(context.Background(), "token", "a", true)
	if errCode(t, err) != "NETWORK_ERROR" {
		t.Fatalf("unavailable delete: got %v", err)
	}
}

func TestDestinationDetailsFetchedOncePerSession(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	dir := &stubDirectory{getFn: func(_ context.Context, id domain.DestinationID) (domain.Destination, error) {
		calls.Add(1)
		return domain.Destination{ID: id, Name: "Vienna"}, nil
	}}
	s := New(dir, &stubListRepo{}, memmaprender.NewEngine())

	for i := 0; i < 3; i++ {
		d, err := s.DestinationDetails(context.Background(), "d9")
		if err != nil || d.Name != "Vienna" {
			t.Fatalf("DestinationDetails: %+v err=%v", d, err)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("details fetched %d times, want 1", calls.Load())
	}
}

func TestSuggestBlankPrefixIssuesNoCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	dir := &stubDirectory{suggestFn: func(context.Context, string) ([]domain.Destination, error) {
		calls.Add(1)
		return destinations("Paris"), nil
	}}
	s := New(dir, &stubListRepo{}, memmaprender.NewEngine())

	ds, err := s.Suggest(context.Background(), "   ")
	if err != nil || ds != nil {
		t.Fatalf("blank prefix: ds=%v err=%v", ds, err)
	}
	if calls.Load() != 0 {
		t.Fatalf("blank prefix issued a call")
	}

	if _, err := s.Suggest(context.Background(), "pa"); err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1", calls.Load())
	}
}
