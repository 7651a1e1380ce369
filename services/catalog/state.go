package catalog

import (
	"sync"

	"lstours/models"
)

// FetchStatus tracks a named collection through its load lifecycle.
type FetchStatus string

const (
	StatusIdle      FetchStatus = "idle"
	StatusLoading   FetchStatus = "loading"
	StatusSucceeded FetchStatus = "succeeded"
	StatusFailed    FetchStatus = "failed"
)

// ViewState is one session's catalog view: the current filter selection and
// pagination position.
type ViewState struct {
	Filters      models.FilterState `json:"filters"`
	CurrentPage  int                `json:"currentPage"`
	ItemsPerPage int                `json:"itemsPerPage"`
}

// StateStore holds session-scoped view state keyed by session ID. All state
// transitions are reducer-style: they take the current state and a payload
// and leave a fully-formed next state.
type StateStore struct {
	mu       sync.Mutex
	sessions map[string]*ViewState
	perPage  int
}

// NewStateStore builds a store whose sessions start on page 1 with the given
// items-per-page and an unconstrained filter selection.
func NewStateStore(perPage int) *StateStore {
	if perPage < 1 {
		perPage = 6
	}
	return &StateStore{
		sessions: make(map[string]*ViewState),
		perPage:  perPage,
	}
}

func (s *StateStore) session(sid string) *ViewState {
	state, ok := s.sessions[sid]
	if !ok {
		state = &ViewState{
			Filters:      models.DefaultFilterState(),
			CurrentPage:  1,
			ItemsPerPage: s.perPage,
		}
		s.sessions[sid] = state
	}
	return state
}

// Get returns the session's current view state, creating the default state
// for unseen sessions.
func (s *StateStore) Get(sid string) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.session(sid)
}

// SetFilters merges a partial filter update into the session's selection.
// Any filter change resets the current page to 1.
func (s *StateStore) SetFilters(sid string, update models.FilterUpdate) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.session(sid)
	if update.Duration != nil {
		state.Filters.Duration = *update.Duration
	}
	if update.Regions != nil {
		state.Filters.Regions = *update.Regions
	}
	if update.TravelStyle != nil {
		state.Filters.TravelStyle = *update.TravelStyle
	}
	if update.Interests != nil {
		state.Filters.Interests = *update.Interests
	}
	if update.PriceRange != nil {
		state.Filters.PriceRange = *update.PriceRange
	}
	if update.SortBy != nil {
		state.Filters.SortBy = *update.SortBy
	}
	state.CurrentPage = 1
	return *state
}

// ResetFilters restores the default selection and resets the page to 1.
func (s *StateStore) ResetFilters(sid string) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.session(sid)
	state.Filters = models.DefaultFilterState()
	state.CurrentPage = 1
	return *state
}

// SetPage moves the session to the given page. Values below 1 clamp to 1.
func (s *StateStore) SetPage(sid string, page int) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.session(sid)
	if page < 1 {
		page = 1
	}
	state.CurrentPage = page
	return *state
}

// collectionState is one named collection's load record.
type collectionState struct {
	status FetchStatus
	err    string
}

// CollectionGate enforces the load convention for named collections: exactly
// one in-flight fetch at a time, and re-fetching is a no-op once the status
// has left idle unless an explicit reset occurs. A failed fetch records an
// error string and leaves the collection empty; there is no retry.
type CollectionGate struct {
	mu          sync.Mutex
	collections map[string]*collectionState
}

func NewCollectionGate() *CollectionGate {
	return &CollectionGate{collections: make(map[string]*collectionState)}
}

func (g *CollectionGate) state(name string) *collectionState {
	st, ok := g.collections[name]
	if !ok {
		st = &collectionState{status: StatusIdle}
		g.collections[name] = st
	}
	return st
}

// Begin transitions idle → loading and reports whether the caller won the
// fetch. Any other current status leaves the gate unchanged.
func (g *CollectionGate) Begin(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := g.state(name)
	if st.status != StatusIdle {
		return false
	}
	st.status = StatusLoading
	return true
}

// Succeed marks the in-flight fetch as completed.
func (g *CollectionGate) Succeed(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := g.state(name)
	st.status = StatusSucceeded
	st.err = ""
}

// Fail marks the in-flight fetch as failed with the given error string.
func (g *CollectionGate) Fail(name string, errMsg string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := g.state(name)
	st.status = StatusFailed
	st.err = errMsg
}

// Status returns the collection's current status and error string.
func (g *CollectionGate) Status(name string) (FetchStatus, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := g.state(name)
	return st.status, st.err
}

// Reset returns the collection to idle so a later fetch may run.
func (g *CollectionGate) Reset(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.collections[name] = &collectionState{status: StatusIdle}
}
