package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lstours/models"
)

func TestStateStore_UnseenSessionGetsDefaults(t *testing.T) {
	store := NewStateStore(6)

	state := store.Get("s1")
	assert.Equal(t, models.DefaultFilterState(), state.Filters)
	assert.Equal(t, 1, state.CurrentPage)
	assert.Equal(t, 6, state.ItemsPerPage)
}

func TestStateStore_InvalidPerPageFallsBack(t *testing.T) {
	store := NewStateStore(0)
	assert.Equal(t, 6, store.Get("s1").ItemsPerPage)
}

func TestStateStore_SetFiltersMergesPartially(t *testing.T) {
	store := NewStateStore(6)
	regions := []string{"hill-country"}
	sortBy := models.SortPriceLow

	state := store.SetFilters("s1", models.FilterUpdate{Regions: &regions})
	assert.Equal(t, regions, state.Filters.Regions)
	assert.Equal(t, models.SortRecommended, state.Filters.SortBy)

	// A second partial update leaves the earlier dimension alone.
	state = store.SetFilters("s1", models.FilterUpdate{SortBy: &sortBy})
	assert.Equal(t, regions, state.Filters.Regions)
	assert.Equal(t, models.SortPriceLow, state.Filters.SortBy)
}

func TestStateStore_FilterChangeResetsPage(t *testing.T) {
	store := NewStateStore(6)
	store.SetPage("s1", 4)
	require.Equal(t, 4, store.Get("s1").CurrentPage)

	duration := []string{models.Bucket1To3}
	state := store.SetFilters("s1", models.FilterUpdate{Duration: &duration})
	assert.Equal(t, 1, state.CurrentPage)

	store.SetPage("s1", 3)
	state = store.ResetFilters("s1")
	assert.Equal(t, 1, state.CurrentPage)
	assert.Equal(t, models.DefaultFilterState(), state.Filters)
}

func TestStateStore_SetPageClamps(t *testing.T) {
	store := NewStateStore(6)
	assert.Equal(t, 1, store.SetPage("s1", -2).CurrentPage)
	assert.Equal(t, 7, store.SetPage("s1", 7).CurrentPage)
}

func TestStateStore_SessionsAreIndependent(t *testing.T) {
	store := NewStateStore(6)
	interests := []string{"wildlife"}
	store.SetFilters("s1", models.FilterUpdate{Interests: &interests})

	assert.Empty(t, store.Get("s2").Filters.Interests)
}

func TestCollectionGate_BeginWinsOnce(t *testing.T) {
	gate := NewCollectionGate()

	require.True(t, gate.Begin("packages"))
	assert.False(t, gate.Begin("packages"), "a second caller must not start a fetch while one is in flight")

	status, errMsg := gate.Status("packages")
	assert.Equal(t, StatusLoading, status)
	assert.Empty(t, errMsg)
}

func TestCollectionGate_SucceededBlocksRefetch(t *testing.T) {
	gate := NewCollectionGate()
	gate.Begin("packages")
	gate.Succeed("packages")

	status, _ := gate.Status("packages")
	assert.Equal(t, StatusSucceeded, status)
	assert.False(t, gate.Begin("packages"))
}

func TestCollectionGate_FailureIsTerminal(t *testing.T) {
	gate := NewCollectionGate()
	gate.Begin("packages")
	gate.Fail("packages", "upstream unavailable")

	status, errMsg := gate.Status("packages")
	assert.Equal(t, StatusFailed, status)
	assert.Equal(t, "upstream unavailable", errMsg)

	// No retry without an explicit reset.
	assert.False(t, gate.Begin("packages"))

	gate.Reset("packages")
	status, errMsg = gate.Status("packages")
	assert.Equal(t, StatusIdle, status)
	assert.Empty(t, errMsg)
	assert.True(t, gate.Begin("packages"))
}

func TestCollectionGate_CollectionsAreIndependent(t *testing.T) {
	gate := NewCollectionGate()
	gate.Begin("packages")

	status, _ := gate.Status("destinations")
	assert.Equal(t, StatusIdle, status)
	assert.True(t, gate.Begin("destinations"))
}
