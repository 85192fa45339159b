package services_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"
)

// memoryCartRepo counts persistence calls so tests can assert the store
// writes after every mutation.
type memoryCartRepo struct {
	mu      sync.Mutex
	records map[string]models.CartState
	saves   int
	saveErr error
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{records: map[string]models.CartState{}}
}

func (r *memoryCartRepo) Load(owner string) (models.CartState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.records[owner]
	if !ok {
		return models.EmptyCart(), false
	}
	return state.Clone(), true
}

func (r *memoryCartRepo) Save(owner string, state models.CartState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[owner] = state.Clone()
	return nil
}

func (r *memoryCartRepo) Delete(owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, owner)
	return nil
}

func product(id string, price int64) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: decimal.NewFromInt(price)}
}

func TestAddItemScenario(t *testing.T) {
	t.Parallel()

	store := services.NewCartStore(newMemoryCartRepo())

	state := store.AddItem("u1", product("p1", 10), 2)
	require.Len(t, state.CartItems, 1)
	assert.Equal(t, 2, state.CartItems[0].Quantity)
	assert.Equal(t, "20", state.Total.String())

	state = store.AddItem("u1", product("p1", 10), 3)
	require.Len(t, state.CartItems, 1, "same product must merge, not duplicate")
	assert.Equal(t, 5, state.CartItems[0].Quantity)
	assert.Equal(t, "50", state.Total.String())

	state = store.DecrementQuantity("u1", "p1")
	assert.Equal(t, 4, state.CartItems[0].Quantity)
	assert.Equal(t, "40", state.Total.String())

	state = store.RemoveItem("u1", "p1")
	assert.Empty(t, state.CartItems)
	assert.True(t, state.Total.IsZero())
}

func TestAtMostOneLineItemPerProduct(t *testing.T) {
	t.Parallel()

	store := services.NewCartStore(newMemoryCartRepo())

	store.AddItem("u1", product("p1", 5), 1)
	store.AddItem("u1", product("p2", 7), 1)
	store.AddItem("u1", product("p1", 5), 4)
	store.IncrementQuantity("u1", "p2")
	state := store.AddItem("u1", product("p2", 7), 2)

	require.Len(t, state.CartItems, 2)
	seen := map[string]bool{}
	for _, item := range state.CartItems {
		assert.False(t, seen[item.Product.ID], "duplicate line item for %s", item.Product.ID)
		seen[item.Product.ID] = true
	}
	assert.Equal(t, state.ComputeTotal().String(), state.Total.String())
}

func TestTotalAlwaysMatchesRecompute(t *testing.T) {
	t.Parallel()

	store := services.NewCartStore(newMemoryCartRepo())

	ops := []func() models.CartState{
		func() models.CartState { return store.AddItem("u1", product("a", 3), 2) },
		func() models.CartState { return store.AddItem("u1", product("b", 11), 1) },
		func() models.CartState { return store.IncrementQuantity("u1", "a") },
		func() models.CartState { return store.DecrementQuantity("u1", "b") },
		func() models.CartState { return store.RemoveItem("u1", "a") },
		func() models.CartState { return store.AddItem("u1", product("c", 2), 5) },
	}

	for i, op := range ops {
		state := op()
		assert.True(t, state.Total.Equal(state.ComputeTotal()), "total drifted after op %d", i)
	}
}

func TestDecrementNeverGoesBelowOne(t *testing.T) {
	t.Parallel()

	store := services.NewCartStore(newMemoryCartRepo())
	store.AddItem("u1", product("p1", 10), 1)

	store.DecrementQuantity("u1", "p1")
	state := store.DecrementQuantity("u1", "p1")

	require.Len(t, state.CartItems, 1, "decrement must never remove the item")
	assert.Equal(t, 1, state.CartItems[0].Quantity)
	assert.Equal(t, "10", state.Total.String())
}

func TestAdjustQuantityMissingProductIsNoOp(t *testing.T) {
	t.Parallel()

	store := services.NewCartStore(newMemoryCartRepo())
	store.AddItem("u1", product("p1", 10), 2)

	state := store.IncrementQuantity("u1", "ghost")
	assert.Equal(t, "20", state.Total.String())

	state = store.DecrementQuantity("u1", "ghost")
	assert.Equal(t, "20", state.Total.String())

	state = store.RemoveItem("u1", "ghost")
	require.Len(t, state.CartItems, 1)
	assert.Equal(t, "20", state.Total.String())
}

func TestPersistsAfterEveryMutation(t *testing.T) {
	t.Parallel()

	repo := newMemoryCartRepo()
	store := services.NewCartStore(repo)

	store.AddItem("u1", product("p1", 10), 1)
	store.IncrementQuantity("u1", "p1")
	store.DecrementQuantity("u1", "p1")
	store.RemoveItem("u1", "p1")

	assert.Equal(t, 4, repo.saves)
}

func TestPersistenceFailureDoesNotBreakCart(t *testing.T) {
	t.Parallel()

	repo := newMemoryCartRepo()
	repo.saveErr = errors.New("disk full")
	store := services.NewCartStore(repo)

	state := store.AddItem("u1", product("p1", 10), 2)
	assert.Equal(t, "20", state.Total.String())

	state = store.Snapshot("u1")
	require.Len(t, state.CartItems, 1)
}

func TestStateSurvivesReload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo := repositories.NewFileCartRepository(dir)

	store := services.NewCartStore(repo)
	store.AddItem("u1", product("p1", 10), 3)

	reloaded := services.NewCartStore(repositories.NewFileCartRepository(dir))
	state := reloaded.Snapshot("u1")
	require.Len(t, state.CartItems, 1)
	assert.Equal(t, 3, state.CartItems[0].Quantity)
	assert.Equal(t, "30", state.Total.String())
}

func TestClearEmptiesCartAndPersistedRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := services.NewCartStore(repositories.NewFileCartRepository(dir))

	store.AddItem("u1", product("p1", 10), 2)
	store.Clear("u1")

	state := store.Snapshot("u1")
	assert.Empty(t, state.CartItems)
	assert.True(t, state.Total.IsZero())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "persisted record must be removed")

	reloaded := services.NewCartStore(repositories.NewFileCartRepository(dir))
	state = reloaded.Snapshot("u1")
	assert.Empty(t, state.CartItems)
	assert.True(t, state.Total.IsZero())
}

func TestCorruptRecordDegradesToEmptyCart(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo := repositories.NewFileCartRepository(dir)
	store := services.NewCartStore(repo)
	store.AddItem("u1", product("p1", 10), 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{not json"), 0644))

	reloaded := services.NewCartStore(repositories.NewFileCartRepository(dir))
	state := reloaded.Snapshot("u1")
	assert.Empty(t, state.CartItems)
	assert.True(t, state.Total.IsZero())
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	t.Parallel()

	store := services.NewCartStore(newMemoryCartRepo())
	store.AddItem("u1", product("p1", 10), 2)

	snapshot := store.Snapshot("u1")
	snapshot.CartItems[0].Quantity = 99

	state := store.Snapshot("u1")
	assert.Equal(t, 2, state.CartItems[0].Quantity)
}
