package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	ID    string
	Group string
	Value float64
}

func newTestStore() *Store[entity] {
	return New(func(e entity) string { return e.ID })
}

func TestPutAndGet(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Put(entity{ID: "a", Group: "g1"}))

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "g1", got.Group)
}

func TestPutDuplicate(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Put(entity{ID: "a"}))
	err := s.Put(entity{ID: "a"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestPutEmptyID(t *testing.T) {
	s := newTestStore()
	assert.ErrorIs(t, s.Put(entity{}), ErrEmptyID)
}

func TestGetMissing(t *testing.T) {
	s := newTestStore()

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Put(entity{ID: "a", Group: "old"}))
	require.NoError(t, s.Update(entity{ID: "a", Group: "new"}))

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Group)
}

func TestUpdateMissing(t *testing.T) {
	s := newTestStore()
	assert.ErrorIs(t, s.Update(entity{ID: "ghost"}), ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Put(entity{ID: "a"}))
	require.NoError(t, s.Delete("a"))

	assert.False(t, s.Exists("a"))
	assert.ErrorIs(t, s.Delete("a"), ErrNotFound)
}

func TestAllAndLen(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Put(entity{ID: fmt.Sprintf("e%d", i)}))
	}

	assert.Equal(t, 5, s.Len())
	assert.Len(t, s.All(), 5)
}

func TestFilter(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Put(entity{ID: "a", Group: "x"}))
	require.NoError(t, s.Put(entity{ID: "b", Group: "y"}))
	require.NoError(t, s.Put(entity{ID: "c", Group: "x"}))

	xs := Filter(s, func(e entity) bool { return e.Group == "x" })
	assert.Len(t, xs, 2)
}

func TestCountBy(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Put(entity{ID: "a", Group: "x"}))
	require.NoError(t, s.Put(entity{ID: "b", Group: "y"}))
	require.NoError(t, s.Put(entity{ID: "c", Group: "x"}))

	counts := CountBy(s, func(e entity) string { return e.Group })
	assert.Equal(t, map[string]int{"x": 2, "y": 1}, counts)
}

func TestAverageBy(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Put(entity{ID: "a", Group: "x", Value: 100}))
	require.NoError(t, s.Put(entity{ID: "b", Group: "x", Value: 300}))
	require.NoError(t, s.Put(entity{ID: "c", Group: "y", Value: 50}))

	avgs := AverageBy(s,
		func(e entity) string { return e.Group },
		func(e entity) float64 { return e.Value },
	)
	assert.InDelta(t, 200.0, avgs["x"], 0.001)
	assert.InDelta(t, 50.0, avgs["y"], 0.001)
}

func TestGroupBy(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Put(entity{ID: "a", Group: "x"}))
	require.NoError(t, s.Put(entity{ID: "b", Group: "y"}))
	require.NoError(t, s.Put(entity{ID: "c", Group: "x"}))

	groups := GroupBy(s, func(e entity) string { return e.Group })
	assert.Len(t, groups["x"], 2)
	assert.Len(t, groups["y"], 1)
}

func TestConcurrentAccess(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("e%d", n)
			_ = s.Put(entity{ID: id})
			_, _ = s.Get(id)
			_ = s.All()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
