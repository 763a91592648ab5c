package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shuishan-lab/clad-core/internal/models"
)

func course(id string) *models.Course {
	return &models.Course{CourseID: id, Resources: map[string]models.Resource{}}
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	cache := newLRUCache(2)

	require.Empty(t, cache.Put("A", course("A")))
	require.Empty(t, cache.Put("B", course("B")))

	// Touching A makes B the eviction candidate.
	_, ok := cache.Get("A")
	require.True(t, ok)

	evicted := cache.Put("C", course("C"))
	require.Equal(t, []string{"B"}, evicted)
	require.Equal(t, 2, cache.Len())

	_, ok = cache.Get("A")
	require.True(t, ok)
	_, ok = cache.Get("B")
	require.False(t, ok)
	_, ok = cache.Get("C")
	require.True(t, ok)
}

func TestLRUCapacityNeverExceeded(t *testing.T) {
	cache := newLRUCache(3)
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		cache.Put(id, course(id))
		require.LessOrEqual(t, cache.Len(), 3)
	}
}

func TestLRUReplaceExistingKeyRefreshesRecency(t *testing.T) {
	cache := newLRUCache(2)
	cache.Put("A", course("A"))
	cache.Put("B", course("B"))

	replacement := course("A")
	require.Empty(t, cache.Put("A", replacement), "replacing a resident key evicts nothing")

	evicted := cache.Put("C", course("C"))
	require.Equal(t, []string{"B"}, evicted, "A was refreshed by the replacement")

	got, ok := cache.Get("A")
	require.True(t, ok)
	require.Same(t, replacement, got)
}

func TestLRUUnboundedWhenCapacityUnset(t *testing.T) {
	cache := newLRUCache(0)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.Empty(t, cache.Put(id, course(id)))
	}
	require.Equal(t, 5, cache.Len())
}

func TestLRUValuesOldestFirst(t *testing.T) {
	cache := newLRUCache(0)
	cache.Put("a", course("a"))
	cache.Put("b", course("b"))
	cache.Put("c", course("c"))

	var ids []string
	for _, c := range cache.Values() {
		ids = append(ids, c.CourseID)
	}
	require.Equal(t, []string{"a", "b", "c"}, ids)

	cache.Purge()
	require.Equal(t, 0, cache.Len())
}
