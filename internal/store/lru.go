package store

import (
	"container/list"

	"github.com/shuishan-lab/clad-core/internal/models"
)

// lruCache is a bounded, order-aware course cache: hashmap for O(1) lookup,
// doubly-linked list for O(1) move-to-front recency tracking. It is not
// goroutine safe; CourseStore serialises access behind its mutex.
type lruCache struct {
	capacity int // <= 0 means unbounded
	order    *list.List
	items    map[string]*list.Element
}

type lruEntry struct {
	key    string
	course *models.Course
}

func newLRUCache(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get returns the cached course and refreshes its recency.
func (c *lruCache) Get(key string) (*models.Course, bool) {
	element, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(element)
	return element.Value.(*lruEntry).course, true
}

// Put inserts or replaces an entry as most recently used. When at capacity,
// the least-recently-used entries are evicted before the insert completes, so
// the size bound holds at every observable point. Evicted keys are returned.
func (c *lruCache) Put(key string, course *models.Course) []string {
	if element, ok := c.items[key]; ok {
		element.Value.(*lruEntry).course = course
		c.order.MoveToFront(element)
		return nil
	}

	var evicted []string
	if c.capacity > 0 {
		for c.order.Len() >= c.capacity {
			oldest := c.order.Back()
			if oldest == nil {
				break
			}
			entry := oldest.Value.(*lruEntry)
			c.order.Remove(oldest)
			delete(c.items, entry.key)
			evicted = append(evicted, entry.key)
		}
	}

	c.items[key] = c.order.PushFront(&lruEntry{key: key, course: course})
	return evicted
}

// Len reports the number of cached courses.
func (c *lruCache) Len() int {
	return c.order.Len()
}

// Values returns every cached course, least recently used first, matching
// insertion order when nothing has been touched since.
func (c *lruCache) Values() []*models.Course {
	result := make([]*models.Course, 0, c.order.Len())
	for element := c.order.Back(); element != nil; element = element.Prev() {
		result = append(result, element.Value.(*lruEntry).course)
	}
	return result
}

// Purge drops every entry.
func (c *lruCache) Purge() {
	c.order.Init()
	c.items = make(map[string]*list.Element)
}
