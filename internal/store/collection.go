package store

// collection is one insertion-ordered, uniquely-keyed record list. It is the
// single shared implementation behind all six entity collections; the Store
// wraps it with per-entity defaults, validation and persistence.
type collection[T any] struct {
	items []T
	getID func(*T) int64
	setID func(*T, int64)
}

func newCollection[T any](getID func(*T) int64, setID func(*T, int64)) collection[T] {
	return collection[T]{getID: getID, setID: setID}
}

func (c *collection[T]) insert(rec T, id int64) T {
	c.setID(&rec, id)
	c.items = append(c.items, rec)
	return rec
}

func (c *collection[T]) find(id int64) (T, bool) {
	for i := range c.items {
		if c.getID(&c.items[i]) == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// update applies the mutation in place. Returns false (collection untouched)
// when the id is absent.
func (c *collection[T]) update(id int64, apply func(*T)) bool {
	for i := range c.items {
		if c.getID(&c.items[i]) == id {
			apply(&c.items[i])
			return true
		}
	}
	return false
}

func (c *collection[T]) remove(id int64) bool {
	for i := range c.items {
		if c.getID(&c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// all returns a copy; callers never see the backing slice.
func (c *collection[T]) all() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) replace(items []T) {
	c.items = make([]T, len(items))
	copy(c.items, items)
}

func (c *collection[T]) maxID() int64 {
	var max int64
	for i := range c.items {
		if id := c.getID(&c.items[i]); id > max {
			max = id
		}
	}
	return max
}
