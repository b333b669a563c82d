// Package crawl — FIFO queue with deduplication.
// Maintains a seen set so each note is processed once.
package crawl

// Queue is a FIFO queue of note paths with deduplication.
type Queue struct {
	items []string
	seen  map[string]bool
	idx   int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		seen: make(map[string]bool),
	}
}

// Add enqueues a path if it hasn't been seen before. It reports whether the
// path was new.
func (q *Queue) Add(path string) bool {
	if q.seen[path] {
		return false
	}
	q.seen[path] = true
	q.items = append(q.items, path)
	return true
}

// HasNext returns true if there are unprocessed paths.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed path and advances the pointer.
func (q *Queue) Next() string {
	p := q.items[q.idx]
	q.idx++
	return p
}

// Seen returns the total number of unique paths added.
func (q *Queue) Seen() int {
	return len(q.seen)
}

// All returns all queued paths in insertion order.
func (q *Queue) All() []string {
	return q.items
}
