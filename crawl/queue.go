// Package crawl — BFS queue with deduplication.
// Maintains a seen set so that each URL is fetched at most once.
package crawl

// Queue is a FIFO of URLs that ignores repeats.
type Queue struct {
	items []string
	seen  map[string]struct{}
	next  int // read position in items
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{seen: make(map[string]struct{})}
}

// Add enqueues a URL unless it was added before. It reports whether the URL was new.
func (q *Queue) Add(url string) bool {
	if _, ok := q.seen[url]; ok {
		return false
	}
	q.seen[url] = struct{}{}
	q.items = append(q.items, url)
	return true
}

// HasNext returns true if there are unprocessed URLs.
func (q *Queue) HasNext() bool {
	return q.next < len(q.items)
}

// Next returns the next unprocessed URL and advances the read position.
func (q *Queue) Next() string {
	url := q.items[q.next]
	q.next++
	return url
}

// Visited returns the total number of unique URLs seen.
func (q *Queue) Visited() int {
	return len(q.seen)
}

// All returns every URL added, in insertion order.
func (q *Queue) All() []string {
	return q.items
}
