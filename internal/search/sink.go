package search

import "container/heap"

// itemHeap is a min-heap over Item.Relevance, letting Sink keep only the
// top-K items pushed so far without retaining every candidate.
type itemHeap []Item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].Relevance < h[j].Relevance }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x any)         { *h = append(*h, x.(Item)) }
func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Sink is the bounded output builder: a top-K priority queue (K =
// limit+offset), a running max relevance across everything pushed, the
// full rel_list for post-filtering, and a total_pushed counter
// producers consult via ShouldRun.
type Sink struct {
	k           int
	heap        itemHeap
	max         float32
	relList     []float32
	totalPushed int
	filter      func(Item) bool
}

// NewSink builds a Sink bounded to k items (limit+offset), applying
// filter (if non-nil) to reject items before they count toward
// total_pushed.
func NewSink(k int, filter func(Item) bool) *Sink {
	return &Sink{k: k, filter: filter}
}

// Push offers one scored item to the sink. Rejected-by-filter items never
// affect max, rel_list, or total_pushed.
func (s *Sink) Push(item Item) {
	if s.filter != nil && !s.filter(item) {
		return
	}
	s.totalPushed++
	s.relList = append(s.relList, item.Relevance)
	if item.Relevance > s.max {
		s.max = item.Relevance
	}
	if s.k <= 0 {
		return
	}
	if s.heap.Len() < s.k {
		heap.Push(&s.heap, item)
		return
	}
	if s.heap.Len() > 0 && item.Relevance > s.heap[0].Relevance {
		heap.Pop(&s.heap)
		heap.Push(&s.heap, item)
	}
}

// TotalPushed is the count ShouldRun consults.
func (s *Sink) TotalPushed() int { return s.totalPushed }

// Max returns the running maximum relevance pushed so far.
func (s *Sink) Max() float32 { return s.max }

// RelList returns every relevance value pushed (post-filter), used for
// the max_top_dist and estimate post-processing steps.
func (s *Sink) RelList() []float32 { return append([]float32(nil), s.relList...) }

// Items drains the heap into a slice ordered by descending relevance.
func (s *Sink) Items() []Item {
	items := make([]Item, s.heap.Len())
	tmp := make(itemHeap, len(s.heap))
	copy(tmp, s.heap)
	for i := len(items) - 1; i >= 0; i-- {
		items[i] = heap.Pop(&tmp).(Item)
	}
	return items
}

// FilterMaxDist keeps only items within dist of the sink's current max
// relevance, the max_top_dist post-filter used by regex and
// kanji-reading producers to suppress far outliers.
func FilterMaxDist(items []Item, max float32, dist float32) []Item {
	out := items[:0:0]
	for _, it := range items {
		if max-it.Relevance <= dist {
			out = append(out, it)
		}
	}
	return out
}

// PageFromPQueue slices sorted (descending-relevance) items into one page
// of size pageSize starting at offset.
func PageFromPQueue(items []Item, offset, pageSize int) []Item {
	if offset >= len(items) {
		return nil
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// MaxEstimate is the cap imposed on guessed result counts.
const MaxEstimate = 100

// Counter is a FilteredMaxCounter: it accumulates an estimated result
// count, capped at MaxEstimate, for producers whose EstimateTo avoids a
// full Produce pass.
type Counter struct {
	count int
}

// Add increments the counter by n, never exceeding MaxEstimate.
func (c *Counter) Add(n int) {
	c.count += n
	if c.count > MaxEstimate {
		c.count = MaxEstimate
	}
}

// Count returns the current estimate.
func (c *Counter) Count() int { return c.count }

// Done reports whether the counter has saturated at MaxEstimate, letting
// callers short-circuit remaining EstimateTo calls.
func (c *Counter) Done() bool { return c.count >= MaxEstimate }
