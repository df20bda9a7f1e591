package search

// Executor runs a fixed-order producer pipeline into a bounded Sink.
type Executor struct {
	Producers  []Producer
	Sink       *Sink
	MaxTopDist float32 // 0 disables the max_top_dist post-filter
}

// Result is the final page plus bookkeeping the caller (HTTP handler,
// CLI) needs to render pagination.
type Result struct {
	Items       []Item
	TotalPushed int
}

// Execute runs every producer in declared order, short-circuiting a
// producer when ShouldRun(total_pushed) is false, then applies the
// max_top_dist post-filter if set.
func (e *Executor) Execute() Result {
	for _, p := range e.Producers {
		if !p.ShouldRun(e.Sink.TotalPushed()) {
			continue
		}
		p.Produce(e.Sink)
	}

	items := e.Sink.Items()
	if e.MaxTopDist > 0 {
		items = FilterMaxDist(items, e.Sink.Max(), e.MaxTopDist)
	}
	return Result{Items: items, TotalPushed: e.Sink.TotalPushed()}
}

// Page returns one page of a Result's items.
func (r Result) Page(offset, pageSize int) []Item {
	return PageFromPQueue(r.Items, offset, pageSize)
}

// Guess estimates the total result count without a full Produce pass, by
// calling EstimateTo on every producer that would run, capped at
// MaxEstimate.
func Guess(producers []Producer, alreadyFound int) int {
	counter := &Counter{}
	for _, p := range producers {
		if counter.Done() {
			break
		}
		if !p.ShouldRun(alreadyFound) {
			continue
		}
		p.EstimateTo(counter)
	}
	return counter.Count()
}
