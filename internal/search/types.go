// Package search implements the producers, relevance engines and search
// executor: a fixed-order pipeline of strategies that each push scored
// candidates into a bounded output builder.
package search

import "github.com/jotoba/jotoba-go/internal/query"

// Item is one scored search result, generic over the underlying entity
// (Word/Name/Sentence/Kanji) a producer resolved it to.
type Item struct {
	DocID     uint32
	Entity    any
	Relevance float32
}

// SortData is everything a relevance engine's score function sees: the
// query, the raw query string, the candidate item, and its language.
type SortData struct {
	Query    *query.Query
	Text     string
	Item     Item
	Language string
}

// RelevanceFunc scores one candidate.
type RelevanceFunc func(SortData) float32

// Producer is one search strategy: it decides whether to run given how
// many results already exist, produces into the shared Sink, estimates a
// result count into a Counter, and names itself for logging.
type Producer interface {
	Name() string
	ShouldRun(alreadyFound int) bool
	Produce(sink *Sink)
	EstimateTo(counter *Counter)
}
