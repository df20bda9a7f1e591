package search

import (
	"github.com/jotoba/jotoba-go/internal/query"
	"github.com/jotoba/jotoba-go/internal/sentence"
)

// WordProducers builds the fixed-order word-search pipeline: KanjiReading,
// Tag, Sequence, Regex, Romaji, Sentence-reader, Native, Foreign.
func WordProducers(idx *WordIndex, q *query.Query, reader *sentence.Reader, showEnglish bool) []Producer {
	return []Producer{
		&KanjiReadingProducer{Index: idx, Query: q},
		&TagProducer{Index: idx, Query: q},
		&SequenceProducer{Index: idx, Query: q},
		&RegexProducer{Index: idx, Query: q},
		&RomajiProducer{Index: idx, Query: q},
		&SentenceReaderProducer{Index: idx, Query: q, Reader: reader},
		&NativeProducer{Index: idx, Query: q},
		&ForeignProducer{Index: idx, Query: q, ShowEnglish: showEnglish},
	}
}
