package resource

import (
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/jotoba/jotoba-go/internal/apperr"
)

// blob is the on-disk shape of one resource file: a feature manifest
// followed by the entity list, so each index file begins with a tag
// naming what it carries. Encoded as length-prefixed CBOR.
type blob struct {
	Features []Feature
	Words    []wordRecord    `cbor:",omitempty"`
	Kanji    []kanjiRecord   `cbor:",omitempty"`
	Names    []nameRecord    `cbor:",omitempty"`
	Sentences []sentenceRecord `cbor:",omitempty"`
}

// The *Record types are the wire shape; conversions to the public Word/
// Kanji/Name/Sentence types happen on load so in-memory entities never
// carry an encoding-specific representation (e.g. tags list separate from
// the derived secondary indexes).
type wordRecord struct {
	Word             Word
	IrregularIchidan bool
}

type kanjiRecord struct {
	Kanji Kanji
}

type nameRecord struct {
	Name Name
}

type sentenceRecord struct {
	Sentence Sentence
	Tags     []string
}

// ResourceStorage aggregates every sub-storage behind one immutable
// handle, published once at process start.
type ResourceStorage struct {
	words     *WordStorage
	kanji     *KanjiStorage
	names     *NameStorage
	sentences *SentenceStorage
	features  FeatureSet
}

func empty() *ResourceStorage {
	return &ResourceStorage{
		words:     newWordStorage(),
		kanji:     newKanjiStorage(),
		names:     newNameStorage(),
		sentences: newSentenceStorage(),
		features:  make(FeatureSet),
	}
}

// Load decodes a length-prefixed CBOR resource blob from r and builds a
// ResourceStorage from it. It does not call Check -- callers decide when
// to enforce RequiredFeatures (e.g. only after all files are loaded).
func Load(r io.Reader) (*ResourceStorage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperr.IO("resource.Load", err)
	}
	var b blob
	if err := cbor.Unmarshal(data, &b); err != nil {
		return nil, apperr.IO("resource.Load", fmt.Errorf("decode: %w", err))
	}

	rs := empty()
	rs.features = NewFeatureSet(b.Features...)
	for i := range b.Words {
		w := b.Words[i].Word
		rs.words.insert(&w, b.Words[i].IrregularIchidan)
	}
	for i := range b.Kanji {
		k := b.Kanji[i].Kanji
		rs.kanji.insert(&k)
	}
	for i := range b.Names {
		n := b.Names[i].Name
		rs.names.insert(&n)
	}
	for i := range b.Sentences {
		s := b.Sentences[i].Sentence
		rs.sentences.insert(&s, b.Sentences[i].Tags)
	}
	return rs, nil
}

// LoadFile opens path and delegates to Load; used by cmd/jotoba at startup
// for each of words.bin/kanji.bin/names.bin/sentences.bin.
func LoadFile(path string) (*ResourceStorage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.IO("resource.LoadFile", err)
	}
	defer f.Close()
	return Load(f)
}

// Merge folds other's entities and features into rs, used to combine the
// four independently-loaded resource files into one ResourceStorage.
func (rs *ResourceStorage) Merge(other *ResourceStorage) {
	other.words.byID.All(func(id uint32, w *Word) bool {
		rs.words.insert(w, other.words.irregularIchi[id])
		return true
	})
	other.kanji.byLiteral.All(func(_ rune, k *Kanji) bool {
		rs.kanji.insert(k)
		return true
	})
	other.names.byID.All(func(_ uint32, n *Name) bool {
		rs.names.insert(n)
		return true
	})
	other.sentences.byID.All(func(id uint32, s *Sentence) bool {
		var tags []string
		for tag, ids := range other.sentences.byTag {
			for _, tid := range ids {
				if tid == id {
					tags = append(tags, tag)
				}
			}
		}
		rs.sentences.insert(s, tags)
		return true
	})
	for f := range other.features {
		rs.features[f] = true
	}
}

// Check verifies that every entry in RequiredFeatures is present.
// Returns a KindUnexpected apperr.Error naming the missing features;
// this is fatal at startup, never surfaced per-request.
func (rs *ResourceStorage) Check() error {
	missing := rs.features.Missing(RequiredFeatures)
	if len(missing) == 0 {
		return nil
	}
	return apperr.Unexpected("resource.Check", fmt.Errorf("missing required features: %v", missing))
}

func (rs *ResourceStorage) Words() WordRetrieve         { return rs.words.Retrieve() }
func (rs *ResourceStorage) Kanji() KanjiRetrieve         { return rs.kanji.Retrieve() }
func (rs *ResourceStorage) Names() NameRetrieve          { return rs.names.Retrieve() }
func (rs *ResourceStorage) Sentences() SentenceRetrieve  { return rs.sentences.Retrieve() }
func (rs *ResourceStorage) Features() FeatureSet         { return rs.features }
