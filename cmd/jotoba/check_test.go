package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/jotoba/jotoba-go/internal/config"
	"github.com/jotoba/jotoba-go/internal/resource"
)

// testBlob mirrors the fields of resource's unexported wire shape that
// these tests fill (the IrregularIchidan and Tags record fields are left
// out), so cbor.Marshal here and resource.Load's cbor.Unmarshal agree on
// keys.
type testBlob struct {
	Features  []resource.Feature
	Words     []testWordRecord `cbor:",omitempty"`
	Kanji     []testKanjiRecord `cbor:",omitempty"`
	Names     []testNameRecord `cbor:",omitempty"`
	Sentences []testSentenceRecord `cbor:",omitempty"`
}

type testWordRecord struct{ Word resource.Word }
type testKanjiRecord struct{ Kanji resource.Kanji }
type testNameRecord struct{ Name resource.Name }
type testSentenceRecord struct{ Sentence resource.Sentence }

func writeBlob(t *testing.T, path string, b testBlob) {
	t.Helper()
	data, err := cbor.Marshal(b)
	if err != nil {
		t.Fatalf("cbor.Marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeFullResourceStore(t *testing.T, dir string) config.Config {
	t.Helper()
	jlpt := 3
	writeBlob(t, filepath.Join(dir, "words.bin"), testBlob{
		Features: []resource.Feature{resource.FeatureWords},
		Words: []testWordRecord{{Word: resource.Word{
			Sequence: 1,
			Readings: resource.Readings{Kana: "おんがく"},
			JLPT:     &jlpt,
			Senses: []resource.Sense{{
				ID: 1, Language: "eng",
				Glosses: []resource.Gloss{{Text: "music"}},
			}},
		}}},
	})
	writeBlob(t, filepath.Join(dir, "kanji.bin"), testBlob{
		Features: []resource.Feature{resource.FeatureKanji},
		Kanji:    []testKanjiRecord{{Kanji: resource.Kanji{Literal: '音', StrokeCount: 9}}},
	})
	writeBlob(t, filepath.Join(dir, "names.bin"), testBlob{
		Features: []resource.Feature{resource.FeatureNames},
		Names:    []testNameRecord{{Name: resource.Name{Sequence: 1, Kana: "たろう", Transcription: "Tarou"}}},
	})
	writeBlob(t, filepath.Join(dir, "sentences.bin"), testBlob{
		Features: []resource.Feature{resource.FeatureSentences},
		Sentences: []testSentenceRecord{{Sentence: resource.Sentence{
			ID: 1, Japanese: "音楽が好きです。",
			Translations: []resource.Translation{{Text: "I like music.", Language: "eng"}},
		}}},
	})

	cfg := config.Default()
	cfg.Server.StorageData = dir
	return cfg
}

func TestLoadResourcesMergesAllFiles(t *testing.T) {
	cfg := writeFullResourceStore(t, t.TempDir())

	rs, err := loadResources(cfg)
	if err != nil {
		t.Fatalf("loadResources: %v", err)
	}
	if err := rs.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if rs.Words().Len() != 1 || rs.Kanji().Len() != 1 || rs.Names().Len() != 1 || rs.Sentences().Len() != 1 {
		t.Fatalf("unexpected entity counts: words=%d kanji=%d names=%d sentences=%d",
			rs.Words().Len(), rs.Kanji().Len(), rs.Names().Len(), rs.Sentences().Len())
	}
}

func TestCheckCommandSucceeds(t *testing.T) {
	cfg := writeFullResourceStore(t, t.TempDir())
	t.Setenv("JOTOBA_CONFIG", writeConfigFile(t, cfg))

	var out bytes.Buffer
	cmd := newCheckCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("check command failed: %v\noutput: %s", err, out.String())
	}
}

func TestCheckCommandMissingFeature(t *testing.T) {
	dir := t.TempDir()
	// Only write words.bin: kanji/names/sentences are required and absent.
	writeBlob(t, filepath.Join(dir, "words.bin"), testBlob{
		Features: []resource.Feature{resource.FeatureWords},
	})
	cfg := config.Default()
	cfg.Server.StorageData = dir
	t.Setenv("JOTOBA_CONFIG", writeConfigFile(t, cfg))

	cmd := newCheckCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.RunE(cmd, nil); err == nil {
		t.Fatal("check command should fail when kanji/names/sentences.bin are missing")
	}
}

// writeConfigFile renders cfg to a temp TOML file and returns its path, so
// config.Load() (which only ever reads from JOTOBA_CONFIG or the default
// path) sees the test's StorageData directory.
func writeConfigFile(t *testing.T, cfg config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[server]\nstorage_data = \"" + cfg.Server.StorageData + "\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
