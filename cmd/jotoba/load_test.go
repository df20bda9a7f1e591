package main

import (
	"path/filepath"
	"testing"

	"github.com/jotoba/jotoba-go/internal/config"
)

func TestResourceFiles(t *testing.T) {
	cfg := config.Default()
	cfg.Server.StorageData = "/tmp/storage"

	got := resourceFiles(cfg)
	want := []string{
		filepath.Join("/tmp/storage", "words.bin"),
		filepath.Join("/tmp/storage", "kanji.bin"),
		filepath.Join("/tmp/storage", "names.bin"),
		filepath.Join("/tmp/storage", "sentences.bin"),
	}
	if len(got) != len(want) {
		t.Fatalf("resourceFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("resourceFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadResourcesMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Server.StorageData = t.TempDir()

	if _, err := loadResources(cfg); err == nil {
		t.Fatal("loadResources() with no resource files present should fail")
	}
}
