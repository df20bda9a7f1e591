package main

import (
	"path/filepath"

	"github.com/jotoba/jotoba-go/internal/config"
	"github.com/jotoba/jotoba-go/internal/resource"
)

// resourceFiles returns the four resource files the store is split across,
// rooted under cfg.Server.StorageData.
func resourceFiles(cfg config.Config) []string {
	dir := cfg.Server.StorageData
	return []string{
		filepath.Join(dir, "words.bin"),
		filepath.Join(dir, "kanji.bin"),
		filepath.Join(dir, "names.bin"),
		filepath.Join(dir, "sentences.bin"),
	}
}

// loadResources loads and merges every resource file into one
// ResourceStorage.
func loadResources(cfg config.Config) (*resource.ResourceStorage, error) {
	var merged *resource.ResourceStorage
	for _, path := range resourceFiles(cfg) {
		rs, err := resource.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = rs
			continue
		}
		merged.Merge(rs)
	}
	return merged, nil
}
