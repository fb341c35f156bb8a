package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const audioSuffix = ".mp3"

// AudioCatalog holds the names of the playable files found at startup.
// The list is never mutated after construction, so handlers can read it
// without coordination.
type AudioCatalog struct {
	path string
	list []string
}

func NewAudioCatalog(path string) (*AudioCatalog, error) {
	list, err := ScanAudioFiles(path)
	if err != nil {
		return nil, err
	}
	return &AudioCatalog{path: path, list: list}, nil
}

// ScanAudioFiles lists the audio files under dir: base names only,
// .mp3 suffix, ascending lexicographic order. An empty directory is
// fine; a missing or unreadable one is not.
func ScanAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read audio directory %s: %w", dir, err)
	}
	list := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), audioSuffix) {
			list = append(list, entry.Name())
		}
	}
	sort.Strings(list)
	return list, nil
}

func (c *AudioCatalog) Path() string {
	return c.path
}

func (c *AudioCatalog) Files() []string {
	return c.list
}
