// Package cache keeps one JSON file per query analysis so that repeated
// searches skip the language model.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/where"
)

const TTL = 7 * 24 * time.Hour

// GenerateKey hashes the normalised query together with the model name.
func GenerateKey(query, model string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	hash := sha256.Sum256([]byte(normalized + "\x00" + model))
	return hex.EncodeToString(hash[:])
}

// Read decodes the entry stored under key into target.
// It reports false for missing, expired or unreadable entries.
func Read(key string, target any) bool {
	path := filepath.Join(where.Analyses(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write stores data under key, replacing the file only once fully written.
func Write(key string, data any) error {
	path := filepath.Join(where.Analyses(), key)
	tmpPath := path + ".tmp"

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err := filesystem.API().WriteFile(tmpPath, encoded, 0o644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmpPath, path)
}

// CollectGarbage removes expired entries and returns how many were removed.
func CollectGarbage() int {
	var removed int

	_ = filesystem.API().Walk(where.Analyses(), func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > TTL {
			if filesystem.API().Remove(path) == nil {
				removed++
			}
		}
		return nil
	})

	if removed > 0 {
		log.Infof("removed %d expired analyses", removed)
	}

	return removed
}
