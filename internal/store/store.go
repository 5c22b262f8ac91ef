package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"medharvest/internal/model"
)

type record interface {
	DedupKey() model.DedupKey
}

// Collection is a JSON-array file holding one kind of record. Every save
// reloads the file, checks the new record against every existing dedup key
// and rewrites the whole array. Single writer only; two processes appending
// to the same file will clobber each other.
type Collection[T record] struct {
	path string
	log  *slog.Logger
}

func New[T record](path string, log *slog.Logger) *Collection[T] {
	return &Collection[T]{path: path, log: log}
}

// Load reads the full collection. A missing file is an empty collection.
// An unreadable or corrupt file is logged and also treated as empty, which
// drops prior history for the rest of the run.
func (c *Collection[T]) Load() []T {
	b, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.log.Error("failed to read store file", "path", c.path, "error", err)
		}
		return nil
	}
	var recs []T
	if err := json.Unmarshal(b, &recs); err != nil {
		c.log.Error("store file is corrupt, treating as empty", "path", c.path, "error", err)
		return nil
	}
	return recs
}

// Save appends rec unless a record with the same dedup key already exists.
// It reports whether the record was newly added.
func (c *Collection[T]) Save(rec T) (bool, error) {
	recs := c.Load()

	key := rec.DedupKey()
	for _, existing := range recs {
		if existing.DedupKey() == key {
			return false, nil
		}
	}

	recs = append(recs, rec)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return false, fmt.Errorf("encode %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", c.path, err)
	}
	return true, nil
}

func (c *Collection[T]) Count() int {
	return len(c.Load())
}
