package jsondb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// Store is a collection-oriented record store
type Store interface {
	// Get returns the whole collection in insertion order
	Get(ctx context.Context, collection string) ([]Record, error)
	// Insert assigns id and createdAt when absent and appends the record
	Insert(ctx context.Context, collection string, item Record) (Record, error)
	// Update merges fields into the record with id. It returns nil, nil when no record has that id.
	Update(ctx context.Context, collection, id string, fields Record) (Record, error)
	// Delete removes every matching record and returns how many were removed
	Delete(ctx context.Context, collection string, matcher Matcher) (int, error)
	// FindOne returns the first match or nil
	FindOne(ctx context.Context, collection string, matcher Matcher) (Record, error)
	// Find returns every match; an empty matcher selects the whole collection
	Find(ctx context.Context, collection string, matcher Matcher) ([]Record, error)
	// Ping checks that the backend is usable
	Ping(ctx context.Context) error
}

// document is the on-disk shape: collection name to records
type document map[string][]Record

func emptyDocument() document {
	doc := make(document, len(Collections))
	for _, c := range Collections {
		doc[c] = []Record{}
	}
	return doc
}

// FileStore keeps every collection in one JSON file. Each call re-reads the
// file, so a sequence of calls observes its own writes. Mutations inside one
// process are serialized; concurrent writers in other processes can still
// lose updates.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates the parent directory of path if needed
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// read loads the document for queries. Any failure yields an empty document.
func (s *FileStore) read() document {
	doc, err := s.load()
	if err != nil {
		logger.Warn("Failed to read record store, using empty document",
			logger.String("path", s.path),
			logger.Err(err))
		return emptyDocument()
	}
	return doc
}

// load reads the document. Missing, empty or unparsable files yield an empty
// document; other I/O errors are returned so a mutation never overwrites data
// it could not read.
func (s *FileStore) load() (document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyDocument(), nil
		}
		return nil, fmt.Errorf("failed to read record store: %w", err)
	}
	if len(raw) == 0 {
		return emptyDocument(), nil
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		logger.Warn("Record store file is corrupt, using empty document",
			logger.String("path", s.path),
			logger.Err(err))
		return emptyDocument(), nil
	}
	for _, c := range Collections {
		if doc[c] == nil {
			doc[c] = []Record{}
		}
	}
	return doc, nil
}

// write replaces the file atomically: temp file in the same directory, fsync, rename
func (s *FileStore) write(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace record store: %w", err)
	}
	return nil
}

// mutate runs fn on a freshly read document under the write lock and persists the result
func (s *FileStore) mutate(ctx context.Context, fn func(doc document) (bool, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	changed, err := fn(doc)
	if err != nil || !changed {
		return err
	}
	return s.write(doc)
}

func (s *FileStore) Get(ctx context.Context, collection string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := s.read()[collection]
	if records == nil {
		return []Record{}, nil
	}
	return records, nil
}

func (s *FileStore) Insert(ctx context.Context, collection string, item Record) (Record, error) {
	record, err := prepareInsert(item)
	if err != nil {
		return nil, err
	}

	err = s.mutate(ctx, func(doc document) (bool, error) {
		doc[collection] = append(doc[collection], record)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return record, nil
}

func (s *FileStore) Update(ctx context.Context, collection, id string, fields Record) (Record, error) {
	patch, err := normalizeRecord(fields)
	if err != nil {
		return nil, err
	}

	var updated Record
	err = s.mutate(ctx, func(doc document) (bool, error) {
		for i, r := range doc[collection] {
			if r.ID() != id {
				continue
			}
			updated = merge(r, patch)
			doc[collection][i] = updated
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	return updated, nil
}

func (s *FileStore) Delete(ctx context.Context, collection string, matcher Matcher) (int, error) {
	m, err := normalizeMatcher(matcher)
	if err != nil {
		return 0, err
	}

	removed := 0
	err = s.mutate(ctx, func(doc document) (bool, error) {
		kept := make([]Record, 0, len(doc[collection]))
		for _, r := range doc[collection] {
			if m.matches(r) {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		doc[collection] = kept
		return true, nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", collection, err)
	}
	return removed, nil
}

func (s *FileStore) FindOne(ctx context.Context, collection string, matcher Matcher) (Record, error) {
	m, err := normalizeMatcher(matcher)
	if err != nil {
		return nil, err
	}
	records, err := s.Get(ctx, collection)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if m.matches(r) {
			return r, nil
		}
	}
	return nil, nil
}

func (s *FileStore) Find(ctx context.Context, collection string, matcher Matcher) ([]Record, error) {
	m, err := normalizeMatcher(matcher)
	if err != nil {
		return nil, err
	}
	records, err := s.Get(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if m.matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Ping checks that the store directory is writable
func (s *FileStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ping-*")
	if err != nil {
		return fmt.Errorf("record store directory is not writable: %w", err)
	}
	name := tmp.Name()
	tmp.Close()
	return os.Remove(name)
}

// prepareInsert normalizes item and fills id and createdAt when absent
func prepareInsert(item Record) (Record, error) {
	record, err := normalizeRecord(item)
	if err != nil {
		return nil, err
	}
	if id, ok := record["id"]; !ok || id == nil || id == "" {
		record["id"] = uuid.NewString()
	}
	if _, ok := record["createdAt"]; !ok {
		record["createdAt"] = models.FormatTime(models.Now())
	}
	return record, nil
}

// merge returns a shallow merge of patch over base that keeps the original id
func merge(base, patch Record) Record {
	out := make(Record, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	out["id"] = base["id"]
	return out
}
