// Package storage provides durable single-record persistence for the
// booking service's stores. Each store owns one named record under the
// data directory, written with a serialize-on-write, deserialize-on-load
// discipline. Durability is best effort: a missing or corrupt record
// loads as empty and a failed write degrades the owning store to
// in-memory operation, never crashes the process.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Record load errors. ErrNotExist means no record has been written yet;
// ErrCorrupt means the record exists but cannot be decoded. Callers treat
// both as "empty".
var (
	ErrNotExist = errors.New("record does not exist")
	ErrCorrupt  = errors.New("record is corrupt")
)

// Record is one durable JSON document at a fixed path.
type Record struct {
	path string
}

// NewRecord returns a record stored at dir/name.json.
func NewRecord(dir, name string) *Record {
	return &Record{path: filepath.Join(dir, name+".json")}
}

// Path returns the backing file path.
func (r *Record) Path() string { return r.path }

// Load decodes the record into v. It returns ErrNotExist when the file is
// missing and ErrCorrupt (wrapped) when it cannot be decoded.
func (r *Record) Load(v interface{}) error {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotExist
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", r.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrCorrupt, r.path, err)
	}
	return nil
}

// Save encodes v and writes it atomically: the document is written to a
// temp file in the same directory and renamed into place, so a crash mid
// write cannot leave a half-written record behind.
func (r *Record) Save(v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}

// Remove deletes the record. A missing record is not an error.
func (r *Record) Remove() error {
	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
