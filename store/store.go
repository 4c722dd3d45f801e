// Package store keeps course stacks on disk as zstd compressed msgpack.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/a-bouts/regatta/layout"
	"github.com/a-bouts/regatta/stack"
)

const suffix = ".msgpack.zst"

var ErrNotFound = errors.New("course not found")

type Store struct {
	dir     string
	layouts layout.Provider
}

// New opens the store in dir, creating it if needed. Layouts of loaded
// courses are resolved with layouts.
func New(dir string, layouts layout.Provider) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, layouts: layouts}, nil
}

func (s *Store) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+suffix)
}

func encode(w io.Writer, rec stack.Record) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := msgpack.NewEncoder(zw).Encode(rec); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode course: %w", err)
	}
	return zw.Close()
}

func decode(r io.Reader) (stack.Record, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return stack.Record{}, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var rec stack.Record
	if err := msgpack.NewDecoder(zr).Decode(&rec); err != nil {
		return stack.Record{}, fmt.Errorf("failed to decode course: %w", err)
	}
	return rec, nil
}

// Save replaces the stored copy of the course, atomically.
func (s *Store) Save(l *stack.Local) error {
	id := l.Current().Course.ID

	f, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := encode(f, l.Record()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(f.Name(), s.path(id)); err != nil {
		return err
	}
	log.WithFields(log.Fields{"course": id, "dir": s.dir}).Debug("Course saved")
	return nil
}

func (s *Store) Load(id uuid.UUID) (*stack.Local, error) {
	f, err := os.Open(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("course %s: %w", id, err)
	}
	return stack.FromRecord(rec, s.layouts)
}

func (s *Store) Delete(id uuid.UUID) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}

type Entry struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Modified time.Time `json:"modified"`
}

// List returns the stored courses, most recently modified first. Files
// that cannot be read are logged and skipped.
func (s *Store) List() ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, file := range files {
		name := file.Name()
		if file.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		id, err := uuid.Parse(strings.TrimSuffix(name, suffix))
		if err != nil {
			continue
		}
		entry, err := s.entry(id)
		if err != nil {
			log.WithError(err).WithField("file", name).Warn("Skipping unreadable course")
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Modified.After(entries[j].Modified)
	})
	return entries, nil
}

func (s *Store) entry(id uuid.UUID) (Entry, error) {
	f, err := os.Open(s.path(id))
	if err != nil {
		return Entry{}, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return Entry{}, err
	}
	rec, err := decode(f)
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: id, Name: rec.Current.Course.Name, Modified: fi.ModTime()}, nil
}
