package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
	"github.com/a-bouts/regatta/race"
	"github.com/a-bouts/regatta/stack"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "courses"), layout.NewCatalog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestSaveLoad(t *testing.T) {
	s := newStore(t)

	c := race.NewCourse()
	c.Name = "Tuesday night"
	l := stack.NewLocal(c)
	l.Perform(stack.Command{Action: race.DropMark, Value: latlon.LatLon{Lat: 41.78, Lon: -71.38}})

	if err := s.Save(l); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(c.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cur := got.Current().Course; cur.Name != c.Name || len(cur.Marks) != 1 {
		t.Errorf("Load() = %+v", cur)
	}
	if !got.Undo() || len(got.Current().Course.Marks) != 0 {
		t.Errorf("Load() lost the undo history")
	}

	l.Perform(stack.Command{Action: race.SetNumberOfBoats, Value: 20})
	if err := s.Save(l); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, _ := s.Load(c.ID); got.Current().Course.NumberOfBoats != 20 {
		t.Errorf("second Save() was not stored")
	}

	files, _ := os.ReadDir(s.dir)
	if len(files) != 1 {
		t.Errorf("store holds %d files; want 1", len(files))
	}
}

func TestList(t *testing.T) {
	s := newStore(t)
	names := map[uuid.UUID]string{}
	for _, name := range []string{"Monday", "Tuesday", "Wednesday"} {
		c := race.NewCourse()
		c.Name = name
		names[c.ID] = name
		if err := s.Save(stack.NewLocal(c)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	os.WriteFile(filepath.Join(s.dir, uuid.NewString()+suffix), []byte("junk"), 0644)
	os.WriteFile(filepath.Join(s.dir, "README"), []byte("junk"), 0644)

	entries, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != len(names) {
		t.Fatalf("List() = %v; want %d entries", entries, len(names))
	}
	for _, e := range entries {
		if names[e.ID] != e.Name {
			t.Errorf("entry %s is named %q; want %q", e.ID, e.Name, names[e.ID])
		}
	}
}

func TestNotFound(t *testing.T) {
	s := newStore(t)
	id := uuid.New()
	if _, err := s.Load(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) = %v; want %v", err, ErrNotFound)
	}
	if err := s.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) = %v; want %v", err, ErrNotFound)
	}

	c := race.NewCourse()
	s.Save(stack.NewLocal(c))
	if err := s.Delete(c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(deleted) = %v; want %v", err, ErrNotFound)
	}
}

func TestUnknownLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "courses")
	custom := layout.Triangle
	custom.ID = uuid.New()

	catalog := layout.NewCatalog()
	catalog.Register(custom)
	s, _ := New(dir, catalog)
	c := race.NewCourse()
	c.SetLayout(custom)
	if err := s.Save(stack.NewLocal(c)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	other, _ := New(dir, layout.NewCatalog())
	if _, err := other.Load(c.ID); !errors.Is(err, race.ErrUnknownLayout) {
		t.Errorf("Load() with an unknown layout = %v; want %v", err, race.ErrUnknownLayout)
	}
}
