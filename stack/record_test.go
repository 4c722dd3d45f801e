package stack

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/a-bouts/regatta/latlon"
	"github.com/a-bouts/regatta/layout"
	"github.com/a-bouts/regatta/race"
)

func TestRecord(t *testing.T) {
	l := NewLocal(race.NewCourse())
	l.Perform(Command{race.SetLayout, layout.DefaultSettings.WithStart(layout.DownwindStart).Layout()})
	l.Perform(Command{race.DropMark, latlon.LatLon{Lat: 41.78, Lon: -71.38}})
	l.Perform(Command{race.SetNumberOfBoats, 20})
	l.Undo()

	b, err := msgpack.Marshal(l.Record())
	if err != nil {
		t.Fatalf("msgpack.Marshal: %v", err)
	}
	var rec Record
	if err := msgpack.Unmarshal(b, &rec); err != nil {
		t.Fatalf("msgpack.Unmarshal: %v", err)
	}
	got, err := FromRecord(rec, layout.NewCatalog())
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}

	if !reflect.DeepEqual(got.Current().Course, l.Current().Course) {
		t.Errorf("current = %+v; want %+v", got.Current().Course, l.Current().Course)
	}
	for got.Undo() {
		l.Undo()
		if !reflect.DeepEqual(got.Current().Course, l.Current().Course) {
			t.Errorf("undone = %+v; want %+v", got.Current().Course, l.Current().Course)
		}
	}
	if l.Undo() {
		t.Errorf("restored stack has less undo history")
	}
	if !got.Redo() || got.Current().Course.NumberOfBoats != 10 {
		t.Errorf("restored stack lost its redo history")
	}
}

func TestRemoteRecord(t *testing.T) {
	l := NewLocal(race.NewCourse())
	l.Perform(Command{race.SetNumberOfBoats, 20})

	b, err := json.Marshal(l.Remote().Record())
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	var rec RemoteRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	r, err := rec.Remote(layout.NewCatalog())
	if err != nil {
		t.Fatalf("Remote(): %v", err)
	}
	if !r.CanUndo() || r.CanRedo() || r.Current().Course.NumberOfBoats != 20 {
		t.Errorf("Remote() = %+v", r)
	}
}
