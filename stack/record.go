package stack

import (
	"github.com/a-bouts/regatta/layout"
	"github.com/a-bouts/regatta/race"
)

// Record is the persisted form of a Local.
type Record struct {
	Current race.StateRecord    `json:"current" msgpack:"current"`
	Undo    []race.CourseRecord `json:"undo,omitempty" msgpack:"undo,omitempty"`
	Redo    []race.CourseRecord `json:"redo,omitempty" msgpack:"redo,omitempty"`
}

func (l *Local) Record() Record {
	return Record{
		Current: l.current.Record(),
		Undo:    courseRecords(l.undo),
		Redo:    courseRecords(l.redo),
	}
}

func courseRecords(courses []race.Course) []race.CourseRecord {
	var records []race.CourseRecord
	for _, c := range courses {
		records = append(records, c.Record())
	}
	return records
}

func courses(records []race.CourseRecord, p layout.Provider) ([]race.Course, error) {
	var cs []race.Course
	for _, r := range records {
		c, err := r.Course(p)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// FromRecord rebuilds a Local, resolving layouts with p.
func FromRecord(r Record, p layout.Provider) (*Local, error) {
	current, err := r.Current.State(p)
	if err != nil {
		return nil, err
	}
	l := &Local{current: current}
	if l.undo, err = courses(r.Undo, p); err != nil {
		return nil, err
	}
	if l.redo, err = courses(r.Redo, p); err != nil {
		return nil, err
	}
	return l, nil
}

// RemoteRecord is the wire form of a Remote.
type RemoteRecord struct {
	Current race.StateRecord `json:"current" msgpack:"current"`
	CanUndo bool             `json:"canUndo" msgpack:"canUndo"`
	CanRedo bool             `json:"canRedo" msgpack:"canRedo"`
}

func (r Remote) Record() RemoteRecord {
	return RemoteRecord{Current: r.State.Record(), CanUndo: r.Undo, CanRedo: r.Redo}
}

func (r RemoteRecord) Remote(p layout.Provider) (Remote, error) {
	s, err := r.Current.State(p)
	if err != nil {
		return Remote{}, err
	}
	return Remote{State: s, Undo: r.CanUndo, Redo: r.CanRedo}, nil
}
