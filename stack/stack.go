// Package stack keeps the history of a course so that changes can be
// undone and redone.
package stack

import (
	"github.com/brunoga/deep"

	"github.com/a-bouts/regatta/race"
	"github.com/a-bouts/regatta/wind"
)

// Limit is the number of changes that can be undone, and redone.
const Limit = 20

// Stack is the read side of a course history.
type Stack interface {
	Current() race.State
	CanUndo() bool
	CanRedo() bool
}

// Local owns a course and its history. It is not safe for concurrent use.
type Local struct {
	current race.State
	undo    []race.Course
	redo    []race.Course
}

var _ Stack = (*Local)(nil)

func NewLocal(c race.Course) *Local {
	return &Local{current: race.NewState(c)}
}

func (l *Local) Current() race.State { return l.current }
func (l *Local) CanUndo() bool       { return len(l.undo) > 0 }
func (l *Local) CanRedo() bool       { return len(l.redo) > 0 }

// Remote is the snapshot sent to clients that only display the course.
func (l *Local) Remote() Remote {
	return Remote{State: l.current, Undo: l.CanUndo(), Redo: l.CanRedo()}
}

// AddWind records a wind observation. Wind is not part of the undo
// history.
func (l *Local) AddWind(w wind.Information) bool {
	return l.current.WindHistory.Add(w)
}

// push appends c, dropping the oldest entries to stay within Limit.
func push(stack []race.Course, c race.Course) []race.Course {
	if len(stack) >= Limit {
		stack = append(stack[:0:0], stack[len(stack)-Limit+1:]...)
	}
	return append(stack, c)
}

func pop(stack []race.Course) ([]race.Course, race.Course) {
	c := stack[len(stack)-1]
	return stack[:len(stack)-1], c
}

func (l *Local) snapshot() race.Course {
	return deep.MustCopy(l.current.Course)
}

// Modify applies action to the course. When canUndo is set the course is
// saved first and the redo history is lost.
func (l *Local) Modify(canUndo bool, action func(c *race.Course)) {
	if canUndo {
		l.undo = push(l.undo, l.snapshot())
		l.redo = nil
	}
	action(&l.current.Course)
}

// Undo reports false when there is nothing to undo.
func (l *Local) Undo() bool {
	if len(l.undo) == 0 {
		return false
	}
	var c race.Course
	l.undo, c = pop(l.undo)
	l.redo = push(l.redo, l.snapshot())
	l.current.Course = c
	return true
}

// Redo reports false when there is nothing to redo.
func (l *Local) Redo() bool {
	if len(l.redo) == 0 {
		return false
	}
	var c race.Course
	l.redo, c = pop(l.redo)
	l.undo = push(l.undo, l.snapshot())
	l.current.Course = c
	return true
}

// Remote is a read-only copy of a Local.
type Remote struct {
	State race.State
	Undo  bool
	Redo  bool
}

var _ Stack = Remote{}

func (r Remote) Current() race.State { return r.State }
func (r Remote) CanUndo() bool       { return r.Undo }
func (r Remote) CanRedo() bool       { return r.Redo }
