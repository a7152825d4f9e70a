/*
Package undo implements a linear undo/redo history of document snapshots.

Documents are saved before every editing operation by calling MarkUndo. Undo
and Redo restore saved snapshots. Consecutive operations of the same kind,
e.g. typing characters into a search field, are merged into a single step if
they pass the same non-empty tag to MarkUndo. Operations with an empty tag
always get a step of their own.

The history is a small state machine:

	idle            nothing saved since the last navigation, no merging
	pendingCommit   a snapshot was saved before an operation; the state after
	                the operation still has to be saved before undoing it
	pendingMerge    like pendingCommit, but the next save replaces the top
	                frame, because the last two operations had the same tag
	mergeEligible   the document equals the frame at the current position
	                (after Undo or Redo); the next save replaces that frame

Saving after Undo or Redo first discards all frames above the current
position.
*/
package undo

// Snapshotter is a document which can save and restore its state.
// Save must return a deep copy which does not share mutable data with the
// document.
type Snapshotter[S any] interface {
	Save() S
	Restore(S)
}

type state int8

const (
	idle state = iota
	pendingCommit
	pendingMerge
	mergeEligible
)

func (st state) String() string {
	switch st {
	case pendingCommit:
		return "pending-commit"
	case pendingMerge:
		return "pending-merge"
	case mergeEligible:
		return "merge-eligible"
	}
	return "idle"
}

// Stack is the undo history of one document.
type Stack[S any] struct {
	doc      Snapshotter[S]
	frames   []S
	position int
	state    state
	lastTag  string
}

// NewStack creates an empty history for doc.
func NewStack[S any](doc Snapshotter[S]) *Stack[S] {
	return &Stack[S]{doc: doc}
}

// MarkUndo saves the document before an operation. tag identifies the kind
// of operation; "" never merges.
func (s *Stack[S]) MarkUndo(tag string) {
	if s.position < len(s.frames)-1 {
		clear(s.frames[s.position+1:])
		s.frames = s.frames[:s.position+1]
	}
	if s.push(tag) {
		s.state = pendingMerge
	} else {
		s.state = pendingCommit
	}
}

// push saves a snapshot, either on top of the stack or in place of the top
// frame. It reports whether the following push will merge.
func (s *Stack[S]) push(tag string) bool {
	snap := s.doc.Save()
	if len(s.frames) > 0 && (s.state == pendingMerge || s.state == mergeEligible) {
		s.frames[len(s.frames)-1] = snap
	} else {
		s.frames = append(s.frames, snap)
	}
	s.position = len(s.frames) - 1
	merge := s.lastTag != "" && s.lastTag == tag
	s.lastTag = tag
	return merge
}

// Undo restores the state before the last operation. It returns false if
// there is nothing to undo.
func (s *Stack[S]) Undo() bool {
	if s.state == pendingCommit || s.state == pendingMerge {
		s.push(s.lastTag)
	}
	s.lastTag = ""
	s.state = idle
	if len(s.frames) > 0 {
		s.state = mergeEligible
	}
	if s.position <= 0 {
		return false
	}
	s.position--
	s.doc.Restore(s.frames[s.position])
	return true
}

// Redo restores the state undone by the last Undo. It returns false if there
// is nothing to redo.
func (s *Stack[S]) Redo() bool {
	if s.position >= len(s.frames)-1 {
		return false
	}
	s.position++
	s.doc.Restore(s.frames[s.position])
	s.state = mergeEligible
	s.lastTag = ""
	return true
}

// CanUndo reports whether Undo would restore a state.
func (s *Stack[S]) CanUndo() bool {
	return s.position > 0 || s.state == pendingCommit || s.state == pendingMerge
}

// CanRedo reports whether Redo would restore a state.
func (s *Stack[S]) CanRedo() bool {
	return s.position < len(s.frames)-1
}

// Len returns the number of frames.
func (s *Stack[S]) Len() int { return len(s.frames) }

// Position returns the index of the current frame.
func (s *Stack[S]) Position() int { return s.position }

// Frames returns the saved snapshots, oldest first. Snapshots with a
// Clone() S method are returned as clones; others share their contents with
// the history and must not be modified.
func (s *Stack[S]) Frames() []S {
	snaps := make([]S, len(s.frames))
	for i, f := range s.frames {
		if c, ok := any(f).(interface{ Clone() S }); ok {
			f = c.Clone()
		}
		snaps[i] = f
	}
	return snaps
}

// Clear drops the whole history.
func (s *Stack[S]) Clear() {
	s.frames = nil
	s.position = 0
	s.state = idle
	s.lastTag = ""
}
