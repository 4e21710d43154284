// Package history implements the move log: a circular doubly-linked list
// with a sentinel node and a cursor, supporting atomic multi-cell moves,
// undo, redo and reset. It owns every move appended to it; a move owns
// only its change slice.
package history

import "sudokuworkbench/internal/board"

// Change is a single-cell transition. Before != After always holds for
// any Change that is actually recorded.
type Change struct {
	Row, Col     int
	Before, After int
}

// Move is an ordered, non-empty list of changes the user perceives as one
// atomic operation.
type Move []Change

type node struct {
	move       Move
	prev, next *node
}

// Log is a circular doubly-linked list of applied/undone moves with a
// sentinel node closing the ring. The cursor points at the sentinel
// ("before the first move") or at an applied move node. Every node
// strictly after the cursor (following .next from the cursor back to the
// sentinel) represents an undone move available for redo.
type Log struct {
	sentinel *node
	cursor   *node
}

// New returns an empty log whose cursor sits on the sentinel.
func New() *Log {
	s := &node{}
	s.prev, s.next = s, s
	return &Log{sentinel: s, cursor: s}
}

// Append truncates every node strictly after the cursor, releasing their
// storage, splices move in as a new node right after the cursor, and
// advances the cursor onto it.
func (l *Log) Append(m Move) {
	l.truncateAfterCursor()

	n := &node{move: m}
	n.prev = l.cursor
	n.next = l.sentinel
	l.cursor.next = n
	l.sentinel.prev = n
	l.cursor = n
}

// truncateAfterCursor drops every node strictly after the cursor, closing
// the ring back onto the sentinel. Dropped nodes are left for the garbage
// collector (there is no manual free step in Go, unlike the teacher's C
// original, but the effect — unreachable after this call — is identical).
func (l *Log) truncateAfterCursor() {
	l.cursor.next = l.sentinel
	l.sentinel.prev = l.cursor
}

// CanUndo reports whether the cursor is not on the sentinel.
func (l *Log) CanUndo() bool { return l.cursor != l.sentinel }

// CanRedo reports whether the node after the cursor is not the sentinel.
func (l *Log) CanRedo() bool { return l.cursor.next != l.sentinel }

// Undo reverts the cursor's move (each change from After back to Before)
// onto b, updates b.EmptyCells via board.Set, and decrements the cursor.
// Changes within one move are applied in list order; order does not
// matter because a move never touches the same cell twice. Returns the
// move that was undone so callers can report it.
func (l *Log) Undo(b *board.Board) Move {
	if !l.CanUndo() {
		return nil
	}
	m := l.cursor.move
	for _, ch := range m {
		b.Set(ch.Row, ch.Col, ch.Before)
	}
	l.cursor = l.cursor.prev
	return m
}

// Redo advances the cursor first, then applies every change of the new
// cursor's move forward (Before to After). Returns the move that was
// redone.
func (l *Log) Redo(b *board.Board) Move {
	if !l.CanRedo() {
		return nil
	}
	l.cursor = l.cursor.next
	for _, ch := range l.cursor.move {
		b.Set(ch.Row, ch.Col, ch.After)
	}
	return l.cursor.move
}

// Reset repeatedly undoes until the cursor rests on the sentinel,
// returning the moves undone in order.
func (l *Log) Reset(b *board.Board) []Move {
	var undone []Move
	for l.CanUndo() {
		undone = append(undone, l.Undo(b))
	}
	return undone
}

// FreeAll discards every non-sentinel node and parks the cursor on the
// sentinel, without touching the board. The game engine does not call
// it: a discarded game replaces or drops its Log instead.
func (l *Log) FreeAll() {
	l.sentinel.next = l.sentinel
	l.sentinel.prev = l.sentinel
	l.cursor = l.sentinel
}
