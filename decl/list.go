package decl

import "fmt"

// nodeList is an insertion-ordered sequence that allows duplicates.
//
// Index policy: inserting at or past the end appends, a negative insertion
// index is a caller error, and removing at an index out of range is a no-op.
type nodeList[T any] struct {
	items []T
}

func (l *nodeList[T]) add(v T) error {
	if isNil(v) {
		return fmt.Errorf("add nil node: %w", ErrInvalidArgument)
	}
	l.items = append(l.items, v)
	return nil
}

func (l *nodeList[T]) insert(index int, v T) error {
	if index < 0 {
		return fmt.Errorf("insert at index %d: %w", index, ErrInvalidArgument)
	}
	if isNil(v) {
		return fmt.Errorf("insert nil node: %w", ErrInvalidArgument)
	}
	if index >= len(l.items) {
		l.items = append(l.items, v)
		return nil
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = v
	return nil
}

// remove deletes the first element structurally equal to v.
func (l *nodeList[T]) remove(v T) bool {
	for i, item := range l.items {
		if nodeEqual(item, v) {
			return l.removeAt(i)
		}
	}
	return false
}

func (l *nodeList[T]) removeAt(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	copy(l.items[index:], l.items[index+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return true
}

func (l *nodeList[T]) removeAll() bool {
	if len(l.items) == 0 {
		return false
	}
	clear(l.items)
	l.items = l.items[:0]
	return true
}

func (l *nodeList[T]) at(index int) (T, bool) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[index], true
}

func (l *nodeList[T]) all() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *nodeList[T]) len() int {
	return len(l.items)
}

func (l *nodeList[T]) equal(other *nodeList[T]) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !nodeEqual(l.items[i], other.items[i]) {
			return false
		}
	}
	return true
}
