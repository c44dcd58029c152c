package runtime

import "strings"

// ListValue is Kavun's ordered sequence type. It has reference semantics:
// copying a *ListValue pointer (e.g. `b eşittir a`) aliases the same
// backing slice, so mutation through either name is observable through
// both, matching spec.md §3's "Lifecycles" note and scenario S6.
type ListValue struct {
	Elements []Value
}

// NewList builds a ListValue from already-evaluated elements.
func NewList(elements []Value) *ListValue {
	if elements == nil {
		elements = []Value{}
	}
	return &ListValue{Elements: elements}
}

func (l *ListValue) Type() string { return "LISTE" }

func (l *ListValue) String() string {
	parts := make([]string, len(l.Elements))
	for i, v := range l.Elements {
		parts[i] = elementString(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Get returns the element at index, or an error if out of bounds.
func (l *ListValue) Get(index int) (Value, error) {
	if index < 0 || index >= len(l.Elements) {
		return nil, NewIndexError(int64(index), 0, int64(len(l.Elements)-1), "LISTE")
	}
	return l.Elements[index], nil
}

// Set overwrites the element at index, or returns an error if out of bounds.
func (l *ListValue) Set(index int, v Value) error {
	if index < 0 || index >= len(l.Elements) {
		return NewIndexError(int64(index), 0, int64(len(l.Elements)-1), "LISTE")
	}
	l.Elements[index] = v
	return nil
}

// Append adds an element to the end of the list (the 'ekle' form).
func (l *ListValue) Append(v Value) {
	l.Elements = append(l.Elements, v)
}

// RemoveAt pops and returns the element at index (the 'sil' form).
func (l *ListValue) RemoveAt(index int) (Value, error) {
	if index < 0 || index >= len(l.Elements) {
		return nil, NewIndexError(int64(index), 0, int64(len(l.Elements)-1), "LISTE")
	}
	v := l.Elements[index]
	l.Elements = append(l.Elements[:index], l.Elements[index+1:]...)
	return v, nil
}

func (l *ListValue) Len() int { return len(l.Elements) }

// elementString renders a nested value the way it would appear inside a
// list/dict literal: strings get quoted so the structure round-trips
// per spec.md §6 ("lists and dicts in a structured form that round-trips
// key/value text").
func elementString(v Value) string {
	if s, ok := v.(*StringValue); ok {
		return "\"" + s.Value + "\""
	}
	if v == nil {
		return Nil.String()
	}
	return v.String()
}
