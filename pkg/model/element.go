package model

import (
	"errors"
	"fmt"
)

// Push errors.
var (
	ErrBareValueInObject = errors.New("cannot push an unkeyed value into an object")
	ErrKeyedPushInList   = errors.New("keyed push into a list requires an element as its last item")
	ErrKeyedPushInValue  = errors.New("keyed push into a value requires an object payload")
)

// Leaf is a literal or generator-function expression.
type Leaf struct {
	Expr string
	// Quoted marks a string-valued position.
	Quoted bool
}

// String returns the expression as it appears in a payload, wrapped in
// double quotes when the leaf is quoted.
func (l Leaf) String() string {
	if l.Quoted {
		return `"` + l.Expr + `"`
	}
	return l.Expr
}

// Element is a node of the tree that accepts pushed children.
// Children are either a Leaf or another Element.
type Element interface {
	// Push adds an unkeyed child.
	Push(v any) error
	// PushKeyed adds a child under key.
	PushKeyed(key string, v any) error
}

// Value holds a single payload.
type Value struct {
	payload any
}

// NewValue returns an empty value.
func NewValue() *Value {
	return &Value{}
}

// Payload returns the held Leaf, Element or nil.
func (v *Value) Payload() any {
	return v.payload
}

// IsEmpty reports whether nothing was pushed into the value.
func (v *Value) IsEmpty() bool {
	return v.payload == nil
}

// Push sets the payload, or delegates to it when the payload is an Element.
func (v *Value) Push(pushed any) error {
	if elem, ok := v.payload.(Element); ok {
		return elem.Push(pushed)
	}
	v.payload = pushed
	return nil
}

// PushKeyed delegates to an Object payload.
func (v *Value) PushKeyed(key string, pushed any) error {
	if obj, ok := v.payload.(*Object); ok {
		return obj.PushKeyed(key, pushed)
	}
	return fmt.Errorf("%w: key %q", ErrKeyedPushInValue, key)
}

// Object is an ordered mapping of unique keys.
type Object struct {
	keys    []string
	entries map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{entries: make(map[string]any)}
}

// Push merges another Object into this one. Any other value is rejected.
func (o *Object) Push(pushed any) error {
	other, ok := pushed.(*Object)
	if !ok {
		return fmt.Errorf("%w: %T", ErrBareValueInObject, pushed)
	}
	o.Merge(other)
	return nil
}

// PushKeyed sets key. A new key is appended; an existing key keeps its
// position and takes the new value.
func (o *Object) PushKeyed(key string, pushed any) error {
	o.set(key, pushed)
	return nil
}

// Merge copies every entry of other into o, in other's order.
func (o *Object) Merge(other *Object) {
	if other == nil || other == o {
		return
	}
	for _, key := range other.keys {
		o.set(key, other.entries[key])
	}
}

func (o *Object) set(key string, v any) {
	if o.entries == nil {
		o.entries = make(map[string]any)
	}
	if _, exists := o.entries[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.entries[key] = v
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Get returns the child stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// List is an ordered sequence.
type List struct {
	items []any
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Push appends a child.
func (l *List) Push(pushed any) error {
	l.items = append(l.items, pushed)
	return nil
}

// PushKeyed delegates to the last item, which must be an Element.
func (l *List) PushKeyed(key string, pushed any) error {
	if len(l.items) == 0 {
		return fmt.Errorf("%w: list is empty", ErrKeyedPushInList)
	}
	last, ok := l.items[len(l.items)-1].(Element)
	if !ok {
		return fmt.Errorf("%w: last item is %T", ErrKeyedPushInList, l.items[len(l.items)-1])
	}
	return last.PushKeyed(key, pushed)
}

// Items returns the children in order.
func (l *List) Items() []any {
	return append([]any(nil), l.items...)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}
