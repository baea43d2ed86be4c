package model

// Builder grows an element tree through nested scopes.
//
// The builder starts with an empty root Value on its scope stack. Object and
// Array open a new container, make it the current scope while the callback
// runs, and push it into the enclosing scope once the callback returns. An
// object opened inside an object scope is therefore merged into it, which is
// how allOf branches combine.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	root  *Value
	stack []Element
}

// NewBuilder returns a builder with an empty root value.
func NewBuilder() *Builder {
	root := NewValue()
	return &Builder{root: root, stack: []Element{root}}
}

// Tree returns the root value.
func (b *Builder) Tree() *Value {
	return b.root
}

// Depth returns the number of open scopes, the root included.
func (b *Builder) Depth() int {
	return len(b.stack)
}

func (b *Builder) current() Element {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) enter(e Element) {
	b.stack = append(b.stack, e)
}

func (b *Builder) leave() {
	b.stack = b.stack[:len(b.stack)-1]
}

// AppendSimple pushes an unquoted leaf into the current scope.
func (b *Builder) AppendSimple(expr string) error {
	return b.current().Push(Leaf{Expr: expr})
}

// AppendQuoted pushes a leaf that sits in a string-valued position.
func (b *Builder) AppendQuoted(expr string) error {
	return b.current().Push(Leaf{Expr: expr, Quoted: true})
}

// Object opens an object scope for fn.
func (b *Builder) Object(fn func() error) error {
	obj := NewObject()
	if err := b.within(obj, fn); err != nil {
		return err
	}
	return b.current().Push(obj)
}

// Array opens a list scope for fn.
func (b *Builder) Array(fn func() error) error {
	list := NewList()
	if err := b.within(list, fn); err != nil {
		return err
	}
	return b.current().Push(list)
}

// Property builds the value of key with fn and stores it in the current
// scope.
func (b *Builder) Property(key string, fn func() error) error {
	v := NewValue()
	if err := b.within(v, fn); err != nil {
		return err
	}
	return b.current().PushKeyed(key, v)
}

func (b *Builder) within(e Element, fn func() error) error {
	b.enter(e)
	defer b.leave()
	if fn == nil {
		return nil
	}
	return fn()
}
