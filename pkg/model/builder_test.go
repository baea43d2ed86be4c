package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Simple(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AppendQuoted("randomUUID()"))
	assert.Equal(t, Leaf{Expr: "randomUUID()", Quoted: true}, b.Tree().Payload())
	assert.Equal(t, 1, b.Depth())
}

func TestBuilder_ObjectWithProperties(t *testing.T) {
	b := NewBuilder()
	err := b.Object(func() error {
		if err := b.Property("name", func() error { return b.AppendQuoted("n") }); err != nil {
			return err
		}
		return b.Property("age", func() error { return b.AppendSimple("1") })
	})
	require.NoError(t, err)

	obj, ok := b.Tree().Payload().(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "age"}, obj.Keys())

	name, _ := obj.Get("name")
	nameValue, ok := name.(*Value)
	require.True(t, ok)
	assert.Equal(t, Leaf{Expr: "n", Quoted: true}, nameValue.Payload())
	assert.Equal(t, 1, b.Depth())
}

func TestBuilder_NestedObjectsMerge(t *testing.T) {
	b := NewBuilder()
	err := b.Object(func() error {
		for _, key := range []string{"a", "b", "c"} {
			err := b.Object(func() error {
				return b.Property(key, func() error { return b.AppendSimple("1") })
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	obj := b.Tree().Payload().(*Object)
	assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())
}

func TestBuilder_ArrayOfObjects(t *testing.T) {
	b := NewBuilder()
	err := b.Array(func() error {
		for range 3 {
			err := b.Object(func() error {
				return b.Property("id", func() error { return b.AppendSimple("1") })
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	list, ok := b.Tree().Payload().(*List)
	require.True(t, ok)
	require.Equal(t, 3, list.Len())
	for _, item := range list.Items() {
		obj, ok := item.(*Object)
		require.True(t, ok)
		assert.Equal(t, []string{"id"}, obj.Keys())
	}
}

func TestBuilder_BareValueInObjectScopeFails(t *testing.T) {
	b := NewBuilder()
	err := b.Object(func() error { return b.AppendSimple("1") })
	assert.ErrorIs(t, err, ErrBareValueInObject)
	assert.Equal(t, 1, b.Depth(), "scopes must be closed after an error")
	assert.True(t, b.Tree().IsEmpty())
}

func TestBuilder_CallbackErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	b := NewBuilder()
	err := b.Array(func() error {
		return b.Property("x", func() error { return boom })
	})
	assert.ErrorIs(t, err, boom)
}

func TestBuilder_EmptyProperty(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Object(func() error { return b.Property("skipped", nil) }))

	obj := b.Tree().Payload().(*Object)
	v, ok := obj.Get("skipped")
	require.True(t, ok)
	assert.True(t, v.(*Value).IsEmpty())
}
