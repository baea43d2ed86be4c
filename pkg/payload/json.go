package payload

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/getmockd/fixturegen/pkg/model"
)

// WriteJSON writes tree as JSON. An empty indent produces compact output.
// Keys keep the tree's insertion order.
func WriteJSON(w io.Writer, tree *model.Value, indent string) error {
	bw := bufio.NewWriter(w)
	jw := &jsonWriter{w: bw, indent: indent}
	if err := jw.node(tree, 0); err != nil {
		return err
	}
	if indent != "" {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

type jsonWriter struct {
	w      *bufio.Writer
	indent string
}

func (jw *jsonWriter) newline(depth int) {
	if jw.indent == "" {
		return
	}
	jw.w.WriteByte('\n')
	jw.w.WriteString(strings.Repeat(jw.indent, depth))
}

func (jw *jsonWriter) node(n any, depth int) error {
	switch v := n.(type) {
	case nil:
		jw.w.WriteString("null")
	case *model.Value:
		if v == nil || v.IsEmpty() {
			jw.w.WriteString("null")
			return nil
		}
		return jw.node(v.Payload(), depth)
	case model.Leaf:
		return jw.leaf(v)
	case *model.Object:
		return jw.object(v, depth)
	case *model.List:
		return jw.list(v, depth)
	default:
		return fmt.Errorf("payload: unexpected node %T", n)
	}
	return nil
}

func (jw *jsonWriter) leaf(l model.Leaf) error {
	if !l.Quoted {
		if l.Expr == "" {
			jw.w.WriteString("null")
			return nil
		}
		jw.w.WriteString(l.Expr)
		return nil
	}
	return jw.str(l.Expr)
}

func (jw *jsonWriter) str(s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	jw.w.Write(b)
	return nil
}

func (jw *jsonWriter) object(o *model.Object, depth int) error {
	keys := o.Keys()
	if len(keys) == 0 {
		jw.w.WriteString("{}")
		return nil
	}
	jw.w.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			jw.w.WriteByte(',')
		}
		jw.newline(depth + 1)
		if err := jw.str(key); err != nil {
			return err
		}
		jw.w.WriteByte(':')
		if jw.indent != "" {
			jw.w.WriteByte(' ')
		}
		child, _ := o.Get(key)
		if err := jw.node(child, depth+1); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	jw.newline(depth)
	jw.w.WriteByte('}')
	return nil
}

func (jw *jsonWriter) list(l *model.List, depth int) error {
	items := l.Items()
	if len(items) == 0 {
		jw.w.WriteString("[]")
		return nil
	}
	jw.w.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			jw.w.WriteByte(',')
		}
		jw.newline(depth + 1)
		if err := jw.node(item, depth+1); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	jw.newline(depth)
	jw.w.WriteByte(']')
	return nil
}
