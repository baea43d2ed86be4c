package generator

import (
	"math/rand/v2"

	"github.com/getmockd/fixturegen/pkg/schema"
)

// CompositeGenerator handles allOf, anyOf and oneOf. When a schema carries
// more than one keyword, allOf wins over anyOf, which wins over oneOf.
//
// Selected branches are generated inside one object scope so their
// properties merge. Branches that produce a bare value (a string, number,
// boolean, enum or array) cannot live in an object and are left out of the
// scope; when every selected branch is bare, the first one is generated on
// its own instead.
//
// A branch leading back to a composite that is still being expanded is
// skipped. When no branch remains, nothing is generated.
type CompositeGenerator struct{}

// Handles implements Generator.
func (CompositeGenerator) Handles(s *schema.Schema) bool {
	return s.IsComposite()
}

// Generate implements Generator.
func (CompositeGenerator) Generate(ctx *Context, s *schema.Schema) error {
	stack := expansionStack(ctx)
	if stack.Contains(s) {
		ctx.Logger().Debug("truncated recursive composite", "schema", s.String(), "depth", stack.Len())
		return nil
	}
	stack.Push(s)
	defer stack.Pop()

	keyword, branches := "oneOf", s.OneOf
	switch {
	case len(s.AllOf) > 0:
		keyword, branches = "allOf", s.AllOf
	case len(s.AnyOf) > 0:
		keyword, branches = "anyOf", s.AnyOf
	}
	branches = nonRecursive(ctx, stack, branches)
	if len(branches) == 0 {
		ctx.Logger().Debug("every composite branch is recursive", "keyword", keyword, "schema", s.String())
		return nil
	}

	switch keyword {
	case "anyOf":
		branches = pickSubset(ctx.Rand(), branches)
	case "oneOf":
		branches = []*schema.Schema{branches[ctx.Rand().IntN(len(branches))]}
	}
	return generateBranches(ctx, keyword, branches)
}

// nonRecursive drops the branches that resolve to a schema on stack.
// Unresolvable branches are kept so generation reports them.
func nonRecursive(ctx *Context, stack *SchemaStack, branches []*schema.Schema) []*schema.Schema {
	kept := make([]*schema.Schema, 0, len(branches))
	for _, branch := range branches {
		if target, err := ctx.Deref(branch); err == nil && stack.Contains(target) {
			continue
		}
		kept = append(kept, branch)
	}
	return kept
}

func generateBranches(ctx *Context, keyword string, branches []*schema.Schema) error {
	var mergeable []*schema.Schema
	for _, branch := range branches {
		if !producesBareValue(ctx, branch, 0) {
			mergeable = append(mergeable, branch)
		}
	}
	ctx.Logger().Debug("generating composite",
		"keyword", keyword, "selected", len(branches), "merged", len(mergeable))

	if len(mergeable) == 0 {
		return ctx.Generate(branches[0])
	}
	return ctx.Builder().Object(func() error {
		for _, branch := range mergeable {
			if err := ctx.Generate(branch); err != nil {
				return err
			}
		}
		return nil
	})
}

// pickSubset returns a non-empty subset of branches, uniform over all
// 2^n - 1 non-empty subsets. Order is preserved.
func pickSubset(rng *rand.Rand, branches []*schema.Schema) []*schema.Schema {
	n := len(branches)
	if n > 62 {
		for {
			var picked []*schema.Schema
			for _, b := range branches {
				if rng.IntN(2) == 1 {
					picked = append(picked, b)
				}
			}
			if len(picked) > 0 {
				return picked
			}
		}
	}
	mask := 1 + rng.Uint64N(uint64(1)<<n-1)
	picked := make([]*schema.Schema, 0, n)
	for i, b := range branches {
		if mask&(1<<i) != 0 {
			picked = append(picked, b)
		}
	}
	return picked
}

// maxBranchDepth bounds the look-through of nested composites and references.
const maxBranchDepth = 16

// producesBareValue reports whether generating s yields a value that is not
// an object. Unknown and empty schemas produce nothing and count as
// mergeable.
func producesBareValue(ctx *Context, s *schema.Schema, depth int) bool {
	if s == nil || depth > maxBranchDepth {
		return false
	}
	if s.IsReference() {
		def, ok := ctx.definitions.Lookup(s.Ref)
		if !ok {
			// Generation reports the missing definition.
			return false
		}
		return producesBareValue(ctx, def, depth+1)
	}
	if s.IsComposite() {
		branches := s.AllOf
		if len(branches) == 0 {
			branches = s.AnyOf
		}
		if len(branches) == 0 {
			branches = s.OneOf
		}
		for _, b := range branches {
			if !producesBareValue(ctx, b, depth+1) {
				return false
			}
		}
		return true
	}
	if s.HasEnum() {
		return true
	}
	if s.IsObject() {
		return false
	}
	return s.Type != "" || s.Format != "" || s.Pattern != ""
}
