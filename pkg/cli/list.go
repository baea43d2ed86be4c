package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/fixturegen/pkg/cli/internal/output"
	"github.com/getmockd/fixturegen/pkg/schema"
)

var (
	listInput string
	listJSON  bool
)

// SchemaSummary is one row of the list command.
type SchemaSummary struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Properties []string `json:"properties,omitempty"`
	Required   []string `json:"required,omitempty"`
	Refs       []string `json:"refs,omitempty"`
}

// ListOutput is the JSON shape of the list command.
type ListOutput struct {
	Input   string          `json:"input"`
	Type    string          `json:"type"`
	Title   string          `json:"title,omitempty"`
	Root    string          `json:"root,omitempty"`
	Schemas []SchemaSummary `json:"schemas"`
}

var listCmd = &cobra.Command{
	Use:   "list [input]",
	Short: "List the schema definitions of an input",
	Example: `  fixturegen list --input petstore.yaml
  fixturegen list petstore.yaml --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		input := cfg.Input
		if cmd.Flags().Changed("input") {
			input = listInput
		}
		if len(args) == 1 {
			input = args[0]
		}

		src, err := loadSource(input)
		if err != nil {
			return err
		}
		out := summarize(src)

		if listJSON {
			return output.JSON(cmd.OutOrStdout(), out)
		}

		if len(out.Schemas) == 0 && out.Root == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No schemas found")
			return nil
		}
		t := output.Table(cmd.OutOrStdout(), "Name", "Kind", "Properties", "Required", "Refs")
		for _, s := range out.Schemas {
			t.AppendRow([]any{s.Name, s.Kind, len(s.Properties), strings.Join(s.Required, ", "), strings.Join(s.Refs, ", ")})
		}
		if out.Root != "" {
			t.AppendFooter([]any{"(root)", out.Root})
		}
		t.Render()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listInput, "input", "i", "", "OpenAPI, Swagger 2.0 or schema bundle file (or http(s) URL)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func summarize(src *source) ListOutput {
	out := ListOutput{
		Input:   src.Path,
		Type:    src.Kind,
		Title:   src.Title,
		Schemas: make([]SchemaSummary, 0, len(src.Definitions)),
	}
	if src.Root != nil {
		out.Root = kindOf(src.Root)
	}
	for _, name := range src.Definitions.Names() {
		s := src.Definitions[name]
		out.Schemas = append(out.Schemas, SchemaSummary{
			Name:       name,
			Kind:       kindOf(s),
			Properties: s.Properties.Names(),
			Required:   s.Required,
			Refs:       directRefs(s),
		})
	}
	return out
}

// kindOf describes a schema in a word or two.
func kindOf(s *schema.Schema) string {
	switch {
	case s == nil:
		return "-"
	case s.IsReference():
		return "$ref " + schema.RefName(s.Ref)
	case len(s.AllOf) > 0:
		return "allOf"
	case len(s.AnyOf) > 0:
		return "anyOf"
	case len(s.OneOf) > 0:
		return "oneOf"
	case s.HasEnum():
		return "enum"
	case s.Type == schema.TypeArray && s.Items != nil:
		if s.Items.Type == schema.TypeArray {
			return "array of array"
		}
		return "array of " + kindOf(s.Items)
	case s.IsObject():
		return schema.TypeObject
	case s.Type == "":
		return "any"
	case s.Format != "":
		return s.Type + "/" + s.Format
	}
	return s.Type
}

// directRefs lists the definitions s refers to, without following them.
func directRefs(s *schema.Schema) []string {
	seen := make(map[string]bool)
	visited := make(map[*schema.Schema]bool)
	var refs []string
	var walk func(*schema.Schema)
	walk = func(s *schema.Schema) {
		if s == nil || visited[s] {
			return
		}
		visited[s] = true
		if s.IsReference() {
			name := schema.RefName(s.Ref)
			if !seen[name] {
				seen[name] = true
				refs = append(refs, name)
			}
			return
		}
		for _, p := range s.Properties {
			walk(p.Schema)
		}
		walk(s.Items)
		for _, group := range [][]*schema.Schema{s.AllOf, s.AnyOf, s.OneOf} {
			for _, b := range group {
				walk(b)
			}
		}
	}
	walk(s)
	return refs
}
