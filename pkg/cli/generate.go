package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/getmockd/fixturegen/pkg/cli/internal/flags"
	"github.com/getmockd/fixturegen/pkg/cli/internal/output"
	"github.com/getmockd/fixturegen/pkg/config"
	"github.com/getmockd/fixturegen/pkg/functions"
	"github.com/getmockd/fixturegen/pkg/generator"
	"github.com/getmockd/fixturegen/pkg/model"
	"github.com/getmockd/fixturegen/pkg/payload"
)

var (
	genInput    string
	genSchemas  flags.StringSlice
	genOptional bool
	genSeed     uint64
	genMinItems int
	genMaxItems int
	genFormat   string
	genIndent   int
	genRootName string
	genResolve  bool
	genQuery    string
	genOutput   string
	genWatch    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [input]",
	Short: "Generate a random fixture for one or more schemas",
	Long: `Generate a random fixture for the schemas of an API description or schema
bundle. --schema takes glob patterns (doublestar syntax) over the definition
names and may be repeated; with several matches the output is an object keyed
by schema name.`,
	Example: `  # Emit expressions for the Pet schema
  fixturegen generate --input petstore.yaml --schema Pet

  # Concrete, reproducible YAML for every Order* schema, optional fields included
  fixturegen generate -i petstore.yaml -s 'Order*' --optional --resolve --seed 7 -f yaml

  # Extract one field
  fixturegen generate -i petstore.yaml -s Pet --query '$.name'

  # Regenerate whenever the description changes
  fixturegen generate -i petstore.yaml -s Pet --resolve -o pet.json --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genInput, "input", "i", "", "OpenAPI, Swagger 2.0 or schema bundle file (or http(s) URL)")
	f.VarP(&genSchemas, "schema", "s", "Schema name or glob pattern (repeatable)")
	f.BoolVar(&genOptional, "optional", false, "Also generate optional object properties")
	f.Uint64Var(&genSeed, "seed", 0, "Random seed for reproducible output (0 picks one)")
	f.IntVar(&genMinItems, "min-items", generator.DefaultMinItems, "Default minimum array length")
	f.IntVar(&genMaxItems, "max-items", generator.DefaultMaxItems, "Default maximum array length")
	f.StringVarP(&genFormat, "format", "f", "json", "Output format: json, yaml, xml")
	f.IntVar(&genIndent, "indent", 2, "JSON indentation width (0 for compact)")
	f.StringVar(&genRootName, "root-name", payload.DefaultRootName, "XML document element name")
	f.BoolVarP(&genResolve, "resolve", "r", false, "Evaluate expressions into concrete values")
	f.StringVarP(&genQuery, "query", "q", "", "JSONPath to extract from the resolved fixture")
	f.StringVarP(&genOutput, "output", "o", "", "Write to file instead of stdout")
	f.BoolVarP(&genWatch, "watch", "w", false, "Regenerate when the input file changes")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, cfg, args)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if genQuery != "" && !cfg.Resolve {
		log.Debug("query given, resolving expressions")
		cfg.Resolve = true
	}

	once := func() error {
		return generateOnce(cmd.OutOrStdout(), cfg)
	}
	if err := once(); err != nil {
		if !genWatch {
			return err
		}
		log.Error("generation failed", "error", err)
	}
	if !genWatch {
		return nil
	}
	if isURL(cfg.Input) {
		return fmt.Errorf("--watch needs a local input file")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", cfg.Input)
	return watchFile(ctx, cfg.Input, once)
}

// applyGenerateFlags overrides config values with the flags the user set.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	f := cmd.Flags()
	set := func(key string) { cfg.Sources[key] = config.SourceFlag }

	if f.Changed("input") {
		cfg.Input = genInput
		set("input")
	}
	if len(args) == 1 {
		cfg.Input = args[0]
		set("input")
	}
	if f.Changed("schema") {
		cfg.Schemas = append([]string(nil), genSchemas...)
		set("schemas")
	}
	if f.Changed("optional") {
		cfg.Optional = genOptional
		set("optional")
	}
	if f.Changed("seed") {
		cfg.Seed = genSeed
		set("seed")
	}
	if f.Changed("min-items") {
		cfg.MinItems = genMinItems
		set("minItems")
	}
	if f.Changed("max-items") {
		cfg.MaxItems = genMaxItems
		set("maxItems")
	}
	if f.Changed("format") {
		cfg.Format = genFormat
		set("format")
	}
	if f.Changed("indent") {
		cfg.Indent = genIndent
		set("indent")
	}
	if f.Changed("root-name") {
		cfg.RootName = genRootName
		set("rootName")
	}
	if f.Changed("resolve") {
		cfg.Resolve = genResolve
		set("resolve")
	}
}

// generateOnce loads the input, generates and writes one fixture.
func generateOnce(stdout io.Writer, cfg *config.Config) error {
	src, err := loadSource(cfg.Input)
	if err != nil {
		return err
	}
	targets, err := src.targets(cfg.Schemas)
	if err != nil {
		return err
	}
	tree, err := buildFixture(cfg, src, targets)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if genQuery != "" {
		results, err := payload.QueryTree(tree, genQuery)
		if err != nil {
			return err
		}
		if err := output.JSON(&buf, results); err != nil {
			return err
		}
	} else {
		format, err := payload.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		if err := payload.Render(&buf, format, tree, payload.RenderOptions{
			Indent:   cfg.IndentString(),
			RootName: cfg.RootName,
		}); err != nil {
			return err
		}
		if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
			buf.WriteByte('\n')
		}
	}

	if genOutput == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(genOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info("fixture written", "path", genOutput, "schemas", len(targets))
	return nil
}

// buildFixture generates every target into one tree. A single target is
// emitted as is; several become an object keyed by schema name.
func buildFixture(cfg *config.Config, src *source, targets []target) (*model.Value, error) {
	opts := []generator.ContextOption{
		generator.WithDefinitions(src.Definitions),
		generator.WithOptions(generator.Options{
			GenerateOptionalFields: cfg.Optional,
			MinItems:               cfg.MinItems,
			MaxItems:               cfg.MaxItems,
		}),
		generator.WithLogger(log),
	}
	if cfg.Seed != 0 {
		opts = append(opts, generator.WithSeed(cfg.Seed))
	}
	gen := generator.NewContext(opts...)
	b := gen.Builder()

	if len(targets) == 1 {
		if err := gen.Generate(targets[0].Schema); err != nil {
			return nil, fmt.Errorf("generate %s: %w", targets[0].Name, err)
		}
	} else {
		err := b.Object(func() error {
			for _, t := range targets {
				if err := b.Property(t.Name, func() error { return gen.Generate(t.Schema) }); err != nil {
					return fmt.Errorf("generate %s: %w", t.Name, err)
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	tree := b.Tree()
	if !cfg.Resolve {
		return tree, nil
	}
	ropts := []functions.ResolverOption{functions.WithLogger(log)}
	if cfg.Seed != 0 {
		ropts = append(ropts, functions.WithSeed(cfg.Seed))
	}
	return functions.NewResolver(ropts...).Resolve(tree)
}
