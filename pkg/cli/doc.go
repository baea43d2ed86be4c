// Package cli provides the command-line interface for fixturegen.
//
// Commands:
//   - generate: Produce a random fixture for one or more schemas
//   - list: Show the definitions of an API description or schema bundle
//   - version: Show fixturegen version
//
// Inputs are OpenAPI 3 documents, Swagger 2.0 documents (converted on load)
// or schema bundles with a definitions table and an optional root schema.
// Settings are layered: defaults, global config, local .fixturegen.yaml,
// --config file, FIXTUREGEN_* environment variables and finally flags.
package cli
