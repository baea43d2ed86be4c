// Package config provides the layered configuration of the fixturegen CLI.
//
// Precedence, highest first:
//
//  1. Command-line flags
//  2. Environment variables (FIXTUREGEN_* prefix)
//  3. An explicit config file (--config or FIXTUREGEN_CONFIG)
//  4. Local config file (.fixturegen.yaml in the current directory)
//  5. Global config file ($XDG_CONFIG_HOME/fixturegen/config.yaml)
//  6. Default values
//
// Every merged value records where it came from in Config.Sources.
package config
