// Package commands wires the numconv CLI.
//
// Each conversion is a subcommand taking its input as positional arguments;
// serve starts the redis-protocol server. Configuration comes from a YAML
// file (--config, default ~/.numconv/config.yaml) with flags taking
// precedence.
//
// Negative numbers must follow "--" so they are not read as flags:
//
//	numconv number-to-base64 -- -1
package commands
