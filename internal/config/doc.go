// Package config loads and validates the declarative bundle configuration.
//
// A bundle file lists the icon sources to aggregate and how to emit them:
//
//   - svg: directories of raw SVG files imported under a prefix
//   - icons: bare "prefix:name" references pulled from installed collections
//   - json: icon-set files, optionally filtered to specific icons
//   - builtin: collections embedded in the binary
//
// Files may be JSON or TOML (chosen by extension). The loaded value is
// immutable for the run: it is resolved once, passed into the pipeline,
// and never mutated.
package config
