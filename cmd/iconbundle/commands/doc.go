// Package commands defines the iconbundle CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init     Scaffold a bundle file and seed the starter collection
//   - build    Run the pipeline and write the CSS bundle
//   - list     Show known collections or the icons of one collection
//   - preview  Render a single icon to a PNG file
//   - fetch    Download collections into the local cache
//   - version  Print version information
//
// # Implementation
//
// The root command resolves the state directory and builds the
// dependency graph (cache, locator chain, bundler) before any
// subcommand runs, so handlers share one app context.
package commands
