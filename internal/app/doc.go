// Package app wires application dependencies for the CLI.
//
// It builds the collection cache, the locator chain and the bundler
// from Config, exposing them via the Wire struct for commands to use.
package app
