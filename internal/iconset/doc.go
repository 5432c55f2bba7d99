// Package iconset reads and writes icon set collections.
//
// Collections are JSON documents holding a prefix, the icon bodies and
// their geometry, and optional aliases. The package loads them from
// disk, extracts filtered subsets, imports directories of raw SVG
// files into new collections, and renders single icons back to
// standalone SVG documents.
package iconset
