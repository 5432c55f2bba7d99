// Package collections locates icon collections on disk.
//
// A collection lives in a JSON file named <prefix>.json. Locators
// search shipped collection directories and the local cache, and can
// fall back to fetching from the icon API for prefixes that are not
// present anywhere yet.
package collections
