// Package remote talks to an icon API over HTTP.
//
// The API serves whole collections as <base>/<prefix>.json. Responses
// are validated before they reach the local cache so a broken upstream
// never poisons it.
package remote
