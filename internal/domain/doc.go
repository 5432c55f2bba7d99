// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (icons, sets, sources) and contracts (interfaces) only.
package domain
