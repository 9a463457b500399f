// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, exchange transcripts, sealed messages) and
// contracts (services, observers), plus the Emit helper for observers.
package domain
