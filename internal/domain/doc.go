// Package domain defines core data models and interfaces shared across the app.
// It holds request/result types and the contracts services depend on.
package domain
