// Package services defines the error markers shared by subalch's
// orchestration code and external integrations.
//
// Wrap tags a failure with one of the exported sentinels so the CLI can pick
// an exit code and operators get a consistent "stage: operation: message"
// prefix regardless of which component failed.
package services
