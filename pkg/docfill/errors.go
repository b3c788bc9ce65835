// Package docfill error types. The taxonomy mirrors the failure modes
// of live-document planning: stale snapshots, missing table cells,
// markers without data, and unparseable store payloads.
package docfill

import (
	"errors"
	"fmt"
	"strings"
)

// StaleSnapshotError reports that a linear-text span could not be
// resolved against the document snapshot it was extracted from. The
// usual cause is a mutation applied after extraction; the caller must
// re-fetch the document and extract again before retrying.
type StaleSnapshotError struct {
	SpanStart int
	Reason    string
}

func (e *StaleSnapshotError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("stale snapshot: cannot resolve span at %d: %s", e.SpanStart, e.Reason)
	}
	return fmt.Sprintf("stale snapshot: cannot resolve span at %d", e.SpanStart)
}

// NewStaleSnapshotError creates a stale snapshot error for a span.
func NewStaleSnapshotError(spanStart int, reason string) error {
	return &StaleSnapshotError{SpanStart: spanStart, Reason: reason}
}

// CellNotFoundError reports a (row, column) address outside the actual
// table structure. Fatal to the current planning operation.
type CellNotFoundError struct {
	Row     int
	Column  int
	Rows    int
	Columns int
}

func (e *CellNotFoundError) Error() string {
	return fmt.Sprintf("cell (%d,%d) not found in table of %d rows x %d columns", e.Row, e.Column, e.Rows, e.Columns)
}

// NewCellNotFoundError creates a cell not found error.
func NewCellNotFoundError(row, col, rows, cols int) error {
	return &CellNotFoundError{Row: row, Column: col, Rows: rows, Columns: cols}
}

// UnknownSectionNameError reports a template marker whose section name
// has no caller-supplied data. Non-fatal by default: the planner skips
// the marker and keeps going. Strict mode promotes it to an error.
type UnknownSectionNameError struct {
	Name string
}

func (e *UnknownSectionNameError) Error() string {
	return fmt.Sprintf("no data supplied for section %q", e.Name)
}

// NewUnknownSectionNameError creates an unknown section name error.
func NewUnknownSectionNameError(name string) error {
	return &UnknownSectionNameError{Name: name}
}

// MalformedMarkerError describes an unterminated or mismatched
// asset-section tag. The tokenizer treats such spans as plain text and
// never returns this error; it exists as a non-fatal diagnostic.
type MalformedMarkerError struct {
	Marker   string
	Position int
}

func (e *MalformedMarkerError) Error() string {
	return fmt.Sprintf("malformed marker %q at position %d", e.Marker, e.Position)
}

// DocumentError represents a failure while parsing or operating on a
// document snapshot.
type DocumentError struct {
	Operation  string
	DocumentID string
	Cause      error
}

func (e *DocumentError) Error() string {
	if e.DocumentID != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of %q: %v", e.Operation, e.DocumentID, e.Cause)
	}
	if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a document error.
func NewDocumentError(operation, documentID string, cause error) error {
	return &DocumentError{Operation: operation, DocumentID: documentID, Cause: cause}
}

// ValidationIssue is a single advisory validation problem.
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError collects advisory validation problems. Validation is
// advisory: planning proceeds on invalid input, callers decide whether
// to surface issues beforehand.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}
	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}
	parts := []string{fmt.Sprintf("%d validation issues:", len(e.Issues))}
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

// IsStaleSnapshotError reports whether err is a stale snapshot error.
func IsStaleSnapshotError(err error) bool {
	var target *StaleSnapshotError
	return errors.As(err, &target)
}

// IsCellNotFoundError reports whether err is a cell not found error.
func IsCellNotFoundError(err error) bool {
	var target *CellNotFoundError
	return errors.As(err, &target)
}

// IsUnknownSectionNameError reports whether err is an unknown section
// name error.
func IsUnknownSectionNameError(err error) bool {
	var target *UnknownSectionNameError
	return errors.As(err, &target)
}

// IsDocumentError reports whether err is a document error.
func IsDocumentError(err error) bool {
	var target *DocumentError
	return errors.As(err, &target)
}
