package docfill

import (
	"context"
	"sync"
)

// DocumentStore is the external collaborator holding the documents.
// Fetch returns a structural snapshot whose elements carry native
// indexes; ApplyMutations applies one ordered batch against the
// current document state. Store failures are opaque to this package
// and propagate unchanged.
type DocumentStore interface {
	Fetch(ctx context.Context, documentID string) (*Document, error)
	ApplyMutations(ctx context.Context, documentID string, ops []Operation) error
	Copy(ctx context.Context, documentID, newTitle string) (string, error)
	ExportAsHTML(ctx context.Context, documentID string) (string, error)
	ExportAsPDF(ctx context.Context, documentID string) ([]byte, error)
}

// Filler orchestrates the fetch, compute, mutate, re-fetch pipeline
// over a document store. At most one mutation batch is in flight per
// Filler at a time: anchors are only valid against the document state
// immediately preceding their batch, so batches against the same
// document must be strictly sequential. A failed batch abandons the
// remaining stages; the document must then be assumed partially
// mutated and be re-fetched before any retry.
type Filler struct {
	store   DocumentStore
	planner *Planner
	logger  *Logger

	mu sync.Mutex
}

// NewFiller creates a filler over a store with the global
// configuration.
func NewFiller(store DocumentStore) *Filler {
	return &Filler{store: store, planner: NewPlanner(), logger: GetLogger()}
}

// NewFillerWithConfig creates a filler with a custom configuration.
func NewFillerWithConfig(store DocumentStore, config *Config) *Filler {
	return &Filler{store: store, planner: NewPlannerWithConfig(config), logger: GetLogger()}
}

// Inspect fetches a document and returns its markers for form
// generation.
func (f *Filler) Inspect(ctx context.Context, documentID string) (*ExtractResult, error) {
	doc, err := f.store.Fetch(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return ExtractAndTokenize(doc)
}

// FillValues runs the text-substitution strategy against a document:
// fetch, plan, apply as a single ordered batch.
func (f *Filler) FillValues(ctx context.Context, documentID string, values map[string]string, assets map[string][]AssetSection) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.store.Fetch(ctx, documentID)
	if err != nil {
		return err
	}
	ops, err := f.planner.PlanSubstitution(values, assets, doc)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		f.logger.WithField("document", documentID).Debug("Nothing to substitute")
		return nil
	}
	return f.store.ApplyMutations(ctx, documentID, ops)
}

// InsertSectionTables runs the structural strategy against a
// document. The snapshot is fetched fresh inside the call, never
// reused from an earlier stage, because any prior mutation invalidates
// all anchors.
func (f *Filler) InsertSectionTables(ctx context.Context, documentID string, sections map[string]Section) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.store.Fetch(ctx, documentID)
	if err != nil {
		return err
	}
	ops, err := f.planner.PlanSectionTables(sections, doc)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		f.logger.WithField("document", documentID).Debug("No section tables to insert")
		return nil
	}
	return f.store.ApplyMutations(ctx, documentID, ops)
}

// Fill copies the template document under a new title, substitutes
// values and asset sections, then inserts section tables as a second
// sequential batch with its own fresh snapshot. Returns the new
// document's id. On failure the new document may be partially filled.
func (f *Filler) Fill(ctx context.Context, templateID, newTitle string, values map[string]string, assets map[string][]AssetSection, sections map[string]Section) (string, error) {
	newID, err := f.store.Copy(ctx, templateID, newTitle)
	if err != nil {
		return "", err
	}

	if err := f.FillValues(ctx, newID, values, assets); err != nil {
		return newID, err
	}
	if len(sections) > 0 {
		if err := f.InsertSectionTables(ctx, newID, sections); err != nil {
			return newID, err
		}
	}
	return newID, nil
}

// ExportPDF exports a filled document through the store.
func (f *Filler) ExportPDF(ctx context.Context, documentID string) ([]byte, error) {
	return f.store.ExportAsPDF(ctx, documentID)
}

// ExportHTML exports a filled document's preview markup through the
// store.
func (f *Filler) ExportHTML(ctx context.Context, documentID string) (string, error) {
	return f.store.ExportAsHTML(ctx, documentID)
}
