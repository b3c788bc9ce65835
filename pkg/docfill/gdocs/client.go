// Package gdocs implements docfill.DocumentStore over the Google Docs
// and Drive APIs. Documents are fetched through documents.get, mutated
// through documents.batchUpdate, copied and exported through the Drive
// files endpoints.
//
// Token acquisition is the caller's responsibility: pass a pre-built
// option.ClientOption (service account, token source, API key) to New,
// or an oauth2.TokenSource to NewWithTokenSource.
package gdocs

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/docfill/go-docfill/pkg/docfill"
)

const (
	mimeHTML = "text/html"
	mimePDF  = "application/pdf"
)

// Store is a live document store backed by the Google Docs and Drive
// APIs.
type Store struct {
	docs   *docs.Service
	drive  *drive.Service
	logger *docfill.Logger
}

var _ docfill.DocumentStore = (*Store)(nil)

// New creates a store with the given client options.
func New(ctx context.Context, opts ...option.ClientOption) (*Store, error) {
	docsService, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docs service: %w", err)
	}
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Store{
		docs:   docsService,
		drive:  driveService,
		logger: docfill.GetLogger(),
	}, nil
}

// NewWithTokenSource creates a store authenticated by an OAuth token
// source.
func NewWithTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Store, error) {
	return New(ctx, option.WithTokenSource(ts))
}

// Fetch retrieves a document snapshot and converts it into the docfill
// node model.
func (s *Store) Fetch(ctx context.Context, documentID string) (*docfill.Document, error) {
	doc, err := s.docs.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	converted, err := convertDocument(doc)
	if err != nil {
		return nil, err
	}
	if s.logger.IsDebugMode() {
		s.logger.WithFields(docfill.Fields{
			"document": documentID,
			"elements": len(converted.Body.Content),
		}).Debug("Fetched document snapshot")
	}
	return converted, nil
}

// ApplyMutations applies one ordered operation batch through
// batchUpdate. The API applies requests strictly in order, matching
// the planner's sequencing contract.
func (s *Store) ApplyMutations(ctx context.Context, documentID string, ops []docfill.Operation) error {
	if len(ops) == 0 {
		return nil
	}
	requests, err := Requests(ops)
	if err != nil {
		return err
	}
	_, err = s.docs.Documents.
		BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{Requests: requests}).
		Context(ctx).
		Do()
	return err
}

// Copy duplicates a document under a new title and returns the new
// document's id.
func (s *Store) Copy(ctx context.Context, documentID, newTitle string) (string, error) {
	file, err := s.drive.Files.Copy(documentID, &drive.File{Name: newTitle}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return file.Id, nil
}

// ExportAsHTML exports the document as HTML markup.
func (s *Store) ExportAsHTML(ctx context.Context, documentID string) (string, error) {
	data, err := s.export(ctx, documentID, mimeHTML)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportAsPDF exports the document as a PDF blob.
func (s *Store) ExportAsPDF(ctx context.Context, documentID string) ([]byte, error) {
	return s.export(ctx, documentID, mimePDF)
}

func (s *Store) export(ctx context.Context, documentID, mimeType string) ([]byte, error) {
	resp, err := s.drive.Files.Export(documentID, mimeType).Context(ctx).Download()
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
