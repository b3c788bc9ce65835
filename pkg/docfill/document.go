package docfill

import (
	"encoding/json"
	"fmt"
)

// Document is the parsed form of a document snapshot fetched from the
// document store. Every structural element carries the native start and
// end index the store assigned to it in its own coordinate space; those
// indexes are the only authority for positioning mutations (see
// AnchorFor).
type Document struct {
	DocumentID string `json:"documentId,omitempty"`
	Title      string `json:"title,omitempty"`
	Body       *Body  `json:"body"`
}

// Body holds the ordered top-level structural elements of a document.
type Body struct {
	Content []StructuralElement `json:"content"`
}

// StructuralElement is a tagged variant: exactly one of Paragraph,
// Table or SectionBreak is set. Elements with no recognized variant are
// rejected at parse time rather than silently skipped.
type StructuralElement struct {
	StartIndex int64 `json:"startIndex"`
	EndIndex   int64 `json:"endIndex"`

	Paragraph    *Paragraph    `json:"paragraph,omitempty"`
	Table        *Table        `json:"table,omitempty"`
	SectionBreak *SectionBreak `json:"sectionBreak,omitempty"`
}

// Paragraph is a run of inline elements ending in an implicit newline
// (the newline is part of the final text run's content as delivered by
// the store).
type Paragraph struct {
	Elements []ParagraphElement `json:"elements"`
}

// ParagraphElement is a tagged variant: one of TextRun or PageBreak.
type ParagraphElement struct {
	StartIndex int64 `json:"startIndex"`
	EndIndex   int64 `json:"endIndex"`

	TextRun   *TextRun   `json:"textRun,omitempty"`
	PageBreak *PageBreak `json:"pageBreak,omitempty"`
}

// TextRun is a span of text with uniform styling.
type TextRun struct {
	Content string `json:"content"`
}

// PageBreak contributes no characters to the linear text but occupies
// one slot in the document coordinate space.
type PageBreak struct{}

// SectionBreak contributes nothing to the linear text.
type SectionBreak struct{}

// Table is a grid of rows and cells. Cells contain their own
// structural elements; nested tables inside cells are skipped during
// extraction.
type Table struct {
	Rows      int64      `json:"rows"`
	Columns   int64      `json:"columns"`
	TableRows []TableRow `json:"tableRows"`
}

// TableRow is one row of a table.
type TableRow struct {
	StartIndex int64       `json:"startIndex"`
	EndIndex   int64       `json:"endIndex"`
	TableCells []TableCell `json:"tableCells"`
}

// TableCell is one cell of a table row.
type TableCell struct {
	StartIndex int64               `json:"startIndex"`
	EndIndex   int64               `json:"endIndex"`
	Content    []StructuralElement `json:"content"`
}

// ParseDocument decodes a fetched document snapshot and validates that
// every structural element is of a recognized kind.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, NewDocumentError("parse", "", err)
	}
	if doc.Body == nil {
		return nil, NewDocumentError("parse", doc.DocumentID, fmt.Errorf("document has no body"))
	}
	if err := validateElements(doc.Body.Content); err != nil {
		return nil, NewDocumentError("parse", doc.DocumentID, err)
	}
	return &doc, nil
}

func validateElements(elems []StructuralElement) error {
	for i, el := range elems {
		switch {
		case el.Paragraph != nil:
		case el.SectionBreak != nil:
		case el.Table != nil:
			for _, row := range el.Table.TableRows {
				for _, cell := range row.TableCells {
					if err := validateElements(cell.Content); err != nil {
						return err
					}
				}
			}
		default:
			return fmt.Errorf("unrecognized structural element at position %d (startIndex %d)", i, el.StartIndex)
		}
	}
	return nil
}

// Tables returns the top-level tables of the document in reading
// order.
func (d *Document) Tables() []*Table {
	if d.Body == nil {
		return nil
	}
	var tables []*Table
	for i := range d.Body.Content {
		if t := d.Body.Content[i].Table; t != nil {
			tables = append(tables, t)
		}
	}
	return tables
}
