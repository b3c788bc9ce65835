package docfill

import (
	"fmt"
	"strings"
)

// syntheticOrigin marks a linear-text character that has no native
// index in the document coordinate space.
const syntheticOrigin int64 = -1

// LinearText is the flattened, reading-order plain-text projection of
// a document snapshot, together with a per-character trace back to the
// native document index each character came from. It is built once per
// fetch and never mutated; after any structural mutation the document
// must be re-fetched and re-extracted.
type LinearText struct {
	Text string

	origins []int64
}

// Len returns the length of the linear text.
func (lt *LinearText) Len() int {
	return len(lt.Text)
}

// originAt returns the native document index of the character at i,
// or false if i is out of range or the character is synthetic.
func (lt *LinearText) originAt(i int) (int64, bool) {
	if i < 0 || i >= len(lt.origins) {
		return 0, false
	}
	if lt.origins[i] == syntheticOrigin {
		return 0, false
	}
	return lt.origins[i], true
}

// Extract flattens a document body into a LinearText. Paragraph runs
// are appended in order; tables are walked rows top-to-bottom, cells
// left-to-right, each cell's paragraphs in order. Nested tables inside
// cells are skipped. Page breaks and section breaks contribute no
// characters.
func Extract(body *Body) (*LinearText, error) {
	if body == nil {
		return &LinearText{}, nil
	}

	var text strings.Builder
	var origins []int64

	if err := extractElements(body.Content, &text, &origins, true); err != nil {
		return nil, err
	}

	return &LinearText{Text: text.String(), origins: origins}, nil
}

func extractElements(elems []StructuralElement, text *strings.Builder, origins *[]int64, allowTables bool) error {
	for _, el := range elems {
		switch {
		case el.Paragraph != nil:
			extractParagraph(el.Paragraph, text, origins)
		case el.Table != nil:
			if !allowTables {
				// Nested table: out of scope, skipped best-effort.
				continue
			}
			for _, row := range el.Table.TableRows {
				for _, cell := range row.TableCells {
					if err := extractElements(cell.Content, text, origins, false); err != nil {
						return err
					}
				}
			}
		case el.SectionBreak != nil:
			// No characters.
		default:
			return NewDocumentError("extract", "", fmt.Errorf("unrecognized structural element at startIndex %d", el.StartIndex))
		}
	}
	return nil
}

func extractParagraph(p *Paragraph, text *strings.Builder, origins *[]int64) {
	for _, el := range p.Elements {
		if el.TextRun == nil {
			// Page breaks and other non-text inline elements occupy
			// coordinate slots but contribute no characters.
			continue
		}
		content := el.TextRun.Content
		text.WriteString(content)
		for off := 0; off < len(content); off++ {
			*origins = append(*origins, el.StartIndex+int64(off))
		}
	}
}
