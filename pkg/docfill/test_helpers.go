package docfill

import "strings"

// Helpers for building synthetic document snapshots in tests. Index
// assignment mimics the store: body content starts at index 1, every
// table, row and cell marker consumes one slot, and paragraph text
// (including its trailing newline) consumes one slot per character.

type docBuilder struct {
	cursor int64
	elems  []StructuralElement
}

func newDocBuilder() *docBuilder {
	return &docBuilder{cursor: 1}
}

// paragraph appends a paragraph with a single text run. A trailing
// newline is added when missing, matching store payloads.
func (b *docBuilder) paragraph(text string) *docBuilder {
	return b.paragraphRuns(ensureNewline(text))
}

// paragraphRuns appends a paragraph split into the given runs. The
// final run should end with a newline.
func (b *docBuilder) paragraphRuns(runs ...string) *docBuilder {
	start := b.cursor
	var elements []ParagraphElement
	for _, run := range runs {
		end := b.cursor + int64(len(run))
		elements = append(elements, ParagraphElement{
			StartIndex: b.cursor,
			EndIndex:   end,
			TextRun:    &TextRun{Content: run},
		})
		b.cursor = end
	}
	b.elems = append(b.elems, StructuralElement{
		StartIndex: start,
		EndIndex:   b.cursor,
		Paragraph:  &Paragraph{Elements: elements},
	})
	return b
}

// table appends a table; cells[r][c] becomes a single-paragraph cell.
func (b *docBuilder) table(cells [][]string) *docBuilder {
	tableStart := b.cursor
	b.cursor += tableSlot

	cols := 0
	if len(cells) > 0 {
		cols = len(cells[0])
	}
	var rows []TableRow
	for _, rowTexts := range cells {
		rowStart := b.cursor
		b.cursor += rowSlot
		var tableCells []TableCell
		for _, cellText := range rowTexts {
			cellStart := b.cursor
			b.cursor += cellSlot
			text := ensureNewline(cellText)
			paraStart := b.cursor
			b.cursor += int64(len(text))
			tableCells = append(tableCells, TableCell{
				StartIndex: cellStart,
				EndIndex:   b.cursor,
				Content: []StructuralElement{{
					StartIndex: paraStart,
					EndIndex:   b.cursor,
					Paragraph: &Paragraph{Elements: []ParagraphElement{{
						StartIndex: paraStart,
						EndIndex:   b.cursor,
						TextRun:    &TextRun{Content: text},
					}}},
				}},
			})
		}
		rows = append(rows, TableRow{StartIndex: rowStart, EndIndex: b.cursor, TableCells: tableCells})
	}

	b.elems = append(b.elems, StructuralElement{
		StartIndex: tableStart,
		EndIndex:   b.cursor,
		Table: &Table{
			Rows:      int64(len(cells)),
			Columns:   int64(cols),
			TableRows: rows,
		},
	})
	return b
}

func (b *docBuilder) build() *Document {
	return &Document{
		DocumentID: "doc-test",
		Body:       &Body{Content: b.elems},
	}
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// applyTextOps applies replace-all operations to a plain string. Used
// by round-trip tests to simulate the store's literal-text matching.
func applyTextOps(text string, ops []Operation) string {
	for _, op := range ops {
		if r, ok := op.(ReplaceAllText); ok {
			text = strings.ReplaceAll(text, r.Find, r.ReplaceWith)
		}
	}
	return text
}
