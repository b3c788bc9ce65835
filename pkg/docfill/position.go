package docfill

// StructuralAnchor is a position in the document-mutation API's own
// coordinate space. Anchors computed from one snapshot are valid only
// until the next structural mutation of that document.
type StructuralAnchor struct {
	DocumentIndex int64
}

// AnchorFor maps the start of a linear-text span back to its native
// document index. The extraction trace carries, per character, the
// originating element's own start index plus the intra-element offset
// (strategy that needs no model of the store's internal slot
// bookkeeping). Fails with a StaleSnapshotError when the span cannot
// be resolved, which means the caller's snapshot no longer matches the
// text the span was computed against.
func AnchorFor(lt *LinearText, spanStart int) (StructuralAnchor, error) {
	if lt == nil {
		return StructuralAnchor{}, NewStaleSnapshotError(spanStart, "no linear text")
	}
	origin, ok := lt.originAt(spanStart)
	if !ok {
		return StructuralAnchor{}, NewStaleSnapshotError(spanStart, "no origin recorded for character")
	}
	return StructuralAnchor{DocumentIndex: origin}, nil
}

// AnchorForEnd maps the exclusive end of a half-open span to the
// document index one past its last character.
func AnchorForEnd(lt *LinearText, spanEnd int) (StructuralAnchor, error) {
	anchor, err := AnchorFor(lt, spanEnd-1)
	if err != nil {
		return StructuralAnchor{}, err
	}
	anchor.DocumentIndex++
	return anchor, nil
}

// CellInsertionIndex returns the anchor for inserting text inside the
// addressed cell: the native start index of the cell's first
// paragraph, plus one. Inserting exactly at the paragraph's own start
// index places content before the paragraph marker, outside the cell's
// visible content, so the +1 is load-bearing.
func CellInsertionIndex(table *Table, row, col int) (StructuralAnchor, error) {
	if table == nil {
		return StructuralAnchor{}, NewCellNotFoundError(row, col, 0, 0)
	}
	rows := len(table.TableRows)
	if row < 0 || row >= rows {
		return StructuralAnchor{}, NewCellNotFoundError(row, col, rows, int(table.Columns))
	}
	cells := table.TableRows[row].TableCells
	if col < 0 || col >= len(cells) {
		return StructuralAnchor{}, NewCellNotFoundError(row, col, rows, len(cells))
	}

	for _, el := range cells[col].Content {
		if el.Paragraph != nil {
			return StructuralAnchor{DocumentIndex: el.StartIndex + 1}, nil
		}
	}
	return StructuralAnchor{}, NewCellNotFoundError(row, col, rows, len(cells))
}

// Slot costs of the store's coordinate space for tables created within
// the current mutation batch, where no fetched snapshot can supply
// native indexes: the table element itself occupies one slot past its
// insertion point, each row one slot, each cell one slot followed by
// its (initially empty) paragraph of one newline slot.
const (
	tableSlot         = 1
	rowSlot           = 1
	cellSlot          = 1
	emptyParagraphLen = 1
)

// FreshTableStart returns the start index of a table inserted at the
// given anchor.
func FreshTableStart(insertAt int64) int64 {
	return insertAt + tableSlot
}

// FreshCellParagraphIndex returns the start index of the first
// paragraph of cell (row, col) in a freshly inserted, still-empty
// table whose element begins at tableStart. Text insertion inside the
// cell goes at this index plus one, same as CellInsertionIndex.
func FreshCellParagraphIndex(tableStart int64, row, col, cols int) int64 {
	perCell := int64(cellSlot + emptyParagraphLen)
	perRow := int64(rowSlot) + int64(cols)*perCell

	idx := tableStart + tableSlot   // past the table element, at row 0
	idx += int64(row) * perRow      // full rows above
	idx += rowSlot                  // past this row's marker
	idx += int64(col) * perCell     // cells to the left
	idx += cellSlot                 // past this cell's marker
	return idx
}

// FreshTableLength returns the total coordinate-space length consumed
// by inserting an empty rows x cols table.
func FreshTableLength(rows, cols int) int64 {
	perCell := int64(cellSlot + emptyParagraphLen)
	return tableSlot + int64(rows)*(rowSlot+int64(cols)*perCell)
}
