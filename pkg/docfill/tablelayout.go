package docfill

const (
	titleFontSizePoints = 14
	bodyFontSizePoints  = 12

	// AlignmentCenter is the paragraph alignment applied to title rows.
	AlignmentCenter = "CENTER"
)

// CellPlan is the text and styling planned for one table cell.
type CellPlan struct {
	Row            int
	Column         int
	Text           string
	Bold           bool
	FontSizePoints float64
	Alignment      string
	ColumnSpan     int
}

// TableLayout is the computed shape of a section's 2-column table.
type TableLayout struct {
	RowCount    int
	ColumnCount int
	Cells       []CellPlan
}

// LayoutSection computes the row/column layout for a section. Row 0 is
// the merged title row spanning both columns when a title is present,
// and is omitted entirely for an empty title. One row follows per
// key/value pair, key in column 0 (bold) and value in column 1
// (regular), in the exact order the pairs were supplied.
func LayoutSection(section Section) *TableLayout {
	layout := &TableLayout{ColumnCount: 2}

	row := 0
	if section.Title != "" {
		layout.Cells = append(layout.Cells, CellPlan{
			Row:            0,
			Column:         0,
			Text:           section.Title,
			Bold:           true,
			FontSizePoints: titleFontSizePoints,
			Alignment:      AlignmentCenter,
			ColumnSpan:     2,
		})
		row = 1
	}

	for _, pair := range section.Pairs {
		layout.Cells = append(layout.Cells,
			CellPlan{
				Row:            row,
				Column:         0,
				Text:           pair.Key,
				Bold:           true,
				FontSizePoints: bodyFontSizePoints,
				ColumnSpan:     1,
			},
			CellPlan{
				Row:            row,
				Column:         1,
				Text:           pair.Value,
				FontSizePoints: bodyFontSizePoints,
				ColumnSpan:     1,
			},
		)
		row++
	}

	layout.RowCount = row
	return layout
}

// HasTitleRow reports whether the layout begins with a merged title
// row.
func (l *TableLayout) HasTitleRow() bool {
	return len(l.Cells) > 0 && l.Cells[0].ColumnSpan == l.ColumnCount
}
