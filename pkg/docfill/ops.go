package docfill

// Operation is one document mutation in a planner batch. Operations
// must be applied to the store in the exact order produced: each
// operation's indexes are defined relative to the document state after
// all earlier operations in the batch.
type Operation interface {
	isOperation()
	// NetLengthDelta is the net change, in coordinate-space slots, this
	// operation causes for all content after its position. Zero for
	// operations whose effect the store resolves itself (styling,
	// merging, literal-text replacement).
	NetLengthDelta() int64
}

// Range is a half-open [StartIndex, EndIndex) range in document
// coordinate space.
type Range struct {
	StartIndex int64
	EndIndex   int64
}

// TableCellAddress addresses a cell of a table by the table element's
// start index.
type TableCellAddress struct {
	TableStartIndex int64
	Row             int64
	Column          int64
}

// TableRange addresses a rectangular cell region of a table.
type TableRange struct {
	TableStartIndex int64
	Row             int64
	Column          int64
	RowSpan         int64
	ColumnSpan      int64
}

// TextStyle is the subset of character styling the planner emits.
type TextStyle struct {
	Bold           bool
	FontSizePoints float64
}

// ParagraphStyle is the subset of paragraph styling the planner emits.
type ParagraphStyle struct {
	Alignment string
}

// CellStyle is the subset of cell styling the planner emits. A zero
// BorderWidthPoints removes the borders.
type CellStyle struct {
	BorderWidthPoints float64
}

// DeleteRange removes the content in a range.
type DeleteRange struct {
	Range Range
}

func (DeleteRange) isOperation() {}
func (op DeleteRange) NetLengthDelta() int64 {
	return -(op.Range.EndIndex - op.Range.StartIndex)
}

// InsertText inserts literal text at an index.
type InsertText struct {
	Index int64
	Text  string
}

func (InsertText) isOperation() {}
func (op InsertText) NetLengthDelta() int64 {
	return int64(len(op.Text))
}

// InsertTable inserts an empty table at an index. The table element
// itself begins one slot past the insertion point.
type InsertTable struct {
	Index   int64
	Rows    int64
	Columns int64
}

func (InsertTable) isOperation() {}
func (op InsertTable) NetLengthDelta() int64 {
	return FreshTableLength(int(op.Rows), int(op.Columns))
}

// MergeCells merges a rectangular cell region into its head cell.
// Merging moves no content and frees no slots.
type MergeCells struct {
	TableRange TableRange
}

func (MergeCells) isOperation()          {}
func (MergeCells) NetLengthDelta() int64 { return 0 }

// ReplaceAllText replaces every occurrence of a literal string. The
// store performs the matching itself, so no index bookkeeping applies.
type ReplaceAllText struct {
	Find        string
	ReplaceWith string
	MatchCase   bool
}

func (ReplaceAllText) isOperation()          {}
func (ReplaceAllText) NetLengthDelta() int64 { return 0 }

// SetTextStyle applies character styling to a range.
type SetTextStyle struct {
	Range Range
	Style TextStyle
}

func (SetTextStyle) isOperation()          {}
func (SetTextStyle) NetLengthDelta() int64 { return 0 }

// SetParagraphStyle applies paragraph styling to a range.
type SetParagraphStyle struct {
	Range Range
	Style ParagraphStyle
}

func (SetParagraphStyle) isOperation()          {}
func (SetParagraphStyle) NetLengthDelta() int64 { return 0 }

// SetCellStyle applies cell styling to a cell region.
type SetCellStyle struct {
	TableRange TableRange
	Style      CellStyle
}

func (SetCellStyle) isOperation()          {}
func (SetCellStyle) NetLengthDelta() int64 { return 0 }

// SetColumnProperties sets the width of table columns.
type SetColumnProperties struct {
	TableStartIndex int64
	ColumnIndices   []int64
	WidthPoints     float64
}

func (SetColumnProperties) isOperation()          {}
func (SetColumnProperties) NetLengthDelta() int64 { return 0 }

// BatchLengthDelta sums the net length deltas of a batch. Useful for
// shifting anchors that were computed before the batch was applied.
func BatchLengthDelta(ops []Operation) int64 {
	var total int64
	for _, op := range ops {
		total += op.NetLengthDelta()
	}
	return total
}
