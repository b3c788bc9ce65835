package docfill

import (
	"strings"
)

// sectionColumnWidthPoints is the fixed width applied to the key
// column of a generated section table.
const sectionColumnWidthPoints = 160

// Planner turns resolved template data into ordered mutation batches.
// Two strategies exist: literal text substitution (robust, used for
// variables and asset-section blocks) and structural table insertion
// (high fidelity, used for [[section:Name]] markers).
type Planner struct {
	config *Config
	logger *Logger
}

// NewPlanner creates a planner with the global configuration.
func NewPlanner() *Planner {
	return &Planner{config: GetGlobalConfig(), logger: GetLogger()}
}

// NewPlannerWithConfig creates a planner with a custom configuration.
func NewPlannerWithConfig(config *Config) *Planner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Planner{config: config, logger: GetLogger()}
}

// PlanSubstitution produces the text-substitution batch for a
// document: one replace-all operation per known literal spelling of
// each valued variable, and one per distinct asset-section block name
// with supplied data. The store finds the literal text itself, so no
// position mapping is involved and the operations commute.
//
// Variables without values and block names without data are skipped
// (the marker stays in the document) unless strict mode is on, in
// which case missing section data fails the plan.
func (p *Planner) PlanSubstitution(values map[string]string, assets map[string][]AssetSection, doc *Document) ([]Operation, error) {
	lt, err := Extract(doc.Body)
	if err != nil {
		return nil, err
	}
	tokens := Tokenize(lt.Text)

	var ops []Operation

	for _, v := range ResolveVariables(tokens) {
		value, ok := values[v.Name]
		if !ok {
			if p.logger.IsDebugMode() {
				p.logger.WithField("variable", v.Name).Debug("No value supplied, leaving placeholder")
			}
			continue
		}
		for _, spelling := range placeholderSpellings(v) {
			ops = append(ops, ReplaceAllText{Find: spelling, ReplaceWith: value, MatchCase: true})
		}
	}

	seen := make(map[string]bool)
	for _, tok := range tokens {
		if tok.Kind != TokenAssetSection || seen[tok.Name] {
			continue
		}
		seen[tok.Name] = true

		data, ok := assets[tok.Name]
		if !ok {
			if p.config.StrictMode {
				return nil, NewUnknownSectionNameError(tok.Name)
			}
			p.logger.WithField("section", tok.Name).Warn("No data for asset section, leaving block")
			continue
		}
		rendering := RenderAssetSectionsText(data, p.config.MinAssetPadding, p.config.PaddingMargin)
		ops = append(ops, ReplaceAllText{Find: tok.RawPlaceholder, ReplaceWith: rendering, MatchCase: true})
	}

	return ops, nil
}

// placeholderSpellings returns every literal spelling the substitution
// strategy clears for a variable: the first-seen literal, the plain
// and spaced forms, and each known typed-suffix form in both plain and
// spaced variants.
func placeholderSpellings(v ResolvedVariable) []string {
	spellings := []string{
		v.Placeholder,
		"{{" + v.Name + "}}",
		"{{ " + v.Name + " }}",
	}
	types := []VarType{VarTypeText, VarTypeNumber, VarTypeDate, VarTypeEmail}
	if !KnownVarType(v.Type) && v.Type != "" {
		types = append(types, v.Type)
	}
	for _, t := range types {
		spellings = append(spellings,
			"{{"+v.Name+":"+string(t)+"}}",
			"{{ "+v.Name+":"+string(t)+" }}",
		)
	}

	seen := make(map[string]bool, len(spellings))
	out := spellings[:0]
	for _, s := range spellings {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// RenderAssetSectionsText renders asset sections as column-aligned
// plain text: each section's title followed by one "key : value" line
// per field, keys padded to max(minPadding, longest key + margin)
// characters before the colon. Sections are separated by a blank line.
func RenderAssetSectionsText(sections []AssetSection, minPadding, margin int) string {
	var blocks []string
	for _, section := range sections {
		var b strings.Builder
		b.WriteString(section.Title)
		b.WriteString("\n")

		keys := make([]string, 0, len(section.Fields))
		for _, f := range section.Fields {
			keys = append(keys, f.Key)
		}
		width := keyColumnWidth(keys, minPadding, margin)
		for _, f := range section.Fields {
			b.WriteString(padKey(f.Key, width))
			b.WriteString(": ")
			b.WriteString(f.Value)
			b.WriteString("\n")
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

// RenderSectionText is the plain-text fallback rendering for a table
// section, for callers that prefer the robust strategy over structural
// insertion.
func RenderSectionText(section Section, minPadding, margin int) string {
	var b strings.Builder
	if section.Title != "" {
		b.WriteString(section.Title)
		b.WriteString("\n")
	}
	keys := make([]string, 0, len(section.Pairs))
	for _, pair := range section.Pairs {
		keys = append(keys, pair.Key)
	}
	width := keyColumnWidth(keys, minPadding, margin)
	for _, pair := range section.Pairs {
		b.WriteString(padKey(pair.Key, width))
		b.WriteString(": ")
		b.WriteString(pair.Value)
		b.WriteString("\n")
	}
	return b.String()
}

func keyColumnWidth(keys []string, minPadding, margin int) int {
	longest := 0
	for _, k := range keys {
		if len(k) > longest {
			longest = len(k)
		}
	}
	if longest+margin > minPadding {
		return longest + margin
	}
	return minPadding
}

func padKey(key string, width int) string {
	if len(key) >= width {
		return key
	}
	return key + strings.Repeat(" ", width-len(key))
}

// PlanSectionTables produces the structural batch for every
// [[section:Name]] marker with supplied data. Markers are processed in
// reverse document order and each table is inserted at its marker's
// end anchor, so no operation ever moves content that a later
// operation still addresses; the marker literal is deleted as the
// final step for its section. Unknown section names are skipped unless
// strict mode is on.
func (p *Planner) PlanSectionTables(sections map[string]Section, doc *Document) ([]Operation, error) {
	lt, err := Extract(doc.Body)
	if err != nil {
		return nil, err
	}

	var markers []Token
	for _, tok := range Tokenize(lt.Text) {
		if tok.Kind == TokenSectionMarker {
			markers = append(markers, tok)
		}
	}

	var ops []Operation
	for i := len(markers) - 1; i >= 0; i-- {
		tok := markers[i]
		section, ok := sections[tok.Name]
		if !ok {
			if p.config.StrictMode {
				return nil, NewUnknownSectionNameError(tok.Name)
			}
			p.logger.WithField("section", tok.Name).Warn("No data for section marker, leaving marker")
			continue
		}

		layout := LayoutSection(section)
		if layout.RowCount == 0 {
			p.logger.WithField("section", tok.Name).Warn("Empty section, leaving marker")
			continue
		}

		markerStart, err := AnchorFor(lt, tok.SpanStart)
		if err != nil {
			return nil, err
		}
		markerEnd, err := AnchorForEnd(lt, tok.SpanEnd)
		if err != nil {
			return nil, err
		}

		ops = append(ops, p.planSectionTable(layout, markerStart, markerEnd)...)
	}
	return ops, nil
}

// planSectionTable emits the ordered operations for one section table.
// The table is inserted at the marker's end so the marker text keeps
// its indexes until the deletion at the end; cell fills run
// bottom-right to top-left so each insertion shifts only content that
// no later operation in the batch addresses.
func (p *Planner) planSectionTable(layout *TableLayout, markerStart, markerEnd StructuralAnchor) []Operation {
	rows, cols := layout.RowCount, layout.ColumnCount
	insertAt := markerEnd.DocumentIndex
	tableStart := FreshTableStart(insertAt)

	ops := []Operation{
		InsertTable{Index: insertAt, Rows: int64(rows), Columns: int64(cols)},
	}

	if layout.HasTitleRow() {
		ops = append(ops, MergeCells{TableRange: TableRange{
			TableStartIndex: tableStart,
			Row:             0,
			Column:          0,
			RowSpan:         1,
			ColumnSpan:      int64(cols),
		}})
	}

	for i := len(layout.Cells) - 1; i >= 0; i-- {
		cell := layout.Cells[i]
		if cell.Text == "" {
			continue
		}
		at := FreshCellParagraphIndex(tableStart, cell.Row, cell.Column, cols) + 1
		textRange := Range{StartIndex: at, EndIndex: at + int64(len(cell.Text))}

		ops = append(ops,
			InsertText{Index: at, Text: cell.Text},
			SetTextStyle{Range: textRange, Style: TextStyle{Bold: cell.Bold, FontSizePoints: cell.FontSizePoints}},
		)
		if cell.Alignment != "" {
			ops = append(ops, SetParagraphStyle{Range: textRange, Style: ParagraphStyle{Alignment: cell.Alignment}})
		}
	}

	ops = append(ops,
		SetColumnProperties{TableStartIndex: tableStart, ColumnIndices: []int64{0}, WidthPoints: sectionColumnWidthPoints},
		SetCellStyle{TableRange: TableRange{
			TableStartIndex: tableStart,
			Row:             0,
			Column:          0,
			RowSpan:         int64(rows),
			ColumnSpan:      int64(cols),
		}, Style: CellStyle{BorderWidthPoints: 0}},
		DeleteRange{Range: Range{StartIndex: markerStart.DocumentIndex, EndIndex: markerEnd.DocumentIndex}},
	)
	return ops
}
