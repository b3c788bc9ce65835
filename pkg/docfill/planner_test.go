package docfill

import (
	"strings"
	"testing"
)

func TestPlanSubstitutionRoundTrip(t *testing.T) {
	doc := newDocBuilder().
		paragraph("Dear {{client_name}},").
		paragraph("also known as {{ client_name }} or {{client_name:text}}").
		build()

	planner := NewPlannerWithConfig(DefaultConfig())
	ops, err := planner.PlanSubstitution(map[string]string{"client_name": "Acme"}, nil, doc)
	if err != nil {
		t.Fatalf("PlanSubstitution() error: %v", err)
	}

	lt, err := Extract(doc.Body)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	result := applyTextOps(lt.Text, ops)

	if strings.Contains(result, "{{client_name") || strings.Contains(result, "{{ client_name") {
		t.Errorf("placeholder spelling survived substitution: %q", result)
	}
	if !strings.Contains(result, "Dear Acme,") {
		t.Errorf("value not substituted: %q", result)
	}
}

func TestPlaceholderSpellings(t *testing.T) {
	v := ResolvedVariable{Name: "x", Placeholder: "{{x}}", Type: VarTypeText}
	spellings := placeholderSpellings(v)

	want := []string{"{{x}}", "{{ x }}", "{{x:text}}", "{{ x:text }}", "{{x:number}}", "{{x:date}}", "{{x:email}}"}
	got := make(map[string]bool, len(spellings))
	for _, s := range spellings {
		if got[s] {
			t.Errorf("duplicate spelling %q", s)
		}
		got[s] = true
	}
	for _, w := range want {
		if !got[w] {
			t.Errorf("missing spelling %q in %v", w, spellings)
		}
	}
}

func TestPlanSubstitutionSkipsUnvaluedVariables(t *testing.T) {
	doc := newDocBuilder().paragraph("{{keep_me}} and {{fill_me}}").build()

	ops, err := NewPlannerWithConfig(DefaultConfig()).
		PlanSubstitution(map[string]string{"fill_me": "done"}, nil, doc)
	if err != nil {
		t.Fatalf("PlanSubstitution() error: %v", err)
	}

	for _, op := range ops {
		if r, ok := op.(ReplaceAllText); ok && strings.Contains(r.Find, "keep_me") {
			t.Errorf("unvalued variable planned for replacement: %+v", r)
		}
	}
}

func TestPlanSubstitutionAssetSection(t *testing.T) {
	doc := newDocBuilder().
		paragraph("Assets:").
		paragraph("{{#ASSET_SECTION:Property}}{{Tanah}} {{Bangunan}}{{/#ASSET_SECTION:Property}}").
		build()

	assets := map[string][]AssetSection{
		"Property": {
			{
				ID:    "p1",
				Title: "Rumah Jakarta",
				Fields: []Field{
					{ID: "f1", Key: "Tanah", Value: "120 m2"},
					{ID: "f2", Key: "Bangunan", Value: "80 m2"},
				},
			},
		},
	}

	ops, err := NewPlannerWithConfig(DefaultConfig()).PlanSubstitution(nil, assets, doc)
	if err != nil {
		t.Fatalf("PlanSubstitution() error: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d: %+v", len(ops), ops)
	}

	r, ok := ops[0].(ReplaceAllText)
	if !ok {
		t.Fatalf("expected ReplaceAllText, got %T", ops[0])
	}
	if !strings.HasPrefix(r.Find, "{{#ASSET_SECTION:Property}}") {
		t.Errorf("find target = %q, want the full block literal", r.Find)
	}
	if !strings.Contains(r.ReplaceWith, "Rumah Jakarta") {
		t.Errorf("rendering lacks section title: %q", r.ReplaceWith)
	}
	// Keys padded to the 25-character minimum before the colon.
	if !strings.Contains(r.ReplaceWith, "Tanah"+strings.Repeat(" ", 20)+": 120 m2") {
		t.Errorf("rendering lacks padded field line:\n%q", r.ReplaceWith)
	}
}

func TestRenderAssetSectionsTextPadding(t *testing.T) {
	longKey := strings.Repeat("k", 30)
	sections := []AssetSection{{
		Title: "S",
		Fields: []Field{
			{Key: "short", Value: "a"},
			{Key: longKey, Value: "b"},
		},
	}}

	out := RenderAssetSectionsText(sections, 25, 5)

	// Longest key is 30, so the column is 35 wide: short key padded
	// with 30 spaces, long key with 5.
	if !strings.Contains(out, "short"+strings.Repeat(" ", 30)+": a") {
		t.Errorf("short key not padded to longest+margin:\n%q", out)
	}
	if !strings.Contains(out, longKey+strings.Repeat(" ", 5)+": b") {
		t.Errorf("long key not padded by margin:\n%q", out)
	}
}

func TestRenderSectionTextMinimumPadding(t *testing.T) {
	section := Section{Title: "T", Pairs: []KeyValue{{Key: "k", Value: "v"}}}

	out := RenderSectionText(section, 30, 5)
	if !strings.Contains(out, "k"+strings.Repeat(" ", 29)+": v") {
		t.Errorf("key not padded to minimum width:\n%q", out)
	}
}

func TestPlanSubstitutionUnknownSectionName(t *testing.T) {
	doc := newDocBuilder().
		paragraph("{{#ASSET_SECTION:Mystery}}{{x}}{{/#ASSET_SECTION:Mystery}}").
		build()

	ops, err := NewPlannerWithConfig(DefaultConfig()).PlanSubstitution(nil, map[string][]AssetSection{}, doc)
	if err != nil {
		t.Fatalf("non-strict planning must not fail: %v", err)
	}
	if len(ops) != 0 {
		t.Errorf("expected marker to be skipped, got %+v", ops)
	}

	strict := DefaultConfig()
	strict.StrictMode = true
	if _, err := NewPlannerWithConfig(strict).PlanSubstitution(nil, map[string][]AssetSection{}, doc); !IsUnknownSectionNameError(err) {
		t.Errorf("strict mode: expected UnknownSectionNameError, got %v", err)
	}
}

func TestPlanSectionTablesOperationOrder(t *testing.T) {
	doc := newDocBuilder().
		paragraph("Assets below").
		paragraph("[[section:Property]]").
		build()

	sections := map[string]Section{
		"Property": {
			Title: "Property",
			Pairs: []KeyValue{
				{Key: "Tanah", Value: "120 m2"},
				{Key: "Bangunan", Value: "80 m2"},
			},
		},
	}

	ops, err := NewPlannerWithConfig(DefaultConfig()).PlanSectionTables(sections, doc)
	if err != nil {
		t.Fatalf("PlanSectionTables() error: %v", err)
	}
	if len(ops) == 0 {
		t.Fatal("expected operations")
	}

	insert, ok := ops[0].(InsertTable)
	if !ok {
		t.Fatalf("first op = %T, want InsertTable", ops[0])
	}
	if insert.Rows != 3 || insert.Columns != 2 {
		t.Errorf("table shape = %dx%d, want 3x2", insert.Rows, insert.Columns)
	}

	lt, err := Extract(doc.Body)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	markerStart := strings.Index(lt.Text, "[[section:Property]]")
	startAnchor, err := AnchorFor(lt, markerStart)
	if err != nil {
		t.Fatalf("AnchorFor() error: %v", err)
	}
	wantInsertAt := startAnchor.DocumentIndex + int64(len("[[section:Property]]"))
	if insert.Index != wantInsertAt {
		t.Errorf("table inserted at %d, want marker end %d", insert.Index, wantInsertAt)
	}

	if _, ok := ops[1].(MergeCells); !ok {
		t.Errorf("second op = %T, want MergeCells for the title row", ops[1])
	}

	del, ok := ops[len(ops)-1].(DeleteRange)
	if !ok {
		t.Fatalf("last op = %T, want DeleteRange of the marker", ops[len(ops)-1])
	}
	if del.Range.StartIndex != startAnchor.DocumentIndex || del.Range.EndIndex != wantInsertAt {
		t.Errorf("marker deletion range = %+v, want [%d,%d)", del.Range, startAnchor.DocumentIndex, wantInsertAt)
	}
}

func TestPlanSectionTablesFillsCellsInReverse(t *testing.T) {
	doc := newDocBuilder().paragraph("[[section:S]]").build()
	sections := map[string]Section{
		"S": {
			Title: "S",
			Pairs: []KeyValue{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
		},
	}

	ops, err := NewPlannerWithConfig(DefaultConfig()).PlanSectionTables(sections, doc)
	if err != nil {
		t.Fatalf("PlanSectionTables() error: %v", err)
	}

	// Every text insertion must land at a strictly lower index than
	// the one before it, so no insertion shifts a later one.
	last := int64(-1)
	for _, op := range ops {
		ins, ok := op.(InsertText)
		if !ok {
			continue
		}
		if last != -1 && ins.Index >= last {
			t.Errorf("insertion at %d does not precede earlier insertion at %d", ins.Index, last)
		}
		last = ins.Index
	}
	if last == -1 {
		t.Fatal("no text insertions planned")
	}
}

func TestPlanSectionTablesStyling(t *testing.T) {
	doc := newDocBuilder().paragraph("[[section:S]]").build()
	sections := map[string]Section{
		"S": {Title: "Judul", Pairs: []KeyValue{{Key: "k", Value: "v"}}},
	}

	ops, err := NewPlannerWithConfig(DefaultConfig()).PlanSectionTables(sections, doc)
	if err != nil {
		t.Fatalf("PlanSectionTables() error: %v", err)
	}

	var sawTitleStyle, sawCenter, sawBorderStrip, sawColumnWidth bool
	for i, op := range ops {
		switch styled := op.(type) {
		case SetTextStyle:
			prev, ok := ops[i-1].(InsertText)
			if !ok {
				t.Errorf("SetTextStyle not directly after its InsertText: %T", ops[i-1])
				continue
			}
			wantRange := Range{StartIndex: prev.Index, EndIndex: prev.Index + int64(len(prev.Text))}
			if styled.Range != wantRange {
				t.Errorf("style range %+v does not cover inserted text %+v", styled.Range, wantRange)
			}
			if prev.Text == "Judul" && styled.Style.Bold && styled.Style.FontSizePoints == 14 {
				sawTitleStyle = true
			}
		case SetParagraphStyle:
			if styled.Style.Alignment == AlignmentCenter {
				sawCenter = true
			}
		case SetCellStyle:
			if styled.Style.BorderWidthPoints == 0 {
				sawBorderStrip = true
			}
		case SetColumnProperties:
			sawColumnWidth = true
		}
	}
	if !sawTitleStyle {
		t.Error("missing bold 14pt styling on the title text")
	}
	if !sawCenter {
		t.Error("missing centered paragraph styling on the title")
	}
	if !sawBorderStrip {
		t.Error("missing border strip over the table")
	}
	if !sawColumnWidth {
		t.Error("missing column width properties")
	}
}

func TestPlanSectionTablesMultipleMarkersReverseOrder(t *testing.T) {
	doc := newDocBuilder().
		paragraph("[[section:First]]").
		paragraph("middle").
		paragraph("[[section:Second]]").
		build()

	sections := map[string]Section{
		"First":  {Title: "First", Pairs: []KeyValue{{Key: "a", Value: "1"}}},
		"Second": {Title: "Second", Pairs: []KeyValue{{Key: "b", Value: "2"}}},
	}

	ops, err := NewPlannerWithConfig(DefaultConfig()).PlanSectionTables(sections, doc)
	if err != nil {
		t.Fatalf("PlanSectionTables() error: %v", err)
	}

	var inserts []InsertTable
	for _, op := range ops {
		if ins, ok := op.(InsertTable); ok {
			inserts = append(inserts, ins)
		}
	}
	if len(inserts) != 2 {
		t.Fatalf("expected 2 table insertions, got %d", len(inserts))
	}
	if inserts[0].Index <= inserts[1].Index {
		t.Errorf("markers not processed in reverse document order: %d then %d", inserts[0].Index, inserts[1].Index)
	}
}

func TestPlanSectionTablesUnknownName(t *testing.T) {
	doc := newDocBuilder().paragraph("[[section:Ghost]]").build()

	ops, err := NewPlannerWithConfig(DefaultConfig()).PlanSectionTables(map[string]Section{}, doc)
	if err != nil {
		t.Fatalf("non-strict planning must not fail: %v", err)
	}
	if len(ops) != 0 {
		t.Errorf("expected marker to be left alone, got %+v", ops)
	}

	strict := DefaultConfig()
	strict.StrictMode = true
	if _, err := NewPlannerWithConfig(strict).PlanSectionTables(map[string]Section{}, doc); !IsUnknownSectionNameError(err) {
		t.Errorf("strict mode: expected UnknownSectionNameError, got %v", err)
	}
}

func TestBatchLengthDelta(t *testing.T) {
	ops := []Operation{
		InsertTable{Index: 10, Rows: 3, Columns: 2},
		InsertText{Index: 20, Text: "hello"},
		DeleteRange{Range: Range{StartIndex: 5, EndIndex: 9}},
		ReplaceAllText{Find: "a", ReplaceWith: "bb"},
	}

	want := FreshTableLength(3, 2) + 5 - 4
	if got := BatchLengthDelta(ops); got != want {
		t.Errorf("BatchLengthDelta() = %d, want %d", got, want)
	}
}
