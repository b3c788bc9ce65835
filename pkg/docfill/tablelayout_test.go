package docfill

import (
	"testing"
)

func TestLayoutSectionWithTitle(t *testing.T) {
	section := Section{
		Title: "T",
		Pairs: []KeyValue{
			{Key: "Zulu", Value: "last letter"},
			{Key: "Alpha", Value: "first letter"},
		},
	}

	layout := LayoutSection(section)

	if layout.RowCount != 3 || layout.ColumnCount != 2 {
		t.Fatalf("layout = %dx%d, want 3x2", layout.RowCount, layout.ColumnCount)
	}
	if !layout.HasTitleRow() {
		t.Fatal("expected merged title row")
	}

	title := layout.Cells[0]
	if title.Row != 0 || title.Column != 0 || title.ColumnSpan != 2 {
		t.Errorf("title cell = %+v, want row 0 col 0 spanning 2 columns", title)
	}
	if title.Text != "T" || !title.Bold || title.FontSizePoints != 14 || title.Alignment != AlignmentCenter {
		t.Errorf("title styling = %+v", title)
	}

	// Field order must be preserved exactly as supplied; the pairs are
	// deliberately out of alphabetical order.
	wantRows := []struct {
		key, value string
	}{
		{"Zulu", "last letter"},
		{"Alpha", "first letter"},
	}
	for i, want := range wantRows {
		key := layout.Cells[1+i*2]
		value := layout.Cells[2+i*2]
		if key.Row != i+1 || key.Column != 0 || key.Text != want.key || !key.Bold {
			t.Errorf("row %d key cell = %+v", i+1, key)
		}
		if value.Row != i+1 || value.Column != 1 || value.Text != want.value || value.Bold {
			t.Errorf("row %d value cell = %+v", i+1, value)
		}
		if key.FontSizePoints != 12 || value.FontSizePoints != 12 {
			t.Errorf("row %d font sizes = %v / %v, want 12", i+1, key.FontSizePoints, value.FontSizePoints)
		}
	}
}

func TestLayoutSectionWithoutTitle(t *testing.T) {
	section := Section{
		Pairs: []KeyValue{{Key: "k", Value: "v"}},
	}

	layout := LayoutSection(section)

	if layout.RowCount != 1 {
		t.Errorf("rowCount = %d, want 1", layout.RowCount)
	}
	if layout.HasTitleRow() {
		t.Error("empty title must omit the title row entirely")
	}
	if layout.Cells[0].Row != 0 || layout.Cells[0].Text != "k" {
		t.Errorf("first cell = %+v, want key at row 0", layout.Cells[0])
	}
}

func TestLayoutSectionEmpty(t *testing.T) {
	layout := LayoutSection(Section{})
	if layout.RowCount != 0 || len(layout.Cells) != 0 {
		t.Errorf("empty section layout = %+v, want no rows", layout)
	}
}
