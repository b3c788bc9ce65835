package gdocs

import (
	"fmt"

	"google.golang.org/api/docs/v1"

	"github.com/docfill/go-docfill/pkg/docfill"
)

// convertDocument maps an API document onto the docfill node model.
// Structural elements outside the supported set (paragraph, table,
// section break) are rejected; inline elements without text are
// dropped, which is safe because positioning relies on each element's
// native indexes rather than on slot counting.
func convertDocument(src *docs.Document) (*docfill.Document, error) {
	if src.Body == nil {
		return nil, docfill.NewDocumentError("convert", src.DocumentId, fmt.Errorf("document has no body"))
	}
	content, err := convertElements(src.Body.Content)
	if err != nil {
		return nil, docfill.NewDocumentError("convert", src.DocumentId, err)
	}
	return &docfill.Document{
		DocumentID: src.DocumentId,
		Title:      src.Title,
		Body:       &docfill.Body{Content: content},
	}, nil
}

func convertElements(src []*docs.StructuralElement) ([]docfill.StructuralElement, error) {
	out := make([]docfill.StructuralElement, 0, len(src))
	for _, el := range src {
		converted := docfill.StructuralElement{
			StartIndex: el.StartIndex,
			EndIndex:   el.EndIndex,
		}
		switch {
		case el.Paragraph != nil:
			converted.Paragraph = convertParagraph(el.Paragraph)
		case el.Table != nil:
			table, err := convertTable(el.Table)
			if err != nil {
				return nil, err
			}
			converted.Table = table
		case el.SectionBreak != nil:
			converted.SectionBreak = &docfill.SectionBreak{}
		default:
			return nil, fmt.Errorf("unsupported structural element at startIndex %d", el.StartIndex)
		}
		out = append(out, converted)
	}
	return out, nil
}

func convertParagraph(src *docs.Paragraph) *docfill.Paragraph {
	para := &docfill.Paragraph{}
	for _, el := range src.Elements {
		converted := docfill.ParagraphElement{
			StartIndex: el.StartIndex,
			EndIndex:   el.EndIndex,
		}
		switch {
		case el.TextRun != nil:
			converted.TextRun = &docfill.TextRun{Content: el.TextRun.Content}
		case el.PageBreak != nil:
			converted.PageBreak = &docfill.PageBreak{}
		default:
			// Inline objects, footnotes and the like: no text, and
			// their index space is already covered by native indexes.
			continue
		}
		para.Elements = append(para.Elements, converted)
	}
	return para
}

func convertTable(src *docs.Table) (*docfill.Table, error) {
	table := &docfill.Table{
		Rows:    src.Rows,
		Columns: src.Columns,
	}
	for _, row := range src.TableRows {
		convertedRow := docfill.TableRow{
			StartIndex: row.StartIndex,
			EndIndex:   row.EndIndex,
		}
		for _, cell := range row.TableCells {
			content, err := convertElements(cell.Content)
			if err != nil {
				return nil, err
			}
			convertedRow.TableCells = append(convertedRow.TableCells, docfill.TableCell{
				StartIndex: cell.StartIndex,
				EndIndex:   cell.EndIndex,
				Content:    content,
			})
		}
		table.TableRows = append(table.TableRows, convertedRow)
	}
	return table, nil
}

// Requests converts a planned operation batch into batchUpdate
// requests, preserving order.
func Requests(ops []docfill.Operation) ([]*docs.Request, error) {
	requests := make([]*docs.Request, 0, len(ops))
	for _, op := range ops {
		req, err := convertOperation(op)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func convertOperation(op docfill.Operation) (*docs.Request, error) {
	switch o := op.(type) {
	case docfill.DeleteRange:
		return &docs.Request{DeleteContentRange: &docs.DeleteContentRangeRequest{
			Range: convertRange(o.Range),
		}}, nil

	case docfill.InsertText:
		return &docs.Request{InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: o.Index},
			Text:     o.Text,
		}}, nil

	case docfill.InsertTable:
		return &docs.Request{InsertTable: &docs.InsertTableRequest{
			Location: &docs.Location{Index: o.Index},
			Rows:     o.Rows,
			Columns:  o.Columns,
		}}, nil

	case docfill.MergeCells:
		return &docs.Request{MergeTableCells: &docs.MergeTableCellsRequest{
			TableRange: convertTableRange(o.TableRange),
		}}, nil

	case docfill.ReplaceAllText:
		return &docs.Request{ReplaceAllText: &docs.ReplaceAllTextRequest{
			ContainsText: &docs.SubstringMatchCriteria{
				Text:      o.Find,
				MatchCase: o.MatchCase,
			},
			ReplaceText: o.ReplaceWith,
		}}, nil

	case docfill.SetTextStyle:
		style := &docs.TextStyle{Bold: o.Style.Bold}
		fields := "bold"
		if o.Style.FontSizePoints > 0 {
			style.FontSize = &docs.Dimension{Magnitude: o.Style.FontSizePoints, Unit: "PT"}
			fields = "bold,fontSize"
		}
		return &docs.Request{UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     convertRange(o.Range),
			TextStyle: style,
			Fields:    fields,
		}}, nil

	case docfill.SetParagraphStyle:
		return &docs.Request{UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          convertRange(o.Range),
			ParagraphStyle: &docs.ParagraphStyle{Alignment: o.Style.Alignment},
			Fields:         "alignment",
		}}, nil

	case docfill.SetCellStyle:
		border := &docs.TableCellBorder{
			Width:     &docs.Dimension{Magnitude: o.Style.BorderWidthPoints, Unit: "PT"},
			DashStyle: "SOLID",
			Color:     &docs.OptionalColor{},
		}
		return &docs.Request{UpdateTableCellStyle: &docs.UpdateTableCellStyleRequest{
			TableRange: convertTableRange(o.TableRange),
			TableCellStyle: &docs.TableCellStyle{
				BorderTop:    border,
				BorderBottom: border,
				BorderLeft:   border,
				BorderRight:  border,
			},
			Fields: "borderTop,borderBottom,borderLeft,borderRight",
		}}, nil

	case docfill.SetColumnProperties:
		return &docs.Request{UpdateTableColumnProperties: &docs.UpdateTableColumnPropertiesRequest{
			TableStartLocation: &docs.Location{Index: o.TableStartIndex},
			ColumnIndices:      o.ColumnIndices,
			TableColumnProperties: &docs.TableColumnProperties{
				Width:     &docs.Dimension{Magnitude: o.WidthPoints, Unit: "PT"},
				WidthType: "FIXED_WIDTH",
			},
			Fields: "width,widthType",
		}}, nil

	default:
		return nil, fmt.Errorf("unsupported operation type %T", op)
	}
}

func convertRange(r docfill.Range) *docs.Range {
	return &docs.Range{StartIndex: r.StartIndex, EndIndex: r.EndIndex}
}

func convertTableRange(tr docfill.TableRange) *docs.TableRange {
	return &docs.TableRange{
		TableCellLocation: &docs.TableCellLocation{
			TableStartLocation: &docs.Location{Index: tr.TableStartIndex},
			RowIndex:           tr.Row,
			ColumnIndex:        tr.Column,
		},
		RowSpan:    tr.RowSpan,
		ColumnSpan: tr.ColumnSpan,
	}
}
