package docfill

// AssetTemplate describes one asset-section block found in a
// document: its name, the raw block literal, the trimmed inner
// template and the field names used inside it.
type AssetTemplate struct {
	Name          string
	Raw           string
	InnerTemplate string
	Fields        []string
	SpanStart     int
	SpanEnd       int
}

// SectionMarker describes one [[section:Name]] insertion point found
// in a document.
type SectionMarker struct {
	Name      string
	Raw       string
	SpanStart int
	SpanEnd   int
}

// ExtractResult is everything a form builder needs from one document
// snapshot: the linear text, the resolved top-level variables, the
// asset-section templates with their introspected fields, and the
// section table markers.
type ExtractResult struct {
	LinearText            *LinearText
	Variables             []ResolvedVariable
	AssetSectionTemplates []AssetTemplate
	SectionMarkers        []SectionMarker
}

// ExtractAndTokenize flattens a document snapshot and tokenizes its
// linear text. Variables nested inside asset-section blocks appear in
// that block's Fields, never in Variables.
func ExtractAndTokenize(doc *Document) (*ExtractResult, error) {
	if doc == nil {
		return nil, NewDocumentError("extract", "", nil)
	}
	lt, err := Extract(doc.Body)
	if err != nil {
		return nil, err
	}

	tokens := Tokenize(lt.Text)
	result := &ExtractResult{
		LinearText: lt,
		Variables:  ResolveVariables(tokens),
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenAssetSection:
			result.AssetSectionTemplates = append(result.AssetSectionTemplates, AssetTemplate{
				Name:          tok.Name,
				Raw:           tok.RawPlaceholder,
				InnerTemplate: tok.InnerTemplate,
				Fields:        ParseTemplateFields(tok.InnerTemplate),
				SpanStart:     tok.SpanStart,
				SpanEnd:       tok.SpanEnd,
			})
		case TokenSectionMarker:
			result.SectionMarkers = append(result.SectionMarkers, SectionMarker{
				Name:      tok.Name,
				Raw:       tok.RawPlaceholder,
				SpanStart: tok.SpanStart,
				SpanEnd:   tok.SpanEnd,
			})
		}
	}
	return result, nil
}

// PlanSubstitution is a convenience wrapper using a planner with the
// global configuration.
func PlanSubstitution(values map[string]string, assets map[string][]AssetSection, doc *Document) ([]Operation, error) {
	return NewPlanner().PlanSubstitution(values, assets, doc)
}

// PlanSectionTables is a convenience wrapper using a planner with the
// global configuration.
func PlanSectionTables(sections map[string]Section, doc *Document) ([]Operation, error) {
	return NewPlanner().PlanSectionTables(sections, doc)
}
