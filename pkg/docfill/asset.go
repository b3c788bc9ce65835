package docfill

// Field is one key/value entry of an asset section. The ID is an
// opaque caller-assigned key used by form editors; it plays no role in
// rendering.
type Field struct {
	ID    string
	Key   string
	Value string
}

// AssetSection is a user-entered, repeatable block of data rendered in
// place of an {{#ASSET_SECTION:Name}} block. Sections are value types:
// callers replace whole fields or whole collections rather than
// mutating in place.
type AssetSection struct {
	ID     string
	Title  string
	Fields []Field
}

// Validate reports advisory issues: a section needs a non-empty title
// and at least one field to render meaningfully. Planning does not
// call this; callers decide whether to enforce it.
func (s AssetSection) Validate() error {
	var issues []ValidationIssue
	if s.Title == "" {
		issues = append(issues, ValidationIssue{Field: "title", Message: "must not be empty"})
	}
	if len(s.Fields) == 0 {
		issues = append(issues, ValidationIssue{Field: "fields", Message: "must contain at least one field"})
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// KeyValue is one ordered pair of a table section.
type KeyValue struct {
	Key   string
	Value string
}

// Section is the data behind a [[section:Name]] marker: a title and
// ordered key/value pairs, rendered as a 2-column table.
type Section struct {
	Title string
	Pairs []KeyValue
}
