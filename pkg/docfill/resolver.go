package docfill

// ResolvedVariable is a deduplicated variable placeholder. When a name
// repeats in the document, the first occurrence's literal placeholder
// and type win; later occurrences merge by name only.
type ResolvedVariable struct {
	Name        string
	Placeholder string
	Type        VarType
}

// ResolveVariables deduplicates variable tokens by exact name,
// preserving first-seen order. Non-variable tokens are ignored. The
// result is deterministic: resolving the same token stream twice
// yields identical output.
func ResolveVariables(tokens []Token) []ResolvedVariable {
	seen := make(map[string]bool)
	resolved := make([]ResolvedVariable, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Kind != TokenVariable {
			continue
		}
		if seen[tok.Name] {
			continue
		}
		seen[tok.Name] = true
		resolved = append(resolved, ResolvedVariable{
			Name:        tok.Name,
			Placeholder: tok.RawPlaceholder,
			Type:        tok.VarType,
		})
	}
	return resolved
}

// ParseTemplateFields returns the variable names used inside an asset
// section's inner template, in first-seen order without duplicates.
func ParseTemplateFields(innerTemplate string) []string {
	fields := []string{}
	seen := make(map[string]bool)

	for _, tok := range Tokenize(innerTemplate) {
		if tok.Kind != TokenVariable {
			continue
		}
		if seen[tok.Name] {
			continue
		}
		seen[tok.Name] = true
		fields = append(fields, tok.Name)
	}
	return fields
}
