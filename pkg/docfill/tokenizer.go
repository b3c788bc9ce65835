package docfill

import (
	"regexp"
	"sort"
	"strings"
)

// TokenKind identifies which marker grammar produced a token.
type TokenKind int

const (
	// TokenVariable is a {{name}} or {{name:type}} placeholder.
	TokenVariable TokenKind = iota
	// TokenAssetSection is a balanced
	// {{#ASSET_SECTION:Name}}...{{/#ASSET_SECTION:Name}} block.
	TokenAssetSection
	// TokenSectionMarker is a standalone [[section:Name]] insertion
	// point.
	TokenSectionMarker
)

func (k TokenKind) String() string {
	switch k {
	case TokenVariable:
		return "variable"
	case TokenAssetSection:
		return "asset-section"
	case TokenSectionMarker:
		return "section-marker"
	default:
		return "unknown"
	}
}

// VarType is the declared type suffix of a variable placeholder. Types
// outside the known set are carried through as opaque text; nothing is
// rejected at tokenization time.
type VarType string

const (
	VarTypeText   VarType = "text"
	VarTypeNumber VarType = "number"
	VarTypeDate   VarType = "date"
	VarTypeEmail  VarType = "email"
)

// KnownVarType reports whether t is one of the standard types.
func KnownVarType(t VarType) bool {
	switch t {
	case VarTypeText, VarTypeNumber, VarTypeDate, VarTypeEmail:
		return true
	}
	return false
}

// Token is a marker found in a linear text. Span is a half-open
// [SpanStart, SpanEnd) byte range into the text the token was scanned
// from; spans of tokens from one Tokenize call never overlap.
type Token struct {
	Kind           TokenKind
	Name           string
	RawPlaceholder string
	VarType        VarType
	InnerTemplate  string
	SpanStart      int
	SpanEnd        int
}

const (
	assetOpenPrefix  = "#ASSET_SECTION:"
	assetClosePrefix = "/#ASSET_SECTION:"
)

// Tokenize scans a linear text for all three marker grammars and
// returns the combined token stream ordered by span start.
//
// Asset-section blocks are matched first and their spans carved out of
// the text before the variable pass runs, so a variable placeholder
// inside a block never surfaces as a top-level variable. Unterminated
// or name-mismatched block tags are left alone and may then be picked
// up as plain text by later passes; a defensive prefix check keeps
// them out of the variable stream.
//
// Matchers are constructed per call: a shared matcher with internal
// cursor state would leak positions across calls.
func Tokenize(input string) []Token {
	assetRe := regexp.MustCompile(`(?s)\{\{#ASSET_SECTION:([^}]+)\}\}(.*?)\{\{/#ASSET_SECTION:([^}]+)\}\}`)
	sectionRe := regexp.MustCompile(`\[\[section:([^\]\n]+)\]\]`)
	variableRe := regexp.MustCompile(`\{\{([^}]*)\}\}`)

	logger := GetLogger()
	var tokens []Token

	// Pass 1: asset-section blocks. Mask matched spans so the variable
	// pass cannot see into them.
	masked := []byte(input)
	for _, m := range assetRe.FindAllStringSubmatchIndex(input, -1) {
		openName := strings.TrimSpace(input[m[2]:m[3]])
		closeName := strings.TrimSpace(input[m[6]:m[7]])
		if openName != closeName {
			// Mismatched close tag: deliberate leniency, the span stays
			// plain text.
			if logger.IsDebugMode() {
				logger.WithFields(Fields{
					"open":  openName,
					"close": closeName,
				}).Debug("Skipping mismatched asset section tags")
			}
			continue
		}
		tokens = append(tokens, Token{
			Kind:           TokenAssetSection,
			Name:           openName,
			RawPlaceholder: input[m[0]:m[1]],
			InnerTemplate:  strings.TrimSpace(input[m[4]:m[5]]),
			SpanStart:      m[0],
			SpanEnd:        m[1],
		})
		for i := m[0]; i < m[1]; i++ {
			masked[i] = ' '
		}
	}

	// Pass 2: section table markers. The grammar has no body span, so
	// nothing needs masking.
	for _, m := range sectionRe.FindAllStringSubmatchIndex(input, -1) {
		tokens = append(tokens, Token{
			Kind:           TokenSectionMarker,
			Name:           strings.TrimSpace(input[m[2]:m[3]]),
			RawPlaceholder: input[m[0]:m[1]],
			SpanStart:      m[0],
			SpanEnd:        m[1],
		})
	}

	// Pass 3: variables, over the masked text.
	for _, m := range variableRe.FindAllStringSubmatchIndex(string(masked), -1) {
		content := strings.TrimSpace(input[m[2]:m[3]])
		if content == "" {
			continue
		}
		// An unterminated block tag that leaked through pass 1 still
		// looks like a variable; keep it out of the stream.
		if strings.HasPrefix(content, assetOpenPrefix) || strings.HasPrefix(content, assetClosePrefix) {
			if logger.IsDebugMode() {
				logger.WithField("marker", content).Debug("Skipping orphaned asset section tag")
			}
			continue
		}
		name, varType := splitNameAndType(content)
		if name == "" {
			continue
		}
		tokens = append(tokens, Token{
			Kind:           TokenVariable,
			Name:           name,
			RawPlaceholder: input[m[0]:m[1]],
			VarType:        varType,
			SpanStart:      m[0],
			SpanEnd:        m[1],
		})
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].SpanStart < tokens[j].SpanStart
	})
	return tokens
}

// splitNameAndType splits placeholder content on the first colon into
// a name and an optional type suffix. Missing or empty type defaults
// to text; unrecognized values are kept as-is.
func splitNameAndType(content string) (string, VarType) {
	name, typePart, found := strings.Cut(content, ":")
	name = strings.TrimSpace(name)
	if !found {
		return name, VarTypeText
	}
	typePart = strings.TrimSpace(typePart)
	if typePart == "" {
		return name, VarTypeText
	}
	return name, VarType(typePart)
}

// FindMarkers returns the literal text of every marker in the input,
// in span order. Utility for debugging and inspection.
func FindMarkers(input string) []string {
	tokens := Tokenize(input)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.RawPlaceholder)
	}
	return out
}
