// Package docfill finds template markers in Google Docs style
// documents and plans the mutations that fill them in.
//
// A template carries three marker grammars over the same text:
//
//	{{name}} / {{name:type}}                    - simple variables
//	{{#ASSET_SECTION:X}}...{{/#ASSET_SECTION:X}} - repeating blocks
//	[[section:Name]]                             - table insertion points
//
// The pipeline is: fetch a document snapshot from a DocumentStore,
// flatten it to a LinearText (Extract), scan for markers (Tokenize),
// deduplicate variables (ResolveVariables), then plan one ordered
// mutation batch (Planner) and apply it back through the store.
//
// # Coordinate spaces
//
// Linear-text offsets and the store's document indexes are different
// spaces: structural boundaries (paragraph terminators, table and cell
// markers) consume document indexes that are not text. Extraction
// therefore records, per character, the native index the store
// assigned to it, and AnchorFor translates a span back into a
// StructuralAnchor. Anchors go stale the moment any structural
// mutation is applied; every planning call starts from a fresh fetch.
//
// # Strategies
//
// Variables and asset-section blocks are filled by literal text
// replacement, delegating matching to the store (robust, no index
// math). Section markers are resolved into real 2-column tables via
// structural operations; the planner sequences those so that no
// operation moves content a later operation still addresses.
//
// # Quick start
//
//	store, err := gdocs.New(ctx, option.WithTokenSource(ts))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filler := docfill.NewFiller(store)
//
//	result, err := filler.Inspect(ctx, templateID)
//	// present result.Variables as a form...
//
//	newID, err := filler.Fill(ctx, templateID, "Invoice 42",
//	    map[string]string{"client_name": "Acme"},
//	    nil, nil)
//
// Configuration comes from DOCFILL_* environment variables or an
// explicit Config; see Config for the knobs.
package docfill
