package main

import (
	"fmt"
	"os"

	"github.com/docfill/go-docfill/pkg/docfill"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version":
		fmt.Println("docfill version " + version)
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: docfill inspect <document.json>")
			os.Exit(1)
		}
		if err := inspect(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("docfill - Template marker inspector for Google Docs documents")
	fmt.Println("\nUsage: docfill <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  inspect <document.json>    List markers found in a fetched document snapshot")
	fmt.Println("  version                    Show version information")
}

func inspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := docfill.ParseDocument(data)
	if err != nil {
		return err
	}
	result, err := docfill.ExtractAndTokenize(doc)
	if err != nil {
		return err
	}

	fmt.Printf("Document: %s\n", doc.Title)

	fmt.Printf("\nVariables (%d):\n", len(result.Variables))
	for _, v := range result.Variables {
		fmt.Printf("  %-30s %s\n", v.Name, v.Type)
	}

	fmt.Printf("\nAsset sections (%d):\n", len(result.AssetSectionTemplates))
	for _, tmpl := range result.AssetSectionTemplates {
		fmt.Printf("  %s: fields %v\n", tmpl.Name, tmpl.Fields)
	}

	fmt.Printf("\nSection table markers (%d):\n", len(result.SectionMarkers))
	for _, m := range result.SectionMarkers {
		fmt.Printf("  %s\n", m.Name)
	}
	return nil
}
