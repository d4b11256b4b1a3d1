package main

import (
	"fmt"
	"os"

	"certify/internal/config"
	"certify/internal/renderer"
)

// One-time generator for the placeholder certificate template. Swap the
// output for real artwork of the same dimensions before going live.
func main() {
	cfg := config.Load()
	path := cfg.TemplatePath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := renderer.WriteTemplate(path); err != nil {
		fmt.Fprintf(os.Stderr, "Template generation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Template created: %s\n", path)
	fmt.Printf("Dimensions: %dx%d\n", renderer.TemplateWidth, renderer.TemplateHeight)
}
