package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-chartgen/pkg/chartspec"
	"github.com/goliatone/go-chartgen/pkg/orchestrator"
	"github.com/goliatone/go-chartgen/pkg/render"
)

func main() {
	source := flag.String("source", "", "chart definition path (JSON or YAML)")
	renderer := flag.String("renderer", "svg", "renderer to use (svg, page)")
	output := flag.String("output", "", "output file (stdout if empty)")
	document := flag.Bool("document", true, "emit a standalone SVG document instead of a fragment")
	themeName := flag.String("theme", "", "theme name override")
	themeVariant := flag.String("variant", "", "theme variant override")
	interactive := flag.Bool("interactive", false, "prompt for chart data instead of reading a file")
	flag.Parse()

	ctx := context.Background()

	var def chartspec.Definition
	switch {
	case *interactive:
		prompted, err := promptDefinition()
		if err != nil {
			log.Fatalf("Failed to read chart input: %v", err)
		}
		def = prompted
	case *source != "":
		parsed, err := chartspec.ParseFile(*source)
		if err != nil {
			log.Fatalf("Failed to load chart definition: %v", err)
		}
		def = parsed
	default:
		log.Fatalf("either -source or -interactive is required")
	}

	gen := orchestrator.New()

	req := orchestrator.Request{
		Definition:   &def,
		Renderer:     *renderer,
		ThemeName:    *themeName,
		ThemeVariant: *themeVariant,
		RenderOptions: render.RenderOptions{
			Document: *document,
		},
	}

	rendered, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate chart: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Chart written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}
