package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	pagegen "github.com/goliatone/go-pagegen"
	"github.com/goliatone/go-pagegen/internal/prompt"
	"github.com/goliatone/go-pagegen/pkg/document"
	theme "github.com/goliatone/go-theme"
)

func main() {
	source := flag.String("source", "site.yaml", "page document path (JSON or YAML)")
	output := flag.String("output", "", "output file (stdout if empty)")
	themeName := flag.String("theme", "", "theme name added to the body class list")
	themeVariant := flag.String("variant", "", "theme variant (requires -theme)")
	interactive := flag.Bool("interactive", false, "prompt for missing document fields")
	flag.Parse()

	ctx := context.Background()

	doc, err := document.LoadFile(*source)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	if *interactive {
		if err := fillMissing(ctx, &doc); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	var options []pagegen.Option
	if name := strings.TrimSpace(*themeName); name != "" {
		options = append(options, pagegen.WithTheme(&theme.RendererConfig{
			Theme:   name,
			Variant: strings.TrimSpace(*themeVariant),
		}))
	}

	html, err := pagegen.Generate(ctx, doc, options...)
	if err != nil {
		log.Fatalf("Failed to generate page: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Page written to %s\n", *output)
	} else {
		fmt.Println(html)
	}
}

func fillMissing(ctx context.Context, doc *document.Document) error {
	driver := prompt.New()

	if strings.TrimSpace(doc.Title) == "" {
		title, err := driver.Input(ctx, prompt.InputConfig{
			Message: "Page title:",
			Validator: func(value string) error {
				if strings.TrimSpace(value) == "" {
					return fmt.Errorf("title is required")
				}
				return nil
			},
		})
		if err != nil {
			return err
		}
		doc.Title = title
	}

	if strings.TrimSpace(doc.Description) == "" {
		wantDesc, err := driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: "Add a description?",
			Default: false,
		})
		if err != nil {
			return err
		}
		if wantDesc {
			desc, err := driver.Input(ctx, prompt.InputConfig{Message: "Description:"})
			if err != nil {
				return err
			}
			doc.Description = desc
		}
	}

	return nil
}
