package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/playground/archive"
	"github.com/grovetools/playground/config"
)

func main() {
	outputDir := "schema/definitions"
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	for name, generate := range map[string]func() ([]byte, error){
		"playground.schema.json": config.GenerateSchema,
		"archive.schema.json":    archive.GenerateSchema,
	} {
		schemaBytes, err := generate()
		if err != nil {
			log.Fatalf("Error generating %s: %v", name, err)
		}
		outputPath := filepath.Join(outputDir, name)
		if err := os.WriteFile(outputPath, schemaBytes, 0644); err != nil {
			log.Fatalf("Error writing schema file: %v", err)
		}
		log.Printf("Successfully generated schema at %s", outputPath)
	}
}
