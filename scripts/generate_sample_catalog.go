package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"storefront/internal/catalog"
)

// generateSampleCatalog writes the built-in seed catalogue to
// data/catalog.json so it can be edited and loaded via CATALOG_PATH.
func main() {
	dataDir := "data"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := catalog.Seed()

	payload, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal catalogue: %v", err)
	}

	filePath := filepath.Join(dataDir, "catalog.json")
	if err := os.WriteFile(filePath, append(payload, '\n'), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
	fmt.Println("Run with CATALOG_PATH=data/catalog.json to load it")
}
