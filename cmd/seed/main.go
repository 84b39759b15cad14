// Command seed writes the starter snapshots (products, pages, posts,
// settings) into the configured store. Pass an XLSX file to import an
// existing catalog instead of the built-in products:
//
//	go run cmd/seed/main.go [catalog.xlsx]
//
// Expected columns: Name, Price, Category, Description. The first row is
// treated as a header.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/digimarketpro/digimarket-backend/config"
	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
	"github.com/digimarketpro/digimarket-backend/pkg/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.Config{Level: "info", Format: "console", EnableColor: true})

	store, err := kvstore.New(&cfg.Store)
	if err != nil {
		log.Fatal("Failed to initialize store:", err)
	}
	defer store.Close()

	ctx := context.Background()

	products := model.DefaultProducts()
	if len(os.Args) > 1 {
		products, err = readProductsFromXLSX(os.Args[1])
		if err != nil {
			log.Fatal("Failed to read XLSX:", err)
		}
		fmt.Printf("Read %d products from %s\n", len(products), os.Args[1])
	}

	seedList(ctx, store, repository.KeyProducts, products, len(os.Args) > 1)
	seedList(ctx, store, repository.KeyPages, model.DefaultPages(), false)
	seedList(ctx, store, repository.KeyPosts, model.DefaultBlogPosts(), false)
	seedValue(ctx, store, repository.KeySettings, model.DefaultSettings())

	fmt.Println("Seed completed successfully!")
}

// seedList writes a snapshot unless the key already holds data. An XLSX
// import overwrites the existing catalog after confirmation.
func seedList[T any](ctx context.Context, store kvstore.Store, key string, value []T, overwrite bool) {
	if _, err := store.Load(ctx, key); err == nil {
		if !overwrite {
			fmt.Printf("Skipping %s: snapshot already exists\n", key)
			return
		}
		fmt.Printf("Key %s already exists. Overwrite? (yes/no): ", key)
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Printf("Skipping %s\n", key)
			return
		}
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		log.Fatalf("Failed to check %s: %v", key, err)
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Fatalf("Failed to encode %s: %v", key, err)
	}
	if err := store.Save(ctx, key, data); err != nil {
		log.Fatalf("Failed to write %s: %v", key, err)
	}
	fmt.Printf("Wrote %s (%d records)\n", key, len(value))
}

func seedValue(ctx context.Context, store kvstore.Store, key string, value interface{}) {
	if _, err := store.Load(ctx, key); err == nil {
		fmt.Printf("Skipping %s: snapshot already exists\n", key)
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Fatalf("Failed to encode %s: %v", key, err)
	}
	if err := store.Save(ctx, key, data); err != nil {
		log.Fatalf("Failed to write %s: %v", key, err)
	}
	fmt.Printf("Wrote %s\n", key)
}

func readProductsFromXLSX(filePath string) ([]model.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	seen := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}
		if len(row) < 2 {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		price, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if name == "" || err != nil || price <= 0 {
			skipped++
			continue
		}
		if seen[name] {
			skipped++
			continue
		}
		seen[name] = true

		category := ""
		if len(row) > 2 {
			category = strings.TrimSpace(row[2])
		}
		if category == "" {
			category = model.DefaultCategory
		}
		description := ""
		if len(row) > 3 {
			description = strings.TrimSpace(row[3])
		}

		products = append(products, model.Product{
			ID:          util.NewID("prod"),
			Name:        name,
			Price:       price,
			Category:    category,
			Description: description,
			Image:       model.PlaceholderImage(name, category),
			Reviews:     []model.Review{},
		})
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid products: %d\n", len(products))
	fmt.Printf("  Skipped rows: %d\n", skipped)

	return products, nil
}
