package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/helpo-services/helpo-backend/config"
	"github.com/helpo-services/helpo-backend/internal/app/model"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
	"github.com/helpo-services/helpo-backend/internal/sheets"
	"github.com/helpo-services/helpo-backend/pkg/util"
)

// Imports vendor listings from an xlsx file into the vendor tab. Expects
// the columns business_name, phone, email, password, category, city,
// state, pincode and optionally area, description, service_hours.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	store := sheets.NewClient(cfg.Sheets)
	vendorRepo := repository.NewVendorRepository(store, cfg.Sheets.VendorTab)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	vendors, skipped, err := readVendorsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total vendors to import: %d (skipped %d invalid rows)\n", len(vendors), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	ctx := context.Background()
	imported := 0
	for _, v := range vendors {
		if err := vendorRepo.Create(ctx, &v); err != nil {
			fmt.Printf("Skipping %s (%s): %v\n", v.BusinessName, v.Phone, err)
			continue
		}
		imported++
		// The sheets API throttles writes; pace the appends.
		time.Sleep(200 * time.Millisecond)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total vendors imported: %d\n", imported)
}

func readVendorsFromXLSX(filePath string) ([]model.Vendor, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	// Header row maps column names to positions
	cols := make(map[string]int)
	for i, header := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range []string{"business_name", "phone", "email", "password", "category", "city", "pincode"} {
		if _, ok := cols[required]; !ok {
			return nil, 0, fmt.Errorf("missing required column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var vendors []model.Vendor
	seenPhones := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			continue
		}

		phone := cell(row, "phone")
		name := cell(row, "business_name")
		password := cell(row, "password")

		if phone == "" || name == "" || password == "" {
			skipped++
			continue
		}
		if !util.IsValidMobile(phone) {
			skipped++
			continue
		}
		if seenPhones[phone] {
			skipped++
			continue
		}
		seenPhones[phone] = true

		hash, err := util.HashPassword(password)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to hash password on row %d: %w", i+1, err)
		}

		vendors = append(vendors, model.Vendor{
			BusinessName: name,
			Phone:        phone,
			Email:        cell(row, "email"),
			PasswordHash: hash,
			Category:     cell(row, "category"),
			City:         cell(row, "city"),
			State:        cell(row, "state"),
			Pincode:      cell(row, "pincode"),
			Area:         cell(row, "area"),
			Description:  cell(row, "description"),
			ServiceHours: cell(row, "service_hours"),
		})
	}

	return vendors, skipped, nil
}
