package report

import (
	"testing"
	"time"

	"github.com/pc-store/internal/model"
)

func TestProductsWorkbook(t *testing.T) {
	products := []model.Product{
		{
			ID:        "a1",
			Name:      "Ryzen 7 5800X",
			Category:  "CPU",
			Price:     299.99,
			Status:    "In Stock",
			Rating:    4.5,
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:       "b2",
			Name:     "RTX 4070",
			Category: "GPU",
			Price:    599,
			Status:   "Out of Stock",
		},
	}

	f, err := ProductsWorkbook(products)
	if err != nil {
		t.Fatalf("ProductsWorkbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue(productsSheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "ID" {
		t.Errorf("A1 = %q, want ID", got)
	}

	got, _ = f.GetCellValue(productsSheet, "B2")
	if got != "Ryzen 7 5800X" {
		t.Errorf("B2 = %q, want Ryzen 7 5800X", got)
	}

	got, _ = f.GetCellValue(productsSheet, "C3")
	if got != "GPU" {
		t.Errorf("C3 = %q, want GPU", got)
	}

	got, _ = f.GetCellValue(productsSheet, "E3")
	if got != "Out of Stock" {
		t.Errorf("E3 = %q, want Out of Stock", got)
	}
}

func TestProductsWorkbookEmpty(t *testing.T) {
	f, err := ProductsWorkbook(nil)
	if err != nil {
		t.Fatalf("ProductsWorkbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(productsSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
