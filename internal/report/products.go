package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pc-store/internal/model"
)

const productsSheet = "Products"

var productHeaders = []string{"ID", "Name", "Category", "Price", "Status", "Rating", "Created"}

// ProductsWorkbook renders the catalog as an Excel workbook with one
// product per row.
func ProductsWorkbook(products []model.Product) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", productsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range productHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(productsSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, p := range products {
		values := []interface{}{
			p.ID,
			p.Name,
			p.Category,
			p.Price,
			p.Status,
			p.Rating,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(productsSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
