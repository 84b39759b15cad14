package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

// ExportService renders admin exports as XLSX workbooks
type ExportService interface {
	ExportProducts(ctx context.Context) ([]byte, error)
	ExportCustomers(ctx context.Context) ([]byte, error)
}

type exportService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

func NewExportService(productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) ExportService {
	return &exportService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

func (s *exportService) ExportProducts(ctx context.Context) ([]byte, error) {
	products := s.productRepo.List(ctx)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Products"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Name", "Price (USD)", "Category", "Description", "Reviews"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, p := range products {
		values := []interface{}{
			p.ID,
			p.Name,
			p.Price,
			p.Category,
			p.Description,
			strconv.Itoa(len(p.Reviews)),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error("Failed to render product export", err, nil)
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("Product export generated", map[string]interface{}{
		"rows": len(products),
	})
	return buf.Bytes(), nil
}

func (s *exportService) ExportCustomers(ctx context.Context) ([]byte, error) {
	customers := s.customerRepo.List(ctx)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Customers"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Name", "Email", "Role", "Join Date"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, c := range customers {
		values := []interface{}{c.ID, c.Name, c.Email, string(c.Role), c.JoinDate}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error("Failed to render customer export", err, nil)
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("Customer export generated", map[string]interface{}{
		"rows": len(customers),
	})
	return buf.Bytes(), nil
}
