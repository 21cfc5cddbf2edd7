package services

import (
	"fmt"
	"time"

	"github.com/alimgiray/staffdir/internal/models"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"First Name", "Last Name", "Email", "Phone",
	"Job Title", "Department", "Location", "Created At",
}

// ExportService renders a set of employee records as an Excel workbook
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildWorkbook writes the employees to a single-sheet workbook. The caller
// owns the returned file and should Close it when done.
func (s *ExportService) BuildWorkbook(employees []*models.Employee) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Employees"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, employee := range employees {
		row := []interface{}{
			employee.FirstName,
			employee.LastName,
			employee.Email,
			employee.Phone,
			employee.JobTitle,
			employee.Department,
			employee.Location,
			employee.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "H", 22); err != nil {
		return nil, err
	}

	return f, nil
}

// ExportFilename returns the attachment name for a directory export
func (s *ExportService) ExportFilename() string {
	return fmt.Sprintf("employee-directory-%s.xlsx", time.Now().Format("2006-01-02"))
}
