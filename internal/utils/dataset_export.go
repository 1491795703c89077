package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"orion/internal/models"

	"github.com/xuri/excelize/v2"
)

const datasetSheet = "Datasets"

var datasetHeaders = []string{"ID", "Dataset ID", "Title", "Status", "Updated At", "Inserted At", "REST URL"}

// CreateDatasetExcel выгружает развернутый список датасетов в xlsx.
func CreateDatasetExcel(path string, items []models.DatasetItem) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(datasetSheet)
	if err != nil {
		return err
	}

	for i, header := range datasetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(datasetSheet, cell, header)
	}

	for rowIdx, item := range items {
		rowNum := rowIdx + 2 // первая строка под заголовками

		f.SetCellValue(datasetSheet, fmt.Sprintf("A%d", rowNum), item.ID)
		f.SetCellValue(datasetSheet, fmt.Sprintf("B%d", rowNum), item.DatasetID)
		f.SetCellValue(datasetSheet, fmt.Sprintf("C%d", rowNum), derefString(item.Title))
		f.SetCellValue(datasetSheet, fmt.Sprintf("D%d", rowNum), item.Status)
		f.SetCellValue(datasetSheet, fmt.Sprintf("E%d", rowNum), derefString(item.UpdatedAt))
		f.SetCellValue(datasetSheet, fmt.Sprintf("F%d", rowNum), derefString(item.InsertedAt))
		f.SetCellValue(datasetSheet, fmt.Sprintf("G%d", rowNum), derefString(item.RestURL))
	}

	for i := 1; i <= len(datasetHeaders); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(datasetSheet, colName, colName, 24)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(path)
}

// WriteDatasetCSV — та же выгрузка в CSV.
func WriteDatasetCSV(path string, items []models.DatasetItem) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"id", "dataset_id", "title", "status", "updated_at", "inserted_at", "rest_url"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, item := range items {
		row := []string{
			item.ID,
			item.DatasetID,
			derefString(item.Title),
			item.Status,
			derefString(item.UpdatedAt),
			derefString(item.InsertedAt),
			derefString(item.RestURL),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
