// Package export writes batch parsing outcomes to spreadsheet workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-parser/internal/pipeline"
)

// SummarySheet is the name of the sheet holding one row per document
const SummarySheet = "Resumes"

// SummaryHeaders are the column titles of the summary sheet
var SummaryHeaders = []string{
	"File",
	"Format",
	"Name",
	"Email",
	"Phone",
	"Educations",
	"Work Experiences",
	"Projects",
	"Skill Lines",
	"Status",
}

// Row returns the summary cells for one batch result
func Row(result pipeline.BatchResult) []any {
	row := []any{result.File, "", "", "", "", 0, 0, 0, 0, "ok"}
	if result.Err != nil {
		row[9] = "error: " + result.Err.Error()
	}
	if result.Result == nil {
		return row
	}
	if result.Result.Log != nil {
		row[1] = result.Result.Log.Format
	}
	if resume := result.Result.Resume; resume != nil {
		row[2] = resume.Profile.Name
		row[3] = resume.Profile.Email
		row[4] = resume.Profile.Phone
		row[5] = len(resume.Educations)
		row[6] = len(resume.WorkExperiences)
		row[7] = len(resume.Projects)
		row[8] = len(resume.Skills.Descriptions)
		if resume.IsEmpty() && result.Err == nil {
			row[9] = "empty"
		}
	}
	return row
}

// BuildSummary returns a workbook with a header row and one row per result
func BuildSummary(results []pipeline.BatchResult) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, h := range SummaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SummarySheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for r, result := range results {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		row := Row(result)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	_ = f.SetColWidth(SummarySheet, "A", "A", 40) // file
	_ = f.SetColWidth(SummarySheet, "C", "E", 24) // contact
	_ = f.SetColWidth(SummarySheet, "J", "J", 48) // status

	return f, nil
}

// WriteBatchSummary writes the summary workbook to path
func WriteBatchSummary(path string, results []pipeline.BatchResult) error {
	f, err := BuildSummary(results)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
