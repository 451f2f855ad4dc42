package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"fintrack/internal/ledger"
)

const (
	sheetName = "Monthly Report"

	headerFill   = "2F4F4F"
	stripeFill   = "F5F5F5"
	incomeColor  = "2E7D32"
	expenseColor = "C62828"
)

// ReportFilename builds the download filename for a report generated now.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("monthly_report_%s.xlsx", now.Format("2006-01-02"))
}

// WriteMonthlyReport writes the monthly report rows as a styled workbook.
// Amounts are written in major units with a two-decimal number format;
// income cells render green, expense cells red, and the net cell takes the
// color of its sign.
func WriteMonthlyReport(w io.Writer, rows []ledger.MonthRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "D1", headerStyle); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &[]interface{}{"Month", "Income", "Expense", "Net"}); err != nil {
		return err
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{row.Month, major(row.Income), major(row.Expense), major(row.Net)}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
		if err := styleRow(f, i, row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "D", 16); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

// styleRow applies the money formats and the alternating row fill to one
// data row.
func styleRow(f *excelize.File, i int, row ledger.MonthRow) error {
	line := i + 2
	stripe := i%2 == 1

	monthStyle, err := f.NewStyle(&excelize.Style{Fill: rowFill(stripe)})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", line), fmt.Sprintf("A%d", line), monthStyle); err != nil {
		return err
	}

	if err := moneyCell(f, fmt.Sprintf("B%d", line), incomeColor, stripe); err != nil {
		return err
	}
	if err := moneyCell(f, fmt.Sprintf("C%d", line), expenseColor, stripe); err != nil {
		return err
	}

	netColor := incomeColor
	if row.Net < 0 {
		netColor = expenseColor
	}
	return moneyCell(f, fmt.Sprintf("D%d", line), netColor, stripe)
}

func moneyCell(f *excelize.File, cell, color string, stripe bool) error {
	format := "#,##0.00"
	style, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Color: color},
		Fill:         rowFill(stripe),
		CustomNumFmt: &format,
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cell, cell, style)
}

func rowFill(stripe bool) excelize.Fill {
	if !stripe {
		return excelize.Fill{}
	}
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stripeFill}}
}

func major(cents int64) float64 {
	return float64(cents) / 100
}
