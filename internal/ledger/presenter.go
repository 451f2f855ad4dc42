package ledger

import (
	"fmt"

	"fintrack/internal/models"
)

// displayDateLayout is the ledger table's date form. Reports and filenames
// keep the raw ISO date.
const displayDateLayout = "02/01/2006"

// categoryLabels maps every category to its display label.
var categoryLabels = map[models.Category]string{
	models.CategoryFood:      "Food",
	models.CategoryHousing:   "Housing",
	models.CategoryTransport: "Transport",
	models.CategoryLeisure:   "Leisure",
	models.CategoryHealth:    "Health",
	models.CategorySalary:    "Salary",
	models.CategoryOther:     "Other",
}

// ledgerColors is the ledger table palette, one color per category.
var ledgerColors = map[models.Category]string{
	models.CategoryFood:      "#E57373",
	models.CategoryHousing:   "#81C784",
	models.CategoryTransport: "#64B5F6",
	models.CategoryLeisure:   "#FFD54F",
	models.CategoryHealth:    "#4DB6AC",
	models.CategorySalary:    "#50C878",
	models.CategoryOther:     "#B0BEC5",
}

// expenseColors is the category chart palette. It avoids green so expense
// slices are never confused with income.
var expenseColors = map[models.Category]string{
	models.CategoryFood:      "#FF6384",
	models.CategoryHousing:   "#FF9F40",
	models.CategoryTransport: "#FFCD56",
	models.CategoryLeisure:   "#4BC0C0",
	models.CategoryHealth:    "#9966FF",
	models.CategorySalary:    "#C9CBCF",
	models.CategoryOther:     "#C9CBCF",
}

// CategoryLabel returns the display label for a category; nil or unknown
// categories render as "Other".
func CategoryLabel(c *models.Category) string {
	if c == nil || !c.Valid() {
		return categoryLabels[models.CategoryOther]
	}
	return categoryLabels[*c]
}

// CategoryColor returns the ledger palette color for a category.
func CategoryColor(c *models.Category) string {
	if c == nil || !c.Valid() {
		return ledgerColors[models.CategoryOther]
	}
	return ledgerColors[*c]
}

// ExpenseColor returns the chart palette color for an expense category.
func ExpenseColor(c models.Category) string {
	if color, ok := expenseColors[c]; ok {
		return color
	}
	return expenseColors[models.CategoryOther]
}

// FormatCents renders minor units with exactly two decimal places. Rounding
// to two decimals happens here and nowhere else.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// SignPrefix derives the display sign from the transaction type. Amounts
// are stored as positive magnitudes, so the sign never comes from the value.
func SignPrefix(t models.TransactionType) string {
	if t == models.TransactionTypeIncome {
		return "+"
	}
	return "-"
}

// LedgerRow is one display-ready row of the transaction table.
type LedgerRow struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	ISODate     string `json:"iso_date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Color       string `json:"color"`
}

// LedgerRows shapes transactions into display rows, preserving input order.
func LedgerRows(txs []models.Transaction) []LedgerRow {
	rows := make([]LedgerRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, LedgerRow{
			ID:          tx.ID,
			Date:        tx.Date.Time().Format(displayDateLayout),
			ISODate:     tx.Date.String(),
			Description: tx.Description,
			Amount:      SignPrefix(tx.Type) + " " + FormatCents(tx.Amount),
			Type:        string(tx.Type),
			Category:    CategoryLabel(tx.Category),
			Color:       CategoryColor(tx.Category),
		})
	}
	return rows
}

// ChartSeries is a chart-ready label/value/color triple. Values are display
// amounts in major units.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors,omitempty"`
}

// CategoryChart shapes expense category totals for the doughnut chart.
// Slices follow the category enumeration order so the legend is stable
// across reloads.
func CategoryChart(totals map[models.Category]int64) ChartSeries {
	series := ChartSeries{}
	for _, category := range models.Categories {
		cents, ok := totals[category]
		if !ok {
			continue
		}
		series.Labels = append(series.Labels, categoryLabels[category])
		series.Values = append(series.Values, major(cents))
		series.Colors = append(series.Colors, ExpenseColor(category))
	}
	return series
}

// SummaryChart shapes the monthly summary for the income-vs-expense bar
// chart: month labels ascending with parallel income and expense series.
func SummaryChart(summary map[string]MonthTotals) (months []string, income, expense []float64) {
	for _, month := range sortedMonths(summary) {
		months = append(months, month)
		income = append(income, major(summary[month].Income))
		expense = append(expense, major(summary[month].Expense))
	}
	return months, income, expense
}

// BalanceChart shapes the running balance series for the line chart.
func BalanceChart(series []BalancePoint) ChartSeries {
	shaped := ChartSeries{}
	for _, point := range series {
		shaped.Labels = append(shaped.Labels, point.Month)
		shaped.Values = append(shaped.Values, major(point.Balance))
	}
	return shaped
}

func major(cents int64) float64 {
	return float64(cents) / 100
}
