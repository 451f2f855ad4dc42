// Package ledger derives read-only reporting views from a transaction
// collection. Every function recomputes from the full input on each call:
// there is no stored state, so the derived views can never drift from the
// rows the caller loaded. Amounts are int64 minor units throughout; only
// the presenter rounds to two decimals.
package ledger

import (
	"sort"
	"strings"

	"fintrack/internal/models"
)

// MonthTotals holds the income and expense totals for one calendar month,
// in minor units.
type MonthTotals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// Net returns income minus expense for the month.
func (m MonthTotals) Net() int64 {
	return m.Income - m.Expense
}

// BalancePoint is the cumulative balance after one month.
type BalancePoint struct {
	Month   string `json:"month"`
	Balance int64  `json:"balance"`
}

// MonthRow is one row of the monthly report, newest month first.
type MonthRow struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
}

// Snapshot bundles every derived view for one loaded transaction set.
type Snapshot struct {
	Balance        int64                     `json:"balance"`
	CategoryTotals map[models.Category]int64 `json:"category_totals"`
	Monthly        map[string]MonthTotals    `json:"monthly"`
	Series         []BalancePoint            `json:"series"`
}

// BuildSnapshot computes all derived views in one pass over the collection.
func BuildSnapshot(txs []models.Transaction) Snapshot {
	return Snapshot{
		Balance:        Balance(txs),
		CategoryTotals: CategoryTotals(txs),
		Monthly:        MonthlySummary(txs),
		Series:         BalanceSeries(txs),
	}
}

// Balance returns the overall balance: total income minus total expense.
func Balance(txs []models.Transaction) int64 {
	var balance int64
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeIncome {
			balance += tx.Amount
		} else {
			balance -= tx.Amount
		}
	}
	return balance
}

// CategoryTotals groups expense amounts by category. Income rows never
// contribute, whatever category they carry. Expenses without a category
// bucket under "other". Categories with no expenses are absent from the
// result rather than zero-filled.
func CategoryTotals(txs []models.Transaction) map[models.Category]int64 {
	totals := make(map[models.Category]int64)
	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		totals[expenseCategory(tx)] += tx.Amount
	}
	return totals
}

func expenseCategory(tx models.Transaction) models.Category {
	if tx.Category == nil || !tx.Category.Valid() {
		return models.CategoryOther
	}
	return *tx.Category
}

// MonthlySummary groups all transactions into calendar months keyed
// "YYYY-MM" and totals income and expense separately per month. A month in
// which nothing happened never appears as a key; consumers must not assume
// contiguous months.
func MonthlySummary(txs []models.Transaction) map[string]MonthTotals {
	summary := make(map[string]MonthTotals)
	for _, tx := range txs {
		month := tx.Date.Month()
		totals := summary[month]
		if tx.Type == models.TransactionTypeIncome {
			totals.Income += tx.Amount
		} else {
			totals.Expense += tx.Amount
		}
		summary[month] = totals
	}
	return summary
}

// sortedMonths returns the summary's month keys ascending. Lexical order of
// "YYYY-MM" keys is chronological order by construction.
func sortedMonths(summary map[string]MonthTotals) []string {
	months := make([]string, 0, len(summary))
	for month := range summary {
		months = append(months, month)
	}
	sort.Strings(months)
	return months
}

// BalanceSeries produces the cumulative balance after each month, ascending.
//
// The series is reconstructed in two passes anchored on the grand total:
// first walk the sorted months in reverse, subtracting each month's net from
// the overall balance to recover the balance before the earliest month;
// then walk forward accumulating nets into one point per month. The final
// point therefore always equals Balance(txs) exactly.
func BalanceSeries(txs []models.Transaction) []BalancePoint {
	summary := MonthlySummary(txs)
	months := sortedMonths(summary)

	starting := Balance(txs)
	for i := len(months) - 1; i >= 0; i-- {
		starting -= summary[months[i]].Net()
	}

	series := make([]BalancePoint, 0, len(months))
	accumulated := starting
	for _, month := range months {
		accumulated += summary[month].Net()
		series = append(series, BalancePoint{Month: month, Balance: accumulated})
	}
	return series
}

// MonthlyReport flattens the monthly summary into rows sorted newest month
// first, the order the reports table and the exported workbook use.
func MonthlyReport(txs []models.Transaction) []MonthRow {
	summary := MonthlySummary(txs)
	months := sortedMonths(summary)

	rows := make([]MonthRow, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		totals := summary[months[i]]
		rows = append(rows, MonthRow{
			Month:   months[i],
			Income:  totals.Income,
			Expense: totals.Expense,
			Net:     totals.Net(),
		})
	}
	return rows
}

// FilterByDescription returns the transactions whose description contains
// the term, case-insensitively, preserving the input order. An empty term
// matches everything.
func FilterByDescription(txs []models.Transaction, term string) []models.Transaction {
	if term == "" {
		return txs
	}
	term = strings.ToLower(term)
	matched := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.Description), term) {
			matched = append(matched, tx)
		}
	}
	return matched
}
