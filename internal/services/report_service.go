package services

import (
	"fintrack/internal/ledger"
)

// reportService reloads the full transaction collection and recomputes every
// derived view on each call. The snapshot is request-scoped: nothing is
// cached between calls, so displayed aggregates can never drift from the
// store after a mutation.
type reportService struct {
	transactions TransactionServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(transactions TransactionServicer) ReportServicer {
	return &reportService{transactions: transactions}
}

// Snapshot loads the user's ledger and derives balance, category totals,
// monthly summary, and the running balance series in one pass.
func (s *reportService) Snapshot(userID string) (*ledger.Snapshot, error) {
	txs, err := s.transactions.ListTransactions(userID)
	if err != nil {
		return nil, err
	}
	snapshot := ledger.BuildSnapshot(txs)
	return &snapshot, nil
}

// MonthlyReport loads the ledger and flattens it into report rows, newest
// month first.
func (s *reportService) MonthlyReport(userID string) ([]ledger.MonthRow, error) {
	txs, err := s.transactions.ListTransactions(userID)
	if err != nil {
		return nil, err
	}
	return ledger.MonthlyReport(txs), nil
}

// Ledger loads the user's transactions, applies the description search, and
// shapes the result into display rows in stored order (newest first).
func (s *reportService) Ledger(userID, search string) ([]ledger.LedgerRow, error) {
	txs, err := s.transactions.ListTransactions(userID)
	if err != nil {
		return nil, err
	}
	return ledger.LedgerRows(ledger.FilterByDescription(txs, search)), nil
}
