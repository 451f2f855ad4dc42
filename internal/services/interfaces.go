package services

import (
	"fintrack/internal/ledger"
	"fintrack/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	// CreateUser registers a new user and returns the raw email
	// confirmation token alongside the created record.
	CreateUser(email, password string) (*models.User, string, error)
	ConfirmEmail(token string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	ClearRefreshTokenHash(userID string) error
}

// TransactionServicer defines the contract for transaction mutations and
// reads. The owner of every row is the authenticated user; callers cannot
// supply or change it.
type TransactionServicer interface {
	CreateTransaction(userID, description string, amount int64, txType models.TransactionType, category *models.Category, date models.Date) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID, description string, amount int64, txType models.TransactionType, category *models.Category, date models.Date) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	// ListTransactions returns the user's full ledger, newest first.
	ListTransactions(userID string) ([]models.Transaction, error)
}

// ReportServicer derives reporting views by reloading the full transaction
// collection and recomputing from scratch. No incremental state is kept, so
// a snapshot taken after any mutation always reflects the store.
type ReportServicer interface {
	Snapshot(userID string) (*ledger.Snapshot, error)
	MonthlyReport(userID string) ([]ledger.MonthRow, error)
	Ledger(userID, search string) ([]ledger.LedgerRow, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
