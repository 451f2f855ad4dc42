package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single ledger entry. Amount is a positive
// magnitude in minor units (cents); direction comes from Type alone.
// UserID is assigned from the authenticated session at creation and is
// never editable.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    *Category       `json:"category,omitempty"`
	Date        Date            `gorm:"not null" json:"date"`
}
