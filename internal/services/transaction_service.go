package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// validateTransactionInput rejects malformed payloads before anything is
// persisted or aggregated. The reporting engine assumes well-formed rows.
func validateTransactionInput(description string, amount int64, txType models.TransactionType, category *models.Category, date models.Date) error {
	if strings.TrimSpace(description) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	switch txType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return apperrors.ErrInvalidTransactionType
	}
	if category != nil && !category.Valid() {
		return apperrors.ErrInvalidCategory
	}
	if date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	return nil
}

// CreateTransaction creates a new transaction owned by the authenticated
// user. The owner comes from the session, never from the payload.
func (s *transactionService) CreateTransaction(
	userID, description string,
	amount int64,
	txType models.TransactionType,
	category *models.Category,
	date models.Date,
) (*models.Transaction, error) {
	if err := validateTransactionInput(description, amount, txType, category, date); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// UpdateTransaction replaces every mutable field of an existing transaction.
// ID and owner are immutable; a row belonging to another user reads as not
// found.
func (s *transactionService) UpdateTransaction(
	userID, transactionID, description string,
	amount int64,
	txType models.TransactionType,
	category *models.Category,
	date models.Date,
) (*models.Transaction, error) {
	if err := validateTransactionInput(description, amount, txType, category, date); err != nil {
		return nil, err
	}

	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	transaction.Description = description
	transaction.Amount = amount
	transaction.Type = txType
	transaction.Category = category
	transaction.Date = date

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// DeleteTransaction removes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// ListTransactions returns every transaction the user owns, newest first.
// The ledger is loaded whole; derived views recompute from this collection.
func (s *transactionService) ListTransactions(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
