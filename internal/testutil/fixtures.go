package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a confirmed user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a confirmed user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	confirmed := time.Now()
	user := &models.User{
		Email:            email,
		Password:         string(hash),
		IsActive:         true,
		EmailConfirmedAt: &confirmed,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction of the given type and amount
// (in cents) dated on the given ISO date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount int64, category *models.Category, isoDate string) *models.Transaction {
	t.Helper()

	date, err := models.ParseDate(isoDate)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", isoDate, err)
	}

	tx := &models.Transaction{
		UserID:      userID,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// Cat returns a pointer to the given category, for fixture payloads.
func Cat(c models.Category) *models.Category {
	return &c
}
