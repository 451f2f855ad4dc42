package services

import (
	"testing"

	"fintrack/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, token, err := svc.CreateUser("New@Example.com", "password123")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "new@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "password123" {
			t.Error("password stored in plain text")
		}
		if user.EmailConfirmed() {
			t.Error("new user must start unconfirmed")
		}
		if token == "" {
			t.Error("expected a confirmation token")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, _, err := svc.CreateUser("dup@example.com", "password123")
		testutil.AssertNoError(t, err)

		_, _, err = svc.CreateUser("DUP@example.com", "password456")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, _, err := svc.CreateUser("", "password123")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, _, err = svc.CreateUser("a@b.com", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestConfirmEmail(t *testing.T) {
	t.Run("valid_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, token, err := svc.CreateUser("confirm@example.com", "password123")
		testutil.AssertNoError(t, err)

		user, err := svc.ConfirmEmail(token)
		testutil.AssertNoError(t, err)
		if !user.EmailConfirmed() {
			t.Error("expected user to be confirmed")
		}

		// Token is single use.
		_, err = svc.ConfirmEmail(token)
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})

	t.Run("unknown_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.ConfirmEmail("deadbeef")
		testutil.AssertAppError(t, err, "INVALID_TOKEN")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("confirmed_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		got, err := svc.AttemptLogin(user.Email, "password123")
		testutil.AssertNoError(t, err)
		if got.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, got.ID)
		}
		if got.LastLoginAt == nil {
			t.Error("expected last login timestamp to be set")
		}
	})

	t.Run("unconfirmed_user_gets_distinct_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, _, err := svc.CreateUser("pending@example.com", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("pending@example.com", "password123")
		testutil.AssertAppError(t, err, "EMAIL_NOT_CONFIRMED")
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AttemptLogin(user.Email, "not-the-password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("nobody@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("wrong_password_on_unconfirmed_account_stays_generic", func(t *testing.T) {
		// Credentials are checked before confirmation state so the
		// unconfirmed message never leaks whether a password was right.
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, _, err := svc.CreateUser("pending2@example.com", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("pending2@example.com", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestRefreshTokenHash(t *testing.T) {
	t.Run("store_get_clear", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "abc123"))

		hash, err := svc.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "abc123" {
			t.Errorf("expected stored hash, got %q", hash)
		}

		testutil.AssertNoError(t, svc.ClearRefreshTokenHash(user.ID))
		hash, err = svc.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "" {
			t.Errorf("expected cleared hash, got %q", hash)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		err := svc.StoreRefreshTokenHash("00000000-0000-0000-0000-000000000000", "abc")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
