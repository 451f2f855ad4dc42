package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestReportSnapshot(t *testing.T) {
	t.Run("derives_all_views", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 100000, testutil.Cat(models.CategorySalary), "2024-01-05")
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 30000, testutil.Cat(models.CategoryFood), "2024-01-10")
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 20000, testutil.Cat(models.CategoryTransport), "2024-02-01")

		snap, err := svc.Snapshot(user.ID)
		testutil.AssertNoError(t, err)

		if snap.Balance != 50000 {
			t.Errorf("expected balance 50000, got %d", snap.Balance)
		}
		if snap.CategoryTotals[models.CategoryFood] != 30000 {
			t.Errorf("expected food total 30000, got %d", snap.CategoryTotals[models.CategoryFood])
		}
		if snap.Monthly["2024-01"].Income != 100000 {
			t.Errorf("unexpected January income: %d", snap.Monthly["2024-01"].Income)
		}
		if len(snap.Series) != 2 || snap.Series[1].Balance != 50000 {
			t.Errorf("unexpected series: %v", snap.Series)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, other.ID, models.TransactionTypeIncome, 999999, nil, "2024-01-01")

		snap, err := svc.Snapshot(user.ID)
		testutil.AssertNoError(t, err)
		if snap.Balance != 0 {
			t.Errorf("foreign rows leaked into snapshot: balance %d", snap.Balance)
		}
	})

	t.Run("deleted_row_absent_from_every_view_after_reload", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 100000, nil, "2024-01-05")
		doomed := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 30000, testutil.Cat(models.CategoryFood), "2024-02-10")

		testutil.AssertNoError(t, txSvc.DeleteTransaction(user.ID, doomed.ID))

		snap, err := svc.Snapshot(user.ID)
		testutil.AssertNoError(t, err)

		if snap.Balance != 100000 {
			t.Errorf("expected balance 100000 after delete, got %d", snap.Balance)
		}
		if _, ok := snap.CategoryTotals[models.CategoryFood]; ok {
			t.Error("deleted expense still present in category totals")
		}
		if _, ok := snap.Monthly["2024-02"]; ok {
			t.Error("deleted expense's month still present in summary")
		}
		for _, point := range snap.Series {
			if point.Month == "2024-02" {
				t.Error("deleted expense's month still present in series")
			}
		}

		rows, err := svc.Ledger(user.ID, "")
		testutil.AssertNoError(t, err)
		for _, row := range rows {
			if row.ID == doomed.ID {
				t.Error("deleted transaction still present in ledger rows")
			}
		}
	})

	t.Run("empty_ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewReportService(NewTransactionService(db))
		user := testutil.CreateTestUser(t, db)

		snap, err := svc.Snapshot(user.ID)
		testutil.AssertNoError(t, err)
		if snap.Balance != 0 || len(snap.CategoryTotals) != 0 || len(snap.Monthly) != 0 || len(snap.Series) != 0 {
			t.Errorf("expected empty snapshot, got %+v", snap)
		}
	})
}

func TestReportMonthlyReport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	txSvc := NewTransactionService(db)
	svc := NewReportService(txSvc)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 100000, nil, "2024-01-05")
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 20000, nil, "2024-02-01")

	rows, err := svc.MonthlyReport(user.ID)
	testutil.AssertNoError(t, err)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Newest month first.
	if rows[0].Month != "2024-02" || rows[1].Month != "2024-01" {
		t.Errorf("unexpected order: %s, %s", rows[0].Month, rows[1].Month)
	}
	if rows[0].Net != -20000 || rows[1].Net != 100000 {
		t.Errorf("unexpected nets: %d, %d", rows[0].Net, rows[1].Net)
	}
}

func TestReportLedger(t *testing.T) {
	t.Run("search_filters_rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		lunch, err := txSvc.CreateTransaction(user.ID, "Lunch", 1200, models.TransactionTypeExpense, testutil.Cat(models.CategoryFood), mustDate(t, "2024-01-03"))
		testutil.AssertNoError(t, err)
		_, err = txSvc.CreateTransaction(user.ID, "Rent", 90000, models.TransactionTypeExpense, testutil.Cat(models.CategoryHousing), mustDate(t, "2024-01-02"))
		testutil.AssertNoError(t, err)
		_, err = txSvc.CreateTransaction(user.ID, "Lunch with friend", 2400, models.TransactionTypeExpense, testutil.Cat(models.CategoryFood), mustDate(t, "2024-01-01"))
		testutil.AssertNoError(t, err)

		rows, err := svc.Ledger(user.ID, "LUNCH")
		testutil.AssertNoError(t, err)

		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		// Stored order (newest first) is preserved through the filter.
		if rows[0].ID != lunch.ID {
			t.Errorf("unexpected first row: %s", rows[0].Description)
		}
		if rows[0].Amount != "- 12.00" {
			t.Errorf("unexpected display amount: %q", rows[0].Amount)
		}
	})
}
