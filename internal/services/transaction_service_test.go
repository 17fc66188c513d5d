package services

import (
	"strings"
	"testing"
	"time"

	"walletwise/internal/models"
	"walletwise/internal/money"
	"walletwise/internal/pagination"
	"walletwise/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	date := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

	t.Run("valid_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.CreateTransaction("u1", "TXN-1", models.TransactionTypeExpense, "Groceries", 4250, "Food & Dining", date, "Checking")
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected generated ID")
		}
		if tx.TransactionID != "TXN-1" {
			t.Errorf("expected transactionId TXN-1, got %s", tx.TransactionID)
		}
		if tx.CategoryKey != "food & dining" {
			t.Errorf("expected category key food & dining, got %q", tx.CategoryKey)
		}
		if !tx.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, tx.Date)
		}
	})

	t.Run("custom_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.CreateTransaction("u1", "", models.TransactionTypeExpense, "Vet", 9000, "Pets", date, "")
		testutil.AssertNoError(t, err)

		if tx.CategoryKey != "other:pets" {
			t.Errorf("expected category key other:pets, got %q", tx.CategoryKey)
		}
		if !strings.HasPrefix(tx.TransactionID, "TXN-") {
			t.Errorf("expected generated TXN- id, got %s", tx.TransactionID)
		}
	})

	t.Run("defaults_date_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		before := time.Now().Add(-time.Second)
		tx, err := svc.CreateTransaction("u1", "", models.TransactionTypeIncome, "Salary", 500000, "Salary", time.Time{}, "")
		testutil.AssertNoError(t, err)

		if tx.Date.Before(before) {
			t.Errorf("expected date defaulted to now, got %v", tx.Date)
		}
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction("u1", "", models.TransactionType("transfer"), "", 100, "Housing", date, "")
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction("u1", "", models.TransactionTypeExpense, "", -1, "Housing", date, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction("u1", "", models.TransactionTypeExpense, "", 1, " ", date, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_transaction_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction("u1", "TXN-dup", models.TransactionTypeExpense, "", 1, "Housing", date, "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateTransaction("u1", "TXN-dup", models.TransactionTypeExpense, "", 1, "Housing", date, "")
		testutil.AssertAppError(t, err, "DUPLICATE_TRANSACTION")
	})
}

func TestGetUserTransactions(t *testing.T) {
	t.Run("returns_user_transactions_only_in_date_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		now := time.Now()
		later := testutil.CreateTestTransaction(t, db, "u1", models.TransactionTypeExpense, "Housing", 100, now)
		earlier := testutil.CreateTestTransaction(t, db, "u1", models.TransactionTypeIncome, "Salary", 200, now.AddDate(0, 0, -3))
		testutil.CreateTestTransaction(t, db, "u2", models.TransactionTypeExpense, "Housing", 300, now)

		txns, err := svc.GetUserTransactions("u1")
		testutil.AssertNoError(t, err)

		if len(txns) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txns))
		}
		if txns[0].TransactionID != earlier.TransactionID || txns[1].TransactionID != later.TransactionID {
			t.Errorf("expected date ascending order, got %s then %s", txns[0].TransactionID, txns[1].TransactionID)
		}
	})

	t.Run("unknown_user_returns_empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		txns, err := svc.GetUserTransactions("nobody")
		testutil.AssertNoError(t, err)
		if txns == nil || len(txns) != 0 {
			t.Errorf("expected empty non-nil list, got %v", txns)
		}
	})
}

func TestGetTransactionHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)

	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		testutil.CreateTestTransaction(t, db, "hist-user", models.TransactionTypeExpense, "Housing", money.Cents(100*(i+1)), base.AddDate(0, 0, i))
	}
	testutil.CreateTestTransaction(t, db, "other-user", models.TransactionTypeExpense, "Housing", 1, base)

	t.Run("first_page_newest_first", func(t *testing.T) {
		page, err := svc.GetTransactionHistory("hist-user", pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 5 || page.TotalPages != 3 {
			t.Errorf("expected 5 items over 3 pages, got %d over %d", page.TotalItems, page.TotalPages)
		}
		if len(page.Data) != 2 || page.Data[0].Amount != 500 || page.Data[1].Amount != 400 {
			t.Errorf("unexpected first page: %+v", page.Data)
		}
	})

	t.Run("last_page_partial", func(t *testing.T) {
		page, err := svc.GetTransactionHistory("hist-user", pagination.PageRequest{Page: 3, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.Data[0].Amount != 100 {
			t.Errorf("unexpected last page: %+v", page.Data)
		}
	})

	t.Run("defaults_applied", func(t *testing.T) {
		page, err := svc.GetTransactionHistory("hist-user", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.Page != 1 || page.PageSize != pagination.DefaultPageSize || len(page.Data) != 5 {
			t.Errorf("unexpected defaults: page=%d size=%d items=%d", page.Page, page.PageSize, len(page.Data))
		}
	})

	t.Run("unknown_user_empty", func(t *testing.T) {
		page, err := svc.GetTransactionHistory("nobody", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.Data == nil || len(page.Data) != 0 || page.TotalPages != 0 {
			t.Errorf("expected empty page, got %+v", page)
		}
	})
}
