package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetBudgets_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/budgets/u1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"budgetId": "b1", "userId": "u1", "category": "Housing", "amount": 1200, "date": "2025-03-01T00:00:00Z"},
			{"budgetId": "b2", "userId": "u1", "category": "Other", "customCategory": "Pets", "amount": 50.75, "date": "2025-03-02T00:00:00Z"},
		})
	}))
	defer server.Close()

	c := New(server.URL+"/", server.Client())
	budgets, err := c.GetBudgets(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(budgets) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(budgets))
	}
	if budgets[0].BudgetID != "b1" || budgets[0].Amount != 120000 {
		t.Errorf("first budget mismatch: %+v", budgets[0])
	}
	if budgets[1].CustomCategory != "Pets" || budgets[1].Amount != 5075 || budgets[1].Date.Day() != 2 {
		t.Errorf("second budget mismatch: %+v", budgets[1])
	}
}

func TestGetTransactions_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"code":"INTERNAL_ERROR","message":"An internal server error occurred"}}`)
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	_, err := c.GetTransactions(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("expected ErrUnexpectedStatus, got %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError || statusErr.Code != "INTERNAL_ERROR" {
		t.Errorf("unexpected status error: %+v", statusErr)
	}
}

func TestFetchRecords_PartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/budgets/"):
			w.WriteHeader(http.StatusBadGateway)
		case strings.HasPrefix(r.URL.Path, "/api/transactions/"):
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"transactionId": "t1", "userId": "u1", "type": "expense", "amount": 42, "category": "Food & Dining", "date": "2025-03-10T00:00:00Z"},
			})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL, server.Client())
	r := c.FetchRecords(context.Background(), "u1")

	if r.BudgetsErr == nil || !errors.Is(r.BudgetsErr, ErrUnexpectedStatus) {
		t.Errorf("expected budgets error, got %v", r.BudgetsErr)
	}
	if r.Budgets == nil || len(r.Budgets) != 0 {
		t.Errorf("expected empty budgets on failure, got %+v", r.Budgets)
	}
	if r.TransactionsErr != nil {
		t.Fatalf("unexpected transactions error: %v", r.TransactionsErr)
	}
	if len(r.Transactions) != 1 || r.Transactions[0].Amount != 4200 {
		t.Errorf("unexpected transactions: %+v", r.Transactions)
	}
}

func TestFetchRecords_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	r := New(url, nil).FetchRecords(context.Background(), "u1")
	if r.BudgetsErr == nil || r.TransactionsErr == nil {
		t.Fatalf("expected both fetches to fail, got %v / %v", r.BudgetsErr, r.TransactionsErr)
	}
	if errors.Is(r.BudgetsErr, ErrUnexpectedStatus) {
		t.Errorf("transport failure should not look like a status error")
	}
}

func TestGetSavingsGoals_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/savings/u%201" {
			t.Errorf("unexpected path: %s", r.URL.EscapedPath())
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"savingGoalId": "g1", "userId": "u 1", "goalName": "Trip", "targetAmount": 1000, "initialAmount": 125.5},
			{"savingGoalId": "g2", "userId": "u 1", "goalName": "Car", "targetAmount": 8000.99, "initialAmount": 0},
		})
	}))
	defer server.Close()

	goals, err := New(server.URL, server.Client()).GetSavingsGoals(context.Background(), "u 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[0].GoalName != "Trip" || goals[0].InitialAmount != 12550 {
		t.Errorf("first goal mismatch: %+v", goals[0])
	}
	if goals[1].TargetAmount != 800099 {
		t.Errorf("expected 800099 cents, got %d", goals[1].TargetAmount)
	}
}

func TestGetSavingsGoals_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"code":"NOT_FOUND","message":"Route not found"}}`)
	}))
	defer server.Close()

	goals, err := New(server.URL, server.Client()).GetSavingsGoals(context.Background(), "u1")
	if goals != nil {
		t.Errorf("expected no goals, got %+v", goals)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 status error, got %v", err)
	}
}

func TestAllocate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/api/savings/g1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type")
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body["allocationAmount"] != 25.5 {
			t.Errorf("expected allocationAmount 25.5, got %v", body["allocationAmount"])
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"savingGoalId": "g1", "goalName": "Trip", "targetAmount": 1000, "initialAmount": 125.5,
		})
	}))
	defer server.Close()

	goal, err := New(server.URL, server.Client()).Allocate(context.Background(), "g1", 2550)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.InitialAmount != 12550 || goal.TargetAmount != 100000 {
		t.Errorf("expected 12550 of 100000 cents, got %d of %d", goal.InitialAmount, goal.TargetAmount)
	}
}

func TestAllocate_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":"INVALID_ALLOCATION","message":"Allocation amount must be greater than zero"}}`)
	}))
	defer server.Close()

	_, err := New(server.URL, server.Client()).Allocate(context.Background(), "g1", 0)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != "INVALID_ALLOCATION" {
		t.Errorf("expected INVALID_ALLOCATION status error, got %v", err)
	}
}
