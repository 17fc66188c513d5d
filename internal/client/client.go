// Package client provides an HTTP client for the WalletWise REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"walletwise/internal/models"
	"walletwise/internal/money"
)

// ErrUnexpectedStatus matches every *StatusError via errors.Is.
var ErrUnexpectedStatus = errors.New("unexpected status")

// StatusError is a non-2xx API response. Code and Message are filled from the
// error body when the server sent one.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("unexpected status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Is reports whether target is ErrUnexpectedStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Records is the outcome of fetching a user's budgets and transactions. Each
// collection fails independently: a failed fetch leaves its slice empty and
// sets its error.
type Records struct {
	Budgets         []models.Budget
	Transactions    []models.Transaction
	BudgetsErr      error
	TransactionsErr error
}

// Client communicates with the WalletWise API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API rooted at baseURL, e.g.
// "http://localhost:5000".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetBudgets fetches every budget owned by userID.
func (c *Client) GetBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := c.do(ctx, http.MethodGet, "/api/budgets/"+url.PathEscape(userID), nil, &budgets); err != nil {
		return nil, fmt.Errorf("fetching budgets: %w", err)
	}
	return budgets, nil
}

// GetTransactions fetches every transaction owned by userID.
func (c *Client) GetTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions/"+url.PathEscape(userID), nil, &txns); err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	return txns, nil
}

// GetSavingsGoals fetches every savings goal owned by userID.
func (c *Client) GetSavingsGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := c.do(ctx, http.MethodGet, "/api/savings/"+url.PathEscape(userID), nil, &goals); err != nil {
		return nil, fmt.Errorf("fetching savings goals: %w", err)
	}
	return goals, nil
}

// FetchRecords fetches budgets and transactions in parallel. It never fails
// as a whole; inspect BudgetsErr and TransactionsErr.
func (c *Client) FetchRecords(ctx context.Context, userID string) Records {
	var r Records
	var g errgroup.Group

	g.Go(func() error {
		r.Budgets, r.BudgetsErr = c.GetBudgets(ctx, userID)
		if r.Budgets == nil {
			r.Budgets = []models.Budget{}
		}
		return nil
	})
	g.Go(func() error {
		r.Transactions, r.TransactionsErr = c.GetTransactions(ctx, userID)
		if r.Transactions == nil {
			r.Transactions = []models.Transaction{}
		}
		return nil
	})

	_ = g.Wait()
	return r
}

// Allocate adds amount to a savings goal and returns the updated goal.
func (c *Client) Allocate(ctx context.Context, goalID string, amount money.Cents) (*models.SavingsGoal, error) {
	body := struct {
		AllocationAmount money.Cents `json:"allocationAmount"`
	}{AllocationAmount: amount}

	var goal models.SavingsGoal
	if err := c.do(ctx, http.MethodPut, "/api/savings/"+url.PathEscape(goalID), body, &goal); err != nil {
		return nil, fmt.Errorf("allocating funds: %w", err)
	}
	return &goal, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			statusErr.Code = errBody.Error.Code
			statusErr.Message = errBody.Error.Message
		}
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
