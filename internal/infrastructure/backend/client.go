// Package backend is the HTTP client for the remote marketplace API. All
// console traffic to /admin/* goes through it, and every failure it returns
// is already normalized to a single user-presentable message.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mohammadpnp/admin-console/internal/domain/transaction"
	"github.com/mohammadpnp/admin-console/pkg/dto"
)

const requestTimeout = 30 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

type bulkRequest struct {
	Rows []transaction.ImportRow `json:"rows"`
}

// SubmitTransactions sends the whole validated batch in one call. The
// returned error, if any, carries the normalized message for the report.
func (c *Client) SubmitTransactions(ctx context.Context, token string, rows []transaction.ImportRow) (transaction.BulkOutcome, error) {
	var outcome transaction.BulkOutcome
	err := c.do(ctx, http.MethodPost, "/admin/transactions/bulk", token, bulkRequest{Rows: rows}, &outcome)
	if err != nil {
		return transaction.BulkOutcome{}, err
	}
	if outcome.Errors == nil {
		outcome.Errors = []string{}
	}
	return outcome, nil
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]dto.User, error) {
	var users []dto.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, token, id string) (dto.User, error) {
	var u dto.User
	if err := c.do(ctx, http.MethodGet, "/admin/users/"+id, token, nil, &u); err != nil {
		return dto.User{}, err
	}
	return u, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, patch dto.UserUpdate) (dto.User, error) {
	var u dto.User
	if err := c.do(ctx, http.MethodPatch, "/admin/users/"+id, token, patch, &u); err != nil {
		return dto.User{}, err
	}
	return u, nil
}

func (c *Client) ListSellers(ctx context.Context, token string) ([]dto.Seller, error) {
	var sellers []dto.Seller
	if err := c.do(ctx, http.MethodGet, "/admin/sellers", token, nil, &sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

func (c *Client) VerifySeller(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/sellers/"+id+"/verify", token, nil, nil)
}

func (c *Client) SuspendSeller(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/sellers/"+id+"/suspend", token, nil, nil)
}

func (c *Client) ListPayouts(ctx context.Context, token, status string) ([]dto.Payout, error) {
	path := "/admin/payouts"
	if status != "" {
		path += "?status=" + status
	}
	var payouts []dto.Payout
	if err := c.do(ctx, http.MethodGet, path, token, nil, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

func (c *Client) ApprovePayout(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/payouts/"+id+"/approve", token, nil, nil)
}

func (c *Client) RejectPayout(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/payouts/"+id+"/reject", token, nil, nil)
}

func (c *Client) CompletePayout(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/payouts/"+id+"/complete", token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend request failed", zap.String("path", path), zap.Error(err))
		return errNetwork
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		c.log.Warn("backend returned error status",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return normalizeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
