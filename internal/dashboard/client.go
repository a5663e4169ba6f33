package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
)

// DayPoint is one row of the orders analytics series.
type DayPoint struct {
	Date            string          `json:"date"`
	OrderCount      int64           `json:"order_count"`
	CompletedOrders int64           `json:"completed_orders"`
	DailyRevenue    decimal.Decimal `json:"daily_revenue"`
}

type RevenuePoint struct {
	Period  string          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api status %d", e.Status)
	}
	return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient targets an API root such as http://localhost:8080/api.
func NewClient(apiURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Admin   *Admin          `json:"admin"`
	Token   string          `json:"token"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var rdr *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(raw)
	} else {
		rdr = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	env, err := c.do(ctx, http.MethodPost, "/admin-auth", "", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return Session{}, err
	}
	if env.Admin == nil || env.Token == "" {
		return Session{}, fmt.Errorf("login response without admin or token")
	}
	return Session{Admin: env.Admin, Token: env.Token}, nil
}

func (c *Client) Stats(ctx context.Context, token string) (*models.DashboardStats, error) {
	env, err := c.do(ctx, http.MethodGet, "/admin-dashboard", token, nil)
	if err != nil {
		return nil, err
	}
	var st models.DashboardStats
	if err := json.Unmarshal(env.Data, &st); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return &st, nil
}

func (c *Client) OrdersAnalytics(ctx context.Context, token string, days int) ([]DayPoint, error) {
	env, err := c.do(ctx, http.MethodGet, "/orders-analytics?days="+strconv.Itoa(days), token, nil)
	if err != nil {
		return nil, err
	}
	var out []DayPoint
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("decode orders analytics: %w", err)
	}
	return out, nil
}

func (c *Client) RevenueReport(ctx context.Context, token, period string) ([]RevenuePoint, error) {
	env, err := c.do(ctx, http.MethodGet, "/revenue-report?period="+url.QueryEscape(period), token, nil)
	if err != nil {
		return nil, err
	}
	var out []RevenuePoint
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("decode revenue report: %w", err)
	}
	return out, nil
}
