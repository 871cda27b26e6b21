package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"skyport/internal/models"
)

// TestClient drives a running API instance over HTTP.
type TestClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *TestClient) makeRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	return resp
}

// Register creates a user and logs the client in.
func (c *TestClient) Register(t *testing.T, email, password string) {
	t.Helper()

	resp := c.makeRequest(t, "POST", "/api/users/register", models.RegisterRequest{
		Email:    email,
		Password: password,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusConflict {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201 or 409, got %d. Body: %s", resp.StatusCode, string(body))
	}

	c.Login(t, email, password)
}

// Login obtains an access token for subsequent requests.
func (c *TestClient) Login(t *testing.T, email, password string) {
	t.Helper()

	resp := c.makeRequest(t, "POST", "/api/users/token", models.TokenRequest{
		Email:    email,
		Password: password,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var token models.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		t.Fatalf("Failed to decode token response: %v", err)
	}

	c.Token = token.AccessToken
}

// HealthCheck verifies the API is up.
func (c *TestClient) HealthCheck(t *testing.T) {
	t.Helper()

	resp := c.makeRequest(t, "GET", "/health", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}

// ListFlights lists flights with optional query parameters.
func (c *TestClient) ListFlights(t *testing.T, query string) []models.Flight {
	t.Helper()

	path := "/api/flights"
	if query != "" {
		path += "?" + query
	}

	resp := c.makeRequest(t, "GET", path, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var flights []models.Flight
	if err := json.NewDecoder(resp.Body).Decode(&flights); err != nil {
		t.Fatalf("Failed to decode flights response: %v", err)
	}

	return flights
}

// CreateOrder books the given seats. Returns the response without asserting
// the status so tests can exercise conflicts.
func (c *TestClient) CreateOrder(t *testing.T, tickets []models.TicketRequest) *http.Response {
	t.Helper()
	return c.makeRequest(t, "POST", "/api/orders", models.CreateOrderRequest{Tickets: tickets})
}

// ListOrders fetches one page of the client's orders.
func (c *TestClient) ListOrders(t *testing.T, page, pageSize int) *models.OrderPage {
	t.Helper()

	path := fmt.Sprintf("/api/orders?page=%d&page_size=%d", page, pageSize)
	resp := c.makeRequest(t, "GET", path, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var orders models.OrderPage
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		t.Fatalf("Failed to decode orders response: %v", err)
	}

	return &orders
}
