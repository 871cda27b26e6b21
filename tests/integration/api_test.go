package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"skyport/internal/models"
)

// These tests run against a live API. Set SKYPORT_API_URL to enable them,
// e.g. SKYPORT_API_URL=http://localhost:8080 go test ./tests/integration/...

func baseURL(t *testing.T) string {
	t.Helper()

	url := os.Getenv("SKYPORT_API_URL")
	if url == "" {
		t.Skip("SKYPORT_API_URL not set, skipping integration tests")
	}
	return url
}

func newUserClient(t *testing.T) *TestClient {
	t.Helper()

	client := NewTestClient(baseURL(t))
	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())
	client.Register(t, email, "integration-pass-1")
	return client
}

func TestAPI_HealthCheck(t *testing.T) {
	client := NewTestClient(baseURL(t))
	client.HealthCheck(t)
}

func TestAPI_AuthRequired(t *testing.T) {
	client := NewTestClient(baseURL(t))

	resp := client.makeRequest(t, "GET", "/api/flights", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("Expected status 401 without a token, got %d", resp.StatusCode)
	}
}

func TestAPI_ListFlights(t *testing.T) {
	client := newUserClient(t)

	flights := client.ListFlights(t, "")
	for _, flight := range flights {
		if flight.TicketsAvailable < 0 {
			t.Fatalf("Flight %d has negative availability: %d", flight.ID, flight.TicketsAvailable)
		}
	}
}

func TestAPI_OrderFlow(t *testing.T) {
	client := newUserClient(t)

	flights := client.ListFlights(t, "")
	if len(flights) == 0 {
		t.Skip("No flights seeded, skipping order flow")
	}
	flight := flights[0]
	if flight.TicketsAvailable == 0 {
		t.Skip("First flight is sold out, skipping order flow")
	}

	before := flight.TicketsAvailable

	// Find a free seat by walking the grid; taken seats return 409.
	var created *http.Response
	var ticket models.TicketRequest
	for row := 1; row <= 50 && created == nil; row++ {
		for seat := 1; seat <= 20; seat++ {
			ticket = models.TicketRequest{FlightID: flight.ID, Row: row, Seat: seat}
			resp := client.CreateOrder(t, []models.TicketRequest{ticket})
			if resp.StatusCode == http.StatusCreated {
				created = resp
				break
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusBadRequest {
				// Walked off the grid for this flight.
				break
			}
			if resp.StatusCode != http.StatusConflict {
				t.Fatalf("Unexpected status %d while booking", resp.StatusCode)
			}
		}
	}
	if created == nil {
		t.Skip("Could not find a free seat to book")
	}
	defer created.Body.Close()

	var order models.Order
	if err := json.NewDecoder(created.Body).Decode(&order); err != nil {
		t.Fatalf("Failed to decode order: %v", err)
	}
	if len(order.Tickets) != 1 {
		t.Fatalf("Expected 1 ticket, got %d", len(order.Tickets))
	}

	// Booking the same seat again must conflict.
	dup := client.CreateOrder(t, []models.TicketRequest{ticket})
	defer dup.Body.Close()
	if dup.StatusCode != http.StatusConflict {
		t.Fatalf("Expected status 409 for duplicate seat, got %d", dup.StatusCode)
	}

	// Availability must drop by exactly one.
	for _, f := range client.ListFlights(t, "") {
		if f.ID == flight.ID && f.TicketsAvailable != before-1 {
			t.Fatalf("Expected availability %d, got %d", before-1, f.TicketsAvailable)
		}
	}

	// The order must show up in the owner's listing and nobody else's.
	page := client.ListOrders(t, 1, 10)
	found := false
	for _, o := range page.Results {
		if o.ID == order.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("Order %d missing from owner's listing", order.ID)
	}

	other := newUserClient(t)
	resp := other.makeRequest(t, "GET", fmt.Sprintf("/api/orders/%d", order.ID), nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected status 404 for foreign order, got %d", resp.StatusCode)
	}
}

func TestAPI_OrderPaginationDefaults(t *testing.T) {
	client := newUserClient(t)

	resp := client.makeRequest(t, "GET", "/api/orders", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var page models.OrderPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("Failed to decode orders page: %v", err)
	}
	if page.PageSize != 3 {
		t.Fatalf("Expected default page size 3, got %d", page.PageSize)
	}
}
