package api

import (
	"net/http"
	"strconv"
	"testing"
)

type recordResponse struct {
	Record struct {
		ID               uint    `json:"id"`
		Date             string  `json:"date"`
		TotalRevenue     float64 `json:"total_revenue"`
		GrossProfit      float64 `json:"gross_profit"`
		NetProfit        float64 `json:"net_profit"`
		NetProfitPerHour float64 `json:"net_profit_per_hour"`
		ActiveSeconds    int64   `json:"active_seconds"`
	} `json:"record"`
}

func sampleDayPayload(date string) map[string]any {
	return map[string]any{
		"date":           date,
		"uber":           map[string]any{"rides": 10, "amount": 200},
		"ninety_nine":    map[string]any{"rides": 8, "amount": 150},
		"private":        map[string]any{"rides": 2, "amount": 50},
		"fuel_expense":   60,
		"food_expense":   20,
		"other_expense":  10,
		"active_seconds": 28800,
	}
}

func TestCloseDayOverAPI(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestDriver(t, app, "close-day@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/days", token, sampleDayPayload("2026-03-02"))
	if status != http.StatusCreated {
		t.Fatalf("close day expected 201, got %d: %s", status, body)
	}

	var response recordResponse
	decodeBody(t, body, &response)
	if response.Record.Date != "2026-03-02" {
		t.Fatalf("expected stored date 2026-03-02, got %s", response.Record.Date)
	}
	if response.Record.TotalRevenue != 400 || response.Record.GrossProfit != 310 {
		t.Fatalf("unexpected computed totals: %s", body)
	}
	if response.Record.NetProfitPerHour != 38.75 {
		t.Fatalf("expected per-hour 38.75, got %v", response.Record.NetProfitPerHour)
	}
}

func TestCloseDayDuplicateDateConflicts(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestDriver(t, app, "duplicate-day@example.com")

	if status, body := doJSON(t, app, http.MethodPost, "/api/days", token, sampleDayPayload("2026-03-03")); status != http.StatusCreated {
		t.Fatalf("first close expected 201, got %d: %s", status, body)
	}
	if status, body := doJSON(t, app, http.MethodPost, "/api/days", token, sampleDayPayload("2026-03-03")); status != http.StatusConflict {
		t.Fatalf("duplicate close expected 409, got %d: %s", status, body)
	}

	status, body := doJSON(t, app, http.MethodGet, "/api/days/exists/2026-03-03", token, nil)
	if status != http.StatusOK {
		t.Fatalf("exists expected 200, got %d: %s", status, body)
	}
	var exists struct {
		Exists bool `json:"exists"`
	}
	decodeBody(t, body, &exists)
	if !exists.Exists {
		t.Fatalf("expected exists=true, got %s", body)
	}
}

func TestUpdateDayRecomputesOverAPI(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestDriver(t, app, "update-day@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/days", token, sampleDayPayload("2026-03-04"))
	if status != http.StatusCreated {
		t.Fatalf("close expected 201, got %d: %s", status, body)
	}
	var created recordResponse
	decodeBody(t, body, &created)

	status, body = doJSON(t, app, http.MethodPut, "/api/days/"+itoa(created.Record.ID), token, map[string]any{
		"uber":           map[string]any{"rides": 4, "amount": 80},
		"fuel_expense":   30,
		"active_seconds": 14400,
	})
	if status != http.StatusOK {
		t.Fatalf("update expected 200, got %d: %s", status, body)
	}

	var updated recordResponse
	decodeBody(t, body, &updated)
	if updated.Record.TotalRevenue != 80 || updated.Record.NetProfit != 50 {
		t.Fatalf("expected full recompute on edit, got %s", body)
	}
	if updated.Record.NetProfitPerHour != 12.5 {
		t.Fatalf("expected per-hour 12.5, got %v", updated.Record.NetProfitPerHour)
	}
}

func TestDayRecordsAreScopedPerUser(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	ownerToken := registerTestDriver(t, app, "record-owner@example.com")
	otherToken := registerTestDriver(t, app, "record-other@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/days", ownerToken, sampleDayPayload("2026-03-05"))
	if status != http.StatusCreated {
		t.Fatalf("close expected 201, got %d: %s", status, body)
	}
	var created recordResponse
	decodeBody(t, body, &created)

	if status, _ := doJSON(t, app, http.MethodGet, "/api/days/"+itoa(created.Record.ID), otherToken, nil); status != http.StatusNotFound {
		t.Fatalf("foreign record read expected 404, got %d", status)
	}
	if status, _ := doJSON(t, app, http.MethodDelete, "/api/days/"+itoa(created.Record.ID), otherToken, nil); status != http.StatusNotFound {
		t.Fatalf("foreign record delete expected 404, got %d", status)
	}

	if status, _ := doJSON(t, app, http.MethodDelete, "/api/days/"+itoa(created.Record.ID), ownerToken, nil); status != http.StatusOK {
		t.Fatalf("owner delete expected 200, got %d", status)
	}
}

func TestCloseDayRejectsNegativeInputs(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestDriver(t, app, "negative-day@example.com")

	payload := sampleDayPayload("2026-03-06")
	payload["fuel_expense"] = -5

	if status, body := doJSON(t, app, http.MethodPost, "/api/days", token, payload); status != http.StatusBadRequest {
		t.Fatalf("negative expense expected 400, got %d: %s", status, body)
	}
}

func itoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
