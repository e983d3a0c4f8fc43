package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/selene-health/selene/internal/models"
)

func TestCreateCycleEntry(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "luna@example.com", "Sup3rSecret")

	response := jsonRequest(t, app, http.MethodPost, "/api/cycle/entries", token, map[string]any{
		"date":           "2024-05-01",
		"is_period_day":  true,
		"flow_intensity": models.FlowIntensityMedium,
		"moods":          []string{models.MoodTired},
		"notes":          "first day",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	entry := models.CycleEntry{}
	decodeJSONBody(t, response.Body, &entry)
	if entry.ID == 0 {
		t.Fatal("expected a persisted entry id")
	}
	if !entry.IsPeriodDay || entry.FlowIntensity != models.FlowIntensityMedium {
		t.Fatalf("entry fields not applied: %+v", entry)
	}
}

func TestCreateCycleEntryDuplicateDateConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "luna@example.com", "Sup3rSecret")

	payload := map[string]any{
		"date":           "2024-05-01",
		"is_period_day":  true,
		"flow_intensity": models.FlowIntensityLight,
	}

	first := jsonRequest(t, app, http.MethodPost, "/api/cycle/entries", token, payload)
	defer first.Body.Close()
	if first.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", first.StatusCode)
	}

	second := jsonRequest(t, app, http.MethodPost, "/api/cycle/entries", token, payload)
	defer second.Body.Close()
	if second.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409 for a duplicate date, got %d", second.StatusCode)
	}
}

func TestCreateCycleEntryValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "luna@example.com", "Sup3rSecret")

	cases := []struct {
		name    string
		payload map[string]any
		message string
	}{
		{
			name:    "period day without flow",
			payload: map[string]any{"date": "2024-05-01", "is_period_day": true},
			message: "flow intensity required for period days",
		},
		{
			name:    "flow on non-period day",
			payload: map[string]any{"date": "2024-05-01", "flow_intensity": models.FlowIntensityHeavy},
			message: "flow intensity only allowed for period days",
		},
		{
			name:    "unknown mood",
			payload: map[string]any{"date": "2024-05-01", "moods": []string{"euphoric"}},
			message: "invalid mood",
		},
		{
			name:    "unknown symptom",
			payload: map[string]any{"date": "2024-05-01", "physical_symptoms": []string{"sparkles"}},
			message: "invalid physical symptom",
		},
		{
			name:    "bad date",
			payload: map[string]any{"date": "05/01/2024"},
			message: "invalid date",
		},
		{
			name:    "negative sleep",
			payload: map[string]any{"date": "2024-05-01", "sleep_hours": -1},
			message: "invalid sleep hours",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			response := jsonRequest(t, app, http.MethodPost, "/api/cycle/entries", token, tc.payload)
			defer response.Body.Close()

			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
			if message := readAPIError(t, response.Body); message != tc.message {
				t.Fatalf("expected error %q, got %q", tc.message, message)
			}
		})
	}
}

func TestListCycleEntriesRange(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "luna@example.com", "Sup3rSecret")

	for _, day := range []string{"2024-05-01", "2024-05-02", "2024-06-01"} {
		response := jsonRequest(t, app, http.MethodPost, "/api/cycle/entries", token, map[string]any{"date": day})
		response.Body.Close()
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("seed entry for %s failed with %d", day, response.StatusCode)
		}
	}

	response := jsonRequest(t, app, http.MethodGet, "/api/cycle/entries?start_date=2024-05-01&end_date=2024-05-31", token, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	entries := []models.CycleEntry{}
	decodeJSONBody(t, response.Body, &entries)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries in May, got %d", len(entries))
	}

	badLimit := jsonRequest(t, app, http.MethodGet, "/api/cycle/entries?limit=1000", token, nil)
	defer badLimit.Body.Close()
	if badLimit.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an oversized limit, got %d", badLimit.StatusCode)
	}
}

func TestUpdateCycleEntry(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "luna@example.com", "Sup3rSecret")

	created := jsonRequest(t, app, http.MethodPost, "/api/cycle/entries", token, map[string]any{
		"date":  "2024-05-01",
		"notes": "before",
	})
	defer created.Body.Close()
	entry := models.CycleEntry{}
	decodeJSONBody(t, created.Body, &entry)

	updated := jsonRequest(t, app, http.MethodPut, fmt.Sprintf("/api/cycle/entries/%d", entry.ID), token, map[string]any{
		"date":           "2024-05-01",
		"is_period_day":  true,
		"flow_intensity": models.FlowIntensitySpotting,
		"notes":          "after",
	})
	defer updated.Body.Close()
	if updated.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", updated.StatusCode)
	}

	changed := models.CycleEntry{}
	decodeJSONBody(t, updated.Body, &changed)
	if changed.Notes != "after" || changed.FlowIntensity != models.FlowIntensitySpotting {
		t.Fatalf("update not applied: %+v", changed)
	}
}

func TestDeleteCycleEntry(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "luna@example.com", "Sup3rSecret")

	created := jsonRequest(t, app, http.MethodPost, "/api/cycle/entries", token, map[string]any{"date": "2024-05-01"})
	defer created.Body.Close()
	entry := models.CycleEntry{}
	decodeJSONBody(t, created.Body, &entry)

	deleted := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/cycle/entries/%d", entry.ID), token, nil)
	defer deleted.Body.Close()
	if deleted.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", deleted.StatusCode)
	}

	missing := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/cycle/entries/%d", entry.ID), token, nil)
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for a deleted entry, got %d", missing.StatusCode)
	}
}

func TestCycleEntriesAreScopedPerUser(t *testing.T) {
	app, _ := newTestApp(t)
	ownerToken := registerTestUser(t, app, "owner@example.com", "Sup3rSecret")
	otherToken := registerTestUser(t, app, "other@example.com", "Sup3rSecret")

	created := jsonRequest(t, app, http.MethodPost, "/api/cycle/entries", ownerToken, map[string]any{"date": "2024-05-01"})
	defer created.Body.Close()
	entry := models.CycleEntry{}
	decodeJSONBody(t, created.Body, &entry)

	stolen := jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/cycle/entries/%d", entry.ID), otherToken, nil)
	defer stolen.Body.Close()
	if stolen.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for another user's entry, got %d", stolen.StatusCode)
	}

	list := jsonRequest(t, app, http.MethodGet, "/api/cycle/entries", otherToken, nil)
	defer list.Body.Close()
	entries := []models.CycleEntry{}
	decodeJSONBody(t, list.Body, &entries)
	if len(entries) != 0 {
		t.Fatalf("expected an empty list for the other user, got %d entries", len(entries))
	}
}
