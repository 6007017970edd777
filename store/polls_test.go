// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/hazem-e99/SurveyProject/i18n"
	"github.com/hazem-e99/SurveyProject/models"
	"github.com/hazem-e99/SurveyProject/testutil"
)

func TestCreatePoll(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store := New(conn)
	adminID, _ := testutil.CreateTestAdmin(t, conn, cfg, "admin@test.com", "password123")

	now := time.Now().UTC()
	tests := []struct {
		name      string
		req       models.CreatePollRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid poll",
			req: models.CreatePollRequest{
				Title:     i18n.Text{EN: "Customer Survey", AR: "استبيان العملاء"},
				Status:    models.StatusDraft,
				StartDate: now,
				EndDate:   now.Add(72 * time.Hour),
			},
		},
		{
			name: "title only in kurdish",
			req: models.CreatePollRequest{
				Title:     i18n.Text{KU: "ڕاپرسی"},
				Status:    models.StatusActive,
				StartDate: now,
				EndDate:   now.Add(72 * time.Hour),
			},
		},
		{
			name: "missing title",
			req: models.CreatePollRequest{
				Status: models.StatusDraft,
			},
			wantErr:   true,
			wantField: "title",
		},
		{
			name: "unknown status",
			req: models.CreatePollRequest{
				Title:  i18n.Text{EN: "Survey"},
				Status: "archived",
			},
			wantErr:   true,
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := store.CreatePoll(adminID, &tt.req)
			if tt.wantErr {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("Expected ValidationError, got %v", err)
				}
				found := false
				for _, f := range ve.Fields {
					if f == tt.wantField {
						found = true
					}
				}
				if !found {
					t.Errorf("Expected field %q in %v", tt.wantField, ve.Fields)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreatePoll failed: %v", err)
			}
			if p.ID <= 0 {
				t.Errorf("Expected positive poll id, got %d", p.ID)
			}
			if p.AdminID != adminID {
				t.Errorf("Expected admin_id %d, got %d", adminID, p.AdminID)
			}

			got, err := store.GetPoll(p.ID)
			if err != nil {
				t.Fatalf("GetPoll failed: %v", err)
			}
			if got.Title.EN != tt.req.Title.EN || got.Title.AR != tt.req.Title.AR || got.Title.KU != tt.req.Title.KU {
				t.Errorf("Stored title %+v does not match request %+v", got.Title, tt.req.Title)
			}
		})
	}
}

func TestGetPollNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := New(conn)

	if _, err := store.GetPoll(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePollMergesFields(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store := New(conn)
	adminID, _ := testutil.CreateTestAdmin(t, conn, cfg, "admin@test.com", "password123")
	pollID := testutil.CreateTestPoll(t, conn, adminID, models.StatusDraft)

	before, err := store.GetPoll(pollID)
	if err != nil {
		t.Fatalf("GetPoll failed: %v", err)
	}

	status := models.StatusActive
	updated, err := store.UpdatePoll(pollID, adminID, &models.UpdatePollRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdatePoll failed: %v", err)
	}
	if updated.Status != models.StatusActive {
		t.Errorf("Expected status active, got %s", updated.Status)
	}
	if updated.Title != before.Title {
		t.Errorf("Title changed on partial update: %+v -> %+v", before.Title, updated.Title)
	}
	if !updated.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("Expected updated_at to advance")
	}
}

func TestPollOwnership(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store := New(conn)
	ownerID, _ := testutil.CreateTestAdmin(t, conn, cfg, "owner@test.com", "password123")
	otherID, _ := testutil.CreateTestAdmin(t, conn, cfg, "other@test.com", "password123")
	pollID := testutil.CreateTestPoll(t, conn, ownerID, models.StatusDraft)

	status := models.StatusActive
	if _, err := store.UpdatePoll(pollID, otherID, &models.UpdatePollRequest{Status: &status}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Expected ErrForbidden on update, got %v", err)
	}
	if err := store.DeletePoll(pollID, otherID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Expected ErrForbidden on delete, got %v", err)
	}

	// The owner still can.
	if _, err := store.UpdatePoll(pollID, ownerID, &models.UpdatePollRequest{Status: &status}); err != nil {
		t.Errorf("Owner update failed: %v", err)
	}
}

func TestDeletePollCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store := New(conn)
	adminID, _ := testutil.CreateTestAdmin(t, conn, cfg, "admin@test.com", "password123")
	pollID := testutil.CreateTestPoll(t, conn, adminID, models.StatusActive)

	mcqID, optionIDs := testutil.AddTestMCQQuestion(t, conn, pollID, true, false, nil, "Yes", "No")
	textID := testutil.AddTestTextQuestion(t, conn, pollID, false)
	testutil.SubmitTestResponse(t, conn, pollID,
		map[int][]int{mcqID: {optionIDs[0]}},
		map[int]string{textID: "works well"})

	if err := store.DeletePoll(pollID, adminID); err != nil {
		t.Fatalf("DeletePoll failed: %v", err)
	}

	tables := []string{"poll", "question", "mcq_option", "response", "mcq_answer", "text_answer"}
	for _, table := range tables {
		var n int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		if n != 0 {
			t.Errorf("Expected %s to be empty after cascade, found %d rows", table, n)
		}
	}

	if _, err := store.GetPoll(pollID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestPollIDsNeverReused(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store := New(conn)
	adminID, _ := testutil.CreateTestAdmin(t, conn, cfg, "admin@test.com", "password123")

	now := time.Now().UTC()
	req := models.CreatePollRequest{
		Title:     i18n.Text{EN: "First"},
		Status:    models.StatusDraft,
		StartDate: now,
		EndDate:   now.Add(time.Hour),
	}
	first, err := store.CreatePoll(adminID, &req)
	if err != nil {
		t.Fatalf("CreatePoll failed: %v", err)
	}
	if err := store.DeletePoll(first.ID, adminID); err != nil {
		t.Fatalf("DeletePoll failed: %v", err)
	}

	second, err := store.CreatePoll(adminID, &req)
	if err != nil {
		t.Fatalf("CreatePoll failed: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("Expected id after delete to advance past %d, got %d", first.ID, second.ID)
	}
}

func TestListPollsNewestFirst(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store := New(conn)
	adminID, _ := testutil.CreateTestAdmin(t, conn, cfg, "admin@test.com", "password123")

	first := testutil.CreateTestPoll(t, conn, adminID, models.StatusDraft)
	second := testutil.CreateTestPoll(t, conn, adminID, models.StatusActive)

	polls, err := store.ListPolls()
	if err != nil {
		t.Fatalf("ListPolls failed: %v", err)
	}
	if len(polls) != 2 {
		t.Fatalf("Expected 2 polls, got %d", len(polls))
	}
	if polls[0].ID != second || polls[1].ID != first {
		t.Errorf("Expected order [%d %d], got [%d %d]", second, first, polls[0].ID, polls[1].ID)
	}
}

func TestListActivePolls(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	store := New(conn)
	adminID, _ := testutil.CreateTestAdmin(t, conn, cfg, "admin@test.com", "password123")

	testutil.CreateTestPoll(t, conn, adminID, models.StatusDraft)
	firstActive := testutil.CreateTestPoll(t, conn, adminID, models.StatusActive)
	testutil.CreateTestPoll(t, conn, adminID, models.StatusCompleted)
	secondActive := testutil.CreateTestPoll(t, conn, adminID, models.StatusActive)

	polls, err := store.ListActivePolls()
	if err != nil {
		t.Fatalf("ListActivePolls failed: %v", err)
	}
	if len(polls) != 2 {
		t.Fatalf("Expected 2 active polls, got %d", len(polls))
	}
	if polls[0].ID != secondActive || polls[1].ID != firstActive {
		t.Errorf("Expected order [%d %d], got [%d %d]", secondActive, firstActive, polls[0].ID, polls[1].ID)
	}
	for _, p := range polls {
		if p.Status != models.StatusActive {
			t.Errorf("Expected only active polls, got status %s for poll %d", p.Status, p.ID)
		}
	}
}
