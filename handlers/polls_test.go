// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/hazem-e99/SurveyProject/i18n"
	"github.com/hazem-e99/SurveyProject/models"
	"github.com/hazem-e99/SurveyProject/store"
	"github.com/hazem-e99/SurveyProject/testutil"
)

func TestCreatePollHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(store.New(conn), cfg)
	adminID, token := testutil.CreateTestAdmin(t, conn, cfg, "admin@survey.com", "admin123")

	now := time.Now().UTC()
	tests := []struct {
		name           string
		token          string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:  "valid poll creation",
			token: token,
			requestBody: models.CreatePollRequest{
				Title:     i18n.Text{EN: "Customer Survey", AR: "استبيان العملاء", KU: "ڕاپرسی کڕیاران"},
				Status:    models.StatusDraft,
				StartDate: now,
				EndDate:   now.Add(7 * 24 * time.Hour),
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:  "missing title",
			token: token,
			requestBody: models.CreatePollRequest{
				Status: models.StatusDraft,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "no session token",
			token: "",
			requestBody: models.CreatePollRequest{
				Title:  i18n.Text{EN: "Survey"},
				Status: models.StatusDraft,
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON",
			token:          token,
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.token != "" {
				headers = testutil.AuthHeader(tt.token)
			}
			req := testutil.MakeRequest("POST", "/polls", tt.requestBody, headers)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var poll models.Poll
				testutil.AssertJSON(t, w, &poll)
				if poll.ID <= 0 {
					t.Error("Expected positive poll id")
				}
				if poll.AdminID != adminID {
					t.Errorf("Expected admin_id %d, got %d", adminID, poll.AdminID)
				}
			}
		})
	}
}

func TestGetPollHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(store.New(conn), cfg)
	adminID, _ := testutil.CreateTestAdmin(t, conn, cfg, "admin@survey.com", "admin123")
	pollID := testutil.CreateTestPoll(t, conn, adminID, models.StatusActive)
	questionID, _ := testutil.AddTestMCQQuestion(t, conn, pollID, true, false, nil, "Yes", "No")

	req := testutil.MakeRequest("GET", "/polls/"+strconv.Itoa(pollID), nil, nil)
	req.SetPathValue("id", strconv.Itoa(pollID))
	w := httptest.NewRecorder()
	handler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var poll models.PollWithQuestions
	testutil.AssertJSON(t, w, &poll)
	if len(poll.Questions) != 1 || poll.Questions[0].ID != questionID {
		t.Errorf("Expected question %d attached, got %+v", questionID, poll.Questions)
	}
	if len(poll.Questions[0].Options) != 2 {
		t.Errorf("Expected 2 options, got %d", len(poll.Questions[0].Options))
	}

	// Unknown poll.
	req = testutil.MakeRequest("GET", "/polls/999", nil, nil)
	req.SetPathValue("id", "999")
	w = httptest.NewRecorder()
	handler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Non-numeric id.
	req = testutil.MakeRequest("GET", "/polls/abc", nil, nil)
	req.SetPathValue("id", "abc")
	w = httptest.NewRecorder()
	handler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestUpdatePollHandlerOwnership(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(store.New(conn), cfg)
	ownerID, _ := testutil.CreateTestAdmin(t, conn, cfg, "owner@survey.com", "admin123")
	_, otherToken := testutil.CreateTestAdmin(t, conn, cfg, "other@survey.com", "admin123")
	pollID := testutil.CreateTestPoll(t, conn, ownerID, models.StatusDraft)

	status := models.StatusActive
	req := testutil.MakeRequest("PUT", "/polls/"+strconv.Itoa(pollID),
		models.UpdatePollRequest{Status: &status}, testutil.AuthHeader(otherToken))
	req.SetPathValue("id", strconv.Itoa(pollID))
	w := httptest.NewRecorder()
	handler.UpdatePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)
}

func TestDeletePollHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(store.New(conn), cfg)
	adminID, token := testutil.CreateTestAdmin(t, conn, cfg, "admin@survey.com", "admin123")
	pollID := testutil.CreateTestPoll(t, conn, adminID, models.StatusDraft)

	req := testutil.MakeRequest("DELETE", "/polls/"+strconv.Itoa(pollID), nil, testutil.AuthHeader(token))
	req.SetPathValue("id", strconv.Itoa(pollID))
	w := httptest.NewRecorder()
	handler.DeletePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM poll WHERE id = $1`, pollID).Scan(&n); err != nil {
		t.Fatalf("Failed to count polls: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected poll removed, found %d rows", n)
	}
}

func TestListPollsHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(store.New(conn), cfg)
	adminID, _ := testutil.CreateTestAdmin(t, conn, cfg, "admin@survey.com", "admin123")
	testutil.CreateTestPoll(t, conn, adminID, models.StatusDraft)
	testutil.CreateTestPoll(t, conn, adminID, models.StatusActive)

	req := testutil.MakeRequest("GET", "/polls", nil, nil)
	w := httptest.NewRecorder()
	handler.ListPolls(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var polls []models.Poll
	testutil.AssertJSON(t, w, &polls)
	if len(polls) != 2 {
		t.Errorf("Expected 2 polls, got %d", len(polls))
	}
}
