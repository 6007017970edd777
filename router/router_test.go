// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/hazem-e99/SurveyProject/models"
	"github.com/hazem-e99/SurveyProject/store"
	"github.com/hazem-e99/SurveyProject/testutil"
)

func TestRouterGuardsAdminRoutes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(store.New(conn), cfg)
	adminID, token := testutil.CreateTestAdmin(t, conn, cfg, "admin@survey.com", "admin123")
	pollID := testutil.CreateTestPoll(t, conn, adminID, models.StatusActive)

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{
			name:           "health is public",
			method:         "GET",
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "poll list needs a token",
			method:         "GET",
			path:           "/polls",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "poll list with token",
			method:         "GET",
			path:           "/polls",
			token:          token,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "summary needs a token",
			method:         "GET",
			path:           "/polls/" + strconv.Itoa(pollID) + "/summary",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "survey listing is public",
			method:         "GET",
			path:           "/surveys",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "survey fetch is public",
			method:         "GET",
			path:           "/survey/" + strconv.Itoa(pollID),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "section list is public",
			method:         "GET",
			path:           "/sections",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "section create needs a token",
			method:         "POST",
			path:           "/sections",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong method is rejected",
			method:         "PATCH",
			path:           "/polls",
			token:          token,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.token != "" {
				headers = testutil.AuthHeader(tt.token)
			}
			req := testutil.MakeRequest(tt.method, tt.path, nil, headers)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestRouterRoutesSubmission(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(store.New(conn), cfg)
	adminID, _ := testutil.CreateTestAdmin(t, conn, cfg, "admin@survey.com", "admin123")
	pollID := testutil.CreateTestPoll(t, conn, adminID, models.StatusActive)
	questionID, opts := testutil.AddTestMCQQuestion(t, conn, pollID, true, false, nil, "Yes", "No")

	body := map[string]any{"answers": []map[string]any{
		{"question_id": questionID, "type": "mcq", "value": opts[0]},
	}}
	req := testutil.MakeRequest("POST", "/survey/"+strconv.Itoa(pollID)+"/responses", body, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var result models.SubmitResponseResult
	testutil.AssertJSON(t, w, &result)
	if result.ResponseID <= 0 {
		t.Errorf("Expected response id from routed submission, got %+v", result)
	}
}
