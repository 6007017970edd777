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

// TestFullSurveyLifecycle walks the complete flow: an admin logs in,
// authors a poll with both question types, activates it, an anonymous
// visitor fetches and answers the survey, and the admin reads back the
// count and the aggregated summary.
func TestFullSurveyLifecycle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	s := store.New(conn)
	authH := NewAuthHandler(s, cfg)
	pollH := NewPollHandler(s, cfg)
	questionH := NewQuestionHandler(s, cfg)
	surveyH := NewSurveyHandler(s, cfg)
	responseH := NewResponseHandler(s, cfg)
	testutil.CreateTestAdmin(t, conn, cfg, "admin@survey.com", "admin123")

	// 1. Login.
	w := httptest.NewRecorder()
	authH.Login(w, testutil.MakeRequest("POST", "/auth/login",
		models.LoginRequest{Email: "admin@survey.com", Password: "admin123"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)
	headers := testutil.AuthHeader(login.Token)

	// 2. Create a draft poll.
	now := time.Now().UTC()
	w = httptest.NewRecorder()
	pollH.CreatePoll(w, testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
		Title:     i18n.Text{EN: "Community Feedback", AR: "آراء المجتمع", KU: "ڕای کۆمەڵگا"},
		Status:    models.StatusDraft,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(72 * time.Hour),
	}, headers))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)
	pollPath := strconv.Itoa(poll.ID)

	// 3. Add an mcq and a text question.
	w = httptest.NewRecorder()
	req := testutil.MakeRequest("POST", "/polls/"+pollPath+"/questions", models.CreateQuestionRequest{
		QuestionText: i18n.Text{EN: "How did you hear about us?", AR: "كيف سمعت عنا؟"},
		QuestionType: models.TypeMCQ,
		OrderNumber:  1,
		IsRequired:   true,
		Options: []i18n.Text{
			{EN: "Friends", AR: "الأصدقاء"},
			{EN: "Social media", AR: "وسائل التواصل"},
		},
	}, headers)
	req.SetPathValue("id", pollPath)
	questionH.CreateQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var mcq models.QuestionWithOptions
	testutil.AssertJSON(t, w, &mcq)

	w = httptest.NewRecorder()
	req = testutil.MakeRequest("POST", "/polls/"+pollPath+"/questions", models.CreateQuestionRequest{
		QuestionText: i18n.Text{EN: "Anything to add?"},
		QuestionType: models.TypeText,
		OrderNumber:  2,
	}, headers)
	req.SetPathValue("id", pollPath)
	questionH.CreateQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var text models.QuestionWithOptions
	testutil.AssertJSON(t, w, &text)

	// 4. Submitting against the draft poll is rejected.
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("POST", "/survey/"+pollPath+"/responses", submitBody([]map[string]any{
		{"question_id": mcq.ID, "type": "mcq", "value": mcq.Options[0].ID},
	}), nil)
	req.SetPathValue("id", pollPath)
	surveyH.Submit(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// 5. Activate.
	status := models.StatusActive
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("PUT", "/polls/"+pollPath, models.UpdatePollRequest{Status: &status}, headers)
	req.SetPathValue("id", pollPath)
	pollH.UpdatePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// 6. A visitor fetches the survey and submits.
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("GET", "/survey/"+pollPath, nil, nil)
	req.SetPathValue("id", pollPath)
	surveyH.GetSurvey(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	var survey models.PollWithQuestions
	testutil.AssertJSON(t, w, &survey)
	if len(survey.Questions) != 2 {
		t.Fatalf("Expected 2 questions in survey, got %d", len(survey.Questions))
	}

	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		req = testutil.MakeRequest("POST", "/survey/"+pollPath+"/responses", submitBody([]map[string]any{
			{"question_id": mcq.ID, "type": "mcq", "value": mcq.Options[0].ID},
			{"question_id": text.ID, "type": "text", "value": "keep it up"},
		}), nil)
		req.SetPathValue("id", pollPath)
		surveyH.Submit(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	// 7. Admin reads count and summary.
	w = httptest.NewRecorder()
	req = testutil.MakeRequest("GET", "/polls/"+pollPath+"/responses/count", nil, headers)
	req.SetPathValue("id", pollPath)
	responseH.CountResponses(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	var count models.CountResponse
	testutil.AssertJSON(t, w, &count)
	if count.Count != 2 {
		t.Errorf("Expected 2 responses, got %d", count.Count)
	}

	w = httptest.NewRecorder()
	req = testutil.MakeRequest("GET", "/polls/"+pollPath+"/summary?lang=ar", nil, headers)
	req.SetPathValue("id", pollPath)
	responseH.Summary(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	var summaries map[string]models.Summary
	testutil.AssertJSON(t, w, &summaries)

	sum, ok := summaries[strconv.Itoa(mcq.ID)]
	if !ok {
		t.Fatalf("Expected summary for question %d", mcq.ID)
	}
	if sum.Total != 2 {
		t.Errorf("Expected total 2, got %d", sum.Total)
	}
	// Arabic labels resolve for the ar summary.
	if sum.Percentages["الأصدقاء"] != "100%" {
		t.Errorf("Expected Arabic label at 100%%, got %v", sum.Percentages)
	}
}
