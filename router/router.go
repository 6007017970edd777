// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/hazem-e99/SurveyProject/cliparse"
	"github.com/hazem-e99/SurveyProject/handlers"
	"github.com/hazem-e99/SurveyProject/middleware"
	"github.com/hazem-e99/SurveyProject/store"
)

func NewRouter(s *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(s, cfg)
	pollHandler := handlers.NewPollHandler(s, cfg)
	questionHandler := handlers.NewQuestionHandler(s, cfg)
	surveyHandler := handlers.NewSurveyHandler(s, cfg)
	responseHandler := handlers.NewResponseHandler(s, cfg)
	sectionHandler := handlers.NewSectionHandler(s, cfg)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.SessionSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin session
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /auth/session", admin(authHandler.Session))

	// Poll authoring (admin)
	mux.HandleFunc("GET /polls", admin(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", admin(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", admin(pollHandler.GetPoll))
	mux.HandleFunc("PUT /polls/{id}", admin(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", admin(pollHandler.DeletePoll))

	// Question authoring (admin)
	mux.HandleFunc("POST /polls/{id}/questions", admin(questionHandler.CreateQuestion))
	mux.HandleFunc("PUT /questions/{id}", admin(questionHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /questions/{id}", admin(questionHandler.DeleteQuestion))

	// Response views (admin)
	mux.HandleFunc("GET /polls/{id}/responses", admin(responseHandler.ListResponses))
	mux.HandleFunc("GET /polls/{id}/responses/count", admin(responseHandler.CountResponses))
	mux.HandleFunc("GET /polls/{id}/summary", admin(responseHandler.Summary))

	// Survey listing, rendering, and submission (public)
	mux.HandleFunc("GET /surveys", middleware.WithLogging(surveyHandler.ListSurveys))
	mux.HandleFunc("GET /survey/{id}", middleware.WithLogging(surveyHandler.GetSurvey))
	mux.HandleFunc("POST /survey/{id}/responses", middleware.WithLogging(surveyHandler.Submit))

	// Site content sections (public read, admin write)
	mux.HandleFunc("GET /sections", middleware.WithLogging(sectionHandler.ListSections))
	mux.HandleFunc("GET /sections/{id}", middleware.WithLogging(sectionHandler.GetSection))
	mux.HandleFunc("POST /sections", admin(sectionHandler.CreateSection))
	mux.HandleFunc("PUT /sections/{id}", admin(sectionHandler.UpdateSection))
	mux.HandleFunc("DELETE /sections/{id}", admin(sectionHandler.DeleteSection))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("survey API v1"))
	})

	return mux
}
