// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/hazem-e99/SurveyProject/db"
	"github.com/hazem-e99/SurveyProject/models"
)

const sectionColumns = `id, page, title, content, media, order_number`

func scanSection(row interface{ Scan(...any) error }) (*models.Section, error) {
	var sec models.Section
	var media sql.NullString
	err := row.Scan(&sec.ID, &sec.Page, &sec.Title, &sec.Content, &media, &sec.OrderNumber)
	if err != nil {
		return nil, err
	}
	if media.Valid {
		sec.Media = &media.String
	}
	return &sec, nil
}

// ListSections returns every public content section ordered for display.
func (s *Store) ListSections() ([]models.Section, error) {
	return s.listSections(`SELECT `+sectionColumns+` FROM section ORDER BY page ASC, order_number ASC, id ASC`, nil)
}

// ListSectionsByPage returns the sections of one public page in display
// order.
func (s *Store) ListSectionsByPage(page string) ([]models.Section, error) {
	return s.listSections(`SELECT `+sectionColumns+` FROM section WHERE page = $1 ORDER BY order_number ASC, id ASC`, []any{page})
}

func (s *Store) listSections(query string, args []any) ([]models.Section, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		sections = append(sections, *sec)
	}
	return sections, rows.Err()
}

// GetSection returns one section by id.
func (s *Store) GetSection(id int) (*models.Section, error) {
	sec, err := scanSection(s.db.QueryRow(`SELECT `+sectionColumns+` FROM section WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting section %d: %w", id, err)
	}
	return sec, nil
}

// CreateSection inserts a public content section.
func (s *Store) CreateSection(req *models.CreateSectionRequest) (*models.Section, error) {
	fields := []string{}
	if req.Page == "" {
		fields = append(fields, "page")
	}
	if !req.Title.HasAny() {
		fields = append(fields, "title")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "invalid section", Fields: fields}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := db.NextID(tx, db.CollSections)
	if err != nil {
		return nil, fmt.Errorf("allocating section id: %w", err)
	}
	sec := &models.Section{
		ID:          id,
		Page:        req.Page,
		Title:       req.Title,
		Content:     req.Content,
		Media:       req.Media,
		OrderNumber: req.OrderNumber,
	}
	_, err = tx.Exec(`INSERT INTO section (id, page, title, content, media, order_number)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		sec.ID, sec.Page, sec.Title, sec.Content, sec.Media, sec.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("inserting section: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing section: %w", err)
	}
	return sec, nil
}

// UpdateSection merges the supplied fields into a section.
func (s *Store) UpdateSection(id int, req *models.UpdateSectionRequest) (*models.Section, error) {
	sec, err := s.GetSection(id)
	if err != nil {
		return nil, err
	}
	if req.Page != nil {
		if *req.Page == "" {
			return nil, &ValidationError{Message: "invalid section", Fields: []string{"page"}}
		}
		sec.Page = *req.Page
	}
	if req.Title != nil {
		if !req.Title.HasAny() {
			return nil, &ValidationError{Message: "invalid section", Fields: []string{"title"}}
		}
		sec.Title = *req.Title
	}
	if req.Content != nil {
		sec.Content = *req.Content
	}
	if req.Media != nil {
		sec.Media = req.Media
	}
	if req.OrderNumber != nil {
		sec.OrderNumber = *req.OrderNumber
	}

	_, err = s.db.Exec(`UPDATE section SET page = $1, title = $2, content = $3, media = $4, order_number = $5 WHERE id = $6`,
		sec.Page, sec.Title, sec.Content, sec.Media, sec.OrderNumber, sec.ID)
	if err != nil {
		return nil, fmt.Errorf("updating section %d: %w", id, err)
	}
	return sec, nil
}

// DeleteSection removes a section.
func (s *Store) DeleteSection(id int) error {
	if _, err := s.GetSection(id); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM section WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting section %d: %w", id, err)
	}
	return nil
}
