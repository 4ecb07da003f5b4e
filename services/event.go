package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/artistycode/studio-api/models"

	"github.com/google/uuid"
)

type EventService struct {
	db *sql.DB
}

func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

func (s *EventService) GetAll(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), COALESCE(location, ''), image_url, COALESCE(url, ''), created_at
		FROM events
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.ImageURL, &e.URL, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *EventService) Create(ctx context.Context, req models.EventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		URL:         req.URL,
		CreatedAt:   time.Now(),
	}

	query := `
		INSERT INTO events (id, title, description, location, image_url, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.db.ExecContext(ctx, query, event.ID, event.Title, event.Description, event.Location, event.ImageURL, event.URL, event.CreatedAt); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, req models.EventRequest) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, location = $3, image_url = $4, url = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(ctx, query, req.Title, req.Description, req.Location, req.ImageURL, req.URL, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
