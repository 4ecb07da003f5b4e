package services

import (
	"context"
	"database/sql"

	"github.com/artistycode/studio-api/models"

	"github.com/google/uuid"
)

type ReviewService struct {
	db *sql.DB
}

func NewReviewService(db *sql.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) getAll(ctx context.Context, query string, args ...interface{}) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.Name, &r.Title, &r.Quote, &r.Image, &r.Verified); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}

	return reviews, rows.Err()
}

func (s *ReviewService) GetAll(ctx context.Context) ([]models.Review, error) {
	return s.getAll(ctx, `SELECT id, name, title, quote, image, verified FROM reviews ORDER BY name`)
}

// GetVerified returns the testimonials shown on the public site.
func (s *ReviewService) GetVerified(ctx context.Context) ([]models.Review, error) {
	return s.getAll(ctx, `SELECT id, name, title, quote, image, verified FROM reviews WHERE verified = TRUE ORDER BY name`)
}

func (s *ReviewService) Create(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	review := &models.Review{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Title:    req.Title,
		Quote:    req.Quote,
		Image:    req.Image,
		Verified: req.Verified,
	}

	query := `
		INSERT INTO reviews (id, name, title, quote, image, verified)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := s.db.ExecContext(ctx, query, review.ID, review.Name, review.Title, review.Quote, review.Image, review.Verified); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, req models.ReviewRequest) error {
	query := `
		UPDATE reviews
		SET name = $1, title = $2, quote = $3, image = $4, verified = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(ctx, query, req.Name, req.Title, req.Quote, req.Image, req.Verified, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
