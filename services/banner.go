package services

import (
	"context"
	"database/sql"

	"github.com/artistycode/studio-api/models"

	"github.com/google/uuid"
)

type BannerService struct {
	db *sql.DB
}

func NewBannerService(db *sql.DB) *BannerService {
	return &BannerService{db: db}
}

func (s *BannerService) GetAll(ctx context.Context) ([]models.Banner, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, image FROM banners ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []models.Banner
	for rows.Next() {
		var b models.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.Image); err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}

	return banners, rows.Err()
}

func (s *BannerService) Create(ctx context.Context, req models.BannerRequest) (*models.Banner, error) {
	banner := &models.Banner{
		ID:    uuid.New().String(),
		Title: req.Title,
		Image: req.Image,
	}

	query := `INSERT INTO banners (id, title, image) VALUES ($1, $2, $3)`
	if _, err := s.db.ExecContext(ctx, query, banner.ID, banner.Title, banner.Image); err != nil {
		return nil, err
	}

	return banner, nil
}

func (s *BannerService) Update(ctx context.Context, id string, req models.BannerRequest) error {
	result, err := s.db.ExecContext(ctx, `UPDATE banners SET title = $1, image = $2 WHERE id = $3`, req.Title, req.Image, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
