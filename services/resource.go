package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/artistycode/studio-api/models"

	"github.com/google/uuid"
)

type ResourceService struct {
	db *sql.DB
}

func NewResourceService(db *sql.DB) *ResourceService {
	return &ResourceService{db: db}
}

const resourceColumns = `id, title, COALESCE(description, ''), COALESCE(stack, ''), image, COALESCE(url, ''), file, price, is_free, category, author, created_at`

func scanResource(row interface{ Scan(...interface{}) error }) (models.Resource, error) {
	var r models.Resource
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.Stack, &r.Image, &r.URL, &r.File, &r.Price, &r.IsFree, &r.Category, &r.Author, &r.CreatedAt)
	return r, err
}

func (s *ResourceService) GetAll(ctx context.Context) ([]models.Resource, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+resourceColumns+` FROM resources ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}

	return resources, rows.Err()
}

func (s *ResourceService) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	r, err := scanResource(s.db.QueryRowContext(ctx, `SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ResourceService) Create(ctx context.Context, req models.ResourceRequest) (*models.Resource, error) {
	resource := &models.Resource{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Stack:       req.Stack,
		Image:       req.Image,
		URL:         req.URL,
		File:        req.File,
		Price:       req.Price,
		IsFree:      req.IsFree,
		Category:    req.Category,
		Author:      req.Author,
		CreatedAt:   time.Now(),
	}

	query := `
		INSERT INTO resources (id, title, description, stack, image, url, file, price, is_free, category, author, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	if _, err := s.db.ExecContext(ctx, query, resource.ID, resource.Title, resource.Description, resource.Stack, resource.Image, resource.URL, resource.File, resource.Price, resource.IsFree, resource.Category, resource.Author, resource.CreatedAt); err != nil {
		return nil, err
	}

	return resource, nil
}

func (s *ResourceService) Update(ctx context.Context, id string, req models.ResourceRequest) error {
	query := `
		UPDATE resources
		SET title = $1, description = $2, stack = $3, image = $4, url = $5, file = $6, price = $7, is_free = $8, category = $9, author = $10
		WHERE id = $11
	`
	result, err := s.db.ExecContext(ctx, query, req.Title, req.Description, req.Stack, req.Image, req.URL, req.File, req.Price, req.IsFree, req.Category, req.Author, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
