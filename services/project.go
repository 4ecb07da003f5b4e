package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/artistycode/studio-api/models"

	"github.com/google/uuid"
)

type ProjectService struct {
	db *sql.DB
}

func NewProjectService(db *sql.DB) *ProjectService {
	return &ProjectService{db: db}
}

const projectColumns = `id, title, COALESCE(description, ''), COALESCE(stack, ''), image, COALESCE(url, ''), category, created_at`

func scanProject(row interface{ Scan(...interface{}) error }) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Stack, &p.Image, &p.URL, &p.Category, &p.CreatedAt)
	return p, err
}

func (s *ProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) Create(ctx context.Context, req models.ProjectRequest) (*models.Project, error) {
	project := &models.Project{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Stack:       req.Stack,
		Image:       req.Image,
		URL:         req.URL,
		Category:    req.Category,
		CreatedAt:   time.Now(),
	}

	query := `
		INSERT INTO projects (id, title, description, stack, image, url, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := s.db.ExecContext(ctx, query, project.ID, project.Title, project.Description, project.Stack, project.Image, project.URL, project.Category, project.CreatedAt); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, req models.ProjectRequest) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, stack = $3, image = $4, url = $5, category = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(ctx, query, req.Title, req.Description, req.Stack, req.Image, req.URL, req.Category, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
