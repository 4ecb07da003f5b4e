package services

import (
	"context"
	"database/sql"

	"github.com/artistycode/studio-api/models"

	"github.com/google/uuid"
)

type NoticeService struct {
	db *sql.DB
}

func NewNoticeService(db *sql.DB) *NoticeService {
	return &NoticeService{db: db}
}

func (s *NoticeService) GetAll(ctx context.Context) ([]models.Notice, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, notice FROM notices ORDER BY notice`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []models.Notice
	for rows.Next() {
		var n models.Notice
		if err := rows.Scan(&n.ID, &n.Notice); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}

	return notices, rows.Err()
}

func (s *NoticeService) Create(ctx context.Context, req models.NoticeRequest) (*models.Notice, error) {
	notice := &models.Notice{
		ID:     uuid.New().String(),
		Notice: req.Notice,
	}

	if _, err := s.db.ExecContext(ctx, `INSERT INTO notices (id, notice) VALUES ($1, $2)`, notice.ID, notice.Notice); err != nil {
		return nil, err
	}

	return notice, nil
}

func (s *NoticeService) Update(ctx context.Context, id string, req models.NoticeRequest) error {
	result, err := s.db.ExecContext(ctx, `UPDATE notices SET notice = $1 WHERE id = $2`, req.Notice, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *NoticeService) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
