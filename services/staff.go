package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/utils"

	"github.com/google/uuid"
)

type StaffService struct {
	db *sql.DB
}

func NewStaffService(db *sql.DB) *StaffService {
	return &StaffService{db: db}
}

// Create registers a staff account with the given role. Emails are unique
// across admins and moderators.
func (s *StaffService) Create(ctx context.Context, req models.CreateStaffRequest) (*models.Staff, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	staff := &models.Staff{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	query := `
		INSERT INTO staff (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.db.ExecContext(ctx, query, staff.ID, staff.Name, staff.Email, passwordHash, staff.Role, staff.CreatedAt, staff.UpdatedAt); err != nil {
		return nil, err
	}

	return staff, nil
}

func (s *StaffService) GetByRole(ctx context.Context, role string) ([]models.Staff, error) {
	query := `
		SELECT id, name, email, role, totp_enabled, created_at, updated_at
		FROM staff
		WHERE role = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []models.Staff
	for rows.Next() {
		var m models.Staff
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.TOTPEnabled, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		staff = append(staff, m)
	}

	return staff, rows.Err()
}

func (s *StaffService) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	query := `
		SELECT id, name, email, role, totp_enabled, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var m models.Staff
	err := s.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.TOTPEnabled, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *StaffService) Update(ctx context.Context, id string, req models.UpdateStaffRequest) error {
	query := `
		UPDATE staff
		SET name = $1, email = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(ctx, query, req.Name, req.Email, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the account together with its sessions.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE staff_id = $1`, id); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}
