package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/utils"

	"github.com/google/uuid"
)

type RegistrationService struct {
	db *sql.DB
}

func NewRegistrationService(db *sql.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// Create stores a volunteer sign-up. The captured signature is encrypted
// before it reaches the database.
func (s *RegistrationService) Create(ctx context.Context, req models.RegistrationRequest) (*models.Registration, error) {
	encryptedSignature, err := utils.Encrypt([]byte(req.Signature))
	if err != nil {
		return nil, err
	}

	registration := &models.Registration{
		ID:                       uuid.New().String(),
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Address:                  req.Address,
		Number:                   req.Number,
		Email:                    req.Email,
		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactNumber:   req.EmergencyContactNumber,
		EmergencyContactRelation: req.EmergencyContactRelation,
		Date:                     time.Now(),
		Status:                   models.RegistrationPending,
	}

	query := `
		INSERT INTO registrations
			(id, first_name, last_name, address, number, email,
			 emergency_contact_name, emergency_contact_number, emergency_contact_relation,
			 signature, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = s.db.ExecContext(ctx, query,
		registration.ID, registration.FirstName, registration.LastName,
		registration.Address, registration.Number, registration.Email,
		registration.EmergencyContactName, registration.EmergencyContactNumber,
		registration.EmergencyContactRelation, encryptedSignature,
		registration.Date, registration.Status,
	)
	if err != nil {
		return nil, err
	}

	return registration, nil
}

// GetAll lists registrations without signatures; those are only decrypted on
// the single-record detail view.
func (s *RegistrationService) GetAll(ctx context.Context) ([]models.Registration, error) {
	query := `
		SELECT id, first_name, last_name, address, number, email,
		       emergency_contact_name, emergency_contact_number, emergency_contact_relation,
		       date, status
		FROM registrations
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []models.Registration
	for rows.Next() {
		var r models.Registration
		err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Address, &r.Number, &r.Email,
			&r.EmergencyContactName, &r.EmergencyContactNumber, &r.EmergencyContactRelation,
			&r.Date, &r.Status)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, r)
	}

	return registrations, rows.Err()
}

func (s *RegistrationService) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	query := `
		SELECT id, first_name, last_name, address, number, email,
		       emergency_contact_name, emergency_contact_number, emergency_contact_relation,
		       signature, date, status
		FROM registrations
		WHERE id = $1
	`

	var r models.Registration
	var encryptedSignature string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.FirstName, &r.LastName, &r.Address, &r.Number, &r.Email,
		&r.EmergencyContactName, &r.EmergencyContactNumber, &r.EmergencyContactRelation,
		&encryptedSignature, &r.Date, &r.Status,
	)
	if err != nil {
		return nil, err
	}

	signature, err := utils.Decrypt(encryptedSignature)
	if err != nil {
		return nil, err
	}
	r.Signature = string(signature)

	return &r, nil
}

func (s *RegistrationService) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE registrations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
