package services

import (
	"context"
	"database/sql"

	"github.com/artistycode/studio-api/models"

	"github.com/google/uuid"
)

type TransactionService struct {
	db *sql.DB
}

func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{db: db}
}

func (s *TransactionService) GetAll(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT id, date, project, category, amount, COALESCE(due_amount, ''), COALESCE(notes, '')
		FROM transactions
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Project, &t.Category, &t.Amount, &t.DueAmount, &t.Notes); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

func (s *TransactionService) Create(ctx context.Context, req models.TransactionRequest) (*models.Transaction, error) {
	transaction := &models.Transaction{
		ID:        uuid.New().String(),
		Date:      req.Date,
		Project:   req.Project,
		Category:  req.Category,
		Amount:    req.Amount,
		DueAmount: req.DueAmount,
		Notes:     req.Notes,
	}

	query := `
		INSERT INTO transactions (id, date, project, category, amount, due_amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.db.ExecContext(ctx, query, transaction.ID, transaction.Date, transaction.Project, transaction.Category, transaction.Amount, transaction.DueAmount, transaction.Notes); err != nil {
		return nil, err
	}

	return transaction, nil
}

func (s *TransactionService) Update(ctx context.Context, id string, req models.TransactionRequest) error {
	query := `
		UPDATE transactions
		SET date = $1, project = $2, category = $3, amount = $4, due_amount = $5, notes = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(ctx, query, req.Date, req.Project, req.Category, req.Amount, req.DueAmount, req.Notes, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
