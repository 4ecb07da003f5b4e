package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/utils"

	"github.com/google/uuid"
)

type OrderService struct {
	db *sql.DB
}

func NewOrderService(db *sql.DB) *OrderService {
	return &OrderService{db: db}
}

// Create places an order for a resource. Price, free flag and the delivery
// URL are copied from the resource at checkout time so later edits to the
// resource do not rewrite order history.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	order := &models.Order{
		ID:          uuid.New().String(),
		BuyerName:   req.BuyerName,
		BuyerEmail:  req.BuyerEmail,
		BuyerNumber: req.BuyerNumber,
		Note:        req.Note,
		ResourceID:  req.ResourceID,
		CreatedAt:   time.Now(),
	}

	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT price, is_free, file FROM resources WHERE id = $1`, req.ResourceID)
		if err := row.Scan(&order.Price, &order.IsFree, &order.URL); err != nil {
			return err
		}

		query := `
			INSERT INTO orders (id, price, is_free, buyer_name, buyer_email, buyer_number, note, url, delivered, resource_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9, $10)
		`
		_, err := tx.ExecContext(ctx, query,
			order.ID, order.Price, order.IsFree, order.BuyerName, order.BuyerEmail,
			order.BuyerNumber, order.Note, order.URL, order.ResourceID, order.CreatedAt,
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

const orderItemColumns = `
	o.id, o.price, o.is_free, o.buyer_name, o.buyer_email, o.buyer_number,
	COALESCE(o.note, ''), o.url, o.delivered, o.resource_id, o.created_at, r.title
`

func scanOrderItem(row interface{ Scan(...interface{}) error }) (models.OrderItem, error) {
	var item models.OrderItem
	err := row.Scan(&item.ID, &item.Price, &item.IsFree, &item.BuyerName, &item.BuyerEmail,
		&item.BuyerNumber, &item.Note, &item.URL, &item.Delivered, &item.ResourceID,
		&item.CreatedAt, &item.ResourceTitle)
	return item, err
}

// GetAll lists orders joined with the resource title, newest first.
func (s *OrderService) GetAll(ctx context.Context) ([]models.OrderItem, error) {
	query := `
		SELECT ` + orderItemColumns + `
		FROM orders o
		JOIN resources r ON o.resource_id = r.id
		ORDER BY o.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, item)
	}

	return orders, rows.Err()
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*models.OrderItem, error) {
	query := `
		SELECT ` + orderItemColumns + `
		FROM orders o
		JOIN resources r ON o.resource_id = r.id
		WHERE o.id = $1
	`
	item, err := scanOrderItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByEmail pages through a buyer's own orders, newest first.
func (s *OrderService) GetByEmail(ctx context.Context, email string, limit, page int) ([]models.OrderItem, int, error) {
	if limit <= 0 {
		limit = 3
	}
	if page <= 0 {
		page = 1
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE buyer_email = $1`, email).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + orderItemColumns + `
		FROM orders o
		JOIN resources r ON o.resource_id = r.id
		WHERE o.buyer_email = $1
		ORDER BY o.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, email, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []models.OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, item)
	}

	totalPages := (total + limit - 1) / limit
	return orders, totalPages, rows.Err()
}

func (s *OrderService) UpdateDelivered(ctx context.Context, id string, delivered bool) error {
	result, err := s.db.ExecContext(ctx, `UPDATE orders SET delivered = $1 WHERE id = $2`, delivered, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
