package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agency-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("record not found")

type CustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	query := `
		INSERT INTO customers (
			id, customer_no, full_name, national_id, tax_id, phone,
			customer_type, risk_score, created_at, updated_at
		) VALUES (
			:id, :customer_no, :full_name, :national_id, :tax_id, :phone,
			:customer_type, :risk_score, :created_at, :updated_at
		)`

	_, err := r.db.NamedExec(query, customer)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	query := `SELECT * FROM customers WHERE id = $1`

	err := r.db.Get(&customer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

func (r *CustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	query := `SELECT * FROM customers ORDER BY created_at DESC`

	err := r.db.Select(&customers, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) Search(q string, limit, offset int) ([]models.Customer, error) {
	var customers []models.Customer
	query := `
		SELECT * FROM customers
		WHERE $1 = '' OR full_name ILIKE '%' || $1 || '%'
			OR national_id = $1 OR tax_id = $1 OR customer_no ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.Select(&customers, query, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) Update(customer *models.Customer) error {
	customer.UpdatedAt = time.Now()

	query := `
		UPDATE customers SET
			full_name = :full_name, phone = :phone, risk_score = :risk_score,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExec(query, customer)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CustomerRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}

	return nil
}
