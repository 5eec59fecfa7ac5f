package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa. El nombre tiene constraint único.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT id, name, created_at FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una empresa por nombre exacto.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	query := `SELECT id, name, created_at FROM companies WHERE name = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name: %w", err)
	}
	return &c, nil
}

// GetLatest devuelve la empresa creada más recientemente.
func (r *CompanyRepo) GetLatest() (*entity.Company, error) {
	query := `SELECT id, name, created_at FROM companies ORDER BY created_at DESC LIMIT 1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest company: %w", err)
	}
	return &c, nil
}
