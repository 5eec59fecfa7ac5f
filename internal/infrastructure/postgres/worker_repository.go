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

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación del puerto WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador de persistencia para trabajadores.
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// Create persiste un nuevo trabajador.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	query := `
		INSERT INTO workers (id, company_id, name, gender, mobile)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.CompanyID, worker.Name, worker.Gender, worker.Mobile,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // la empresa referenciada no existe
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := `SELECT id, company_id, name, gender, mobile FROM workers WHERE id = $1`
	var w entity.Worker
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.CompanyID, &w.Name, &w.Gender, &w.Mobile,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &w, nil
}

// ListByCompany lista trabajadores de una empresa con paginación.
func (r *WorkerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Worker, error) {
	query := `
		SELECT id, company_id, name, gender, mobile
		FROM workers WHERE company_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Name, &w.Gender, &w.Mobile); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
