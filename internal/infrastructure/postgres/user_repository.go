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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. (company_id, user_id) tiene constraint único.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, company_id, name, user_id, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.CompanyID, user.Name, user.UserID, user.PasswordHash, user.Role, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserIDAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID interno.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, company_id, name, user_id, password_hash, role, created_at
		FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user")
}

// GetByUserIDAndCompany busca por identificador de login dentro de una empresa.
func (r *UserRepo) GetByUserIDAndCompany(userID, companyID string) (*entity.User, error) {
	query := `
		SELECT id, company_id, name, user_id, password_hash, role, created_at
		FROM users WHERE user_id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, userID, companyID), "get user by login")
}

// FindByUserID busca por identificador de login sin filtrar empresa.
// Si varios usuarios comparten user_id en distintas empresas, gana el más antiguo.
func (r *UserRepo) FindByUserID(userID string) (*entity.User, error) {
	query := `
		SELECT id, company_id, name, user_id, password_hash, role, created_at
		FROM users WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, userID), "find user by login")
}

// ListByCompany lista usuarios de una empresa con paginación.
func (r *UserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, company_id, name, user_id, password_hash, role, created_at
		FROM users WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Name, &u.UserID, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.CompanyID, &u.Name, &u.UserID, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
