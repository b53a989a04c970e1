package postgres

import (
	"context"
	"database/sql"
	"errors"

	"breed-registry/internal/domain/admins"
)

var adminConstraints = map[string]error{
	"administrators_email_key": admins.ErrEmailTaken,
}

type AdminsRepo struct {
	db *sql.DB
}

func NewAdminsRepo(db *sql.DB) *AdminsRepo {
	return &AdminsRepo{db: db}
}

func (r *AdminsRepo) Create(ctx context.Context, a admins.Admin) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO administrators (id, full_name, email, password_hash, role, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, a.ID, a.FullName, a.Email, a.PasswordHash, a.Role, a.CreatedAt)
	return mapConstraint(err, adminConstraints)
}

func (r *AdminsRepo) GetByID(ctx context.Context, id string) (admins.Admin, error) {
	if !validID(id) {
		return admins.Admin{}, admins.ErrNotFound
	}
	return r.getOne(ctx, `
		SELECT id, full_name, email, password_hash, role, created_at
		FROM administrators WHERE id = $1
	`, id)
}

func (r *AdminsRepo) GetByEmail(ctx context.Context, email string) (admins.Admin, error) {
	return r.getOne(ctx, `
		SELECT id, full_name, email, password_hash, role, created_at
		FROM administrators WHERE email = $1
	`, email)
}

func (r *AdminsRepo) getOne(ctx context.Context, query string, arg any) (admins.Admin, error) {
	var a admins.Admin
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.FullName, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return admins.Admin{}, admins.ErrNotFound
	}
	if err != nil {
		return admins.Admin{}, err
	}
	return a, nil
}

func (r *AdminsRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM administrators`).Scan(&n)
	return n, err
}
