package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"breed-registry/internal/domain/breeders"
)

var breederConstraints = map[string]error{
	"breeders_email_key":              breeders.ErrEmailTaken,
	"breeders_national_id_key":        breeders.ErrNationalIDTaken,
	"breeders_farm_prefix_key":        breeders.ErrFarmPrefixTaken,
	"animals_breeder_id_fkey":         breeders.ErrHasAnimals,
	"breeding_events_breeder_id_fkey": breeders.ErrHasAnimals,
}

const breederColumns = `
	id, full_name, national_id, breeder_type,
	farm_name, farm_prefix, farm_location, county,
	phone, email, password_hash,
	status, reviewed_by, reviewed_at, rejection_reason,
	created_at, updated_at`

type BreedersRepo struct {
	db *sql.DB
}

func NewBreedersRepo(db *sql.DB) *BreedersRepo {
	return &BreedersRepo{db: db}
}

func (r *BreedersRepo) Create(ctx context.Context, b breeders.Breeder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO breeders (`+breederColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		b.ID,
		b.FullName,
		b.NationalID,
		b.BreederType,
		b.FarmName,
		b.FarmPrefix,
		b.FarmLocation,
		b.County,
		b.Phone,
		b.Email,
		b.PasswordHash,
		b.Status,
		toNullString(b.ReviewedBy),
		toNullDate(b.ReviewedAt),
		b.RejectionReason,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return mapConstraint(err, breederConstraints)
}

func (r *BreedersRepo) Update(ctx context.Context, b breeders.Breeder) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE breeders
		SET
			full_name = $2,
			breeder_type = $3,
			farm_name = $4,
			farm_location = $5,
			county = $6,
			phone = $7,
			status = $8,
			reviewed_by = $9,
			reviewed_at = $10,
			rejection_reason = $11,
			updated_at = $12
		WHERE id = $1
	`,
		b.ID,
		b.FullName,
		b.BreederType,
		b.FarmName,
		b.FarmLocation,
		b.County,
		b.Phone,
		b.Status,
		toNullString(b.ReviewedBy),
		toNullDate(b.ReviewedAt),
		b.RejectionReason,
		b.UpdatedAt,
	)
	if err != nil {
		return mapConstraint(err, breederConstraints)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return breeders.ErrNotFound
	}
	return nil
}

func (r *BreedersRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return breeders.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeders WHERE id = $1`, id)
	if err != nil {
		return mapConstraint(err, breederConstraints)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return breeders.ErrNotFound
	}
	return nil
}

func (r *BreedersRepo) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return breeders.Breeder{}, breeders.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+breederColumns+` FROM breeders WHERE id = $1`, id)
}

func (r *BreedersRepo) GetByLogin(ctx context.Context, identifier string) (breeders.Breeder, error) {
	return r.getOne(ctx, `
		SELECT `+breederColumns+`
		FROM breeders
		WHERE email = $1 OR national_id = $1
		ORDER BY (email = $1) DESC
		LIMIT 1
	`, identifier)
}

func (r *BreedersRepo) getOne(ctx context.Context, query string, arg any) (breeders.Breeder, error) {
	b, err := scanBreeder(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return breeders.Breeder{}, breeders.ErrNotFound
	}
	return b, err
}

func (r *BreedersRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM breeders WHERE email = $1)`, email)
}

func (r *BreedersRepo) NationalIDExists(ctx context.Context, nationalID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM breeders WHERE national_id = $1)`, nationalID)
}

func (r *BreedersRepo) FarmPrefixExists(ctx context.Context, prefix string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM breeders WHERE farm_prefix = $1)`, prefix)
}

func (r *BreedersRepo) exists(ctx context.Context, query string, arg any) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&ok)
	return ok, err
}

func (r *BreedersRepo) ListByStatus(ctx context.Context, status breeders.Status) ([]breeders.Breeder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+breederColumns+`
		FROM breeders
		WHERE status = $1
		ORDER BY created_at ASC, id ASC
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeders.Breeder, 0)
	for rows.Next() {
		b, err := scanBreeder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBreeder(s scanner) (breeders.Breeder, error) {
	var (
		b          breeders.Breeder
		reviewedBy sql.NullString
		reviewedAt sql.NullTime
	)
	err := s.Scan(
		&b.ID,
		&b.FullName,
		&b.NationalID,
		&b.BreederType,
		&b.FarmName,
		&b.FarmPrefix,
		&b.FarmLocation,
		&b.County,
		&b.Phone,
		&b.Email,
		&b.PasswordHash,
		&b.Status,
		&reviewedBy,
		&reviewedAt,
		&b.RejectionReason,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return breeders.Breeder{}, err
	}
	b.ReviewedBy = fromNullString(reviewedBy)
	b.ReviewedAt = fromNullTime(reviewedAt)
	return b, nil
}
