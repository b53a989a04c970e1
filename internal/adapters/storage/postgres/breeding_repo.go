package postgres

import (
	"context"
	"database/sql"
	"errors"

	"breed-registry/internal/domain/breeding"
)

var breedingConstraints = map[string]error{
	"breeding_events_breeder_id_fkey":   breeding.ErrBreederNotFound,
	"breeding_events_dam_id_fkey":       breeding.ErrInvalidDam,
	"breeding_events_sire_id_fkey":      breeding.ErrInvalidSire,
	"breeding_events_offspring_id_fkey": breeding.ErrInvalidOffspring,
}

const eventColumns = `
	id, breeder_id, breeding_method,
	dam_id, sire_id, offspring_id,
	breeding_date, expected_due_date,
	semen_source, ai_technician, batch_number, donor_dam, embryo_id,
	notes, created_at`

type BreedingRepo struct {
	db *sql.DB
}

func NewBreedingRepo(db *sql.DB) *BreedingRepo {
	return &BreedingRepo{db: db}
}

func (r *BreedingRepo) Create(ctx context.Context, e breeding.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO breeding_events (`+eventColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		e.ID,
		e.BreederID,
		e.Method,
		e.DamID,
		toNullString(e.SireID),
		toNullString(e.OffspringID),
		e.BreedingDate,
		toNullDate(e.ExpectedDueDate),
		e.SemenSource,
		e.AITechnician,
		e.BatchNumber,
		e.DonorDam,
		e.EmbryoID,
		e.Notes,
		e.CreatedAt,
	)
	return mapConstraint(err, breedingConstraints)
}

func (r *BreedingRepo) GetByID(ctx context.Context, id string) (breeding.Event, error) {
	if !validID(id) {
		return breeding.Event{}, breeding.ErrNotFound
	}
	e, err := scanEvent(r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM breeding_events WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return breeding.Event{}, breeding.ErrNotFound
	}
	return e, err
}

func (r *BreedingRepo) ListByBreeder(ctx context.Context, breederID string, f breeding.ListFilter) ([]breeding.Event, error) {
	if !validID(breederID) {
		return []breeding.Event{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM breeding_events
		WHERE breeder_id = $1
		ORDER BY breeding_date DESC, created_at DESC, id ASC
		LIMIT $2 OFFSET $3
	`, breederID, limitArg(f.Limit), offsetArg(f.Skip))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeding.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEvent(s scanner) (breeding.Event, error) {
	var (
		e               breeding.Event
		sire, offspring sql.NullString
		due             sql.NullTime
	)
	err := s.Scan(
		&e.ID,
		&e.BreederID,
		&e.Method,
		&e.DamID,
		&sire,
		&offspring,
		&e.BreedingDate,
		&due,
		&e.SemenSource,
		&e.AITechnician,
		&e.BatchNumber,
		&e.DonorDam,
		&e.EmbryoID,
		&e.Notes,
		&e.CreatedAt,
	)
	if err != nil {
		return breeding.Event{}, err
	}
	e.SireID = fromNullString(sire)
	e.OffspringID = fromNullString(offspring)
	e.ExpectedDueDate = fromNullTime(due)
	return e, nil
}
