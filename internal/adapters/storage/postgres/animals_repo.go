package postgres

import (
	"context"
	"database/sql"
	"errors"

	"breed-registry/internal/domain/animals"
)

var animalConstraints = map[string]error{
	"animals_animal_id_key":   animals.ErrAnimalIDTaken,
	"animals_breeder_id_fkey": animals.ErrBreederNotFound,
	"animals_sire_id_fkey":    animals.ErrInvalidSire,
	"animals_dam_id_fkey":     animals.ErrInvalidDam,
}

const animalColumns = `
	id, animal_id, breeder_id,
	animal_type, breed, gender, date_of_birth,
	sire_id, dam_id, created_at`

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.AnimalID,
		a.BreederID,
		a.AnimalType,
		a.Breed,
		a.Gender,
		toNullDate(a.DateOfBirth),
		toNullString(a.SireID),
		toNullString(a.DamID),
		a.CreatedAt,
	)
	return mapConstraint(err, animalConstraints)
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	if !validID(id) {
		return animals.Animal{}, animals.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
}

func (r *AnimalsRepo) GetByAnimalID(ctx context.Context, animalID string) (animals.Animal, error) {
	return r.getOne(ctx, `SELECT `+animalColumns+` FROM animals WHERE animal_id = $1`, animalID)
}

func (r *AnimalsRepo) getOne(ctx context.Context, query string, arg any) (animals.Animal, error) {
	a, err := scanAnimal(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, err
}

func (r *AnimalsRepo) ListByBreeder(ctx context.Context, breederID string, f animals.ListFilter) ([]animals.Animal, error) {
	if !validID(breederID) {
		return []animals.Animal{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE breeder_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`, breederID, limitArg(f.Limit), offsetArg(f.Skip))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) CountByBreeder(ctx context.Context, breederID string) (int, error) {
	if !validID(breederID) {
		return 0, nil
	}
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM animals WHERE breeder_id = $1`, breederID).Scan(&n)
	return n, err
}

// LatestAnimalID: mayor created_at. En empate gana el sufijo más largo y
// después el mayor, para que "JSM-1000" quede por encima de "JSM-999".
func (r *AnimalsRepo) LatestAnimalID(ctx context.Context, prefix string) (string, bool, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `
		SELECT animal_id
		FROM animals
		WHERE animal_id LIKE $1
		ORDER BY created_at DESC, length(animal_id) DESC, animal_id DESC
		LIMIT 1
	`, likePrefix(prefix)+"-%").Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// HighestAnimalID ordena por el sufijo como número; sufijos no numéricos
// se ignoran. Los prefixes no llevan guiones.
func (r *AnimalsRepo) HighestAnimalID(ctx context.Context, prefix string) (string, bool, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `
		SELECT animal_id
		FROM animals
		WHERE animal_id LIKE $1
		  AND split_part(animal_id, '-', 2) ~ '^[0-9]{1,18}$'
		ORDER BY split_part(animal_id, '-', 2)::bigint DESC
		LIMIT 1
	`, likePrefix(prefix)+"-%").Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Lineage: CTE recursivo sobre sire_id/dam_id. DISTINCT ON deja cada
// ancestro una sola vez, en su generación más cercana.
func (r *AnimalsRepo) Lineage(ctx context.Context, animalID string, generations int) ([]animals.LineageEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		WITH RECURSIVE tree AS (
			SELECT a.id, a.sire_id, a.dam_id, 0 AS generation
			FROM animals a
			WHERE a.animal_id = $1

			UNION ALL

			SELECT p.id, p.sire_id, p.dam_id, t.generation + 1
			FROM tree t
			JOIN animals p ON p.id = t.sire_id OR p.id = t.dam_id
			WHERE t.generation < $2
		),
		nearest AS (
			SELECT DISTINCT ON (id) id, generation
			FROM tree
			ORDER BY id, generation
		)
		SELECT a.animal_id, a.breed, a.gender, a.date_of_birth,
		       s.animal_id, d.animal_id, n.generation
		FROM nearest n
		JOIN animals a ON a.id = n.id
		LEFT JOIN animals s ON s.id = a.sire_id
		LEFT JOIN animals d ON d.id = a.dam_id
		ORDER BY n.generation, a.animal_id
	`, animalID, generations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.LineageEntry, 0)
	for rows.Next() {
		var (
			e        animals.LineageEntry
			dob      sql.NullTime
			sire, dm sql.NullString
		)
		if err := rows.Scan(&e.AnimalID, &e.Breed, &e.Gender, &dob, &sire, &dm, &e.Generation); err != nil {
			return nil, err
		}
		e.DateOfBirth = fromNullTime(dob)
		e.SireAnimalID = fromNullString(sire)
		e.DamAnimalID = fromNullString(dm)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) BreedSummary(ctx context.Context, breed string) ([]animals.BreedSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			min(breed),
			animal_type,
			count(*),
			count(*) FILTER (WHERE gender = 'male'),
			count(*) FILTER (WHERE gender = 'female'),
			count(DISTINCT breeder_id)
		FROM animals
		WHERE lower(breed) = lower($1)
		GROUP BY animal_type
		ORDER BY animal_type
	`, breed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.BreedSummary, 0)
	for rows.Next() {
		var s animals.BreedSummary
		if err := rows.Scan(&s.Breed, &s.AnimalType, &s.Total, &s.Males, &s.Females, &s.Breeders); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a        animals.Animal
		dob      sql.NullTime
		sire, dm sql.NullString
	)
	err := s.Scan(
		&a.ID,
		&a.AnimalID,
		&a.BreederID,
		&a.AnimalType,
		&a.Breed,
		&a.Gender,
		&dob,
		&sire,
		&dm,
		&a.CreatedAt,
	)
	if err != nil {
		return animals.Animal{}, err
	}
	a.DateOfBirth = fromNullTime(dob)
	a.SireID = fromNullString(sire)
	a.DamID = fromNullString(dm)
	return a, nil
}
