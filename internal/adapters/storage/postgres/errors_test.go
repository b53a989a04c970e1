package postgres

import (
	"errors"
	"fmt"
	"testing"

	"breed-registry/internal/domain/animals"
	"breed-registry/internal/domain/breeders"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestMapConstraint(t *testing.T) {
	unique := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "animals_animal_id_key"}
	require.ErrorIs(t, mapConstraint(unique, animalConstraints), animals.ErrAnimalIDTaken)

	// Envuelto por database/sql u otra capa.
	wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "animals_breeder_id_fkey"})
	require.ErrorIs(t, mapConstraint(wrapped, breederConstraints), breeders.ErrHasAnimals)
	require.ErrorIs(t, mapConstraint(wrapped, animalConstraints), animals.ErrBreederNotFound)

	unknown := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "something_else"}
	require.Same(t, unknown, mapConstraint(unknown, animalConstraints))

	other := &pgconn.PgError{Code: "22P02", ConstraintName: "animals_animal_id_key"}
	require.Same(t, other, mapConstraint(other, animalConstraints))

	plain := errors.New("boom")
	require.Equal(t, plain, mapConstraint(plain, animalConstraints))
	require.NoError(t, mapConstraint(nil, animalConstraints))
}

func TestMigrationFiles(t *testing.T) {
	files, err := migrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	require.Equal(t, "001_init.sql", files[0])
	require.Equal(t, "001", migrationVersion(files[0]))
}

func TestHelpers(t *testing.T) {
	require.Equal(t, `JSM\_1\%`, likePrefix("JSM_1%"))
	require.Nil(t, limitArg(0))
	require.Equal(t, 50, limitArg(50))
	require.Equal(t, 0, offsetArg(-3))
	require.True(t, validID("7f1c6a4e-3b7a-4c55-9a8e-2b1d0f5e9c11"))
	require.False(t, validID("JSM-001"))
}
