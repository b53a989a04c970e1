package breeding

import (
	"context"
	"testing"
	"time"

	"breed-registry/internal/domain/animals"
	"breed-registry/internal/domain/breeders"

	"github.com/stretchr/testify/require"
)

type memEvents struct {
	items []Event
}

func (m *memEvents) Create(ctx context.Context, e Event) error {
	m.items = append(m.items, e)
	return nil
}

func (m *memEvents) GetByID(ctx context.Context, id string) (Event, error) {
	for _, e := range m.items {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrNotFound
}

func (m *memEvents) ListByBreeder(ctx context.Context, breederID string, f ListFilter) ([]Event, error) {
	var out []Event
	for _, e := range m.items {
		if e.BreederID == breederID {
			out = append(out, e)
		}
	}
	return out, nil
}

type dir map[string]breeders.Breeder

func (d dir) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	b, ok := d[id]
	if !ok {
		return breeders.Breeder{}, breeders.ErrNotFound
	}
	return b, nil
}

type herd map[string]animals.Animal

func (h herd) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	a, ok := h[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func fixture() (*Service, *memEvents) {
	repo := &memEvents{}
	h := herd{
		"dam":       {ID: "dam", BreederID: "b1", Gender: animals.GenderFemale},
		"sire":      {ID: "sire", BreederID: "b1", Gender: animals.GenderMale},
		"calf":      {ID: "calf", BreederID: "b1", Gender: animals.GenderMale},
		"other-dam": {ID: "other-dam", BreederID: "b2", Gender: animals.GenderFemale},
	}
	d := dir{"b1": {ID: "b1"}, "b2": {ID: "b2"}}

	svc := NewService(repo, d, h)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return svc, repo
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestCreate_ArtificialInsemination(t *testing.T) {
	svc, repo := fixture()
	due := day("2025-11-10")

	e, err := svc.Create(context.Background(), "b1", CreateInput{
		Method:          MethodArtificialInsemination,
		DamID:           "dam",
		SireID:          "sire",
		BreedingDate:    day("2025-02-01"),
		ExpectedDueDate: &due,
		SemenSource:     " ABS Global ",
		AITechnician:    "J. Kamau",
		BatchNumber:     "B-42",
	})
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)
	require.Equal(t, "b1", e.BreederID)
	require.Equal(t, "dam", e.DamID)
	require.NotNil(t, e.SireID)
	require.Equal(t, "sire", *e.SireID)
	require.Nil(t, e.OffspringID)
	require.Equal(t, "ABS Global", e.SemenSource)
	require.Len(t, repo.items, 1)

	list, err := svc.ListByBreeder(context.Background(), "b1", ListFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCreate_References(t *testing.T) {
	ctx := context.Background()
	base := CreateInput{Method: MethodNatural, DamID: "dam", BreedingDate: day("2025-02-01")}

	cases := []struct {
		name string
		mod  func(*CreateInput)
		want error
	}{
		{"missing dam", func(in *CreateInput) { in.DamID = "" }, ErrInvalidDam},
		{"unknown dam", func(in *CreateInput) { in.DamID = "ghost" }, ErrInvalidDam},
		{"foreign dam", func(in *CreateInput) { in.DamID = "other-dam" }, ErrInvalidDam},
		{"male dam", func(in *CreateInput) { in.DamID = "sire" }, ErrInvalidDam},
		{"female sire", func(in *CreateInput) { in.SireID = "dam" }, ErrInvalidSire},
		{"unknown offspring", func(in *CreateInput) { in.OffspringID = "ghost" }, ErrInvalidOffspring},
		{"offspring is dam", func(in *CreateInput) { in.OffspringID = "dam" }, ErrInvalidOffspring},
		{"bad method", func(in *CreateInput) { in.Method = "cloning" }, ErrInvalidInput},
		{"due before breeding", func(in *CreateInput) {
			d := day("2025-01-01")
			in.ExpectedDueDate = &d
		}, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := fixture()
			in := base
			tc.mod(&in)

			_, err := svc.Create(ctx, "b1", in)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Empty(t, repo.items)
		})
	}
}

func TestCreate_WithOffspring(t *testing.T) {
	svc, _ := fixture()

	e, err := svc.Create(context.Background(), "b1", CreateInput{
		Method:       MethodNatural,
		DamID:        "dam",
		SireID:       "sire",
		OffspringID:  "calf",
		BreedingDate: day("2024-05-01"),
	})
	require.NoError(t, err)
	require.NotNil(t, e.OffspringID)
	require.Equal(t, "calf", *e.OffspringID)
}

func TestBreederMustExist(t *testing.T) {
	svc, _ := fixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, "nope", CreateInput{Method: MethodIVF, DamID: "dam", BreedingDate: day("2025-02-01")})
	require.ErrorIs(t, err, ErrBreederNotFound)

	_, err = svc.ListByBreeder(ctx, "nope", ListFilter{})
	require.ErrorIs(t, err, ErrBreederNotFound)
}

func TestGetByID_Ownership(t *testing.T) {
	svc, _ := fixture()
	ctx := context.Background()

	e, err := svc.Create(ctx, "b1", CreateInput{Method: MethodEmbryoTransfer, DamID: "dam", BreedingDate: day("2025-02-01"), EmbryoID: "E-7"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, "b1", e.ID)
	require.NoError(t, err)
	require.Equal(t, "E-7", got.EmbryoID)

	_, err = svc.GetByID(ctx, "b2", e.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
