package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suppa/taox-brain/internal/domain"
	"github.com/suppa/taox-brain/internal/repository/postgres"
	"github.com/suppa/taox-brain/internal/service"
	"github.com/suppa/taox-brain/internal/testutil"
)

func TestComboService_CreateCombo(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	comboService := service.NewComboService(repos.Combo, repos.Hero)
	ctx := context.Background()

	heroA := testutil.NewHeroBuilder().WithName("Nakroth").Build(t, testDB.DB)
	heroB := testutil.NewHeroBuilder().WithName("Krixi").Build(t, testDB.DB)
	heroC := testutil.NewHeroBuilder().WithName("Zip").Build(t, testDB.DB)
	heroD := testutil.NewHeroBuilder().WithName("Aya").Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.ComboInput
		wantErr error
	}{
		{
			name: "valid pair",
			input: service.ComboInput{
				ComboName:  "Dive Duo",
				HeroIDs:    []string{heroA.ID, heroB.ID},
				BonusScore: 15,
			},
		},
		{
			name: "valid trio",
			input: service.ComboInput{
				ComboName: "Wombo Trio",
				HeroIDs:   []string{heroA.ID, heroB.ID, heroC.ID},
			},
		},
		{
			name: "missing name",
			input: service.ComboInput{
				HeroIDs: []string{heroA.ID, heroB.ID},
			},
			wantErr: domain.ErrComboNameRequired,
		},
		{
			name: "too few heroes",
			input: service.ComboInput{
				ComboName: "Solo",
				HeroIDs:   []string{heroA.ID},
			},
			wantErr: domain.ErrComboTooFewHeroes,
		},
		{
			name: "too many heroes",
			input: service.ComboInput{
				ComboName: "Whole Team",
				HeroIDs:   []string{heroA.ID, heroB.ID, heroC.ID, heroD.ID},
			},
			wantErr: domain.ErrComboTooManyHeroes,
		},
		{
			name: "duplicate hero",
			input: service.ComboInput{
				ComboName: "Mirror",
				HeroIDs:   []string{heroA.ID, heroA.ID},
			},
			wantErr: domain.ErrComboDuplicateHero,
		},
		{
			name: "unknown hero",
			input: service.ComboInput{
				ComboName: "Ghosts",
				HeroIDs:   []string{heroA.ID, "00000000-0000-0000-0000-000000000000"},
			},
			wantErr: domain.ErrComboUnknownHero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo, err := comboService.CreateCombo(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, combo.ID)
			assert.Equal(t, tt.input.ComboName, combo.ComboName)
			assert.Equal(t, tt.input.HeroIDs, combo.HeroIDList())
		})
	}
}

func TestComboService_ListCombos_ResolvesNames(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	comboService := service.NewComboService(repos.Combo, repos.Hero)
	heroService := service.NewHeroService(repos.Hero)
	ctx := context.Background()

	heroA := testutil.NewHeroBuilder().WithName("Nakroth").Build(t, testDB.DB)
	heroB := testutil.NewHeroBuilder().WithName("Krixi").Build(t, testDB.DB)

	_, err := comboService.CreateCombo(ctx, service.ComboInput{
		ComboName: "Dive Duo",
		HeroIDs:   []string{heroA.ID, heroB.ID},
	})
	require.NoError(t, err)

	views, err := comboService.ListCombos(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, []string{"Nakroth", "Krixi"}, views[0].HeroNames)

	// Deleting a member leaves a dangling id; display omits the name
	require.NoError(t, heroService.DeleteHero(ctx, heroB.ID))

	views, err = comboService.ListCombos(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, []string{"Nakroth"}, views[0].HeroNames)
}

func TestComboService_DeleteCombo(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	comboService := service.NewComboService(repos.Combo, repos.Hero)
	ctx := context.Background()

	heroA := testutil.NewHeroBuilder().WithName("Nakroth").Build(t, testDB.DB)
	heroB := testutil.NewHeroBuilder().WithName("Krixi").Build(t, testDB.DB)

	combo, err := comboService.CreateCombo(ctx, service.ComboInput{
		ComboName: "Dive Duo",
		HeroIDs:   []string{heroA.ID, heroB.ID},
	})
	require.NoError(t, err)

	require.NoError(t, comboService.DeleteCombo(ctx, combo.ID))

	views, err := comboService.ListCombos(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)

	err = comboService.DeleteCombo(ctx, combo.ID)
	assert.ErrorIs(t, err, service.ErrComboNotFound)
}
