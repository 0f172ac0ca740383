package sqlite

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/activitylog/pkg/types"
)

func TestCreateAndList(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, a *Activities)
	}{
		{
			name: "empty store lists an empty slice",
			check: func(t *testing.T, a *Activities) {
				records, err := a.List()
				require.NoError(t, err)
				assert.NotNil(t, records)
				assert.Empty(t, records)
			},
		},
		{
			name: "create returns sequential ids",
			check: func(t *testing.T, a *Activities) {
				id1, err := a.Create(types.NewActivity("Walk", 20, 80))
				require.NoError(t, err)
				id2, err := a.Create(types.NewActivity("Swim", 40, 300))
				require.NoError(t, err)
				assert.Equal(t, int64(1), id1)
				assert.Equal(t, int64(2), id2)
			},
		},
		{
			name: "kind is written from the variant label",
			check: func(t *testing.T, a *Activities) {
				_, err := a.Create(types.NewActivity("Walk", 20, 80))
				require.NoError(t, err)
				_, err = a.Create(types.NewCardioExercise("Run", 30, 250))
				require.NoError(t, err)

				records, err := a.List()
				require.NoError(t, err)
				require.Len(t, records, 2)
				assert.Equal(t, "Activity", records[0].Kind)
				assert.Equal(t, "EjercicioCardio", records[1].Kind)
			},
		},
		{
			name: "list keeps insertion order",
			check: func(t *testing.T, a *Activities) {
				names := []string{"c", "a", "b"}
				for _, n := range names {
					_, err := a.Create(types.NewActivity(n, 1, 1))
					require.NoError(t, err)
				}
				records, err := a.List()
				require.NoError(t, err)
				require.Len(t, records, 3)
				for i, n := range names {
					assert.Equal(t, n, records[i].Name)
				}
			},
		},
		{
			name: "empty name and zero values are stored as given",
			check: func(t *testing.T, a *Activities) {
				id, err := a.Create(types.NewActivity("", 0, 0))
				require.NoError(t, err)

				records, err := a.List()
				require.NoError(t, err)
				require.Len(t, records, 1)
				assert.Equal(t, types.Record{ID: id, Name: "", Kind: "Activity"}, records[0])
			},
		},
		{
			name: "negative values are not rejected",
			check: func(t *testing.T, a *Activities) {
				_, err := a.Create(types.NewActivity("odd", -10, -2.5))
				require.NoError(t, err)

				records, err := a.List()
				require.NoError(t, err)
				require.Len(t, records, 1)
				assert.Equal(t, -10, records[0].DurationMinutes)
				assert.Equal(t, -2.5, records[0].CaloriesBurned)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := setupActivities(t)
			tt.check(t, a)
		})
	}
}

func TestCreateRoundTrip(t *testing.T) {
	a, _ := setupActivities(t)
	faker := gofakeit.New(42)

	for i := 0; i < 25; i++ {
		act := types.Activity{
			Kind:            types.Kind(faker.IntRange(0, 1)),
			Name:            faker.Name(),
			DurationMinutes: faker.IntRange(1, 300),
			CaloriesBurned:  faker.Float64Range(1, 1500),
		}

		before, err := a.List()
		require.NoError(t, err)

		id, err := a.Create(act)
		require.NoError(t, err)

		after, err := a.List()
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)

		got := after[len(after)-1]
		assert.Equal(t, types.Record{
			ID:              id,
			Name:            act.Name,
			Kind:            act.Kind.Label(),
			DurationMinutes: act.DurationMinutes,
			CaloriesBurned:  act.CaloriesBurned,
		}, got)
	}
}

func TestUpdate(t *testing.T) {
	base := types.Record{ID: 1, Name: "Run", Kind: "EjercicioCardio", DurationMinutes: 30, CaloriesBurned: 250}

	tests := []struct {
		name     string
		id       int64
		patch    types.ActivityPatch
		wantRows int64
		want     types.Record
	}{
		{
			name:     "name only changes name",
			id:       1,
			patch:    types.ActivityPatch{}.WithName("Jog"),
			wantRows: 1,
			want:     types.Record{ID: 1, Name: "Jog", Kind: "EjercicioCardio", DurationMinutes: 30, CaloriesBurned: 250},
		},
		{
			name:     "duration only",
			id:       1,
			patch:    types.ActivityPatch{}.WithDuration(45),
			wantRows: 1,
			want:     types.Record{ID: 1, Name: "Run", Kind: "EjercicioCardio", DurationMinutes: 45, CaloriesBurned: 250},
		},
		{
			name:     "calories only",
			id:       1,
			patch:    types.ActivityPatch{}.WithCalories(300),
			wantRows: 1,
			want:     types.Record{ID: 1, Name: "Run", Kind: "EjercicioCardio", DurationMinutes: 30, CaloriesBurned: 300},
		},
		{
			name:     "all fields",
			id:       1,
			patch:    types.ActivityPatch{}.WithName("Bike").WithDuration(60).WithCalories(500.5),
			wantRows: 1,
			want:     types.Record{ID: 1, Name: "Bike", Kind: "EjercicioCardio", DurationMinutes: 60, CaloriesBurned: 500.5},
		},
		{
			name:     "zero duration is skipped",
			id:       1,
			patch:    types.ActivityPatch{}.WithDuration(0),
			wantRows: 0,
			want:     base,
		},
		{
			name:     "empty name and zero calories are skipped",
			id:       1,
			patch:    types.ActivityPatch{}.WithName("").WithCalories(0).WithDuration(10),
			wantRows: 1,
			want:     types.Record{ID: 1, Name: "Run", Kind: "EjercicioCardio", DurationMinutes: 10, CaloriesBurned: 250},
		},
		{
			name:     "empty patch is a no-op",
			id:       1,
			patch:    types.ActivityPatch{},
			wantRows: 0,
			want:     base,
		},
		{
			name:     "missing id affects nothing",
			id:       99,
			patch:    types.ActivityPatch{}.WithName("Ghost"),
			wantRows: 0,
			want:     base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := setupActivities(t)
			_, err := a.Create(types.NewCardioExercise("Run", 30, 250))
			require.NoError(t, err)

			n, err := a.Update(tt.id, tt.patch)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, n)

			records, err := a.List()
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0])
		})
	}
}

func TestUpdateLeavesOtherRows(t *testing.T) {
	a, _ := setupActivities(t)
	_, err := a.Create(types.NewActivity("Walk", 20, 80))
	require.NoError(t, err)
	id, err := a.Create(types.NewActivity("Swim", 40, 300))
	require.NoError(t, err)

	_, err = a.Update(id, types.ActivityPatch{}.WithName("Dive"))
	require.NoError(t, err)

	records, err := a.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Walk", records[0].Name)
	assert.Equal(t, "Dive", records[1].Name)
}

func TestDelete(t *testing.T) {
	a, _ := setupActivities(t)
	id, err := a.Create(types.NewActivity("Walk", 20, 80))
	require.NoError(t, err)

	n, err := a.Delete(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = a.Delete(id)
	require.NoError(t, err, "deleting twice is safe")
	assert.Equal(t, int64(0), n)

	n, err = a.Delete(12345)
	require.NoError(t, err, "missing id is a no-op")
	assert.Equal(t, int64(0), n)

	records, err := a.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCardioLifecycle(t *testing.T) {
	a, _ := setupActivities(t)

	_, err := a.Create(types.NewCardioExercise("Run", 30, 250.0))
	require.NoError(t, err)

	records, err := a.List()
	require.NoError(t, err)
	assert.Equal(t, []types.Record{{ID: 1, Name: "Run", Kind: "EjercicioCardio", DurationMinutes: 30, CaloriesBurned: 250.0}}, records)

	_, err = a.Update(1, types.ActivityPatch{}.WithCalories(300.0))
	require.NoError(t, err)

	records, err = a.List()
	require.NoError(t, err)
	assert.Equal(t, []types.Record{{ID: 1, Name: "Run", Kind: "EjercicioCardio", DurationMinutes: 30, CaloriesBurned: 300.0}}, records)

	_, err = a.Delete(1)
	require.NoError(t, err)

	records, err = a.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBuildUpdate(t *testing.T) {
	tests := []struct {
		name      string
		patch     types.ActivityPatch
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "empty patch",
			patch:     types.ActivityPatch{},
			wantQuery: "",
			wantArgs:  nil,
		},
		{
			name:      "calories only",
			patch:     types.ActivityPatch{}.WithCalories(300),
			wantQuery: "UPDATE activities SET calorias_quemadas = ? WHERE id = ?",
			wantArgs:  []any{300.0, int64(7)},
		},
		{
			name:      "fields keep a fixed order",
			patch:     types.ActivityPatch{}.WithCalories(1.5).WithName("Run").WithDuration(30),
			wantQuery: "UPDATE activities SET nombre = ?, duracion = ?, calorias_quemadas = ? WHERE id = ?",
			wantArgs:  []any{"Run", 30, 1.5, int64(7)},
		},
		{
			name:      "values never reach the query text",
			patch:     types.ActivityPatch{}.WithName("x'; DROP TABLE activities; --"),
			wantQuery: "UPDATE activities SET nombre = ? WHERE id = ?",
			wantArgs:  []any{"x'; DROP TABLE activities; --", int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildUpdate(7, tt.patch)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
