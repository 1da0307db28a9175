package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Pulse/internal/health/formula"
	"Pulse/internal/health/measure"
)

func TestWorkingLoad(t *testing.T) {
	res, err := WorkingLoad(WorkingLoadInput{OneRepMax: 100, Repetitions: 5})
	require.NoError(t, err)

	assert.Equal(t, 87.3, res.Load.Value)
	assert.Equal(t, 2.5, res.Increment)
	assert.Equal(t, 87.5, res.PlateLoad)

	res, err = WorkingLoad(WorkingLoadInput{OneRepMax: 100, Repetitions: 5, Increment: 5})
	require.NoError(t, err)
	assert.Equal(t, 85.0, res.PlateLoad)
}

func TestWorkingLoadInvertsOneRepMax(t *testing.T) {
	for reps := 1; reps <= 20; reps++ {
		res, err := WorkingLoad(WorkingLoadInput{OneRepMax: 140, Repetitions: reps})
		require.NoError(t, err)
		b, _ := res.Load.Result(formula.Brzycki)
		assert.InDelta(t, 140, formula.BrzyckiOneRM(b.Value, reps), 1e-9)
		e, _ := res.Load.Result(formula.Epley)
		assert.InDelta(t, 140, formula.EpleyOneRM(e.Value, reps), 1e-9)
	}
}

func TestWorkingLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    WorkingLoadInput
		field string
	}{
		{"no max", WorkingLoadInput{Repetitions: 5}, "one_rep_max"},
		{"reps", WorkingLoadInput{OneRepMax: 100, Repetitions: 21}, "repetitions"},
		{"increment", WorkingLoadInput{OneRepMax: 100, Repetitions: 5, Increment: 20}, "increment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WorkingLoad(tt.in)
			var ve measure.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}
