package simulation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertical-roulette/internal/roulette"
)

func newCatalog(t *testing.T) *roulette.Catalog {
	t.Helper()
	catalog, err := roulette.NewCatalog([]string{"+90 kg", "-70 kg", "+70 kg", "-90 kg"}, "+90 kg")
	require.NoError(t, err)
	return catalog
}

func TestRunAlwaysCentersWinner(t *testing.T) {
	opts := roulette.DefaultOptions()
	opts.Seed = 7

	report, err := NewRunner(newCatalog(t), opts, nil).Run(context.Background(), 200)
	require.NoError(t, err)

	assert.Equal(t, 200, report.Spins)
	assert.Equal(t, map[string]int{"+90 kg": 200}, report.Centers)
	assert.GreaterOrEqual(t, report.MinTicks, 4)
	assert.GreaterOrEqual(t, float64(report.MaxTicks), report.MeanTicks)
	assert.LessOrEqual(t, float64(report.MinTicks), report.MeanTicks)
	assert.Positive(t, report.TotalVirtual)
}

func TestRunWithCertainInjection(t *testing.T) {
	opts := roulette.DefaultOptions()
	opts.Seed = 1
	opts.WinProbability = 1

	report, err := NewRunner(newCatalog(t), opts, nil).Run(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 4, report.MinTicks)
	assert.Equal(t, 4, report.MaxTicks)
	assert.Equal(t, 4.0, report.MeanTicks)
	// three re-armed ticks per spin
	assert.Equal(t, 10*3*opts.Period, report.TotalVirtual)
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	opts := roulette.DefaultOptions()
	opts.Seed = 99

	first, err := NewRunner(newCatalog(t), opts, nil).Run(context.Background(), 50)
	require.NoError(t, err)
	second, err := NewRunner(newCatalog(t), opts, nil).Run(context.Background(), 50)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunAbortsWhenWinnerNeverArrives(t *testing.T) {
	opts := roulette.DefaultOptions()
	opts.Seed = 3
	opts.WinProbability = 0

	runner := NewRunner(newCatalog(t), opts, nil)
	runner.SetMaxTicks(500)

	_, err := runner.Run(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSpinDidNotStop)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewRunner(newCatalog(t), roulette.DefaultOptions(), nil).Run(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Spins)
}

func TestRunRejectsNonPositiveSpins(t *testing.T) {
	_, err := NewRunner(newCatalog(t), roulette.DefaultOptions(), nil).Run(context.Background(), 0)
	assert.Error(t, err)
}
