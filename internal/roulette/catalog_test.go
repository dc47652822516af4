package roulette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogExcludesWinnerFromPool(t *testing.T) {
	catalog, err := NewCatalog(sampleLabels, "+90 kg")
	require.NoError(t, err)

	assert.Equal(t, "+90 kg", catalog.Winner())
	assert.Len(t, catalog.Labels(), 10)
	assert.Len(t, catalog.Pool(), 9)
	assert.NotContains(t, catalog.Pool(), "+90 kg")
}

func TestNewCatalogDropsDuplicateWinners(t *testing.T) {
	catalog, err := NewCatalog([]string{"+90 kg", "-70 kg", "+90 kg"}, "+90 kg")
	require.NoError(t, err)

	assert.Equal(t, []string{"-70 kg"}, catalog.Pool())
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		winner string
		want   error
	}{
		{"empty", nil, "+90 kg", ErrEmptyCatalog},
		{"blank label", []string{"+90 kg", "  "}, "+90 kg", ErrBlankLabel},
		{"winner missing", []string{"-70 kg"}, "+90 kg", ErrWinnerNotInCatalog},
		{"only winner", []string{"+90 kg"}, "+90 kg", ErrEmptyPool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.labels, tt.winner)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	catalog, err := NewCatalog([]string{"+90 kg", "-70 kg"}, "+90 kg")
	require.NoError(t, err)

	catalog.Pool()[0] = "+90 kg"
	catalog.Labels()[1] = "changed"

	assert.Equal(t, []string{"-70 kg"}, catalog.Pool())
	assert.Equal(t, []string{"+90 kg", "-70 kg"}, catalog.Labels())
}

func TestSignOf(t *testing.T) {
	assert.Equal(t, Positive, SignOf("+90 kg"))
	assert.Equal(t, Positive, SignOf(" +5 kg"))
	assert.Equal(t, Negative, SignOf("-70 kg"))
	assert.Equal(t, Negative, SignOf("0 kg"))
}
