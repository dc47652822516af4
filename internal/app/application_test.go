package app

import (
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vertical-roulette/internal/config"
	"vertical-roulette/internal/logger"
	"vertical-roulette/internal/roulette"
)

func TestNewApplicationBuildsWindow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	cfg := config.Default()
	cfg.Roulette.Seed = 1

	application, err := NewApplication(a, cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "ルーレット", application.Window().Title())
	assert.NotNil(t, application.Window().Content())
	assert.False(t, application.Controller().Spinning())
	assert.NotContains(t, application.Controller().Window(), "+90 kg")
}

func TestNewApplicationRejectsInvalidCatalog(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	cfg := config.Default()
	cfg.Roulette.Winner = "+100 kg"

	_, err := NewApplication(a, cfg, nil)
	assert.ErrorIs(t, err, roulette.ErrWinnerNotInCatalog)
}

func TestShutdownStopsSpin(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	cfg := config.Default()
	cfg.Roulette.Seed = 2
	cfg.Roulette.WinProbability = 0

	application, err := NewApplication(a, cfg, nil)
	require.NoError(t, err)

	application.Controller().StartSpin()
	require.True(t, application.Controller().Spinning())

	application.Shutdown()
	application.Shutdown()

	assert.False(t, application.Controller().Spinning())
}

// closingLogger counts records written after it was shut down.
type closingLogger struct {
	mu     sync.Mutex
	closes int
	late   int
}

func (l *closingLogger) record() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closes > 0 {
		l.late++
	}
}

func (l *closingLogger) Info(string, string, map[string]interface{})    { l.record() }
func (l *closingLogger) Error(string, error, map[string]interface{})    { l.record() }
func (l *closingLogger) Warning(string, string, map[string]interface{}) { l.record() }
func (l *closingLogger) Debug(string, string, map[string]interface{})   { l.record() }

func (l *closingLogger) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closes++
}

var _ logger.Logger = (*closingLogger)(nil)

func TestShutdownClosesLoggerLast(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	log := &closingLogger{}
	application, err := NewApplication(a, config.Default(), log)
	require.NoError(t, err)

	application.Shutdown()
	application.Shutdown()

	assert.Equal(t, 1, log.closes)
	assert.Zero(t, log.late)
}
