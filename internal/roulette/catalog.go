package roulette

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCatalog       = errors.New("catalog has no labels")
	ErrBlankLabel         = errors.New("catalog contains a blank label")
	ErrWinnerNotInCatalog = errors.New("winning label is not in the catalog")
	ErrEmptyPool          = errors.New("catalog has no non-winning labels")
)

// Catalog is the immutable set of labels a roulette can show, plus the one
// label it is rigged to stop on.
type Catalog struct {
	labels []string
	winner string
	pool   []string
}

func NewCatalog(labels []string, winner string) (*Catalog, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyCatalog
	}

	found := false
	pool := make([]string, 0, len(labels))
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("label %d: %w", i, ErrBlankLabel)
		}
		if label == winner {
			found = true
			continue
		}
		pool = append(pool, label)
	}

	if !found {
		return nil, fmt.Errorf("%q: %w", winner, ErrWinnerNotInCatalog)
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	return &Catalog{
		labels: append([]string(nil), labels...),
		winner: winner,
		pool:   pool,
	}, nil
}

func (c *Catalog) Labels() []string {
	return append([]string(nil), c.labels...)
}

func (c *Catalog) Winner() string {
	return c.winner
}

// Pool returns the non-winning labels used for random fill.
func (c *Catalog) Pool() []string {
	return append([]string(nil), c.pool...)
}

type Sign int

const (
	Negative Sign = iota
	Positive
)

// SignOf classifies a label like "+90 kg" or "-70 kg". Anything not starting
// with '+' counts as negative.
func SignOf(label string) Sign {
	if strings.HasPrefix(strings.TrimSpace(label), "+") {
		return Positive
	}
	return Negative
}
