package almanac

import (
	"fmt"

	"github.com/katalvlaran/rangeflow/pipeline"
	"github.com/katalvlaran/rangeflow/stage"
)

// Pipeline builds the seed→location Pipeline described by a.
//
// Maps are ordered by following categories from SourceCategory: the map
// consuming "seed" comes first, then the map consuming its output, and so on
// until TargetCategory is produced. Listing order in the input is irrelevant.
//
// Returns ErrBrokenChain when a category is consumed by two maps, the chain
// stops before TargetCategory, revisits a category, or leaves maps unused;
// otherwise the stage errors of any invalid map, wrapped with its name.
// Complexity: O(M + R log R), M maps and R rows.
func (a *Almanac) Pipeline() (*pipeline.Pipeline, error) {
	order, err := a.chain()
	if err != nil {
		return nil, err
	}

	stages := make([]*stage.Stage, 0, len(order))
	for _, i := range order {
		m := a.Maps[i]
		st, err := m.Stage()
		if err != nil {
			return nil, fmt.Errorf("%s map: %w", m.Name(), err)
		}
		stages = append(stages, st)
	}

	return pipeline.New(stages...)
}

// Ranges reads the seed line as (start, length) pairs.
func (a *Almanac) Ranges() ([]pipeline.SeedRange, error) {
	return pipeline.PairSeeds(a.Seeds)
}

// Stage builds the labelled Stage for m.
func (m Map) Stage() (*stage.Stage, error) {
	rows := make([][3]uint64, len(m.Rows))
	for i, r := range m.Rows {
		rows[i] = [3]uint64{r.Dest, r.Source, r.Length}
	}

	return stage.FromRows(rows, stage.WithCategories(m.From, m.To))
}

// chain returns map indices in seed→location order.
func (a *Almanac) chain() ([]int, error) {
	bySource := make(map[string]int, len(a.Maps))
	for i, m := range a.Maps {
		if j, dup := bySource[m.From]; dup {
			return nil, fmt.Errorf("%w: %q consumed by both %s and %s", ErrBrokenChain, m.From, a.Maps[j].Name(), m.Name())
		}
		bySource[m.From] = i
	}

	order := make([]int, 0, len(a.Maps))
	visited := make(map[string]bool, len(a.Maps))
	for cat := SourceCategory; cat != TargetCategory; {
		if visited[cat] {
			return nil, fmt.Errorf("%w: cycle through %q", ErrBrokenChain, cat)
		}
		visited[cat] = true

		i, ok := bySource[cat]
		if !ok {
			return nil, fmt.Errorf("%w: no map consumes %q", ErrBrokenChain, cat)
		}
		order = append(order, i)
		cat = a.Maps[i].To
	}
	if len(order) != len(a.Maps) {
		return nil, fmt.Errorf("%w: %d map(s) not on the chain", ErrBrokenChain, len(a.Maps)-len(order))
	}

	return order, nil
}
