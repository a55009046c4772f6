package pipeline

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/rangeflow/interval"
	"github.com/katalvlaran/rangeflow/stage"
)

// New builds a Pipeline applying stages in the given order.
// Returns ErrNilStage for a nil entry and ErrStageOrder when two adjacent
// labelled Stages do not chain (stages[i].To() != stages[i+1].From()).
// An empty Pipeline is valid and leaves every input unchanged.
func New(stages ...*stage.Stage) (*Pipeline, error) {
	for i, st := range stages {
		if st == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilStage, i)
		}
		if i == 0 {
			continue
		}
		prev := stages[i-1]
		if prev.To() != "" && st.From() != "" && prev.To() != st.From() {
			return nil, fmt.Errorf("%w: stage %d produces %q but stage %d consumes %q",
				ErrStageOrder, i-1, prev.To(), i, st.From())
		}
	}

	return &Pipeline{stages: slices.Clone(stages)}, nil
}

// Len returns the number of Stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Stages returns the Stages in application order.
// The slice is a copy; the Stages themselves are immutable.
func (p *Pipeline) Stages() []*stage.Stage { return slices.Clone(p.stages) }

// Apply runs only the Stage at index i.
// Returns ErrStageIndex if i is out of range.
func (p *Pipeline) Apply(i int, set interval.Set) (interval.Set, error) {
	if i < 0 || i >= len(p.stages) {
		return interval.Set{}, fmt.Errorf("%w: %d not in [0, %d)", ErrStageIndex, i, len(p.stages))
	}

	return p.stages[i].Apply(set), nil
}

// Run threads set through every Stage in order and returns the final Set.
// Complexity: O(Σ stages (n_i log m_i + r_i log r_i)), n_i/r_i the Set
// sizes entering and leaving stage i.
func (p *Pipeline) Run(set interval.Set) interval.Set {
	return p.run(set, nil)
}

// run is Run with an optional per-stage hook.
func (p *Pipeline) run(set interval.Set, hook StageHook) interval.Set {
	for i, st := range p.stages {
		set = st.Apply(set)
		if hook != nil {
			hook(i, st, set)
		}
	}

	return set
}

// Translate maps a single value through every Stage.
// For every v < MaxUint64 the result equals the Start of
// Run(NewSet(Point(v))), without building any Interval.
func (p *Pipeline) Translate(v uint64) uint64 {
	for _, st := range p.stages {
		v = st.Translate(v)
	}

	return v
}
