package almanac_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rangeflow/almanac"
	"github.com/katalvlaran/rangeflow/pipeline"
)

// ExampleParse reads a two-map almanac and resolves both seed readings.
//
// Scenario:
//
//	seeds 8 4 → scalar seeds {8, 4}, or the single range [8, 12)
//	seed-to-soil:     [10, 13) -> 100
//	soil-to-location: [100, 200) -> 0
//
//	Only range mode reaches seeds 10 and 11, which land on locations 0 and 1.
func ExampleParse() {
	src := `seeds: 8 4

seed-to-soil map:
100 10 3

soil-to-location map:
0 100 100
`
	a, err := almanac.Parse(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	p, err := a.Pipeline()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	part1, _ := pipeline.ResolveScalar(a.Seeds, p)
	ranges, _ := a.Ranges()
	part2, _ := pipeline.ResolveRanges(ranges, p)
	fmt.Println("stages:", p.Len())
	fmt.Println("part1:", part1)
	fmt.Println("part2:", part2)
	// Output:
	// stages: 2
	// part1: 4
	// part2: 0
}
