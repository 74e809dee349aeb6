package reduce

import (
	"slices"

	"github.com/pkg/errors"
)

// NormalizeAxes resolves signed axis values against rank into canonical axes in [0, rank).
// A negative axis a refers to a+rank. Duplicates collapse into one axis and the result is
// sorted ascending. An axis outside [0, rank) after adjustment yields ErrInvalidAxis.
func NormalizeAxes(axes []int64, rank int) ([]int, error) {
	normalized := make([]int, 0, len(axes))
	for _, axis := range axes {
		adjusted := axis
		if adjusted < 0 {
			adjusted += int64(rank)
		}
		if adjusted < 0 || adjusted >= int64(rank) {
			return nil, errors.Wrapf(ErrInvalidAxis, "axis %d out of range for rank %d", axis, rank)
		}
		normalized = append(normalized, int(adjusted))
	}
	slices.Sort(normalized)
	return slices.Compact(normalized), nil
}

// reducedAxes flags, per input axis, whether it is reduced.
//
// noopWithEmptyAxes is consulted before the reduce-all default: empty axes with the flag set
// reduce nothing, empty axes without it reduce every axis.
func reducedAxes(axes []int, rank int, noopWithEmptyAxes bool) []bool {
	reduced := make([]bool, rank)
	if len(axes) == 0 {
		if !noopWithEmptyAxes {
			for i := range reduced {
				reduced[i] = true
			}
		}
		return reduced
	}
	for _, axis := range axes {
		reduced[axis] = true
	}
	return reduced
}
