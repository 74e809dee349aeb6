package reduce

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Names shared by every template and the loop-nest builder.
const (
	valueVar         = "value"
	inputIdxVar      = "inputIdx"
	inputIndicesVar  = "inputIndices"
	outputIndicesVar = "outputIndices"
)

// Template is the recipe of one reduction kind: four WGSL fragments spliced by the
// loop-nest builder, plus the same arithmetic for host evaluation.
//
//   - Init runs once per output element, before the reduced-axis loops.
//   - Prologue runs once, right before entering the loops.
//   - Accumulate runs once per visited input element, with inputIdx in scope.
//   - Finalize runs once after the loops and leaves the result in value.
type Template struct {
	Kind       Kind
	Init       string
	Prologue   string
	Accumulate string
	Finalize   string

	// SeedFromInput marks templates whose Prologue reads the input at the first element of
	// the reduced region. inputIdx is then declared mutable ahead of the loop nest and
	// reassigned per step; otherwise it is a let scoped to the innermost loop body.
	SeedFromInput bool

	host hostOps
}

// hostOps mirrors the fragments in Go.
type hostOps struct {
	identity   float32
	accumulate func(acc, x float32) float32
	finalize   func(acc float32) float32
}

// TemplateFor returns the template of kind for the given input binding. reduced flags the
// reduced axes of input; Max and Min use it to seed from the region's first element and
// Mean to divide by the number of reduced elements.
func TemplateFor(kind Kind, input *Variable, reduced []bool) (*Template, error) {
	x := fmt.Sprintf("%s[%s]", input.Name, inputIdxVar)
	sum := func(acc, v float32) float32 { return acc + v }
	square := func(acc, v float32) float32 { return acc + v*v }

	switch kind {
	case Sum:
		return &Template{
			Kind:       kind,
			Init:       "var value = 0.0;",
			Accumulate: fmt.Sprintf("value += %s;", x),
			host:       hostOps{identity: 0, accumulate: sum},
		}, nil

	case Mean:
		count := reducedCount(input, reduced)
		return &Template{
			Kind:       kind,
			Init:       "var value = 0.0;",
			Accumulate: fmt.Sprintf("value += %s;", x),
			Finalize:   fmt.Sprintf("value = value / %s;", f32Literal(count)),
			host: hostOps{
				identity:   0,
				accumulate: sum,
				finalize:   func(acc float32) float32 { return acc / float32(count) },
			},
		}, nil

	case Prod:
		return &Template{
			Kind:       kind,
			Init:       "var value = 1.0;",
			Accumulate: fmt.Sprintf("value *= %s;", x),
			host: hostOps{
				identity:   1,
				accumulate: func(acc, v float32) float32 { return acc * v },
			},
		}, nil

	case Max, Min:
		fn, pick := "max", func(acc, v float32) float32 { return max(acc, v) }
		if kind == Min {
			fn, pick = "min", func(acc, v float32) float32 { return min(acc, v) }
		}
		return &Template{
			Kind:          kind,
			Init:          firstElementIndices(input, reduced),
			Prologue:      fmt.Sprintf("var value = %s;", x),
			Accumulate:    fmt.Sprintf("value = %s(value, %s);", fn, x),
			SeedFromInput: true,
			host:          hostOps{accumulate: pick},
		}, nil

	case L1:
		return &Template{
			Kind:       kind,
			Init:       "var value = 0.0;",
			Accumulate: fmt.Sprintf("value += abs(%s);", x),
			host: hostOps{
				identity:   0,
				accumulate: func(acc, v float32) float32 { return acc + float32(math.Abs(float64(v))) },
			},
		}, nil

	case L2:
		return &Template{
			Kind:       kind,
			Init:       "var t = f32(0); var value = 0.0;",
			Accumulate: fmt.Sprintf("t = %s; value += (t * t);", x),
			Finalize:   "value = sqrt(value);",
			host: hostOps{
				identity:   0,
				accumulate: square,
				finalize:   func(acc float32) float32 { return float32(math.Sqrt(float64(acc))) },
			},
		}, nil

	case SumSquare:
		return &Template{
			Kind:       kind,
			Init:       "var t = f32(0); var value = 0.0;",
			Accumulate: fmt.Sprintf("t = %s; value += t * t;", x),
			host:       hostOps{identity: 0, accumulate: square},
		}, nil

	case LogSum:
		return &Template{
			Kind:       kind,
			Init:       "var value = 0.0;",
			Accumulate: fmt.Sprintf("value += %s;", x),
			Finalize:   "value = log(value);",
			host: hostOps{
				identity:   0,
				accumulate: sum,
				finalize:   func(acc float32) float32 { return float32(math.Log(float64(acc))) },
			},
		}, nil

	case LogSumExp:
		return &Template{
			Kind:       kind,
			Init:       "var value = 0.0;",
			Accumulate: fmt.Sprintf("value += exp(%s);", x),
			Finalize:   "value = log(value);",
			host: hostOps{
				identity:   0,
				accumulate: func(acc, v float32) float32 { return acc + float32(math.Exp(float64(v))) },
				finalize:   func(acc float32) float32 { return float32(math.Log(float64(acc))) },
			},
		}, nil

	case NoOp:
		return &Template{
			Kind:       kind,
			Accumulate: fmt.Sprintf("var value = %s;", x),
			host:       hostOps{accumulate: func(_, v float32) float32 { return v }},
		}, nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%s", kind)
}

// firstElementIndices zeroes the reduced components of the input indices.
func firstElementIndices(input *Variable, reduced []bool) string {
	var lines []string
	for axis, isReduced := range reduced {
		if isReduced {
			lines = append(lines, input.IndicesSet(inputIndicesVar, axis, "0u"))
		}
	}
	return strings.Join(lines, "\n")
}

// reducedCount is the number of input elements folded into each output element.
func reducedCount(input *Variable, reduced []bool) int {
	count := 1
	for axis, isReduced := range reduced {
		if isReduced {
			count *= input.Shape()[axis]
		}
	}
	return count
}

// f32Literal formats n as a WGSL floating-point literal.
func f32Literal(n int) string {
	return fmt.Sprintf("%d.0", n)
}
