package reduce

import (
	"slices"
	"strconv"
	"strings"

	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/pkg/errors"
)

// Tensor is the view of tensor storage the generator consults: only shape and element type.
type Tensor interface {
	Shape() tensor.Shape
	DType() tensor.DataType
}

// AxesTensor is a 1-D integer tensor listing the axes to reduce.
type AxesTensor interface {
	Tensor
	AsInt64() []int64
}

// Attributes configure a reduction. They are immutable once created and carry a canonical
// cache key derived from their fields.
type Attributes struct {
	// Axes to reduce, possibly negative or repeated. Empty means "all axes" unless
	// NoopWithEmptyAxes is set.
	Axes []int64

	// KeepDims keeps reduced axes in the output with extent 1.
	KeepDims bool

	// NoopWithEmptyAxes turns a reduction with an empty Axes list into a copy of the input.
	NoopWithEmptyAxes bool

	cacheKey string
}

// NewAttributes creates Attributes and computes their cache key.
func NewAttributes(axes []int64, keepDims, noopWithEmptyAxes bool) *Attributes {
	a := &Attributes{
		Axes:              slices.Clone(axes),
		KeepDims:          keepDims,
		NoopWithEmptyAxes: noopWithEmptyAxes,
	}
	a.cacheKey = a.canonicalKey()
	return a
}

// CacheKey returns the canonical serialization of the attributes:
// "<axes joined by ','>;<keepDims>;<noopWithEmptyAxes>".
func (a *Attributes) CacheKey() string {
	if a.cacheKey != "" {
		return a.cacheKey
	}
	return a.canonicalKey()
}

func (a *Attributes) canonicalKey() string {
	axes := make([]string, len(a.Axes))
	for i, axis := range a.Axes {
		axes[i] = strconv.FormatInt(axis, 10)
	}
	return strings.Join(axes, ",") + ";" + strconv.FormatBool(a.KeepDims) + ";" + strconv.FormatBool(a.NoopWithEmptyAxes)
}

// ValidateInputs checks the inputs of a reduce operator: the float32 tensor to reduce,
// optionally followed by a 1-D int64 axes tensor.
func ValidateInputs(inputs []Tensor) error {
	if len(inputs) == 0 || len(inputs) > 2 {
		return errors.Wrapf(ErrInvalidInputCount, "got %d inputs", len(inputs))
	}
	if len(inputs) == 2 {
		if rank := inputs[1].Shape().Rank(); rank != 1 {
			return errors.Wrapf(ErrInvalidInputShape, "axes tensor must be 1-D, got rank %d", rank)
		}
		if _, ok := inputs[1].(AxesTensor); !ok || inputs[1].DType() != tensor.Int64 {
			return errors.Wrapf(ErrInvalidInputType, "axes tensor must be int64, got %s", inputs[1].DType())
		}
	}
	if dtype := inputs[0].DType(); dtype != tensor.Float32 {
		return errors.Wrapf(ErrInvalidInputType, "only float32 is supported, got %s", dtype)
	}
	return nil
}

// ResolveAttributes merges static attributes with the optional runtime axes tensor.
//
// With a single input the static attributes are returned as they are. With an axes tensor,
// its elements replace the static axes and fresh attributes (with a fresh cache key) keep
// the static flags. A nil attrs is treated as the zero configuration.
func ResolveAttributes(inputs []Tensor, attrs *Attributes) (*Attributes, error) {
	if err := ValidateInputs(inputs); err != nil {
		return nil, err
	}
	if attrs == nil {
		attrs = NewAttributes(nil, false, false)
	}
	if len(inputs) == 1 {
		return attrs, nil
	}

	axesTensor := inputs[1].(AxesTensor)
	var axes []int64
	if axesTensor.Shape()[0] > 0 {
		axes = slices.Clone(axesTensor.AsInt64())
	}
	return NewAttributes(axes, attrs.KeepDims, attrs.NoopWithEmptyAxes), nil
}
