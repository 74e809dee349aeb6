package reduce

import (
	"fmt"
	"io"

	"github.com/born-ml/reducegen/internal/tensor"
)

// Variable is one tensor binding of a generated kernel. It maps between flat row-major
// offsets and index vectors of a fixed shape, both as WGSL snippets and on the host.
//
// Index vectors are held in a u32 for rank 0 and 1, and in array<u32, N> otherwise.
// Nothing here checks bounds: the loop nest only produces in-range indices.
type Variable struct {
	Name    string
	shape   tensor.Shape
	strides []int
}

func newVariable(name string, shape tensor.Shape) *Variable {
	return &Variable{
		Name:    name,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
}

// Shape returns the shape the variable was built for.
func (v *Variable) Shape() tensor.Shape {
	return v.shape
}

// Rank returns the number of axes.
func (v *Variable) Rank() int {
	return len(v.shape)
}

// IndicesType returns the WGSL type of an index vector.
func (v *Variable) IndicesType() string {
	if v.Rank() < 2 {
		return "u32"
	}
	return fmt.Sprintf("array<u32, %d>", v.Rank())
}

// IndicesToOffset returns a WGSL expression computing the flat offset of the index vector
// stored in indices.
func (v *Variable) IndicesToOffset(indices string) string {
	switch v.Rank() {
	case 0:
		return "0u"
	case 1:
		return indices
	default:
		return fmt.Sprintf("%s_indicesToOffset(%s)", v.Name, indices)
	}
}

// OffsetToIndices returns a WGSL expression computing the index vector of a flat offset.
func (v *Variable) OffsetToIndices(offset string) string {
	switch v.Rank() {
	case 0:
		return "0u"
	case 1:
		return offset
	default:
		return fmt.Sprintf("%s_offsetToIndices(%s)", v.Name, offset)
	}
}

// IndicesGet returns a WGSL expression reading one axis component of indices.
func (v *Variable) IndicesGet(indices string, axis int) string {
	if v.Rank() < 2 {
		return indices
	}
	return fmt.Sprintf("%s[%d]", indices, axis)
}

// IndicesSet returns a WGSL statement writing value into one axis component of indices.
func (v *Variable) IndicesSet(indices string, axis int, value string) string {
	if v.Rank() < 2 {
		return fmt.Sprintf("%s = %s;", indices, value)
	}
	return fmt.Sprintf("%s[%d] = %s;", indices, axis, value)
}

// WriteIndicesToOffsetImpl writes the WGSL helper behind IndicesToOffset.
// Nothing is written for rank < 2, where the expression is inlined.
func (v *Variable) WriteIndicesToOffsetImpl(writer io.Writer) error {
	if v.Rank() < 2 {
		return nil
	}
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	w("fn %s_indicesToOffset(indices: %s) -> u32 {\n", v.Name, v.IndicesType())
	w("  return ")
	for axis := range v.shape {
		if axis > 0 {
			w(" + ")
		}
		if axis == v.Rank()-1 {
			w("indices[%d]", axis)
		} else {
			w("indices[%d] * %s", axis, u32Literal(v.strides[axis]))
		}
	}
	w(";\n}\n\n")
	return err
}

// WriteOffsetToIndicesImpl writes the WGSL helper behind OffsetToIndices.
// Nothing is written for rank < 2, where the expression is inlined.
func (v *Variable) WriteOffsetToIndicesImpl(writer io.Writer) error {
	if v.Rank() < 2 {
		return nil
	}
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	last := v.Rank() - 1
	w("fn %s_offsetToIndices(offset: u32) -> %s {\n", v.Name, v.IndicesType())
	w("  var indices: %s;\n", v.IndicesType())
	w("  var current = offset;\n")
	for axis := 0; axis < last; axis++ {
		stride := u32Literal(v.strides[axis])
		w("  indices[%d] = current / %s;\n", axis, stride)
		w("  current = current %% %s;\n", stride)
	}
	w("  indices[%d] = current;\n", last)
	w("  return indices;\n}\n\n")
	return err
}

// indicesToOffset is the host counterpart of IndicesToOffset.
func (v *Variable) indicesToOffset(indices []int) int {
	offset := 0
	for axis, idx := range indices {
		offset += idx * v.strides[axis]
	}
	return offset
}

// offsetToIndices is the host counterpart of OffsetToIndices; it fills dst.
func (v *Variable) offsetToIndices(offset int, dst []int) {
	for axis := range v.shape {
		if axis == len(v.shape)-1 {
			dst[axis] = offset
			return
		}
		if v.strides[axis] == 0 {
			dst[axis] = 0
			continue
		}
		dst[axis] = offset / v.strides[axis]
		offset %= v.strides[axis]
	}
}

// u32Literal formats n as a WGSL u32 literal.
func u32Literal(n int) string {
	return fmt.Sprintf("%du", n)
}
