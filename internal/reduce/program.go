package reduce

import (
	"bytes"
	"math"

	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// WorkgroupSize is the number of invocations per workgroup of generated kernels.
const WorkgroupSize = 64

// MaxWorkgroupsPerDimension is the default WebGPU limit on workgroups along one grid axis.
const MaxWorkgroupsPerDimension = 65535

// Workgroups is the size of a dispatch grid.
type Workgroups struct {
	X, Y, Z uint32
}

// DispatchSize returns the grid covering outputSize invocations: ceil(outputSize/WorkgroupSize)
// workgroups, folded into a second dimension beyond MaxWorkgroupsPerDimension.
func DispatchSize(outputSize int) Workgroups {
	groups := (outputSize + WorkgroupSize - 1) / WorkgroupSize
	if groups <= MaxWorkgroupsPerDimension {
		//nolint:gosec // G115: bounded by MaxWorkgroupsPerDimension
		return Workgroups{X: uint32(groups), Y: 1, Z: 1}
	}
	y := (groups + MaxWorkgroupsPerDimension - 1) / MaxWorkgroupsPerDimension
	//nolint:gosec // G115: groups/y fits a grid axis
	return Workgroups{X: MaxWorkgroupsPerDimension, Y: uint32(y), Z: 1}
}

// Output describes the tensor a Program writes.
type Output struct {
	Shape tensor.Shape
	DType tensor.DataType
}

// Program is a generated reduction kernel ready to hand to an executor.
// It is immutable and safe to share between goroutines.
type Program struct {
	// Name of the operator, e.g. "ReduceSum".
	Name string

	// CacheKey identifies the (operator, attributes, input shape) triple. Two programs with the
	// same key have the same Source.
	CacheKey string

	// Kind is the template the kernel was built from. It is NoOp when the operator degenerated
	// into a copy.
	Kind Kind

	// Source is the WGSL module. Binding 0 is the input, binding 1 the output; the entry point
	// is "main".
	Source string

	// Output shape and type.
	Output Output

	input, output *Variable
	reduced       []bool
	keepDims      bool
	tmpl          *Template
}

// InputShape returns the shape of the tensor the program reduces.
func (p *Program) InputShape() tensor.Shape {
	return p.input.Shape()
}

// OutputSize is the number of output elements, which is also the number of dispatch positions.
func (p *Program) OutputSize() int {
	return p.Output.Shape.NumElements()
}

// DispatchGroup returns the workgroup grid for the program's output size.
func (p *Program) DispatchGroup() Workgroups {
	return DispatchSize(p.OutputSize())
}

// ReducedAxes returns the input axes the program reduces, ascending.
func (p *Program) ReducedAxes() []int {
	var axes []int
	for axis, isReduced := range p.reduced {
		if isReduced {
			axes = append(axes, axis)
		}
	}
	return axes
}

// EvalAt evaluates the kernel for dispatch position pos on the host. data holds the input
// elements in row-major order. It visits input elements in the same order as the kernel.
func (p *Program) EvalAt(data []float32, pos int) float32 {
	in, out, ops := p.input, p.output, p.tmpl.host
	inputIndices := make([]int, in.Rank())
	outputIndices := make([]int, out.Rank())
	out.offsetToIndices(pos, outputIndices)

	outAxis := 0
	for axis, isReduced := range p.reduced {
		if isReduced {
			if p.keepDims {
				outAxis++
			}
			continue
		}
		inputIndices[axis] = outputIndices[outAxis]
		outAxis++
	}

	axes := p.ReducedAxes()
	value := ops.identity
	if p.tmpl.SeedFromInput {
		if offset := in.indicesToOffset(inputIndices); offset < len(data) {
			value = data[offset]
		} else {
			value = float32(math.NaN())
		}
	}
	for _, axis := range axes {
		if in.Shape()[axis] == 0 {
			return p.finalize(value)
		}
	}

	for {
		value = ops.accumulate(value, data[in.indicesToOffset(inputIndices)])

		// Advance the reduced indices, last reduced axis fastest.
		k := len(axes) - 1
		for ; k >= 0; k-- {
			axis := axes[k]
			inputIndices[axis]++
			if inputIndices[axis] < in.Shape()[axis] {
				break
			}
			inputIndices[axis] = 0
		}
		if k < 0 {
			break
		}
	}
	return p.finalize(value)
}

func (p *Program) finalize(value float32) float32 {
	if p.tmpl.host.finalize == nil {
		return value
	}
	return p.tmpl.host.finalize(value)
}

// ProgramLoader defers source generation until a program is actually needed: its CacheKey is
// known up front so executors can look up a previously generated Program first.
type ProgramLoader struct {
	Name     string
	CacheKey string

	kind       Kind
	inputShape tensor.Shape
	attrs      *Attributes
	axes       []int
}

// Prepare validates the inputs, resolves the attributes and normalizes the axes of a
// reduction of kind. Every error of the generator is reported here, before any source
// is produced.
func Prepare(kind Kind, inputs []Tensor, attrs *Attributes) (*ProgramLoader, error) {
	if !kind.IsAKind() {
		return nil, errors.Wrapf(ErrUnknownKind, "%s", kind)
	}
	resolved, err := ResolveAttributes(inputs, attrs)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s", kind.OpName())
	}
	inputShape := inputs[0].Shape().Clone()
	axes, err := NormalizeAxes(resolved.Axes, inputShape.Rank())
	if err != nil {
		return nil, errors.WithMessagef(err, "%s(%v)", kind.OpName(), inputShape)
	}

	name := kind.OpName()
	return &ProgramLoader{
		Name:       name,
		CacheKey:   name + "_" + resolved.CacheKey() + "_" + inputShape.Key(),
		kind:       kind,
		inputShape: inputShape,
		attrs:      resolved,
		axes:       axes,
	}, nil
}

// Get generates the Program.
func (l *ProgramLoader) Get() (*Program, error) {
	kind := l.kind
	if l.attrs.NoopWithEmptyAxes && len(l.attrs.Axes) == 0 {
		kind = NoOp
	}

	rank := l.inputShape.Rank()
	reduced := reducedAxes(l.axes, rank, l.attrs.NoopWithEmptyAxes)
	if kind == NoOp {
		// A copy never reduces, whatever axes were requested.
		reduced = make([]bool, rank)
	}
	outputShape := make(tensor.Shape, 0, rank)
	for axis, dim := range l.inputShape {
		switch {
		case !reduced[axis]:
			outputShape = append(outputShape, dim)
		case l.attrs.KeepDims:
			outputShape = append(outputShape, 1)
		}
	}

	input := newVariable("input", l.inputShape)
	tmpl, err := TemplateFor(kind, input, reduced)
	if err != nil {
		return nil, err
	}
	p := &Program{
		Name:     l.Name,
		CacheKey: l.CacheKey,
		Kind:     kind,
		Output:   Output{Shape: outputShape, DType: tensor.Float32},
		input:    input,
		output:   newVariable("output", outputShape),
		reduced:  reduced,
		keepDims: l.attrs.KeepDims,
		tmpl:     tmpl,
	}

	var source bytes.Buffer
	if err := writeShader(&source, p); err != nil {
		return nil, errors.Wrapf(err, "writing %s kernel", l.Name)
	}
	p.Source = source.String()

	klog.V(1).Infof("reduce: generated %s (%s) for input %v -> output %v", p.Name, p.Kind, l.inputShape, outputShape)
	klog.V(2).Infof("reduce: %s source:\n%s", p.CacheKey, p.Source)
	return p, nil
}

// Generate validates, resolves and generates in one step.
func Generate(kind Kind, inputs []Tensor, attrs *Attributes) (*Program, error) {
	loader, err := Prepare(kind, inputs, attrs)
	if err != nil {
		return nil, err
	}
	return loader.Get()
}
