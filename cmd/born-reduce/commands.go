package main

import (
	"fmt"
	"strings"

	"github.com/born-ml/reducegen/internal/onnx/operators"
	"github.com/born-ml/reducegen/internal/reduce"
	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// kernelFlags are the flags shared by emit and run: they describe one reduce node and the
// shape of its input.
type kernelFlags struct {
	op                string
	shape             []int
	axes              []int64
	keepDims          bool
	noopWithEmptyAxes bool
	axesAsInput       bool
}

func (f *kernelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.op, "op", "ReduceSum", "Reduce operator, see \"born-reduce ops\"")
	cmd.Flags().IntSliceVar(&f.shape, "shape", nil, "Input shape, e.g. 2,3 (empty for a scalar)")
	cmd.Flags().Int64SliceVar(&f.axes, "axes", nil, "Axes to reduce; negative values count from the end")
	cmd.Flags().BoolVar(&f.keepDims, "keepdims", true, "Keep reduced axes with extent 1")
	cmd.Flags().BoolVar(&f.noopWithEmptyAxes, "noop-with-empty-axes", false, "Copy the input when no axes are given")
	cmd.Flags().BoolVar(&f.axesAsInput, "axes-input", false, "Pass axes as a second int64 input instead of an attribute")
}

// node builds the ONNX node and, with --axes-input, the axes tensor.
func (f *kernelFlags) node() (*operators.Node, *tensor.RawTensor, error) {
	node := &operators.Node{
		Name:   "cli",
		OpType: f.op,
		Attributes: []operators.Attribute{
			operators.IntAttr("keepdims", boolToInt(f.keepDims)),
			operators.IntAttr("noop_with_empty_axes", boolToInt(f.noopWithEmptyAxes)),
		},
	}
	if !f.axesAsInput {
		node.Attributes = append(node.Attributes, operators.IntsAttr("axes", f.axes...))
		return node, nil, nil
	}
	axes, err := tensor.FromSlice(f.axes, tensor.Shape{len(f.axes)}, tensor.CPU)
	if err != nil {
		return nil, nil, errors.Wrap(err, "axes")
	}
	return node, axes, nil
}

func (f *kernelFlags) kind() (reduce.Kind, error) {
	kind, err := reduce.KindString(strings.TrimPrefix(f.op, "Reduce"))
	if err != nil || kind == reduce.NoOp {
		return 0, errors.Errorf("unknown operator %q", f.op)
	}
	return kind, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func newEmitCmd() *cobra.Command {
	var (
		flags kernelFlags
		info  bool
	)
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Print the WGSL kernel of a reduce operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := flags.kind()
			if err != nil {
				return err
			}
			node, axes, err := flags.node()
			if err != nil {
				return err
			}
			x, err := tensor.NewRaw(flags.shape, tensor.Float32, tensor.CPU)
			if err != nil {
				return errors.Wrap(err, "input")
			}
			inputs := []reduce.Tensor{x}
			if axes != nil {
				inputs = append(inputs, axes)
			}

			p, err := reduce.Generate(kind, inputs, operators.ReduceAttributes(node))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if info {
				grid := p.DispatchGroup()
				fmt.Fprintf(out, "// %s\n// output: %v %s\n// dispatch: (%d, %d, %d) x %d\n",
					p.CacheKey, p.Output.Shape, p.Output.DType, grid.X, grid.Y, grid.Z, reduce.WorkgroupSize)
			}
			fmt.Fprint(out, p.Source)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&info, "info", false, "Prefix the source with cache key, output and dispatch size")
	return cmd
}

func newRunCmd() *cobra.Command {
	var (
		flags   kernelFlags
		data    []float32
		backend string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a reduce operator and print its output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := flags.kind(); err != nil {
				return err
			}
			node, axes, err := flags.node()
			if err != nil {
				return err
			}
			shape := tensor.Shape(flags.shape)
			if len(data) == 0 {
				data = make([]float32, shape.NumElements())
				for i := range data {
					data[i] = float32(i + 1)
				}
			}
			x, err := tensor.FromSlice(data, shape, tensor.CPU)
			if err != nil {
				return errors.Wrap(err, "input")
			}
			inputs := []*tensor.RawTensor{x}
			if axes != nil {
				inputs = append(inputs, axes)
			}

			executor, release, err := newExecutor(backend)
			if err != nil {
				return err
			}
			defer release()

			ctx := &operators.Context{Backend: executor, Programs: reduce.NewCache()}
			outputs, err := operators.NewRegistry().Execute(ctx, node, inputs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "shape: %v\nvalues: %v\n", outputs[0].Shape(), outputs[0].AsFloat32())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Float32SliceVar(&data, "data", nil, "Input values in row-major order (default 1, 2, ..., n)")
	cmd.Flags().StringVar(&backend, "backend", "cpu", "Executor: cpu or webgpu")
	return cmd
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported operators",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, op := range operators.NewRegistry().SupportedOps() {
				fmt.Fprintln(cmd.OutOrStdout(), op)
			}
		},
	}
}
