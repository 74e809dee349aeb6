//go:build !wasm

package operators

import (
	"slices"

	"github.com/born-ml/reducegen/internal/reduce"
	"github.com/born-ml/reducegen/internal/tensor"
	"github.com/pkg/errors"
)

// OpHandler processes an ONNX node and returns output tensors.
type OpHandler func(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error)

// Executor runs a generated program over its input tensor.
// Implemented by the CPU and WebGPU backends.
type Executor interface {
	Name() string
	RunProgram(p *reduce.Program, x *tensor.RawTensor) (*tensor.RawTensor, error)
}

// Context provides the executor and the program cache shared by operators.
type Context struct {
	Backend Executor

	// Programs caches generated kernels across nodes. If nil, every call generates its
	// program.
	Programs *reduce.Cache
}

// ErrUnsupportedOperator is returned by Execute for operator types without a handler.
var ErrUnsupportedOperator = errors.New("unsupported operator")

// Registry maps ONNX operator types to handler functions.
type Registry struct {
	handlers map[string]OpHandler
}

// NewRegistry creates a new operator registry with all supported operators.
func NewRegistry() *Registry {
	r := &Registry{
		handlers: make(map[string]OpHandler),
	}
	r.registerReduceOps()
	return r
}

// Register adds a custom operator handler.
func (r *Registry) Register(opType string, handler OpHandler) {
	r.handlers[opType] = handler
}

// Get returns the handler for an operator type.
func (r *Registry) Get(opType string) (OpHandler, bool) {
	h, ok := r.handlers[opType]
	return h, ok
}

// Execute runs an operator with the given inputs.
func (r *Registry) Execute(ctx *Context, node *Node, inputs []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	handler, ok := r.handlers[node.OpType]
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedOperator, node.OpType)
	}
	return handler(ctx, node, inputs)
}

// SupportedOps returns all supported operator types, sorted.
func (r *Registry) SupportedOps() []string {
	ops := make([]string, 0, len(r.handlers))
	for op := range r.handlers {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}
