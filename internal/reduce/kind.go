package reduce

// Kind selects the accumulation semantics of a reduction.
type Kind int

//go:generate go tool enumer -type=Kind kind.go

const (
	Sum Kind = iota
	Mean
	Prod
	Max
	Min
	L1
	L2
	SumSquare
	LogSum
	LogSumExp

	// NoOp copies the input unchanged. It is selected automatically when the axes list is
	// empty and noopWithEmptyAxes is set.
	NoOp
)

// OpName returns the operator name of the kind, e.g. "ReduceSum".
func (k Kind) OpName() string {
	return "Reduce" + k.String()
}

// OpKinds returns the kinds that back a named reduce operator, in declaration order.
// NoOp is excluded.
func OpKinds() []Kind {
	kinds := make([]Kind, 0, len(_KindValues)-1)
	for _, k := range _KindValues {
		if k != NoOp {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
