// Package reduce generates WGSL compute kernels that reduce a float32 tensor over an
// arbitrary subset of its axes.
//
// One loop-nest builder serves every reduction kind (Sum, Mean, Prod, Max, Min, L1, L2,
// SumSquare, LogSum, LogSumExp and the NoOp passthrough). Each kind contributes a Template
// of four WGSL fragments (init, prologue, accumulate, finalize) that the builder splices
// into a kernel computing one output element per dispatch position.
//
// Generation is pure: Generate (or Prepare followed by ProgramLoader.Get) takes the input
// tensors and Attributes and returns an immutable Program holding the kernel source, the
// output shape and the dispatch grid. Identical (operator, attributes, input shape) triples
// share a cache key, so executors can reuse compiled pipelines through a Cache.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
//	p, err := reduce.Generate(reduce.Sum, []reduce.Tensor{x}, reduce.NewAttributes([]int64{1}, false, false))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Output.Shape) // [2]
package reduce
