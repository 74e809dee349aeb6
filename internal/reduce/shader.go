package reduce

import (
	"fmt"
	"io"
	"strings"
)

// IndentationStep is the indentation added per nesting level of generated WGSL.
const IndentationStep = "  "

// writeShader writes the complete WGSL module of p: bindings, index helpers and the entry
// point holding the loop nest.
func writeShader(writer io.Writer, p *Program) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}
	// line writes each line of a fragment at the given depth, skipping empty ones.
	line := func(depth int, fragment string) {
		indentation := strings.Repeat(IndentationStep, depth)
		for _, l := range strings.Split(fragment, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				w("%s%s\n", indentation, l)
			}
		}
	}
	impl := func(write func(io.Writer) error) {
		if err != nil {
			return
		}
		err = write(writer)
	}

	in, out, tmpl := p.input, p.output, p.tmpl

	// Bindings. Input and output share the element type.
	elem := p.Output.DType.WGSL()
	w("@group(0) @binding(0) var<storage, read> %s: array<%s>;\n", in.Name, elem)
	w("@group(0) @binding(1) var<storage, read_write> %s: array<%s>;\n\n", out.Name, elem)

	// Index helpers.
	impl(out.WriteOffsetToIndicesImpl)
	impl(in.WriteIndicesToOffsetImpl)

	// Entry point: one invocation per output element.
	w("@compute @workgroup_size(%d)\n", WorkgroupSize)
	w("fn main(@builtin(global_invocation_id) global_id: vec3<u32>,\n")
	w("        @builtin(num_workgroups) num_workgroups: vec3<u32>) {\n")
	line(1, fmt.Sprintf("let global_idx = global_id.y * (num_workgroups.x * %s) + global_id.x;",
		u32Literal(WorkgroupSize)))
	line(1, fmt.Sprintf("if (global_idx >= %s) {", u32Literal(p.OutputSize())))
	line(2, "return;")
	line(1, "}")
	line(1, fmt.Sprintf("var %s: %s;", inputIndicesVar, in.IndicesType()))
	line(1, fmt.Sprintf("let %s = %s;", outputIndicesVar, out.OffsetToIndices("global_idx")))

	// Non-reduced axes take their index from the output position. With keepDims the reduced
	// axes still occupy an output slot, so the output counter advances past them.
	outAxis := 0
	for axis, isReduced := range p.reduced {
		if isReduced {
			if p.keepDims {
				outAxis++
			}
			continue
		}
		line(1, in.IndicesSet(inputIndicesVar, axis, out.IndicesGet(outputIndicesVar, outAxis)))
		outAxis++
	}

	line(1, tmpl.Init)
	offset := in.IndicesToOffset(inputIndicesVar)
	if tmpl.SeedFromInput {
		line(1, fmt.Sprintf("var %s = %s;", inputIdxVar, offset))
	}
	line(1, tmpl.Prologue)

	// One loop per reduced axis, lowest axis outermost.
	depth := 1
	for axis, isReduced := range p.reduced {
		if !isReduced {
			continue
		}
		j := fmt.Sprintf("j%d", axis)
		line(depth, fmt.Sprintf("for (var %s: u32 = 0u; %s < %s; %s = %s + 1u) {",
			j, j, u32Literal(in.Shape()[axis]), j, j))
		depth++
		line(depth, in.IndicesSet(inputIndicesVar, axis, j))
	}
	if tmpl.SeedFromInput {
		line(depth, fmt.Sprintf("%s = %s;", inputIdxVar, offset))
	} else {
		line(depth, fmt.Sprintf("let %s = %s;", inputIdxVar, offset))
	}
	line(depth, tmpl.Accumulate)
	for depth > 1 {
		depth--
		line(depth, "}")
	}

	line(1, tmpl.Finalize)
	line(1, fmt.Sprintf("%s[global_idx] = %s;", out.Name, valueVar))
	w("}\n")
	return err
}
