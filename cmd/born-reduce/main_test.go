package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "born-reduce "+version+"\n", out)
}

func TestOps(t *testing.T) {
	out, err := execute(t, "ops")
	require.NoError(t, err)
	assert.Contains(t, out, "ReduceLogSumExp\n")
	assert.Contains(t, out, "ReduceSum\n")
}

func TestEmit(t *testing.T) {
	out, err := execute(t, "emit", "--op", "ReduceMax", "--shape", "2,3", "--axes", "1", "--keepdims=false", "--info")
	require.NoError(t, err)
	assert.Contains(t, out, "// ReduceMax_1;false;false_2,3\n")
	assert.Contains(t, out, "// output: [2] float32\n")
	assert.Contains(t, out, "value = max(value, input[inputIdx]);")

	_, err = execute(t, "emit", "--op", "ReduceMedian", "--shape", "2")
	assert.Error(t, err)

	_, err = execute(t, "emit", "--shape", "2,3", "--axes", "4")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--op", "ReduceSum", "--shape", "2,3", "--axes", "1", "--keepdims=false")
	require.NoError(t, err)
	assert.Equal(t, "shape: [2]\nvalues: [6 15]\n", out)

	out, err = execute(t, "run", "--op", "ReduceL1", "--shape", "2,2", "--data", "-1,2,-3,4", "--axes", "0", "--axes-input")
	require.NoError(t, err)
	assert.Equal(t, "shape: [1 2]\nvalues: [4 6]\n", out)

	_, err = execute(t, "run", "--shape", "2", "--backend", "tpu")
	assert.Error(t, err)
}
