package core

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() (Options, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Options{Format: "text", Quote: true, Thread: 2, Out: &out, Err: &errOut}, &out, &errOut
}

func TestDecomposeTask(t *testing.T) {
	opts, out, _ := testOptions()
	opts.Output = filepath.Join(t.TempDir(), DefaultDecomposeFile)

	r, err := DecomposeTask(opts, "  abc \n")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cadena original: abc"}, r.Header)
	assert.Equal(t, r.Text()+"\n", out.String())

	saved, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.Equal(t, r.Text(), string(saved))
}

func TestDecomposeTaskBlank(t *testing.T) {
	opts, out, errOut := testOptions()

	_, err := DecomposeTask(opts, "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "please enter a string")
}

func TestClosureTask(t *testing.T) {
	opts, out, errOut := testOptions()
	opts.Quote = false
	opts.WarnSize = 5

	r, err := ClosureTask(opts, "ab", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"ε", "a", "b", "aa", "ab", "ba", "bb"}, r.Sections[0].Items)
	assert.Contains(t, out.String(), "CERRADURA POSITIVA (Σ+):\na, b, aa, ab, ba, bb")
	assert.Contains(t, errOut.String(), "generating 6 strings")
}

func TestClosureTaskErrors(t *testing.T) {
	opts, _, _ := testOptions()

	_, err := ClosureTask(opts, " ", 2)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ClosureTask(opts, "ab", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTaskSaveFailureKeepsResult(t *testing.T) {
	opts, out, errOut := testOptions()
	opts.Output = filepath.Join(t.TempDir(), "nope", "out.txt")

	r, err := ClosureTask(opts, "a", 1)
	assert.ErrorIs(t, err, ErrIOFailure)
	require.NotNil(t, r)
	assert.NotEmpty(t, out.String())
	assert.Contains(t, errOut.String(), "error saving results")
}

func TestTaskJSONOutput(t *testing.T) {
	opts, out, _ := testOptions()
	opts.Format = "json"

	r, err := DecomposeTask(opts, "ab")
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, r.Digest, decoded.Digest)
}

func TestBatchTask(t *testing.T) {
	opts, _, _ := testOptions()
	opts.Noconsole = true
	opts.Output = filepath.Join(t.TempDir(), "batch.txt")

	reports, err := BatchTask(context.Background(), opts, []string{"ab", " ", "c"})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	saved, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.Equal(t, reports[0].Text()+"\n\n\n"+reports[1].Text(), string(saved))

	_, err = BatchTask(context.Background(), opts, []string{"", "  "})
	assert.ErrorIs(t, err, ErrEmptyInput)
}
