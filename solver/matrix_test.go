package solver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmofishsauce/gtwbot/lib"
)

func TestBuildMatrixAgreesWithScorer(t *testing.T) {
	r := newTestResources(t)
	m := r.Matrix()
	for g, guess := range m.Guesses().Words() {
		for a, answer := range m.Answers().Words() {
			want := gtw.Score(guess, answer).Code()
			require.Equal(t, want, m.At(g, a), "cell (%q, %q)", guess, answer)
		}
	}
}

func TestMatrixDiagonalIsAllCorrect(t *testing.T) {
	r := newTestResources(t)
	m := r.Matrix()
	for a, answer := range m.Answers().Words() {
		g, ok := m.Guesses().IndexOf(answer)
		require.True(t, ok)
		assert.Equal(t, gtw.AllCorrect, m.At(g, a))
	}
}

func TestBuildMatrixRejectsUnguessableAnswer(t *testing.T) {
	guesses := gtw.NewCorpus([]string{"three", "blind"})
	answers := gtw.NewCorpus([]string{"three", "mices"})
	_, err := BuildMatrix(guesses, answers)
	require.Error(t, err)
}

func TestMatrixRoundTrip(t *testing.T) {
	r := newTestResources(t)
	path := filepath.Join(t.TempDir(), "matrix.bin")
	require.NoError(t, r.Matrix().WriteFile(path))

	loaded, err := ReadMatrix(path)
	require.NoError(t, err)
	assert.Equal(t, r.Matrix().Guesses().Words(), loaded.Guesses().Words())
	assert.Equal(t, r.Matrix().Answers().Words(), loaded.Answers().Words())
	assert.Equal(t, r.Matrix().cells, loaded.cells)
}

func TestMatrixFileIsDeterministic(t *testing.T) {
	r := newTestResources(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.bin")
	second := filepath.Join(dir, "second.bin")
	require.NoError(t, r.Matrix().WriteFile(first))
	require.NoError(t, r.Matrix().WriteFile(second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "re-running the builder must reproduce the file")
}

func TestReadMatrixRejectsBadCells(t *testing.T) {
	r := newTestResources(t)
	good := r.Matrix()
	bad := &Matrix{
		guesses: good.guesses,
		answers: good.answers,
		cells:   append([]byte(nil), good.cells...),
	}
	// Corrupt a cell the load-time spot check samples.
	bad.cells[0] ^= 0x7f
	path := filepath.Join(t.TempDir(), "matrix.bin")
	require.NoError(t, bad.WriteFile(path))
	_, err := ReadMatrix(path)
	require.Error(t, err)
}

func TestReadMatrixRejectsTruncatedCells(t *testing.T) {
	r := newTestResources(t)
	good := r.Matrix()
	bad := &Matrix{
		guesses: good.guesses,
		answers: good.answers,
		cells:   good.cells[:len(good.cells)-1],
	}
	path := filepath.Join(t.TempDir(), "matrix.bin")
	require.NoError(t, bad.WriteFile(path))
	_, err := ReadMatrix(path)
	require.Error(t, err)
}

func TestReadMatrixMissingFile(t *testing.T) {
	_, err := ReadMatrix(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
}
