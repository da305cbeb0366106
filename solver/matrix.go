package solver

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/gmofishsauce/gtwbot/lib"
)

// A Matrix is the precomputed pattern oracle: a dense G x A byte table
// where cell (g, a) holds the code of the pattern that guess word g
// scores against answer word a. Rows of the matrix are the hot path of
// both candidate filtering and move selection, so the cells live in a
// single contiguous buffer, row-major.
type Matrix struct {
	guesses *gtw.Corpus
	answers *gtw.Corpus
	cells   []byte
}

// spotCheckStride bounds the number of cells recomputed when a matrix
// file is loaded.
const spotCheckStride = 997

// BuildMatrix computes the full pattern matrix for a guess corpus
// against an answer corpus. Every answer word must be a legal guess.
func BuildMatrix(guesses, answers *gtw.Corpus) (*Matrix, error) {
	for _, w := range answers.Words() {
		if _, ok := guesses.IndexOf(w); !ok {
			return nil, errors.Errorf("answer word %q is not in the guess corpus", w)
		}
	}
	g, a := guesses.Size(), answers.Size()
	m := &Matrix{
		guesses: guesses,
		answers: answers,
		cells:   make([]byte, g*a),
	}
	for gi, guess := range guesses.Words() {
		row := m.cells[gi*a : (gi+1)*a]
		for ai, answer := range answers.Words() {
			row[ai] = byte(gtw.Score(guess, answer).Code())
		}
	}
	return m, nil
}

// Guesses returns the guess corpus the matrix was built from.
func (m *Matrix) Guesses() *gtw.Corpus {
	return m.guesses
}

// Answers returns the answer corpus the matrix was built from.
func (m *Matrix) Answers() *gtw.Corpus {
	return m.answers
}

// At returns the pattern code for guess index g against answer index a.
func (m *Matrix) At(g, a int) gtw.Code {
	return gtw.Code(m.cells[g*m.answers.Size()+a])
}

// Row returns the pattern codes for guess index g against every
// answer, indexed by answer index. The caller must not modify the
// returned slice.
func (m *Matrix) Row(g int) []byte {
	a := m.answers.Size()
	return m.cells[g*a : (g+1)*a]
}

// matrixBlob is the on-disk form: both word lists in load order plus
// the raw cell buffer. msgpack encodes the same inputs to the same
// bytes, so rebuilding from identical corpora reproduces the file
// exactly.
type matrixBlob struct {
	GuessWords  []string `msgpack:"guess_words"`
	AnswerWords []string `msgpack:"answer_words"`
	Cells       []byte   `msgpack:"cells"`
}

// WriteFile persists the matrix as a single blob, atomically via a
// temp file and rename.
func (m *Matrix) WriteFile(path string) error {
	raw, err := msgpack.Marshal(matrixBlob{
		GuessWords:  m.guesses.Words(),
		AnswerWords: m.answers.Words(),
		Cells:       m.cells,
	})
	if err != nil {
		return errors.Wrap(err, "encode matrix")
	}
	return atomicWrite(path, raw)
}

// ReadMatrix loads a matrix blob and verifies it: dimensions must
// agree with the embedded word lists, every answer word must be a
// legal guess, and a deterministic sample of cells is recomputed
// against the live scorer. Any disagreement is a load failure; the
// matrix is never recomputed on demand.
func ReadMatrix(path string) (*Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read matrix")
	}
	var blob matrixBlob
	if err := msgpack.Unmarshal(raw, &blob); err != nil {
		return nil, errors.Wrap(err, "decode matrix")
	}
	m := &Matrix{
		guesses: gtw.NewCorpus(blob.GuessWords),
		answers: gtw.NewCorpus(blob.AnswerWords),
		cells:   blob.Cells,
	}
	if m.guesses.Size() != len(blob.GuessWords) || m.answers.Size() != len(blob.AnswerWords) {
		return nil, errors.Errorf("matrix %s: word lists contain duplicates", path)
	}
	if want := m.guesses.Size() * m.answers.Size(); len(m.cells) != want {
		return nil, errors.Errorf("matrix %s: have %d cells, want %d", path, len(m.cells), want)
	}
	for _, w := range m.answers.Words() {
		if _, ok := m.guesses.IndexOf(w); !ok {
			return nil, errors.Errorf("matrix %s: answer word %q is not in the guess corpus", path, w)
		}
	}
	for i := 0; i < len(m.cells); i += spotCheckStride {
		g, a := i/m.answers.Size(), i%m.answers.Size()
		want := gtw.Score(m.guesses.WordAt(g), m.answers.WordAt(a)).Code()
		if gtw.Code(m.cells[i]) != want {
			return nil, errors.Errorf("matrix %s: cell (%d,%d) is %d, scorer says %d", path, g, a, m.cells[i], want)
		}
	}
	return m, nil
}

// atomicWrite writes data to path via a temp file in the same
// directory and a rename, so readers never see a partial file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "rename")
}
