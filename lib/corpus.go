package gtw

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// WordLen is the length of every word in the game.
const WordLen = 5

// A Corpus is an ordered list of distinct 5-letter lowercase words with
// O(1) resolution from word to index. Indices are dense, zero-based,
// and stable for the lifetime of the Corpus.
type Corpus struct {
	words []string
	index map[string]int
}

// LoadCorpus loads a corpus file having one word per newline-separated
// line. Empty lines are ignored and duplicate words are dropped; any
// other malformed line is an error.
func LoadCorpus(filepath string) (*Corpus, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "open corpus")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	wordlist := make([]string, 0, 100)
	line := 0
	for scanner.Scan() {
		line++
		w := scanner.Text()
		if w == "" {
			continue
		}
		if !validWord(w) {
			return nil, errors.Errorf("corpus %s: line %d: %q is not a 5-letter lowercase word", filepath, line, w)
		}
		wordlist = append(wordlist, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read corpus")
	}
	return NewCorpus(wordlist), nil
}

// NewCorpus builds a corpus from an already-validated word list,
// dropping duplicates while preserving first-seen order.
func NewCorpus(words []string) *Corpus {
	c := &Corpus{
		words: make([]string, 0, len(words)),
		index: make(map[string]int, len(words)),
	}
	for _, w := range words {
		if _, dup := c.index[w]; dup {
			continue
		}
		c.index[w] = len(c.words)
		c.words = append(c.words, w)
	}
	return c
}

func validWord(w string) bool {
	if len(w) != WordLen {
		return false
	}
	for i := 0; i < WordLen; i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// IndexOf resolves a word to its index.
func (c *Corpus) IndexOf(word string) (int, bool) {
	i, ok := c.index[word]
	return i, ok
}

// WordAt returns the word at the given index.
func (c *Corpus) WordAt(index int) string {
	return c.words[index]
}

// Size returns the number of words in the corpus.
func (c *Corpus) Size() int {
	return len(c.words)
}

// Words returns the corpus in index order. The caller must not modify
// the returned slice.
func (c *Corpus) Words() []string {
	return c.words
}
