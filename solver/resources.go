package solver

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config names the companion files and the solver defaults. Zero
// fields take the defaults below; flags and embedding code may
// override after load.
type Config struct {
	GuessWords   string `yaml:"guess_words"`
	AnswerWords  string `yaml:"answer_words"`
	MatrixPath   string `yaml:"matrix"`
	FreqPath     string `yaml:"frequencies"`
	StrategyPath string `yaml:"strategy"`
	Opener       string `yaml:"opener"`
	Search       string `yaml:"search"`
}

// DefaultConfig returns the companion-file defaults.
func DefaultConfig() Config {
	return Config{
		GuessWords:   "allowed_words.txt",
		AnswerWords:  "answers.txt",
		MatrixPath:   "pattern_matrix.bin",
		FreqPath:     "word_frequencies.json",
		StrategyPath: "strategy.bin",
		Opener:       "salet",
		Search:       "bfs",
	}
}

// LoadConfig reads a YAML config file and fills unset fields with the
// defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	def := DefaultConfig()
	if cfg.GuessWords == "" {
		cfg.GuessWords = def.GuessWords
	}
	if cfg.AnswerWords == "" {
		cfg.AnswerWords = def.AnswerWords
	}
	if cfg.MatrixPath == "" {
		cfg.MatrixPath = def.MatrixPath
	}
	if cfg.FreqPath == "" {
		cfg.FreqPath = def.FreqPath
	}
	if cfg.StrategyPath == "" {
		cfg.StrategyPath = def.StrategyPath
	}
	if cfg.Opener == "" {
		cfg.Opener = def.Opener
	}
	if cfg.Search == "" {
		cfg.Search = def.Search
	}
	return cfg, nil
}

// Resources bundles the immutable process-wide state of the solver:
// the pattern matrix (which carries both corpora) and the cost model.
// Resources are initialized once and read-only thereafter, so they may
// be shared freely across goroutines.
type Resources struct {
	matrix *Matrix
	costs  *CostModel
	log    logrus.FieldLogger
}

// NewResources binds an already-built matrix and cost model. Used by
// tests and by LoadResources; most callers want LoadResources.
func NewResources(m *Matrix, costs *CostModel, log logrus.FieldLogger) *Resources {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Resources{matrix: m, costs: costs, log: log}
}

// LoadResources loads the matrix blob and the frequency table named by
// the config. A missing or unverifiable matrix is fatal; the matrix is
// never recomputed here. A missing frequency file only costs the
// frequency-aware policies their discrimination, so it degrades to the
// empty table with a warning.
func LoadResources(cfg Config, log logrus.FieldLogger) (*Resources, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	m, err := ReadMatrix(cfg.MatrixPath)
	if err != nil {
		return nil, errors.Wrap(err, "load pattern matrix")
	}
	freqs, err := LoadFrequencies(cfg.FreqPath)
	if err != nil {
		log.WithError(err).Warn("no frequency table; all words cost the same")
		freqs = nil
	}
	log.WithFields(logrus.Fields{
		"guesses": m.Guesses().Size(),
		"answers": m.Answers().Size(),
		"words":   len(freqs),
	}).Info("resources loaded")
	return NewResources(m, NewCostModel(freqs, m.Guesses()), log), nil
}

// Matrix returns the pattern oracle.
func (r *Resources) Matrix() *Matrix {
	return r.matrix
}

// Costs returns the cost model.
func (r *Resources) Costs() *CostModel {
	return r.costs
}
