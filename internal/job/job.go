// Package job loads TOML manifests describing an augmentation run: which
// dataset to read, which columns carry text, and where the synonym table and
// lexicon live. A manifest makes runs reproducible without long flag lists.
package job

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/beakerlabs/reagent/internal/expand"
)

// Augmentation modes.
const (
	ModePre  = "pre"  // two free-text columns, cross-product expansion
	ModePost = "post" // single pre-formatted column, collapsed expansion
)

// ErrNoManifest is returned when the manifest file does not exist.
var ErrNoManifest = errors.New("job: no manifest found")

// Job describes one augmentation run.
type Job struct {
	Input    string `toml:"input"`
	Output   string `toml:"output"`
	Mode     string `toml:"mode"`
	Collapse bool   `toml:"collapse"`

	Separator    string `toml:"separator"`
	AnchorColumn string `toml:"anchor_column"`
	TargetColumn string `toml:"target_column"`
	TextColumn   string `toml:"text_column"`

	Table    string   `toml:"table"`
	Lexicon  string   `toml:"lexicon"`
	Wordlist string   `toml:"wordlist"`
	Exclude  []string `toml:"exclude"`
}

// Load reads and validates a job manifest at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoManifest
		}
		return nil, fmt.Errorf("job: reading %s: %w", path, err)
	}

	var j Job
	if err := toml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("job: parsing %s: %w", path, err)
	}

	j.ApplyDefaults()
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// ApplyDefaults fills zero-valued fields. Exposed so flag-assembled jobs can
// share the manifest defaults.
func (j *Job) ApplyDefaults() {
	if j.Mode == "" {
		j.Mode = ModePre
	}
	if j.Separator == "" {
		j.Separator = expand.DefaultSeparator
	}
	if j.AnchorColumn == "" {
		j.AnchorColumn = "anchor"
	}
	if j.TargetColumn == "" {
		j.TargetColumn = "target"
	}
	if j.TextColumn == "" {
		j.TextColumn = "text"
	}
}

// OutputPath returns the configured output path, defaulting to the input
// path with an .augmented.csv suffix.
func (j *Job) OutputPath() string {
	if j.Output != "" {
		return j.Output
	}
	return strings.TrimSuffix(j.Input, filepath.Ext(j.Input)) + ".augmented.csv"
}

// Validate rejects jobs that cannot drive a run.
func (j *Job) Validate() error {
	if j.Input == "" {
		return errors.New("job: input path is required")
	}
	if j.Table == "" {
		return errors.New("job: synonym table path is required")
	}
	if j.Mode != ModePre && j.Mode != ModePost {
		return fmt.Errorf("job: unknown mode %q (want %q or %q)", j.Mode, ModePre, ModePost)
	}
	return nil
}
