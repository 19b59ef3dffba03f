package manager

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultHighScoreFile is where the high score lives when no path is given
const DefaultHighScoreFile = "highscore.txt"

// ErrMalformedHighScore is returned by Load when the file does not hold a
// decimal integer.
var ErrMalformedHighScore = errors.New("malformed high score file")

// HighScoreStore persists a single integer high score as decimal text
type HighScoreStore struct {
	path string
}

func NewHighScoreStore(path string) *HighScoreStore {
	if path == "" {
		path = DefaultHighScoreFile
	}
	return &HighScoreStore{path: path}
}

func (sm *HighScoreStore) Path() string {
	return sm.path
}

// Load returns the stored high score. A missing file counts as 0. Unparseable
// content yields 0 and an error wrapping ErrMalformedHighScore.
func (sm *HighScoreStore) Load() (int, error) {
	data, err := os.ReadFile(sm.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "reading %s", sm.path)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedHighScore, "%s: %v", sm.path, err)
	}
	return score, nil
}

// Save overwrites the file with score
func (sm *HighScoreStore) Save(score int) error {
	if dir := filepath.Dir(sm.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	if err := os.WriteFile(sm.path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", sm.path)
	}
	return nil
}
