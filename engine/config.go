// config.go loads engine-wide tunables from a JSON file, falling back
// to defaults matching the design's own numbers when no file is given.

package engine

import (
	"encoding/json"
	"os"
	"time"
)

// Config holds the knobs findBestMove and its collaborators need beyond
// the position itself, the search depth included.
type Config struct {
	Depth         int    `json:"depth"`
	MaxTimeMillis int    `json:"max_time_millis"`
	TTPath        string `json:"tt_path"`
	BookPath      string `json:"book_path"`
	WorkerBatch   int    `json:"worker_batch"`
}

// DefaultConfig returns the design's defaults: depth 4, no deadline,
// no persistence, no book, batches sized to the host's CPU count.
func DefaultConfig() Config {
	return Config{
		Depth:         4,
		MaxTimeMillis: 0,
		WorkerBatch:   0, // 0 means "use runtime.NumCPU()" at call time
	}
}

// MaxTime returns the configured deadline as a Duration; zero means no
// deadline.
func (c Config) MaxTime() time.Duration {
	return time.Duration(c.MaxTimeMillis) * time.Millisecond
}

// LoadConfig reads a JSON file into a copy of DefaultConfig, so fields
// the file omits keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
