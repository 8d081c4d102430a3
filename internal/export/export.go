package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"reelfinder/internal/candidate"
)

// Paths names the files one export run produced.
type Paths struct {
	CSV  string
	JSON string
}

// Write saves the ranked list under outputDir as a timestamped CSV/JSON
// pair, creating the directory if needed.
func Write(outputDir string, candidates []candidate.Candidate, now time.Time) (Paths, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}
	stamp := now.Format("20060102_150405")
	paths := Paths{
		CSV:  filepath.Join(outputDir, fmt.Sprintf("verified_classic_movies_%s.csv", stamp)),
		JSON: filepath.Join(outputDir, fmt.Sprintf("verified_classic_movies_%s.json", stamp)),
	}
	if err := WriteCSV(paths.CSV, candidates); err != nil {
		return Paths{}, err
	}
	if err := WriteJSON(paths.JSON, candidates); err != nil {
		return Paths{}, err
	}
	return paths, nil
}
