package export

import (
	"encoding/json"
	"fmt"
	"os"

	"reelfinder/internal/candidate"
)

// WriteJSON writes the ranked candidates with every field intact, including
// the full description and all verdict blocks.
func WriteJSON(path string, candidates []candidate.Candidate) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(candidates); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return file.Close()
}
