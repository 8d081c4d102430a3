package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"reelfinder/internal/candidate"
)

var csvColumns = []string{
	"title",
	"url",
	"duration_minutes",
	"duration_formatted",
	"estimated_production_year",
	"estimated_era",
	"genre",
	"production_company",
	"is_formal_studio",
	"ai_quality_score",
	"tmdb_verified",
	"tmdb_id",
	"tmdb_title",
	"tmdb_release_year",
	"tmdb_runtime_minutes",
	"tmdb_studios",
	"tmdb_confidence",
	"views",
	"likes",
	"comments",
	"created_date",
	"user",
	"user_url",
	"tags",
	"categories",
	"final_score",
	"description",
}

// descriptionLimit caps the description column so spreadsheet rows stay
// readable; the JSON export keeps the full text.
const descriptionLimit = 500

// WriteCSV writes the ranked candidates as a flat table, one row per
// candidate, scalar fields plus comma-joined list fields.
func WriteCSV(path string, candidates []candidate.Candidate) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range candidates {
		if err := writer.Write(csvRow(&candidates[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return file.Close()
}

func csvRow(cand *candidate.Candidate) []string {
	era := cand.Era
	if era == nil {
		era = &candidate.EraVerdict{}
	}
	verification := cand.Verification
	if verification == nil {
		verification = &candidate.VerificationRecord{}
	}

	finalScore := 0.0
	if cand.FinalScore != nil {
		finalScore = *cand.FinalScore
	}

	return []string{
		cand.Title,
		cand.URL,
		strconv.Itoa(int(cand.DurationMinutes() + 0.5)),
		cand.FormatDuration(),
		optionalInt(era.ProductionYear),
		era.Era,
		era.Genre,
		era.Studio,
		strconv.FormatBool(era.IsFormalStudio),
		strconv.Itoa(era.QualityScore),
		strconv.FormatBool(verification.Verified),
		optionalInt64(verification.TMDBID),
		verification.TMDBTitle,
		optionalInt(verification.ReleaseYear),
		optionalInt(verification.RuntimeMinutes),
		strings.Join(verification.Studios, ", "),
		strconv.FormatFloat(verification.Confidence, 'f', -1, 64),
		strconv.FormatInt(cand.ViewCount(), 10),
		strconv.FormatInt(counter(cand.Likes), 10),
		strconv.FormatInt(counter(cand.Comments), 10),
		cand.CreatedTime,
		cand.Author,
		cand.AuthorURL,
		strings.Join(cand.Tags, ", "),
		strings.Join(cand.Categories, ", "),
		strconv.FormatFloat(finalScore, 'f', 1, 64),
		truncate(cand.Description, descriptionLimit),
	}
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalInt64(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func counter(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// truncate caps s at max runes, never splitting a multibyte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
