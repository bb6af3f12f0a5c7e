package model

import (
	"strconv"
	"strings"
)

// Description display constants
const (
	// DescriptionWordLimit caps card descriptions at a readable length
	DescriptionWordLimit = 12

	// MaxDifficulty is the upper bound of the difficulty scale
	MaxDifficulty = 5
)

// ProjectSummary is one search result: just enough to show a placeholder card
type ProjectSummary struct {
	ID   string
	Name string
}

// ProjectDetail holds the full, enriched record for one project.
// It is assembled once by the enricher and replaced wholesale on
// refetch, never edited in place.
type ProjectDetail struct {
	ID               string
	Name             string
	Author           string
	CreationDate     string // long form, e.g. "March 11, 2025"
	Difficulty       int    // 0..5
	RecommendedTurns int    // 0 if the project does not declare one
	HasCustomEvents  bool
	HasCustomMusic   bool
	Description      string
	IconPath         string // local cached icon, "" when unavailable
}

// ProjectVersion is one released file of a project
type ProjectVersion struct {
	FileID      string
	FileName    string
	ReleaseDate string // ISO date, YYYY-MM-DD
}

// GetDisplayTitle returns the card title, including the author when known
func (pd *ProjectDetail) GetDisplayTitle() string {
	if pd.Author == "" {
		return pd.Name
	}
	return pd.Name + ": by " + pd.Author
}

// GetDifficultyStars renders difficulty as filled and empty stars out of five
func (pd *ProjectDetail) GetDifficultyStars() string {
	filled := pd.Difficulty
	if filled < 0 {
		filled = 0
	}
	if filled > MaxDifficulty {
		filled = MaxDifficulty
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", MaxDifficulty-filled)
}

// GetRecommendedTurnsLabel returns the turn count, or "N/A" when undeclared
func (pd *ProjectDetail) GetRecommendedTurnsLabel() string {
	if pd.RecommendedTurns <= 0 {
		return "N/A"
	}
	return strconv.Itoa(pd.RecommendedTurns)
}

// GetShortDescription truncates the description for card display
func (pd *ProjectDetail) GetShortDescription() string {
	return TruncateWords(pd.Description, DescriptionWordLimit)
}

// TruncateWords limits text to the given number of words, appending an
// ellipsis when anything was cut
func TruncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ") + "..."
}

// LatestVersion returns the version with the greatest release date under
// lexicographic ISO-date ordering. Ties keep the earliest entry in the
// original list order. The second return is false for an empty list.
func LatestVersion(versions []ProjectVersion) (ProjectVersion, bool) {
	if len(versions) == 0 {
		return ProjectVersion{}, false
	}
	latest := versions[0]
	for _, v := range versions[1:] {
		if v.ReleaseDate > latest.ReleaseDate {
			latest = v
		}
	}
	return latest, true
}
