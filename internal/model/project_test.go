package model

import "testing"

func TestLatestVersion(t *testing.T) {
	tests := []struct {
		name       string
		versions   []ProjectVersion
		wantFileID string
		wantOK     bool
	}{
		{
			name:   "empty list",
			wantOK: false,
		},
		{
			name: "single version",
			versions: []ProjectVersion{
				{FileID: "a", ReleaseDate: "2024-01-01"},
			},
			wantFileID: "a",
			wantOK:     true,
		},
		{
			name: "newest wins regardless of position",
			versions: []ProjectVersion{
				{FileID: "a", ReleaseDate: "2024-01-01"},
				{FileID: "b", ReleaseDate: "2025-03-11"},
				{FileID: "c", ReleaseDate: "2025-03-10"},
			},
			wantFileID: "b",
			wantOK:     true,
		},
		{
			name: "tie keeps original order",
			versions: []ProjectVersion{
				{FileID: "first", ReleaseDate: "2025-03-11"},
				{FileID: "second", ReleaseDate: "2025-03-11"},
			},
			wantFileID: "first",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LatestVersion(tt.versions)
			if ok != tt.wantOK {
				t.Fatalf("LatestVersion ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && got.FileID != tt.wantFileID {
				t.Errorf("LatestVersion file id = %s, expected %s", got.FileID, tt.wantFileID)
			}
		})
	}
}

func TestGetDisplayTitle(t *testing.T) {
	detail := &ProjectDetail{Name: "Mario Party X", Author: "tabitha"}
	if got := detail.GetDisplayTitle(); got != "Mario Party X: by tabitha" {
		t.Errorf("Unexpected display title: %s", got)
	}

	noAuthor := &ProjectDetail{Name: "Mario Party X"}
	if got := noAuthor.GetDisplayTitle(); got != "Mario Party X" {
		t.Errorf("Unexpected display title without author: %s", got)
	}
}

func TestGetDifficultyStars(t *testing.T) {
	tests := []struct {
		difficulty int
		expected   string
	}{
		{0, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{7, "★★★★★"},  // clamped
		{-1, "☆☆☆☆☆"}, // clamped
	}

	for _, tt := range tests {
		detail := &ProjectDetail{Difficulty: tt.difficulty}
		if got := detail.GetDifficultyStars(); got != tt.expected {
			t.Errorf("GetDifficultyStars(%d) = %s, expected %s", tt.difficulty, got, tt.expected)
		}
	}
}

func TestGetRecommendedTurnsLabel(t *testing.T) {
	withTurns := &ProjectDetail{RecommendedTurns: 20}
	if got := withTurns.GetRecommendedTurnsLabel(); got != "20" {
		t.Errorf("Expected 20, got %s", got)
	}

	without := &ProjectDetail{}
	if got := without.GetRecommendedTurnsLabel(); got != "N/A" {
		t.Errorf("Expected N/A, got %s", got)
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		limit    int
		expected string
	}{
		{"short text untouched", "a nice board", 12, "a nice board"},
		{"long text cut with ellipsis", "one two three four", 3, "one two three..."},
		{"exact limit untouched", "one two three", 3, "one two three"},
		{"whitespace collapsed", "one  two\n three", 12, "one two three"},
		{"empty text", "", 12, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWords(tt.text, tt.limit); got != tt.expected {
				t.Errorf("TruncateWords(%q, %d) = %q, expected %q", tt.text, tt.limit, got, tt.expected)
			}
		})
	}
}
