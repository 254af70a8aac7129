package extract

import (
	"math"
	"strings"
	"testing"

	"webfetch-api/core/domain"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore(t *testing.T) {
	long := strings.Repeat("a", 501)

	tests := []struct {
		name    string
		content domain.ExtractedContent
		want    float64
	}{
		{"empty", domain.ExtractedContent{}, 0},
		{"title only", domain.ExtractedContent{Meta: domain.Metadata{Title: "t"}}, 0.2},
		{"title and description", domain.ExtractedContent{Meta: domain.Metadata{Title: "t", Description: "d"}}, 0.3},
		{"structured data", domain.ExtractedContent{StructuredData: []string{"{}"}}, 0.3},
		{"content over 50", domain.ExtractedContent{MainContent: []string{strings.Repeat("a", 51)}}, 0.1},
		{"content over 200", domain.ExtractedContent{MainContent: []string{strings.Repeat("a", 201)}}, 0.2},
		{"content over 500", domain.ExtractedContent{MainContent: []string{long}}, 0.3},
		{"content exactly 50", domain.ExtractedContent{MainContent: []string{strings.Repeat("a", 50)}}, 0},
		{"joined blocks count separators", domain.ExtractedContent{MainContent: []string{strings.Repeat("a", 25), strings.Repeat("a", 25)}}, 0.1},
		{"profile username", domain.ExtractedContent{Profile: &domain.SiteProfile{Username: "octocat"}}, 0.1},
		{"profile without username", domain.ExtractedContent{Profile: &domain.SiteProfile{Site: "github"}}, 0},
		{"everything", domain.ExtractedContent{
			StructuredData: []string{"{}"},
			Meta:           domain.Metadata{Title: "t", Description: "d"},
			MainContent:    []string{long},
			Profile:        &domain.SiteProfile{Username: "u"},
		}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.content); !approx(got, tt.want) {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	contents := []domain.ExtractedContent{
		{},
		{StructuredData: []string{"{}", "{}", "{}"}, Meta: domain.Metadata{Title: "x", Description: "y"}},
		{MainContent: []string{strings.Repeat("word ", 1000)}, Profile: &domain.SiteProfile{Username: "u"}},
		{
			StructuredData: []string{"{}"},
			Meta:           domain.Metadata{Title: "x", Description: "y", Image: "i", Author: "a"},
			MainContent:    []string{strings.Repeat("z", 10000)},
			Profile:        &domain.SiteProfile{Username: "u"},
		},
	}

	for i, c := range contents {
		if s := Score(c); s < 0 || s > 1 {
			t.Errorf("case %d: Score = %v, out of [0,1]", i, s)
		}
	}
}
