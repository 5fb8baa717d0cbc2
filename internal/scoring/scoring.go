// Package scoring measures how many of the tracked keywords a job description asks
// for are present in a résumé.
package scoring

import (
	"math"

	"github.com/spigell/cv-extractor/internal/skills"
)

// DefaultKeywords are tracked when no keyword list is configured.
var DefaultKeywords = []string{
	"react", "nodejs", "typescript", "python", "aws", "docker", "kubernetes",
	"sql", "postgresql", "redis", "nextjs", "nestjs", "fastapi",
}

// Breakdown splits the score into its parts. Bonus is reserved and always zero.
type Breakdown struct {
	KeywordMatch float64 `json:"keyword_match" yaml:"keyword_match"`
	Bonus        float64 `json:"bonus" yaml:"bonus"`
}

// Result is the keyword overlap between a résumé and a job description.
type Result struct {
	Score         float64   `json:"score" yaml:"score"`
	MatchedSkills []string  `json:"matched_skills" yaml:"matched_skills"`
	MissingSkills []string  `json:"missing_skills" yaml:"missing_skills"`
	Breakdown     Breakdown `json:"breakdown" yaml:"breakdown"`
}

// Score checks every keyword the job description mentions against the résumé.
// Keywords absent from the job description are ignored. Score is a percentage
// rounded to two decimals and is 0 when the job description mentions none of them.
// An empty keyword list falls back to DefaultKeywords.
func Score(resumeText, jobText string, keywords []string) Result {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}

	res := Result{
		MatchedSkills: make([]string, 0),
		MissingSkills: make([]string, 0),
	}

	for _, kw := range keywords {
		if !skills.ContainsWord(jobText, kw) {
			continue
		}
		if skills.ContainsWord(resumeText, kw) {
			res.MatchedSkills = append(res.MatchedSkills, kw)
		} else {
			res.MissingSkills = append(res.MissingSkills, kw)
		}
	}

	total := len(res.MatchedSkills) + len(res.MissingSkills)
	if total == 0 {
		return res
	}

	raw := float64(len(res.MatchedSkills)) / float64(total) * 100
	res.Score = math.Round(raw*100) / 100
	res.Breakdown.KeywordMatch = raw

	return res
}
