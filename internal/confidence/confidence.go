// Package confidence scores how certain each extracted field is. Scores are fixed
// heuristics, not probabilities.
package confidence

import "math"

const (
	emailScore      = 1.0
	phoneScore      = 0.8
	nameScore       = 0.7
	linksScore      = 0.9
	maxSkillsScore  = 0.9
	skillsPerPoint  = 10.0
	sectionScore    = 0.6
	projectsScore   = 0.5
	componentsCount = 9
)

// Input describes which fields the extraction produced.
type Input struct {
	HasEmail     bool
	HasPhone     bool
	HasFirstName bool
	HasLastName  bool
	Links        int
	Skills       int
	Experience   int
	Education    int
	Projects     int
}

// Vector is the per-field confidence together with the overall mean.
type Vector struct {
	Email      float64 `json:"email" yaml:"email"`
	Phone      float64 `json:"phone" yaml:"phone"`
	FirstName  float64 `json:"firstName" yaml:"firstName"`
	LastName   float64 `json:"lastName" yaml:"lastName"`
	Links      float64 `json:"links" yaml:"links"`
	Skills     float64 `json:"skills" yaml:"skills"`
	Experience float64 `json:"experience" yaml:"experience"`
	Education  float64 `json:"education" yaml:"education"`
	Projects   float64 `json:"projects" yaml:"projects"`
	Overall    float64 `json:"overall" yaml:"overall"`
}

// Compute builds a fresh vector for one parse.
func Compute(in Input) Vector {
	v := Vector{
		Email:      when(in.HasEmail, emailScore),
		Phone:      when(in.HasPhone, phoneScore),
		FirstName:  when(in.HasFirstName, nameScore),
		LastName:   when(in.HasLastName, nameScore),
		Links:      when(in.Links > 0, linksScore),
		Experience: when(in.Experience > 0, sectionScore),
		Education:  when(in.Education > 0, sectionScore),
		Projects:   when(in.Projects > 0, projectsScore),
	}
	if in.Skills > 0 {
		v.Skills = math.Min(maxSkillsScore, float64(in.Skills)/skillsPerPoint)
	}

	v.Overall = mean(v.Components())
	return v
}

// Components returns the nine field scores in a fixed order, without Overall.
func (v Vector) Components() []float64 {
	return []float64{
		v.Email, v.Phone, v.FirstName, v.LastName, v.Links,
		v.Skills, v.Experience, v.Education, v.Projects,
	}
}

func when(present bool, score float64) float64 {
	if present {
		return score
	}
	return 0
}

func mean(values []float64) float64 {
	if len(values) != componentsCount {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
