package resume

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/cv-extractor/internal/confidence"
	"github.com/spigell/cv-extractor/internal/fields"
	"github.com/spigell/cv-extractor/internal/sections"
	"github.com/spigell/cv-extractor/internal/skills"
)

// extraction is the working data of a single parse. It is allocated per call.
type extraction struct {
	text string

	email *string
	phone *string
	links []string
	name  fields.Name

	experienceText string
	educationText  string
	projectsText   string
	summaryText    string
	hasSummary     bool

	experience []sections.Entry
	education  []sections.Entry
	projects   []sections.Entry

	skills []string

	confidence confidence.Vector
}

// stage is one step of the extraction pipeline. Stages never fail: a target that
// is not found is recorded as an absent value.
type stage interface {
	State() State
	Apply(x *extraction) []zap.Field
}

type fieldStage struct{}

func (fieldStage) State() State { return StateFieldExtraction }

func (fieldStage) Apply(x *extraction) []zap.Field {
	x.email = fields.Email(x.text)
	x.phone = fields.Phone(x.text)
	x.links = fields.Links(x.text)
	x.name = fields.ExtractName(x.text, x.email)

	return []zap.Field{
		zap.Bool("email", x.email != nil),
		zap.Bool("phone", x.phone != nil),
		zap.Int("links", len(x.links)),
		zap.Bool("first_name", x.name.First != nil),
		zap.Bool("last_name", x.name.Last != nil),
	}
}

type sectionStage struct{}

func (sectionStage) State() State { return StateSectionExtraction }

func (sectionStage) Apply(x *extraction) []zap.Field {
	var found []string
	extract := func(name string, keywords []string) string {
		text, ok := sections.Extract(x.text, keywords)
		if ok {
			found = append(found, name)
		}
		return text
	}

	x.experienceText = extract("experience", sections.ExperienceKeywords)
	x.educationText = extract("education", sections.EducationKeywords)
	x.projectsText = extract("projects", sections.ProjectsKeywords)
	x.summaryText = extract("summary", sections.SummaryKeywords)
	x.hasSummary = x.summaryText != ""

	return []zap.Field{zap.String("sections", strings.Join(found, ","))}
}

type entryStage struct{}

func (entryStage) State() State { return StateEntrySegmentation }

func (entryStage) Apply(x *extraction) []zap.Field {
	x.experience = sections.Experience.Segment(x.experienceText)
	x.education = sections.Education.Segment(x.educationText)
	x.projects = sections.Projects.Segment(x.projectsText)

	return []zap.Field{
		zap.Int("experience", len(x.experience)),
		zap.Int("education", len(x.education)),
		zap.Int("projects", len(x.projects)),
	}
}

type skillStage struct {
	matcher *skills.Matcher
}

func (skillStage) State() State { return StateSkillMatching }

func (s skillStage) Apply(x *extraction) []zap.Field {
	x.skills = s.matcher.Match(x.text)
	return []zap.Field{zap.Int("skills", len(x.skills))}
}

type confidenceStage struct{}

func (confidenceStage) State() State { return StateConfidenceScoring }

func (confidenceStage) Apply(x *extraction) []zap.Field {
	x.confidence = confidence.Compute(confidence.Input{
		HasEmail:     x.email != nil,
		HasPhone:     x.phone != nil,
		HasFirstName: x.name.First != nil,
		HasLastName:  x.name.Last != nil,
		Links:        len(x.links),
		Skills:       len(x.skills),
		Experience:   len(x.experience),
		Education:    len(x.education),
		Projects:     len(x.projects),
	})

	return []zap.Field{zap.Float64("overall", x.confidence.Overall)}
}
