package matcher

import "strings"

// NotFound marks a section that was not detected in a document. It is
// distinct from an empty section and gates comparison in the scorer.
const NotFound = "[Not Found]"

// contactInfoLength is the number of leading characters kept as Contact Info.
const contactInfoLength = 500

// SectionName is the closed set of resume sections.
type SectionName int

const (
	ContactInfo SectionName = iota
	Skills
	Experience
	Education
	Projects
	Certifications
	Others

	sectionCount
)

var sectionLabels = [sectionCount]string{
	ContactInfo:    "Contact Info",
	Skills:         "Skills",
	Experience:     "Experience",
	Education:      "Education",
	Projects:       "Projects",
	Certifications: "Certifications",
	Others:         "Others",
}

// Weights of the scored sections. Contact Info and Others stay at zero.
var sectionWeights = [sectionCount]float64{
	Skills:         0.30,
	Experience:     0.30,
	Education:      0.20,
	Projects:       0.10,
	Certifications: 0.10,
}

// Header synonyms per scored section, searched as one alternation.
var sectionHeaders = [sectionCount][]string{
	Skills:         {"skills", "technical skills", "key skills", "core competencies", "technologies", "areas of expertise"},
	Experience:     {"experience", "work experience", "employment", "professional background", "career summary"},
	Education:      {"education", "qualifications", "academic background", "academics", "educational background"},
	Projects:       {"projects", "academic projects", "notable projects", "major projects", "project highlights"},
	Certifications: {"certifications", "certificates", "licenses", "credentials"},
}

func (s SectionName) String() string {
	if s < 0 || s >= sectionCount {
		return "Unknown"
	}
	return sectionLabels[s]
}

// Weight returns the fixed aggregation weight of the section.
func (s SectionName) Weight() float64 {
	if s < 0 || s >= sectionCount {
		return 0
	}
	return sectionWeights[s]
}

// Headers returns the header synonyms used to locate the section.
func (s SectionName) Headers() []string {
	if s < 0 || s >= sectionCount {
		return nil
	}
	return append([]string(nil), sectionHeaders[s]...)
}

// AllSections returns every section name in declaration order.
func AllSections() []SectionName {
	names := make([]SectionName, 0, sectionCount)
	for s := ContactInfo; s < sectionCount; s++ {
		names = append(names, s)
	}
	return names
}

// WeightedSections returns the five scored sections in weight-table order.
func WeightedSections() []SectionName {
	return []SectionName{Skills, Experience, Education, Projects, Certifications}
}

// ParseSectionName maps a display label back to its SectionName.
func ParseSectionName(label string) (SectionName, bool) {
	for s := ContactInfo; s < sectionCount; s++ {
		if strings.EqualFold(sectionLabels[s], strings.TrimSpace(label)) {
			return s, true
		}
	}
	return 0, false
}

// SectionSet holds the text of every section of one document. The zero
// value is not meaningful; build sets with Segment or SectionSetFromMap.
type SectionSet struct {
	texts [sectionCount]string
}

func newSectionSet() SectionSet {
	var set SectionSet
	for i := range set.texts {
		set.texts[i] = NotFound
	}
	return set
}

// Get returns the section text, or NotFound.
func (s SectionSet) Get(name SectionName) string {
	if name < 0 || name >= sectionCount {
		return NotFound
	}
	if s.texts[name] == "" {
		return NotFound
	}
	return s.texts[name]
}

// Found reports whether the section was detected.
func (s SectionSet) Found(name SectionName) bool {
	return s.Get(name) != NotFound
}

// Map returns the sections keyed by display label. All seven keys are present.
func (s SectionSet) Map() map[string]string {
	out := make(map[string]string, sectionCount)
	for _, name := range AllSections() {
		out[name.String()] = s.Get(name)
	}
	return out
}

// SectionSetFromMap rebuilds a SectionSet from labels produced by Map.
// Unknown labels are ignored and missing or empty sections become NotFound.
func SectionSetFromMap(m map[string]string) SectionSet {
	set := newSectionSet()
	for label, text := range m {
		name, ok := ParseSectionName(label)
		if !ok || text == "" {
			continue
		}
		set.texts[name] = text
	}
	return set
}
