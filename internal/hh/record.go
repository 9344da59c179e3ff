// Package hh extracts structured resume records from hh.ru resume pages.
package hh

// ResumeRecord is the canonical extraction output. Every section key is
// always present; a section that could not be extracted holds its empty
// container, never a missing key.
type ResumeRecord struct {
	PersonalInfo   map[string]any    `json:"personal_info"`
	Position       map[string]any    `json:"position"`
	Location       map[string]any    `json:"location"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []SkillEntry      `json:"skills"`
	Languages      []LanguageEntry   `json:"languages"`
	Contacts       map[string]any    `json:"contacts"`
	AdditionalInfo map[string]any    `json:"additional_info"`
	RawJSON        PageState         `json:"raw_json"`
}

// ExperienceEntry is a closed set of variants: a JobEntry per employment
// record, optionally followed by one TotalExperienceEntry summary.
type ExperienceEntry interface {
	experienceEntry()
}

// JobEntry is a single employment record.
type JobEntry struct {
	Type        string   `json:"type"` // always "job"
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Description string   `json:"description,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Current     bool     `json:"is_current"`
	Area        string   `json:"area,omitempty"`
	CompanyID   any      `json:"company_id,omitempty"`
	CompanyURL  string   `json:"company_url,omitempty"`
	Industries  []string `json:"industries,omitempty"`
	Profession  string   `json:"profession,omitempty"`
}

func (JobEntry) experienceEntry() {}

// TotalExperienceEntry is the synthetic summary appended after the per-job
// list.
type TotalExperienceEntry struct {
	Type   string `json:"type"` // always "total"
	Years  int    `json:"years"`
	Months int    `json:"months"`
}

func (TotalExperienceEntry) experienceEntry() {}

// EducationKind tags an education entry with the source list it came from.
type EducationKind string

const (
	EducationKindLevel       EducationKind = "level"
	EducationKindPrimary     EducationKind = "primary"
	EducationKindAdditional  EducationKind = "additional"
	EducationKindAttestation EducationKind = "attestation"
)

// EducationEntry is one education record; the four source lists share this
// shape and are concatenated in source order.
type EducationEntry struct {
	Type         EducationKind `json:"type"`
	Name         string        `json:"name"`
	Organization string        `json:"organization,omitempty"`
	Result       string        `json:"result,omitempty"`
	Year         any           `json:"year,omitempty"`
}

// SkillKind tags a skill entry with the source list it came from.
type SkillKind string

const (
	SkillKindKey        SkillKind = "key"
	SkillKindAdvanced   SkillKind = "advanced"
	SkillKindExperience SkillKind = "experience"
)

// SkillEntry is one skill record.
type SkillEntry struct {
	Type    SkillKind `json:"type"`
	Name    string    `json:"name"`
	ID      any       `json:"id,omitempty"`
	General bool      `json:"general"`
}

// LanguageEntry is one language with its proficiency level.
type LanguageEntry struct {
	ID    any    `json:"id,omitempty"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// EmptyRecord returns the canonical empty record: all sections present, each
// at its empty default. It is both the natural result of extracting from an
// empty page state and the fallback returned when the pipeline fails before
// decoding.
func EmptyRecord() ResumeRecord {
	return ResumeRecord{
		PersonalInfo:   map[string]any{},
		Position:       map[string]any{},
		Location:       map[string]any{},
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []SkillEntry{},
		Languages:      []LanguageEntry{},
		Contacts:       map[string]any{},
		AdditionalInfo: map[string]any{},
		RawJSON:        PageState{},
	}
}
