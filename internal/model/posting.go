package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date used for batch dates and posting dates.
const DateLayout = "2006-01-02"

// Status is the lifecycle state of a posting.
type Status string

const (
	StatusActive Status = "active"
	StatusFilled Status = "filled"
)

// JobPosting is one posting document, either the English source under jobs/
// or a translated copy under translations/<lang>/.
type JobPosting struct {
	ID                 string            `json:"id"`
	Category           string            `json:"category"`
	Subcategory        string            `json:"subcategory"` // dated slug, also the file name
	Status             Status            `json:"status,omitempty"`
	BatchDate          string            `json:"batchDate,omitempty"`
	ReplacedBy         []Replacement     `json:"replacedBy"`
	Title              string            `json:"title"`
	DatePosted         string            `json:"datePosted"`
	ValidThrough       string            `json:"validThrough"`
	Compensation       Compensation      `json:"compensation"`
	SharedBlocks       []string          `json:"sharedBlocks"`
	Platforms          []string          `json:"platforms"`
	Summary            string            `json:"summary"`
	Description        string            `json:"description"`
	Responsibilities   []string          `json:"responsibilities"`
	Requirements       Requirements      `json:"requirements"`
	IntegrationSteps   []IntegrationStep `json:"integrationSteps"`
	ApplicationProcess string            `json:"applicationProcess,omitempty"`
	Manifesto          string            `json:"manifesto,omitempty"`
	MarketContext      string            `json:"marketContext,omitempty"`
	CallToAction       string            `json:"callToAction,omitempty"`
	EarningMechanics   string            `json:"earningMechanics,omitempty"`
	DisputeResolution  string            `json:"disputeResolution,omitempty"`
	ErrorReference     string            `json:"errorReference,omitempty"`
	LastUpdated        string            `json:"lastUpdated"`
	ContentHash        string            `json:"contentHash"`
	Lang               string            `json:"lang,omitempty"`
}

// Replacement points a filled posting at a successor.
type Replacement struct {
	Category string `json:"category"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
}

// Compensation is passed through translation untouched.
type Compensation struct {
	Currency string `json:"currency"`
	Type     string `json:"type"`
	Range    string `json:"range"`
	Equity   string `json:"equity,omitempty"`
}

type Requirements struct {
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel"`
	Timezone        string   `json:"timezone,omitempty"`
}

// IntegrationStep is one numbered step. Code and Language are never translated.
type IntegrationStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Code        string `json:"code,omitempty"`
	Language    string `json:"language,omitempty"`
	Description string `json:"description"`
}

// Slug returns the dated slug the posting is stored under.
func (p *JobPosting) Slug() string {
	return p.Subcategory
}

// IsFilled reports whether the posting has been marked filled.
func (p *JobPosting) IsFilled() bool {
	return p.Status == StatusFilled
}

// BlockRefs returns every shared-block reference the posting declares:
// its sharedBlocks followed by one "platforms:<p>" entry per platform.
func (p *JobPosting) BlockRefs() []string {
	refs := make([]string, 0, len(p.SharedBlocks)+len(p.Platforms))
	refs = append(refs, p.SharedBlocks...)
	for _, platform := range p.Platforms {
		refs = append(refs, "platforms:"+platform)
	}
	return refs
}

// Normalize replaces nil slices with empty ones so documents always encode
// arrays rather than null.
func (p *JobPosting) Normalize() {
	if p.ReplacedBy == nil {
		p.ReplacedBy = []Replacement{}
	}
	if p.SharedBlocks == nil {
		p.SharedBlocks = []string{}
	}
	if p.Platforms == nil {
		p.Platforms = []string{}
	}
	if p.Responsibilities == nil {
		p.Responsibilities = []string{}
	}
	if p.Requirements.Skills == nil {
		p.Requirements.Skills = []string{}
	}
	if p.IntegrationSteps == nil {
		p.IntegrationSteps = []IntegrationStep{}
	}
}

// Clone returns a deep copy of the posting.
func (p *JobPosting) Clone() *JobPosting {
	c := *p
	c.ReplacedBy = append([]Replacement(nil), p.ReplacedBy...)
	c.SharedBlocks = append([]string(nil), p.SharedBlocks...)
	c.Platforms = append([]string(nil), p.Platforms...)
	c.Responsibilities = append([]string(nil), p.Responsibilities...)
	c.Requirements.Skills = append([]string(nil), p.Requirements.Skills...)
	c.IntegrationSteps = append([]IntegrationStep(nil), p.IntegrationSteps...)
	c.Normalize()
	return &c
}

// Validate checks the fields every reader downstream relies on.
func (p *JobPosting) Validate() error {
	var problems []string
	required := []struct{ name, value string }{
		{"id", p.ID},
		{"category", p.Category},
		{"subcategory", p.Subcategory},
		{"title", p.Title},
		{"contentHash", p.ContentHash},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			problems = append(problems, f.name+" is required")
		}
	}

	switch p.Status {
	case "", StatusActive, StatusFilled:
	default:
		problems = append(problems, fmt.Sprintf("status %q is not one of active, filled", p.Status))
	}

	dates := []struct{ name, value string }{
		{"batchDate", p.BatchDate},
		{"datePosted", p.DatePosted},
		{"validThrough", p.ValidThrough},
		{"lastUpdated", p.LastUpdated},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if _, err := ParseDate(d.value); err != nil {
			problems = append(problems, fmt.Sprintf("%s %q is not a YYYY-MM-DD date", d.name, d.value))
		}
	}

	for i, r := range p.ReplacedBy {
		if r.Category == "" || r.Slug == "" {
			problems = append(problems, fmt.Sprintf("replacedBy[%d] needs category and slug", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid posting: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ContentHash returns the translation-relevant hash of a posting: the first
// 16 hex characters of SHA-256 over the description followed by every
// responsibility with no separator.
func ContentHash(description string, responsibilities []string) string {
	return Hash16(description + strings.Join(responsibilities, ""))
}

// Hash16 returns the first 16 hex characters of the SHA-256 of s.
func Hash16(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:16]
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate formats t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// AddDays returns the date n days after the given YYYY-MM-DD date.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}
