package translate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abbababa/careers/internal/model"
)

// ErrNoJSON is returned when a reply contains no JSON object at all.
var ErrNoJSON = errors.New("reply contains no JSON object")

// fields is the whitelist of translatable content. Anything a reply carries
// outside these names is rejected.
type fields struct {
	Title             string      `json:"title,omitempty"`
	Description       string      `json:"description,omitempty"`
	Summary           string      `json:"summary,omitempty"`
	Manifesto         string      `json:"manifesto,omitempty"`
	MarketContext     string      `json:"marketContext,omitempty"`
	CallToAction      string      `json:"callToAction,omitempty"`
	Responsibilities  []string    `json:"responsibilities,omitempty"`
	EarningMechanics  string      `json:"earningMechanics,omitempty"`
	DisputeResolution string      `json:"disputeResolution,omitempty"`
	ErrorReference    string      `json:"errorReference,omitempty"`
	IntegrationSteps  []stepField `json:"integrationSteps,omitempty"`
}

// stepField carries only the prose of an integration step; code and its
// language stay on the source and are re-attached by position.
type stepField struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func extractFields(p *model.JobPosting) fields {
	f := fields{
		Title:             p.Title,
		Description:       p.Description,
		Summary:           p.Summary,
		Manifesto:         p.Manifesto,
		MarketContext:     p.MarketContext,
		CallToAction:      p.CallToAction,
		Responsibilities:  p.Responsibilities,
		EarningMechanics:  p.EarningMechanics,
		DisputeResolution: p.DisputeResolution,
		ErrorReference:    p.ErrorReference,
	}
	for _, s := range p.IntegrationSteps {
		f.IntegrationSteps = append(f.IntegrationSteps, stepField{
			Step:        s.Step,
			Title:       s.Title,
			Description: s.Description,
		})
	}
	return f
}

// parseReply takes the outermost {...} span of a model reply and decodes it
// into the whitelist, rejecting unknown fields.
func parseReply(reply string) (fields, error) {
	var f fields
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return f, ErrNoJSON
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(reply[start : end+1])))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return f, fmt.Errorf("decode reply: %w", err)
	}
	if dec.More() {
		return f, fmt.Errorf("decode reply: more than one JSON value")
	}
	return f, nil
}

// merge overlays translated fields onto a copy of src. Empty translated
// values keep the source text.
func merge(src *model.JobPosting, t fields, lang string) *model.JobPosting {
	out := src.Clone()

	setString(&out.Title, t.Title)
	setString(&out.Description, t.Description)
	setString(&out.Summary, t.Summary)
	setString(&out.Manifesto, t.Manifesto)
	setString(&out.MarketContext, t.MarketContext)
	setString(&out.CallToAction, t.CallToAction)
	setString(&out.EarningMechanics, t.EarningMechanics)
	setString(&out.DisputeResolution, t.DisputeResolution)
	setString(&out.ErrorReference, t.ErrorReference)
	if len(t.Responsibilities) > 0 {
		out.Responsibilities = append([]string(nil), t.Responsibilities...)
	}

	for i := range out.IntegrationSteps {
		if i >= len(t.IntegrationSteps) {
			break
		}
		setString(&out.IntegrationSteps[i].Title, t.IntegrationSteps[i].Title)
		setString(&out.IntegrationSteps[i].Description, t.IntegrationSteps[i].Description)
	}

	out.Lang = lang
	return out
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
