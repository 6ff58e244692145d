package generate

import (
	"fmt"
	"log/slog"

	"github.com/abbababa/careers/internal/content"
	"github.com/abbababa/careers/internal/model"
)

// Result lists the document paths a run wrote and skipped.
type Result struct {
	Written []string
	Skipped []string
}

// Generator materializes a dated batch of English postings from templates.
type Generator struct {
	store     *content.Store
	templates []Template
	logger    *slog.Logger
}

// New creates a generator over the given templates (usually Catalog).
func New(store *content.Store, templates []Template, logger *slog.Logger) *Generator {
	return &Generator{
		store:     store,
		templates: templates,
		logger:    logger,
	}
}

// Run writes one posting per template for batch date, valid for days days.
// Postings that already exist at their dated path are left untouched.
func (g *Generator) Run(date string, days int) (Result, error) {
	var res Result
	if _, err := model.ParseDate(date); err != nil {
		return res, model.UsageError("--date must be YYYY-MM-DD, got %q", date)
	}
	if days <= 0 {
		return res, model.UsageError("--days must be positive, got %d", days)
	}
	validThrough, err := model.AddDays(date, days)
	if err != nil {
		return res, err
	}

	g.logger.Info("generating batch", "batch", date, "valid_through", validThrough, "templates", len(g.templates))

	for _, t := range g.templates {
		p := Build(t, date, validThrough)
		path := g.store.JobPath(p.Category, p.Slug())

		if content.Exists(path) {
			g.logger.Debug("skip existing posting", "path", path)
			res.Skipped = append(res.Skipped, path)
			continue
		}
		if err := g.store.SaveJob(p); err != nil {
			return res, fmt.Errorf("write %s: %w", path, err)
		}
		g.logger.Debug("wrote posting", "path", path)
		res.Written = append(res.Written, path)
	}

	g.logger.Info("batch generated", "batch", date, "written", len(res.Written), "skipped", len(res.Skipped))
	return res, nil
}

// Build renders a template into a fresh active posting for the batch.
func Build(t Template, date, validThrough string) *model.JobPosting {
	p := &model.JobPosting{
		ID:               t.ID,
		Category:         t.Category,
		Subcategory:      t.BaseSlug + "-" + date,
		Status:           model.StatusActive,
		BatchDate:        date,
		ReplacedBy:       []model.Replacement{},
		Title:            t.Title,
		DatePosted:       date,
		ValidThrough:     validThrough,
		Compensation:     compensation,
		SharedBlocks:     []string{},
		Platforms:        []string{},
		Summary:          t.Summary,
		Description:      t.Description,
		Responsibilities: append([]string{}, t.Responsibilities...),
		Requirements: model.Requirements{
			Skills:          append([]string{}, t.Skills...),
			ExperienceLevel: t.ExperienceLevel,
			Timezone:        "Any",
		},
		IntegrationSteps: []model.IntegrationStep{},
		LastUpdated:      date,
		ContentHash:      model.ContentHash(t.Description, t.Responsibilities),
	}
	if !t.IsIndex() {
		p.Platforms = append(p.Platforms, defaultPlatforms...)
		p.IntegrationSteps = append(p.IntegrationSteps, howToApplySteps...)
		p.ApplicationProcess = applicationProcess
	}
	return p
}
