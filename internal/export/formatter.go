// Package export renders storyboards into shareable HTML or JSON documents
// for brand approval.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

//go:embed templates/storyboard.html.tmpl
var templateFS embed.FS

var storyboardTemplate = template.Must(
	template.New("storyboard.html.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/storyboard.html.tmpl"),
)

const (
	htmlDateLayout        = "January 2, 2006"
	defaultTargetDuration = "15-30s"
)

// Formatter builds export documents. Now is the clock used for generation
// timestamps.
type Formatter struct {
	Now func() time.Time
}

// NewFormatter returns a Formatter using the wall clock.
func NewFormatter() *Formatter {
	return &Formatter{Now: time.Now}
}

type htmlView struct {
	Brand          models.BrandInfo
	CreatorLabel   string
	CreatorHandle  string
	GeneratedDate  string
	Storyboard     models.Storyboard
	TotalSeconds   int
	Platform       string
	Format         string
	TargetDuration string
}

// Export renders storyboard as format. An empty storyboard or unknown format
// is a validation error.
func (f *Formatter) Export(storyboard models.Storyboard, brand models.BrandInfo, creator models.CreatorInfo, format string) (*models.ExportDocument, error) {
	if len(storyboard) == 0 {
		return nil, fmt.Errorf("%w: storyboard cannot be empty", models.ErrValidation)
	}
	if format == "" {
		format = models.ExportHTML
	}

	switch format {
	case models.ExportHTML:
		return f.exportHTML(storyboard, brand, creator)
	case models.ExportJSON:
		return f.exportJSON(storyboard, brand, creator), nil
	default:
		return nil, fmt.Errorf("%w: invalid format %q, use \"html\" or \"json\"", models.ErrValidation, format)
	}
}

func (f *Formatter) exportHTML(storyboard models.Storyboard, brand models.BrandInfo, creator models.CreatorInfo) (*models.ExportDocument, error) {
	view := htmlView{
		Brand:          brand,
		CreatorLabel:   firstNonEmpty(creator.Name, creator.Handle),
		CreatorHandle:  firstNonEmpty(creator.Handle, creator.Name),
		GeneratedDate:  f.now().Format(htmlDateLayout),
		Storyboard:     storyboard,
		TotalSeconds:   storyboard.TotalDurationSeconds(),
		Platform:       firstNonEmpty(brand.PlatformSpecs.Platform, models.DefaultPlatform),
		Format:         firstNonEmpty(brand.PlatformSpecs.Format, models.DefaultFormat),
		TargetDuration: firstNonEmpty(brand.Duration, defaultTargetDuration),
	}

	var buf bytes.Buffer
	if err := storyboardTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render storyboard HTML: %w", err)
	}

	return &models.ExportDocument{
		Format: models.ExportHTML,
		HTML:   strings.TrimSpace(buf.String()),
		Title:  fmt.Sprintf("%s x %s - Storyboard", brand.BrandName, view.CreatorLabel),
	}, nil
}

func (f *Formatter) exportJSON(storyboard models.Storyboard, brand models.BrandInfo, creator models.CreatorInfo) *models.ExportDocument {
	return &models.ExportDocument{
		Format: models.ExportJSON,
		Metadata: &models.ExportMetadata{
			BrandName:     brand.BrandName,
			ProductName:   brand.ProductName,
			CreatorHandle: firstNonEmpty(creator.Handle, creator.Name),
			SceneCount:    storyboard.SceneCount(),
			TotalDuration: models.FormatSeconds(storyboard.TotalDurationSeconds()),
			Platform:      firstNonEmpty(brand.PlatformSpecs.Platform, models.DefaultPlatform),
			Format:        firstNonEmpty(brand.PlatformSpecs.Format, models.DefaultFormat),
			ExportedAt:    f.now().UTC().Format(time.RFC3339),
		},
		Storyboard: storyboard,
		Requirements: &models.ExportRequirements{
			TalkingPoints: orEmpty(brand.TalkingPoints),
			Hashtags:      orEmpty(brand.Hashtags),
			Restrictions:  orEmpty(brand.Restrictions),
		},
	}
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
