package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/tristendillon/related/core/models"
)

const DefaultTitle = "Select File"

// HuhPicker offers related files in a filterable single-select form. Typing
// filters on both the label and the path.
type HuhPicker struct {
	Title      string
	Accessible bool
	Height     int
}

func New(accessible bool) *HuhPicker {
	return &HuhPicker{
		Title:      DefaultTitle,
		Accessible: accessible,
	}
}

func (p *HuhPicker) Pick(ctx context.Context, files []models.RelatedFile) (models.RelatedFile, bool, error) {
	if len(files) == 0 {
		return models.RelatedFile{}, false, nil
	}

	var chosen string
	sel := huh.NewSelect[string]().
		Title(p.Title).
		Options(Options(files)...).
		Filtering(true).
		Value(&chosen)

	if p.Height > 0 {
		sel = sel.Height(p.Height)
	}

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(huh.ThemeCharm()).
		WithAccessible(p.Accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return models.RelatedFile{}, false, nil
		}
		return models.RelatedFile{}, false, fmt.Errorf("failed to run file picker: %w", err)
	}

	return Lookup(files, chosen)
}

// Options renders one select option per file, keyed by its path.
func Options(files []models.RelatedFile) []huh.Option[string] {
	width := 0
	for _, f := range files {
		width = max(width, len(f.Label))
	}

	opts := make([]huh.Option[string], len(files))
	for i, f := range files {
		opts[i] = huh.NewOption(fmt.Sprintf("%-*s  %s", width, f.Label, f.Path), f.Path)
	}
	return opts
}

func Lookup(files []models.RelatedFile, path string) (models.RelatedFile, bool, error) {
	for _, f := range files {
		if f.Path == path {
			return f, true, nil
		}
	}
	return models.RelatedFile{}, false, nil
}
