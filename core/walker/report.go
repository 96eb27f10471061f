package walker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tristendillon/related/core/models"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

type Report struct {
	Files       []models.DiscoveredFile
	MissingOnly bool
}

// Entries drops the related files that aren't asked for. With MissingOnly
// set, files with nothing missing disappear entirely.
func (r Report) Entries() []models.DiscoveredFile {
	entries := make([]models.DiscoveredFile, 0, len(r.Files))
	for _, f := range r.Files {
		if !r.MissingOnly {
			entries = append(entries, models.DiscoveredFile{File: f.File, Related: f.Related})
			continue
		}
		if len(f.Missing) > 0 {
			entries = append(entries, models.DiscoveredFile{File: f.File, Missing: f.Missing})
		}
	}
	return entries
}

func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.Entries()); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		return r.writeText(w)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func (r Report) writeText(w io.Writer) error {
	renderer := lipgloss.NewRenderer(w)
	fileStyle := renderer.NewStyle().Bold(true)
	keyStyle := renderer.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle := renderer.NewStyle().Foreground(lipgloss.Color("4"))
	missingStyle := renderer.NewStyle().Foreground(lipgloss.Color("1"))

	for _, entry := range r.Entries() {
		if _, err := fmt.Fprintf(w, "%s %s\n", fileStyle.Render(entry.File.Path), keyStyle.Render("("+entry.File.Key+")")); err != nil {
			return err
		}

		related, style := entry.Related, labelStyle
		if r.MissingOnly {
			related, style = entry.Missing, missingStyle
		}
		for _, rf := range related {
			if _, err := fmt.Fprintf(w, "  %s %s\n", style.Render(rf.Label+":"), rf.Path); err != nil {
				return err
			}
		}
	}
	return nil
}
