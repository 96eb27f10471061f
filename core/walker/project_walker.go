package walker

import (
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tristendillon/related/core/finder"
	"github.com/tristendillon/related/core/logger"
	"github.com/tristendillon/related/core/models"
)

type ProjectWalker struct {
	Finder  *finder.Finder
	Exclude []string
}

func NewProjectWalker(f *finder.Finder, exclude []string) *ProjectWalker {
	return &ProjectWalker{
		Finder:  f,
		Exclude: exclude,
	}
}

// Walk visits every file under the finder's root and returns the classified
// ones in lexical order, each with its existing and missing related files.
func (w *ProjectWalker) Walk() ([]models.DiscoveredFile, error) {
	root := w.Finder.Root
	var discovered []models.DiscoveredFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if w.ShouldExclude(relPath) {
			if d.IsDir() {
				logger.Debug("Excluding directory: %s", relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		file, ok := w.Finder.Classifier.DetectType(relPath)
		if !ok {
			return nil
		}

		existing, missing := w.Finder.Split(file)
		discovered = append(discovered, models.DiscoveredFile{
			File:    file,
			Related: existing,
			Missing: missing,
		})
		return nil
	})

	logger.Debug("Classified %d files under %s", len(discovered), root)
	return discovered, err
}

// ShouldExclude matches a slash-separated relative path against the
// doublestar exclude patterns. Invalid patterns never match.
func (w *ProjectWalker) ShouldExclude(relPath string) bool {
	for _, pattern := range w.Exclude {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
	}
	return false
}
