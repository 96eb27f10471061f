// Package finder turns a project-relative path into the related files that
// exist on disk, and drives picking and opening one of them.
package finder

import (
	"os"
	"path/filepath"

	"github.com/tristendillon/related/core/classifier"
	"github.com/tristendillon/related/core/logger"
	"github.com/tristendillon/related/core/models"
)

type ExistsFunc func(path string) bool

type Finder struct {
	Root       string
	Classifier *classifier.Classifier
	Exists     ExistsFunc
}

func NewFinder(root string, hosts classifier.HostResolver) *Finder {
	return &Finder{
		Root:       root,
		Classifier: classifier.New(root, hosts),
		Exists:     FileExists,
	}
}

// FileExists reports whether path is a regular file. Stat failures of any
// kind mean "no candidate".
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Candidates classifies rel and lists one related file per related type key,
// whether or not it exists.
func (f *Finder) Candidates(rel string) (models.ClassifiedFile, []models.RelatedFile, bool) {
	file, ok := f.Classifier.DetectType(rel)
	if !ok {
		return models.ClassifiedFile{}, nil, false
	}
	return file, f.related(file), true
}

func (f *Finder) related(file models.ClassifiedFile) []models.RelatedFile {
	keys := classifier.GetRelatedTypeKeys(file.Key)
	candidates := make([]models.RelatedFile, 0, len(keys))
	for _, key := range keys {
		candidates = append(candidates, models.RelatedFile{
			Label: classifier.Label(key),
			Path:  classifier.GetPath(file, key),
		})
	}
	return candidates
}

// Split partitions the related files of file into those present under the
// root and those that are not.
func (f *Finder) Split(file models.ClassifiedFile) (existing, missing []models.RelatedFile) {
	for _, candidate := range f.related(file) {
		if f.Exists(f.Abs(candidate.Path)) {
			existing = append(existing, candidate)
		} else {
			missing = append(missing, candidate)
		}
	}
	return existing, missing
}

// FindRelatedFiles returns the related files of rel that exist, in table
// order. An unclassified path yields nothing.
func (f *Finder) FindRelatedFiles(rel string) []models.RelatedFile {
	file, ok := f.Classifier.DetectType(rel)
	if !ok {
		return nil
	}

	existing, _ := f.Split(file)
	logger.Debug("Found %d related files for %s", len(existing), rel)
	return existing
}

func (f *Finder) Abs(rel string) string {
	return filepath.Join(f.Root, filepath.FromSlash(rel))
}
