package finder

import (
	"context"
	"fmt"

	"github.com/tristendillon/related/core/logger"
	"github.com/tristendillon/related/core/models"
)

// Picker asks the user to choose one of files. ok is false when the user
// dismissed the choice.
type Picker interface {
	Pick(ctx context.Context, files []models.RelatedFile) (choice models.RelatedFile, ok bool, err error)
}

type Opener interface {
	Open(ctx context.Context, path string, preview bool) error
}

type Options struct {
	AlwaysPrompt bool
	Preview      bool
}

type Navigator struct {
	Finder  *Finder
	Picker  Picker
	Opener  Opener
	Options Options
}

// Navigate finds the related files of rel, lets the user pick one and opens
// it. Every "nothing to do" outcome returns nil without touching the picker
// or the opener.
func (n *Navigator) Navigate(ctx context.Context, rel string) error {
	if rel == "" || n.Finder.Root == "" {
		logger.Debug("No document or project root, nothing to do")
		return nil
	}

	files := n.Finder.FindRelatedFiles(rel)
	if len(files) == 0 {
		return nil
	}

	choice := files[0]
	if len(files) > 1 || n.Options.AlwaysPrompt {
		picked, ok, err := n.Picker.Pick(ctx, files)
		if err != nil {
			return fmt.Errorf("failed to pick related file: %w", err)
		}
		if !ok {
			logger.Debug("Selection dismissed")
			return nil
		}
		choice = picked
	}

	path := n.Finder.Abs(choice.Path)
	logger.Debug("Opening %s (%s)", path, choice.Label)
	if err := n.Opener.Open(ctx, path, n.Options.Preview); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
