package finder

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/related/core/cache"
	"github.com/tristendillon/related/core/models"
)

type fakePicker struct {
	calls  int
	offers []models.RelatedFile
	pick   int
	cancel bool
	err    error
}

func (p *fakePicker) Pick(_ context.Context, files []models.RelatedFile) (models.RelatedFile, bool, error) {
	p.calls++
	p.offers = files
	if p.err != nil {
		return models.RelatedFile{}, false, p.err
	}
	if p.cancel {
		return models.RelatedFile{}, false, nil
	}
	return files[p.pick], true, nil
}

type openCall struct {
	path    string
	preview bool
}

type fakeOpener struct {
	opened []openCall
	err    error
}

func (o *fakeOpener) Open(_ context.Context, path string, preview bool) error {
	o.opened = append(o.opened, openCall{path: path, preview: preview})
	return o.err
}

func newNavigator(t *testing.T, opts Options, files ...string) (*Navigator, *fakePicker, *fakeOpener) {
	t.Helper()
	picker := &fakePicker{}
	opener := &fakeOpener{}
	return &Navigator{
		Finder:  NewFinder(writeProject(t, files...), cache.NewHostCache()),
		Picker:  picker,
		Opener:  opener,
		Options: opts,
	}, picker, opener
}

func TestNavigateAutoOpensSingleMatch(t *testing.T) {
	nav, picker, opener := newNavigator(t, Options{}, "app/routes/index.js", "tests/unit/routes/index-test.js")

	require.NoError(t, nav.Navigate(context.Background(), "app/routes/index.js"))

	assert.Zero(t, picker.calls)
	assert.Equal(t, []openCall{{path: filepath.Join(nav.Finder.Root, "tests", "unit", "routes", "index-test.js")}}, opener.opened)
}

func TestNavigateAlwaysPrompt(t *testing.T) {
	nav, picker, opener := newNavigator(t, Options{AlwaysPrompt: true, Preview: true},
		"app/routes/index.js", "tests/unit/routes/index-test.js")

	require.NoError(t, nav.Navigate(context.Background(), "app/routes/index.js"))

	assert.Equal(t, 1, picker.calls)
	require.Len(t, opener.opened, 1)
	assert.True(t, opener.opened[0].preview)
}

func TestNavigatePromptsForSeveralMatches(t *testing.T) {
	nav, picker, opener := newNavigator(t, Options{},
		"app/components/foo.js",
		"app/templates/components/foo.hbs",
		"app/styles/components/foo.scss",
	)
	picker.pick = 1

	require.NoError(t, nav.Navigate(context.Background(), "app/templates/components/foo.hbs"))

	assert.Equal(t, []models.RelatedFile{
		{Label: "Component", Path: "app/components/foo.js"},
		{Label: "Style", Path: "app/styles/components/foo.scss"},
	}, picker.offers)
	assert.Equal(t, []openCall{{path: filepath.Join(nav.Finder.Root, "app", "styles", "components", "foo.scss")}}, opener.opened)
}

func TestNavigateCancelledPick(t *testing.T) {
	nav, picker, opener := newNavigator(t, Options{AlwaysPrompt: true}, "app/helpers/fmt.js", "tests/unit/helpers/fmt-test.js")
	picker.cancel = true

	require.NoError(t, nav.Navigate(context.Background(), "app/helpers/fmt.js"))
	assert.Empty(t, opener.opened)
}

func TestNavigatePickerError(t *testing.T) {
	nav, picker, opener := newNavigator(t, Options{AlwaysPrompt: true}, "app/helpers/fmt.js", "tests/unit/helpers/fmt-test.js")
	picker.err = errors.New("no tty")

	err := nav.Navigate(context.Background(), "app/helpers/fmt.js")
	assert.ErrorContains(t, err, "no tty")
	assert.Empty(t, opener.opened)
}

func TestNavigateOpenerError(t *testing.T) {
	nav, _, opener := newNavigator(t, Options{}, "app/helpers/fmt.js", "tests/unit/helpers/fmt-test.js")
	opener.err = errors.New("editor crashed")

	err := nav.Navigate(context.Background(), "app/helpers/fmt.js")
	assert.ErrorContains(t, err, "editor crashed")
}

func TestNavigateNothingToDo(t *testing.T) {
	for _, rel := range []string{"", "README.md", "app/services/lonely.js"} {
		nav, picker, opener := newNavigator(t, Options{AlwaysPrompt: true}, "README.md", "app/services/lonely.js")

		require.NoError(t, nav.Navigate(context.Background(), rel), rel)
		assert.Zero(t, picker.calls, rel)
		assert.Empty(t, opener.opened, rel)
	}
}

func TestNavigateWithoutRoot(t *testing.T) {
	picker := &fakePicker{}
	opener := &fakeOpener{}
	nav := &Navigator{Finder: NewFinder("", nil), Picker: picker, Opener: opener}

	require.NoError(t, nav.Navigate(context.Background(), "app/components/foo.js"))
	assert.Zero(t, picker.calls)
	assert.Empty(t, opener.opened)
}
