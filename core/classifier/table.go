package classifier

import (
	"regexp"
	"strings"

	"github.com/tristendillon/related/core/models"
)

type kindRule struct {
	Kind      string
	Group     string
	Subtypes  []models.Subtype
	Templates map[models.Subtype]string
}

// Path templates understand {host}, {kind}, {part} and {ext}. Test files are
// rooted at tests/ whatever the host is.
var defaultTemplates = map[models.Subtype]string{
	models.Source:      "{host}/{kind}s/{part}.{ext}",
	models.Template:    "{host}/templates/{kind}s/{part}.{ext}",
	models.Style:       "{host}/styles/{kind}s/{part}.{ext}",
	models.Unit:        "tests/unit/{kind}s/{part}-test.{ext}",
	models.Integration: "tests/integration/{kind}s/{part}-test.{ext}",
}

var extensions = map[models.Subtype][]string{
	models.Source:      {"js"},
	models.Template:    {"hbs"},
	models.Style:       {"scss", "css", "less"},
	models.Unit:        {"js"},
	models.Integration: {"js"},
}

var sourceAndTests = []models.Subtype{models.Source, models.Unit, models.Integration}

// Order matters: the first matching pattern wins, so component templates have
// to be registered before the catch-all controller template.
var kinds = []kindRule{
	{
		Kind:     "component",
		Group:    "component",
		Subtypes: []models.Subtype{models.Source, models.Template, models.Style, models.Unit, models.Integration},
	},
	{
		Kind:     "controller",
		Group:    "route",
		Subtypes: []models.Subtype{models.Source, models.Template, models.Unit, models.Integration},
		Templates: map[models.Subtype]string{
			models.Template: "{host}/templates/{part}.{ext}",
		},
	},
	{Kind: "route", Group: "route", Subtypes: sourceAndTests},
	{Kind: "model", Group: "model", Subtypes: sourceAndTests},
	{Kind: "adapter", Group: "model", Subtypes: sourceAndTests},
	{Kind: "serializer", Group: "model", Subtypes: sourceAndTests},
	{Kind: "mixin", Group: "mixin", Subtypes: sourceAndTests},
	{Kind: "util", Group: "util", Subtypes: sourceAndTests},
	{Kind: "helper", Group: "helper", Subtypes: sourceAndTests},
	{Kind: "service", Group: "service", Subtypes: sourceAndTests},
	{Kind: "initializer", Group: "initializer", Subtypes: sourceAndTests},
}

var (
	patterns   []models.TypePattern
	groups     = make(map[string][]string)
	groupOfKey = make(map[string]string)
	kindGroups = make(map[string]string)
	groupKinds = make(map[string]int)
)

func init() {
	for _, rule := range kinds {
		kindGroups[rule.Kind] = rule.Group
		groupKinds[rule.Group]++

		for _, subtype := range rule.Subtypes {
			exts := extensions[subtype]
			key := models.TypeKey{Kind: rule.Kind, Subtype: subtype}
			patterns = append(patterns, models.TypePattern{
				ModuleName: key.ModuleName(),
				Regex:      compilePattern(templateFor(rule.Kind, subtype), rule.Kind, exts),
			})

			for _, ext := range exts {
				key.Extension = ext
				groups[rule.Group] = append(groups[rule.Group], key.String())
				groupOfKey[key.String()] = rule.Group
			}
		}
	}
}

func templateFor(kind string, subtype models.Subtype) string {
	for _, rule := range kinds {
		if rule.Kind != kind {
			continue
		}
		if tmpl, ok := rule.Templates[subtype]; ok {
			return tmpl
		}
		break
	}
	return defaultTemplates[subtype]
}

var placeholder = regexp.MustCompile(`\{(host|kind|part|ext)\}`)

func compilePattern(tmpl, kind string, exts []string) *regexp.Regexp {
	quoted := make([]string, len(exts))
	for i, ext := range exts {
		quoted[i] = regexp.QuoteMeta(ext)
	}

	var b strings.Builder
	b.WriteString("^")
	last := 0
	for _, loc := range placeholder.FindAllStringSubmatchIndex(tmpl, -1) {
		b.WriteString(regexp.QuoteMeta(tmpl[last:loc[0]]))
		switch tmpl[loc[2]:loc[3]] {
		case "host":
			b.WriteString(`(?P<host>app|addon)`)
		case "kind":
			b.WriteString(regexp.QuoteMeta(kind))
		case "part":
			b.WriteString(`(?P<part>.+)`)
		case "ext":
			b.WriteString(`(?P<ext>` + strings.Join(quoted, "|") + `)`)
		}
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(tmpl[last:]))
	b.WriteString("$")

	return regexp.MustCompile(b.String())
}

func renderPath(tmpl string, host models.HostType, kind, part, ext string) string {
	return strings.NewReplacer(
		"{host}", string(host),
		"{kind}", kind,
		"{part}", part,
		"{ext}", ext,
	).Replace(tmpl)
}

// Patterns returns the type pattern table in match order.
func Patterns() []models.TypePattern {
	out := make([]models.TypePattern, len(patterns))
	copy(out, patterns)
	return out
}
