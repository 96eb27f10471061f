package models

type HostType string

const (
	HostApp   HostType = "app"
	HostAddon HostType = "addon"
)

// ClassifiedFile is the result of matching a project-relative path against
// the type pattern table. It only lives for one lookup.
type ClassifiedFile struct {
	HostType HostType `yaml:"host_type"`
	Key      string   `yaml:"key"`
	Path     string   `yaml:"path"`
	Part     string   `yaml:"part"`
}

type RelatedFile struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// DiscoveredFile is a classified file found while walking a project, with the
// related files that exist on disk and the ones that don't.
type DiscoveredFile struct {
	File    ClassifiedFile `yaml:"file"`
	Related []RelatedFile  `yaml:"related,omitempty"`
	Missing []RelatedFile  `yaml:"missing,omitempty"`
}
