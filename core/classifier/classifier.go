package classifier

import (
	"github.com/tristendillon/related/core/logger"
	"github.com/tristendillon/related/core/models"
)

// HostResolver decides whether a project is an app or an addon when the
// path itself doesn't say.
type HostResolver interface {
	Resolve(root string) models.HostType
}

type Classifier struct {
	root  string
	hosts HostResolver
}

func New(root string, hosts HostResolver) *Classifier {
	return &Classifier{
		root:  root,
		hosts: hosts,
	}
}

// DetectType matches a slash-separated, project-relative path against the
// pattern table. The first matching pattern wins. A path outside the
// convention is not an error: DetectType just reports false.
func (c *Classifier) DetectType(path string) (models.ClassifiedFile, bool) {
	for _, pattern := range patterns {
		match := pattern.Regex.FindStringSubmatch(path)
		if match == nil {
			continue
		}

		file := models.ClassifiedFile{
			Key:  pattern.ModuleName + "-" + group(pattern, match, "ext"),
			Path: path,
			Part: group(pattern, match, "part"),
		}

		if host := group(pattern, match, "host"); host != "" {
			file.HostType = models.HostType(host)
		} else {
			file.HostType = c.resolveHost()
		}

		logger.Debug("Classified %s as %s (part: %s, host: %s)", path, file.Key, file.Part, file.HostType)
		return file, true
	}

	logger.Debug("No type pattern matches %s", path)
	return models.ClassifiedFile{}, false
}

func (c *Classifier) resolveHost() models.HostType {
	if c.hosts == nil {
		return models.HostApp
	}
	return c.hosts.Resolve(c.root)
}

func group(pattern models.TypePattern, match []string, name string) string {
	idx := pattern.Regex.SubexpIndex(name)
	if idx < 0 || idx >= len(match) {
		return ""
	}
	return match[idx]
}
