package classifier

import (
	"github.com/tristendillon/related/core/models"
)

// GetPath builds the project-relative path a file of the given type key would
// have for the same part and host. It never looks at the filesystem. A
// malformed key can only come from a table mismatch, so it panics.
func GetPath(file models.ClassifiedFile, key string) string {
	typeKey, err := models.ParseTypeKey(key)
	if err != nil {
		panic(err)
	}

	host := file.HostType
	if host == "" {
		host = models.HostApp
	}

	return renderPath(templateFor(typeKey.Kind, typeKey.Subtype), host, typeKey.Kind, file.Part, typeKey.Extension)
}
