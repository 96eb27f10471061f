package classifier

import (
	"github.com/tristendillon/related/core/models"
	"github.com/tristendillon/related/core/shared"
)

// GetRelatedTypeKeys returns the other members of key's group in table
// order. Keys outside every group have no relations.
func GetRelatedTypeKeys(key string) []string {
	name, ok := groupOfKey[key]
	if !ok {
		return []string{}
	}

	related := make([]string, 0, len(groups[name])-1)
	for _, member := range groups[name] {
		if member != key {
			related = append(related, member)
		}
	}
	return related
}

var subtypeLabels = map[models.Subtype]string{
	models.Template:    "Template",
	models.Style:       "Style",
	models.Unit:        "Unit Test",
	models.Integration: "Integration Test",
}

// Label is the short category shown next to a related file. Groups that mix
// kinds (controllers and routes) prefix subtype labels with the kind.
func Label(key string) string {
	typeKey, err := models.ParseTypeKey(key)
	if err != nil {
		panic(err)
	}

	kind := shared.ToTitle(typeKey.Kind)
	if typeKey.Subtype == models.Source {
		return kind
	}

	label := subtypeLabels[typeKey.Subtype]
	if groupKinds[kindGroups[typeKey.Kind]] > 1 {
		return kind + " " + label
	}
	return label
}
