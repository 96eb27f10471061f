package classifier

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRelatedTypeKeysMixin(t *testing.T) {
	assert.Equal(t, []string{"mixin-unit-js", "mixin-integration-js"}, GetRelatedTypeKeys("mixin-js"))
}

func TestGetRelatedTypeKeysComponent(t *testing.T) {
	assert.Equal(t, []string{
		"component-js",
		"component-style-scss",
		"component-style-css",
		"component-style-less",
		"component-unit-js",
		"component-integration-js",
	}, GetRelatedTypeKeys("component-template-hbs"))
}

func TestGetRelatedTypeKeysGroupsControllersAndRoutes(t *testing.T) {
	related := GetRelatedTypeKeys("route-js")
	assert.Contains(t, related, "controller-js")
	assert.Contains(t, related, "controller-template-hbs")
	assert.NotContains(t, related, "model-js")
}

func TestGetRelatedTypeKeysUnknown(t *testing.T) {
	assert.Empty(t, GetRelatedTypeKeys("readme-md"))
	assert.NotNil(t, GetRelatedTypeKeys("readme-md"))
}

func TestGetRelatedTypeKeysExcludesSelfAndIsSymmetric(t *testing.T) {
	for key := range groupOfKey {
		related := GetRelatedTypeKeys(key)
		assert.NotContains(t, related, key)

		for _, other := range related {
			assert.True(t, slices.Contains(GetRelatedTypeKeys(other), key), "%s lists %s but not the reverse", key, other)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"component-js":             "Component",
		"component-template-hbs":   "Template",
		"component-style-scss":     "Style",
		"component-unit-js":        "Unit Test",
		"component-integration-js": "Integration Test",
		"controller-template-hbs":  "Controller Template",
		"route-js":                 "Route",
		"route-unit-js":            "Route Unit Test",
		"serializer-js":            "Serializer",
		"mixin-unit-js":            "Unit Test",
	}

	for key, want := range tests {
		assert.Equal(t, want, Label(key), key)
	}
}
