package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTitle(t *testing.T) {
	assert.Equal(t, "Component", ToTitle("component"))
	assert.Equal(t, "Initializer", ToTitle("Initializer"))
	assert.Equal(t, "", ToTitle(""))
}
