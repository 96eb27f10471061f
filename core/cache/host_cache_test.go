package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/related/core/models"
)

func TestResolveApp(t *testing.T) {
	root := t.TempDir()
	hc := NewHostCache()

	assert.Equal(t, models.HostApp, hc.Resolve(root))
}

func TestResolveAddon(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, AddonDir), 0o755))
	hc := NewHostCache()

	assert.Equal(t, models.HostAddon, hc.Resolve(root))
}

func TestResolveAddonFileIsNotADirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, AddonDir), []byte("x"), 0o644))

	assert.Equal(t, models.HostApp, NewHostCache().Resolve(root))
}

func TestResolveCachesPerRoot(t *testing.T) {
	probes := map[string]int{}
	hc := NewHostCacheWithProbe(func(path string) bool {
		probes[path]++
		return filepath.Dir(path) == "/addon-project"
	})

	assert.Equal(t, models.HostAddon, hc.Resolve("/addon-project"))
	assert.Equal(t, models.HostAddon, hc.Resolve("/addon-project"))
	assert.Equal(t, models.HostApp, hc.Resolve("/app-project"))

	assert.Equal(t, 1, probes[filepath.Join("/addon-project", AddonDir)])
	assert.Equal(t, 1, probes[filepath.Join("/app-project", AddonDir)])

	metrics := hc.Metrics()
	assert.Equal(t, int64(1), metrics.Hits)
	assert.Equal(t, int64(2), metrics.Misses)
	assert.Equal(t, 2, metrics.Roots)
	assert.InDelta(t, 33.3, metrics.HitRate, 0.1)
}

func TestInvalidateForcesReprobe(t *testing.T) {
	root := t.TempDir()
	hc := NewHostCache()

	require.Equal(t, models.HostApp, hc.Resolve(root))
	require.NoError(t, os.Mkdir(filepath.Join(root, AddonDir), 0o755))
	assert.Equal(t, models.HostApp, hc.Resolve(root), "cached until invalidated")

	hc.Invalidate(root)
	assert.Equal(t, models.HostAddon, hc.Resolve(root))
	assert.Equal(t, int64(1), hc.Metrics().Invalidations)
}

func TestInvalidateDuringProbeIsNotOverwritten(t *testing.T) {
	root := "/project"
	var hc *HostCache
	probes := 0
	hc = NewHostCacheWithProbe(func(string) bool {
		probes++
		if probes == 1 {
			// The addon directory shows up while the first probe is in flight.
			hc.Invalidate(root)
			return false
		}
		return true
	})

	assert.Equal(t, models.HostApp, hc.Resolve(root))
	assert.Zero(t, hc.Metrics().Roots, "stale probe result must not be cached")

	assert.Equal(t, models.HostAddon, hc.Resolve(root))
	assert.Equal(t, 2, probes)
	assert.Equal(t, models.HostAddon, hc.Resolve(root))
	assert.Equal(t, 2, probes)
}

func TestMetricsWithoutLookups(t *testing.T) {
	metrics := NewHostCache().Metrics()
	assert.Zero(t, metrics.HitRate)
	assert.Zero(t, metrics.Roots)
}

func TestDirExistsMissing(t *testing.T) {
	assert.False(t, DirExists(filepath.Join(t.TempDir(), "nope")))
}
