package cache

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/tristendillon/related/core/logger"
	"github.com/tristendillon/related/core/models"
)

// AddonDir is the directory whose presence at the project root marks the
// project as an addon.
const AddonDir = "addon"

type DirProbe func(path string) bool

type HostMetrics struct {
	Hits          int64   `yaml:"hits"`
	Misses        int64   `yaml:"misses"`
	Invalidations int64   `yaml:"invalidations"`
	Roots         int     `yaml:"roots"`
	HitRate       float64 `yaml:"hit_rate"`
}

// HostCache remembers the host type of each project root it has probed.
// Entries never go stale on their own; the watcher invalidates a root when
// its addon directory comes or goes.
type HostCache struct {
	entries map[string]models.HostType
	probe   DirProbe
	metrics HostMetrics
	// generation changes on every invalidation so a probe that raced with
	// one doesn't store its outdated answer.
	generation uint64
	mutex      sync.RWMutex
}

func NewHostCache() *HostCache {
	return NewHostCacheWithProbe(DirExists)
}

func NewHostCacheWithProbe(probe DirProbe) *HostCache {
	return &HostCache{
		entries: make(map[string]models.HostType),
		probe:   probe,
	}
}

// DirExists reports whether path is a directory. Any stat error, permission
// problems included, counts as missing.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (hc *HostCache) Resolve(root string) models.HostType {
	hc.mutex.Lock()
	host, exists := hc.entries[root]
	if exists {
		hc.metrics.Hits++
	}
	generation := hc.generation
	hc.mutex.Unlock()

	if exists {
		logger.Debug("Host cache hit for %s: %s", root, host)
		return host
	}

	host = models.HostApp
	if hc.probe(filepath.Join(root, AddonDir)) {
		host = models.HostAddon
	}

	hc.mutex.Lock()
	defer hc.mutex.Unlock()
	hc.metrics.Misses++
	if hc.generation != generation {
		logger.Debug("Host cache for %s invalidated while probing, not storing %s", root, host)
		return host
	}
	hc.entries[root] = host
	logger.Debug("Host cache miss for %s, probed: %s", root, host)
	return host
}

func (hc *HostCache) Invalidate(root string) {
	hc.mutex.Lock()
	defer hc.mutex.Unlock()

	hc.generation++
	if _, exists := hc.entries[root]; exists {
		delete(hc.entries, root)
		hc.metrics.Invalidations++
		logger.Debug("Invalidated host cache entry for %s", root)
	}
}

func (hc *HostCache) Metrics() HostMetrics {
	hc.mutex.RLock()
	defer hc.mutex.RUnlock()

	metrics := hc.metrics
	metrics.Roots = len(hc.entries)
	if total := metrics.Hits + metrics.Misses; total > 0 {
		metrics.HitRate = float64(metrics.Hits) / float64(total) * 100
	}
	return metrics
}

func (hc *HostCache) LogStats() {
	m := hc.Metrics()
	logger.Debug("Host cache stats: Hits=%d, Misses=%d, Hit Rate=%.1f%%, Roots=%d, Invalidations=%d",
		m.Hits, m.Misses, m.HitRate, m.Roots, m.Invalidations)
}
