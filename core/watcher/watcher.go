package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/tristendillon/related/core/cache"
	"github.com/tristendillon/related/core/logger"
)

const defaultDebounce = 500 * time.Millisecond

type Config struct {
	RootDir  string
	Exclude  []string
	Debounce time.Duration
	Hosts    *cache.HostCache
	OnChange func() error
}

type FileWatcher struct {
	watcher       *fsnotify.Watcher
	cfg           Config
	debounceTimer *time.Timer
	mutex         sync.Mutex
	closed        bool

	// runMutex keeps OnChange calls from overlapping; pending counts
	// scheduled and running callbacks so Close can wait for them.
	runMutex sync.Mutex
	pending  sync.WaitGroup
}

func NewFileWatcher(cfg Config) (*FileWatcher, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if cfg.OnChange == nil {
		cfg.OnChange = func() error { return nil }
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher: w,
		cfg:     cfg,
	}

	if err := fw.addWatchersRecursively(cfg.RootDir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to add watchers: %w", err)
	}

	return fw, nil
}

// Watch handles events until ctx is done. Changes are coalesced and OnChange
// runs once per quiet period.
func (fw *FileWatcher) Watch(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			fw.handleEvent(event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if fw.shouldExcludePath(event.Name) {
		return
	}

	logger.Debug("File event: %s %s", event.Op, event.Name)

	if event.Name == filepath.Join(fw.cfg.RootDir, cache.AddonDir) && fw.cfg.Hosts != nil &&
		(event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
		fw.cfg.Hosts.Invalidate(fw.cfg.RootDir)
	}

	if event.Has(fsnotify.Create) {
		if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
			if err := fw.addWatchersRecursively(event.Name); err != nil {
				logger.Warn("Failed to watch new directory %s: %v", event.Name, err)
			}
		}
	}

	fw.debounceChange()
}

func (fw *FileWatcher) debounceChange() {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()

	if fw.closed {
		return
	}
	fw.stopTimer()

	fw.pending.Add(1)
	fw.debounceTimer = time.AfterFunc(fw.cfg.Debounce, func() {
		defer fw.pending.Done()
		fw.runOnChange()
	})
}

func (fw *FileWatcher) runOnChange() {
	fw.runMutex.Lock()
	defer fw.runMutex.Unlock()

	logger.Debug("File changes detected, rescanning...")
	if err := fw.cfg.OnChange(); err != nil {
		logger.Error("Watcher.OnChange failed: %v", err)
	}
}

// stopTimer cancels a scheduled callback that hasn't started yet. Callers
// hold fw.mutex.
func (fw *FileWatcher) stopTimer() {
	if fw.debounceTimer != nil && fw.debounceTimer.Stop() {
		fw.pending.Done()
	}
	fw.debounceTimer = nil
}

// Close stops the watcher and waits for a running OnChange to return.
func (fw *FileWatcher) Close() error {
	fw.mutex.Lock()
	if fw.closed {
		fw.mutex.Unlock()
		return nil
	}
	fw.closed = true
	fw.stopTimer()
	fw.mutex.Unlock()

	err := fw.watcher.Close()
	fw.pending.Wait()
	return err
}

func (fw *FileWatcher) shouldExcludePath(path string) bool {
	relPath, err := filepath.Rel(fw.cfg.RootDir, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range fw.cfg.Exclude {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern+"/**", relPath); err == nil && matched {
			return true
		}
	}
	return false
}

func (fw *FileWatcher) addWatchersRecursively(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if fw.shouldExcludePath(path) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", path)
		if err := fw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}
		return nil
	})
}
