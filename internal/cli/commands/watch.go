package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/swiftkt/internal/loader"
)

const watchDebounce = 100 * time.Millisecond

// watch re-translates documents under roots as they change until ctx is
// done. Events are batched so an editor's write burst translates once.
func (r *translateRun) watch(ctx context.Context, roots []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	bases := make([]string, 0, len(roots))
	for _, root := range roots {
		base := baseDir(root)
		bases = append(bases, base)
		if err := watchDir(watcher, base); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}
	r.cc.Renderer.Success("watching %d paths, press Ctrl+C to stop", len(watcher.WatchList()))

	pending := make(map[string]struct{})
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				if err := watchDir(watcher, event.Name); err != nil {
					r.cc.Logger.Warn("failed to watch new directory", "dir", event.Name, "error", err)
				}
				continue
			}
			if !loader.IsDocument(event.Name) || strings.HasPrefix(filepath.Base(event.Name), ".") {
				continue
			}
			pending[event.Name] = struct{}{}
			debounce = time.After(watchDebounce)

		case <-debounce:
			for path := range pending {
				r.cc.Logger.Debug("change detected", "file", path)
				if err := r.file(ctx, path, baseFor(bases, path)); err != nil {
					r.cc.Renderer.Error("%v", err)
				}
			}
			clear(pending)
			debounce = nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.cc.Logger.Warn("watcher error", "error", err)
		}
	}
}

// watchDir adds dir and its non-hidden subdirectories to the watcher.
func watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// baseFor returns the longest watched base containing path.
func baseFor(bases []string, path string) string {
	best := filepath.Dir(path)
	bestLen := -1
	for _, base := range bases {
		rel, err := filepath.Rel(base, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		if len(base) > bestLen {
			best, bestLen = base, len(base)
		}
	}
	return best
}
