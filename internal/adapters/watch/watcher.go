package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 300 * time.Millisecond

var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
}

func ShouldSkipDir(name string) bool {
	_, exists := skipDirs[name]
	return exists
}

// Watcher calls OnChange once per burst of file events under its paths.
type Watcher struct {
	paths    []string
	debounce time.Duration
	onChange func(paths []string)
	logger   *slog.Logger
}

func New(paths []string, debounce time.Duration, onChange func(paths []string), logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		paths:    paths,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}
}

// Run watches until ctx is done. Files are watched through their parent
// directory so editors that replace files on save are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, p := range w.paths {
		if err := w.add(watcher, p); err != nil {
			return err
		}
	}

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = map[string]struct{}{}
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWatchEvent(event.Op) || !w.relevant(event.Name) {
				continue
			}
			if shouldAddWatchDir(event) {
				if err := watchDirs(watcher, event.Name); err != nil {
					w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
			}

			w.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			w.onChange(changed)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) add(watcher *fsnotify.Watcher, p string) error {
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			w.logger.Debug("not watching missing path", "path", p)
			return nil
		}
		return err
	}
	if info.IsDir() {
		return watchDirs(watcher, p)
	}
	return watcher.Add(filepath.Dir(p))
}

// relevant filters events from sibling files of a watched file.
func (w *Watcher) relevant(name string) bool {
	clean := filepath.Clean(name)
	for _, p := range w.paths {
		p = filepath.Clean(p)
		if clean == p {
			return true
		}
		if rel, err := filepath.Rel(p, clean); err == nil && rel != ".." && !startsWithParent(rel) {
			if info, err := os.Stat(p); err == nil && info.IsDir() {
				return true
			}
		}
	}
	return false
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

func watchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && ShouldSkipDir(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func isWatchEvent(op fsnotify.Op) bool {
	return op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

func shouldAddWatchDir(event fsnotify.Event) bool {
	if event.Op&fsnotify.Create == 0 {
		return false
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return false
	}

	return info.IsDir() && !ShouldSkipDir(info.Name())
}
