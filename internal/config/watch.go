package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"hwbot/pkg/logx"
)

const watchDebounce = 300 * time.Millisecond

// Watch blocks watching the config file and invokes apply with the freshly
// parsed config after each change. Events are debounced because editors tend
// to emit several writes per save. A file that fails to parse is logged and
// skipped; the previous config stays in effect.
//
// Only the caller decides which sections are hot-applicable.
func Watch(ctx context.Context, path string, log logx.Logger, apply func(*File)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch the directory, not the file: editors and config management tools
	// replace the file, which would orphan a direct watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)

	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
				debounceC = debounce.C
			} else {
				debounce.Reset(watchDebounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watch error", logx.Err(err))

		case <-debounceC:
			cfg, err := LoadFile(path)
			if err != nil {
				log.Warn("config reload failed, keeping previous", logx.Err(err))
				continue
			}
			log.Info("config reloaded", logx.String("path", path))
			apply(cfg)
		}
	}
}
