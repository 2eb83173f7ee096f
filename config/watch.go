package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch reloads path each time it is written or replaced and passes every
// valid result to onChange. A file that fails to load is logged and the
// previous settings stay in effect. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer w.Close()

	// Editors often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(abs)
			if err != nil {
				log.Warn().Err(err).Str("path", abs).Msg("config reload rejected")
				continue
			}
			log.Info().Str("path", abs).Msg("config reloaded")
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("path", abs).Msg("config watch")
		}
	}
}
