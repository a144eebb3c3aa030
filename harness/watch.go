package harness

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch runs day once, then again every time its input file is written,
// passing each batch of results to onResults. It returns when ctx is
// cancelled or the watcher shuts down.
//
// The parent directory is watched rather than the file, so saves that
// replace the file through a rename are seen like plain writes.
//
// A failed re-run (for example a half-written file that cannot be read) is
// logged and skipped; the previous results stand.
func (r *Runner) Watch(ctx context.Context, day int, parts []Part, onResults func([]Result)) error {
	path := filepath.Clean(r.inputs.Path(day))
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("harness: watch day %d: %w", day, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	r.log.Info().Str("path", path).Int("day", day).Msg("watching input")

	rerun := func() {
		res, err := r.Run(ctx, day, parts...)
		if err != nil {
			r.log.Error().Err(err).Int("day", day).Msg("re-run failed, keeping previous results")
			return
		}
		onResults(res)
	}
	rerun()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			// A rename onto path arrives as Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			r.log.Debug().Str("path", path).Str("op", event.Op.String()).Msg("input changed")
			rerun()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Error().Err(err).Msg("watcher error")
		}
	}
}
