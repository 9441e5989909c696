package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/reeldesigner/pkg/pipeline"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

// watchDesigns re-renders a design whenever its file is written, until ctx
// is canceled. The parent directories are watched so saves that replace
// the file by rename are still seen.
func (c *CLI) watchDesigns(ctx context.Context, runner *pipeline.Runner, jobs []renderJob, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	byPath := make(map[string]renderJob, len(jobs))
	dirs := map[string]bool{}
	for _, job := range jobs {
		abs, err := filepath.Abs(job.source)
		if err != nil {
			return err
		}
		byPath[abs] = job
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	printInfo("Watching %d design files, press Ctrl+C to stop", len(jobs))

	pending := map[string]renderJob{}
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			job, tracked := byPath[abs]
			if !tracked {
				continue
			}
			pending[abs] = job
			timer.Reset(watchDebounce)

		case <-timer.C:
			batch := make([]renderJob, 0, len(pending))
			for _, job := range pending {
				batch = append(batch, job)
			}
			clear(pending)
			logger.Debug("design files changed", "count", len(batch))

			outcomes, err := c.renderAll(ctx, runner, batch, opts)
			if err != nil {
				return err
			}
			reportOutcomes(outcomes)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)

		case <-ctx.Done():
			printDetail("Stopped watching")
			return nil
		}
	}
}
