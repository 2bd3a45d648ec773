// Package watch revalidates a canvas document whenever its file changes and
// publishes the resulting report to live subscribers.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/stencil-design/stencil/internal/loader"
	"github.com/stencil-design/stencil/internal/web/live"
	"github.com/stencil-design/stencil/pattern"
)

// Watcher observes one document file and re-runs validation on change.
type Watcher struct {
	path      string
	debounce  time.Duration
	detector  *pattern.Detector
	validator *pattern.Validator
	hub       *live.Hub
	logger    *zap.Logger

	// OnReport, when set, receives every validation report in addition to
	// the hub broadcast. Used by the CLI to print reports as they happen.
	OnReport func(report pattern.Report, instances []pattern.Instance)
}

// New builds a watcher for the document at path.
func New(path string, registry *pattern.Registry, hub *live.Hub, debounce time.Duration, logger *zap.Logger) *Watcher {
	return &Watcher{
		path:      path,
		debounce:  debounce,
		detector:  pattern.NewDetector(registry),
		validator: pattern.NewValidator(registry),
		hub:       hub,
		logger:    logger,
	}
}

// Run validates the document once, then blocks revalidating on every file
// change until the context is cancelled.
//
// The parent directory is watched rather than the file itself: editors that
// save via rename-and-replace would otherwise drop the watch after the first
// save.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return err
	}

	w.revalidate()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Debounce: editors emit bursts of events per save.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.revalidate()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) revalidate() {
	doc, err := loader.LoadDocument(w.path)
	if err != nil {
		w.logger.Error("load document", zap.String("path", w.path), zap.Error(err))
		w.hub.PublishError(w.path, err)
		return
	}

	instances := w.detector.DetectPatterns(doc)
	report := w.validator.ValidatePatterns(doc)

	w.logger.Info("document validated",
		zap.String("path", w.path),
		zap.Bool("valid", report.Valid),
		zap.Int("instances", len(instances)),
		zap.Int("errors", len(report.Errors)),
		zap.Int("warnings", len(report.Warnings)),
	)

	w.hub.PublishReport(w.path, report, instances)
	if w.OnReport != nil {
		w.OnReport(report, instances)
	}
}
