package i18n

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 100 * time.Millisecond

// Watch reloads b from dir whenever a locale file is written. It blocks until
// ctx is cancelled and is meant for dev mode only.
func (b *Bundle) Watch(ctx context.Context, dir string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	logger.Info("watching locales", zap.String("dir", dir))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".json") || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// editors write in bursts; reload once the burst settles
			pending = time.After(reloadDebounce)
		case <-pending:
			pending = nil
			next, err := Load(os.DirFS(dir), b.fallback, All)
			if err != nil {
				logger.Warn("locale reload failed", zap.Error(err), zap.String("dir", filepath.Clean(dir)))
				continue
			}
			b.Replace(next)
			logger.Info("locales reloaded")
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("locale watcher error", zap.Error(err))
		}
	}
}
