package file

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Namespace is a read-only namespace backed by a YAML or JSON document.
// JSON documents (comments allowed) are queried in place with gjson;
// YAML documents are decoded once per load.
type Namespace struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger

	mu     sync.RWMutex
	doc    []byte
	values map[string]any
}

type Option func(*Namespace)

// WithDebounce sets how long Watch waits for writes to settle before reloading.
func WithDebounce(d time.Duration) Option {
	return func(n *Namespace) {
		n.debounce = d
	}
}

// WithLogger sets the logger used for reload diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Namespace) {
		n.logger = logger
	}
}

// New loads the document at path.
func New(path string, opts ...Option) (*Namespace, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	n := &Namespace{
		path:     abs,
		debounce: 100 * time.Millisecond,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	if err := n.Reload(); err != nil {
		return nil, err
	}
	return n, nil
}

// Path returns the absolute path of the backing document.
func (n *Namespace) Path() string {
	return n.path
}

// Reload re-reads the document. On error the previous contents stay active.
func (n *Namespace) Reload() error {
	data, err := os.ReadFile(n.path)
	if err != nil {
		return fmt.Errorf("failed to read namespace file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(n.path)) {
	case ".json", ".jsonc":
		doc := jsonc.ToJSON(data)
		if !gjson.ValidBytes(doc) || !gjson.ParseBytes(doc).IsObject() {
			return fmt.Errorf("namespace file %s must contain a JSON object", filepath.Base(n.path))
		}
		n.mu.Lock()
		n.doc, n.values = doc, nil
		n.mu.Unlock()
	default:
		values := map[string]any{}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(n.path), err)
		}
		n.mu.Lock()
		n.doc, n.values = nil, values
		n.mu.Unlock()
	}
	return nil
}

// Lookup returns the top-level member called name.
func (n *Namespace) Lookup(_ context.Context, name string) (any, bool, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.doc != nil {
		r := gjson.GetBytes(n.doc, gjson.Escape(name))
		if !r.Exists() {
			return nil, false, nil
		}
		return r.Value(), true, nil
	}
	v, ok := n.values[name]
	return v, ok, nil
}

// Watch reloads the document whenever it changes on disk and signals each
// successful reload. The channel is closed when ctx is done.
func (n *Namespace) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace files via rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(n.path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		var timerC <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				n.logger.Warn("Namespace watcher error", "path", n.path, "err", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != n.path {
					continue
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				timerC = time.After(n.debounce)
			case <-timerC:
				timerC = nil
				if err := n.Reload(); err != nil {
					n.logger.Warn("Namespace reload failed", "path", n.path, "err", err)
					continue
				}
				n.logger.Info("Namespace reloaded", "path", n.path)
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
