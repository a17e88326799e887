package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // attribute key used for tag filtering

// filteringHandler drops records by tag or originating package before
// handing them to the base handler.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	if pkg := recordPackage(r); pkg != "" {
		if inSet(h.cfg.disabledPackagesSet, pkg) {
			return nil
		}
		if h.cfg.enabledPackagesSet != nil && !inSet(h.cfg.enabledPackagesSet, pkg) {
			return nil
		}
	}

	tag, tagged := recordTag(r)
	switch {
	case tagged && inSet(h.cfg.disabledTagsSet, tag):
		return nil
	case tagged && h.cfg.enabledTagsSet != nil && !inSet(h.cfg.enabledTagsSet, tag):
		return nil
	case !tagged && h.cfg.enabledTagsSet != nil:
		// Only tagged messages pass when specific tags are enabled.
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}

func inSet(set map[string]struct{}, key string) bool {
	if set == nil {
		return false
	}
	_, ok := set[key]
	return ok
}

// recordPackage returns the lowercased directory name of the caller.
func recordPackage(r slog.Record) string {
	if r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
}

func recordTag(r slog.Record) (string, bool) {
	var tag string
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			found = true
			return false
		}
		return true
	})
	return tag, found
}
