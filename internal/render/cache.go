package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererEntry holds one lazily built renderer. glamour.TermRenderer is not
// safe for concurrent Render calls, so each entry serializes its callers.
type rendererEntry struct {
	once     sync.Once
	mu       sync.Mutex
	renderer *glamour.TermRenderer
	err      error
}

func (e *rendererEntry) render(opts Options, content string) (string, error) {
	e.once.Do(func() {
		e.renderer, e.err = newRenderer(opts)
	})
	if e.err != nil {
		return "", e.err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.renderer.Render(content)
}

var (
	renderersMu sync.Mutex
	renderers   = make(map[string]*rendererEntry)
)

func cacheKey(opts Options) string {
	return fmt.Sprintf("%s:%d:%t:%t", opts.Style, opts.Width, opts.EnableEmoji, opts.PreserveNewLines)
}

// rendererFor returns the shared entry for opts, creating it on first use.
// Chat views resize often, so one entry exists per distinct width.
func rendererFor(opts Options) *rendererEntry {
	key := cacheKey(opts)

	renderersMu.Lock()
	defer renderersMu.Unlock()

	e, ok := renderers[key]
	if !ok {
		e = &rendererEntry{}
		renderers[key] = e
	}
	return e
}

// standardStyles are the names glamour resolves without a file
var standardStyles = map[string]bool{
	"ascii":       true,
	"auto":        true,
	"dark":        true,
	"dracula":     true,
	"light":       true,
	"notty":       true,
	"pink":        true,
	"tokyo-night": true,
}

// IsStandardStyle reports whether style is a built-in glamour style name.
func IsStandardStyle(style string) bool {
	return standardStyles[style]
}

// StandardStyles returns the built-in glamour style names, sorted.
func StandardStyles() []string {
	names := make([]string, 0, len(standardStyles))
	for name := range standardStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newRenderer(opts Options) (*glamour.TermRenderer, error) {
	ropts := []glamour.TermRendererOption{glamour.WithWordWrap(opts.Width)}

	switch {
	case opts.Style == "":
		ropts = append(ropts, glamour.WithStandardStyle("dark"))
	case IsStandardStyle(opts.Style):
		ropts = append(ropts, glamour.WithStandardStyle(opts.Style))
	default:
		ropts = append(ropts, glamour.WithStylePath(opts.Style))
	}
	if opts.EnableEmoji {
		ropts = append(ropts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		ropts = append(ropts, glamour.WithPreservedNewLines())
	}

	return glamour.NewTermRenderer(ropts...)
}

// resetRenderers drops every cached renderer.
func resetRenderers() {
	renderersMu.Lock()
	renderers = make(map[string]*rendererEntry)
	renderersMu.Unlock()
}

func rendererCount() int {
	renderersMu.Lock()
	defer renderersMu.Unlock()
	return len(renderers)
}
