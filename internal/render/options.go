// Package render turns webhook replies into terminal output and holds the
// color themes of the terminal surfaces.
package render

// minWidth keeps word wrap usable inside narrow chat bubbles
const minWidth = 20

// Options configures how replies are rendered.
type Options struct {
	// Width is the word wrap column
	Width int

	// Style is a glamour standard style name or a path to a JSON style file
	Style string

	// EnableEmoji converts :emoji: to unicode characters
	EnableEmoji bool

	// PreserveNewLines keeps the line breaks of the reply
	PreserveNewLines bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// WithWidth returns a copy wrapping at width, never below minWidth.
func (o Options) WithWidth(width int) Options {
	if width < minWidth {
		width = minWidth
	}
	o.Width = width
	return o
}

// WithStyle returns a copy using style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}
