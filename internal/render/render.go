package render

import "strings"

// Markdown renders markdown content for terminal display.
func Markdown(content string, opts Options) (string, error) {
	return rendererFor(opts).render(opts, content)
}

// Reply renders a webhook reply, falling back to the raw text when glamour
// fails. Surrounding blank lines added by glamour are trimmed.
func Reply(content string, opts Options) string {
	rendered, err := Markdown(content, opts)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}
