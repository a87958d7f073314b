package tui

import (
	"fmt"
	"strings"
	"testing"

	apierrors "github.com/galanta/cit/internal/errors"
	"github.com/galanta/cit/internal/render"
)

func TestUpdateTheme(t *testing.T) {
	defer func() {
		render.SetTUITheme(render.CITTheme.Name)
		UpdateTheme()
	}()

	if !render.SetTUITheme("dracula") {
		t.Fatal("dracula theme should exist")
	}
	UpdateTheme()

	if colorPrimary != render.DraculaTheme.Primary {
		t.Errorf("colorPrimary = %v, want %v", colorPrimary, render.DraculaTheme.Primary)
	}
	if colorError != render.DraculaTheme.Error {
		t.Errorf("colorError = %v, want %v", colorError, render.DraculaTheme.Error)
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"nil", nil, nil},
		{
			"api error",
			apierrors.NewAPIErrorWithBody(502, "https://example.test/hook", "webhook returned status 502", "bad gateway"),
			[]string{"502", "https://example.test/hook", "bad gateway"},
		},
		{
			"network error",
			apierrors.NewNetworkError("send", "https://example.test/hook", fmt.Errorf("dial tcp: refused")),
			[]string{"refused", "internet connection"},
		},
		{
			"parse error",
			apierrors.NewParseError("invalid JSON in webhook reply", ""),
			[]string{"invalid JSON", "other than JSON"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			if tt.err == nil && got != "" {
				t.Errorf("FormatError(nil) = %q", got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("FormatError() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestRenderFooter(t *testing.T) {
	out := renderFooter(60)
	if !strings.Contains(out, "Desenvolvido por") || !strings.Contains(out, "Galanta Indústria & Tecnologia") {
		t.Errorf("footer = %q", out)
	}
}
