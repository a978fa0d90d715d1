package format

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/grovetools/playground/pkg/models"
)

// Default returns the built-in formatter: markup is re-indented from its
// token stream, style and script are reprinted by esbuild.
func Default() Formatter {
	return WithWidth(DefaultWidth)
}

// WithWidth is Default with a different markup line width.
func WithWidth(width int) Formatter {
	return Func(func(text string, lang models.Language) (string, error) {
		if strings.TrimSpace(text) == "" {
			return text, nil
		}
		switch lang {
		case models.LangHTML:
			return Markup(text, width)
		case models.LangCSS:
			return transform(text, api.LoaderCSS, lang)
		case models.LangJS:
			return transform(text, api.LoaderJS, lang)
		}
		return "", fmt.Errorf("no formatter for language %q", lang)
	})
}

// transform reprints text with esbuild. Comments are kept by passing them
// through as legal comments; esbuild only keeps those in statement and rule
// position, so when any comment would still be dropped the text is refused.
func transform(text string, loader api.Loader, lang models.Language) (string, error) {
	spans := commentSpans(text, lang)
	if len(spans) == 0 {
		return reprint(text, loader)
	}
	if strings.Contains(text, keepMark) {
		return "", fmt.Errorf("cannot format source containing %q", keepMark)
	}

	out, err := reprint(markComments(text, spans), loader)
	if err != nil {
		// Report positions against the unmarked text.
		if _, plainErr := reprint(text, loader); plainErr != nil {
			return "", plainErr
		}
		return "", err
	}
	out = unmarkComments(out)
	if lost := len(spans) - len(commentSpans(out, lang)); lost > 0 {
		return "", fmt.Errorf("formatting would drop %d of %d comments", lost, len(spans))
	}
	return out, nil
}

func reprint(text string, loader api.Loader) (string, error) {
	result := api.Transform(text, api.TransformOptions{
		Loader:        loader,
		Charset:       api.CharsetUTF8,
		LegalComments: api.LegalCommentsInline,
	})
	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, m := range result.Errors {
			if m.Location != nil {
				msgs = append(msgs, fmt.Sprintf("line %d:%d: %s", m.Location.Line, m.Location.Column, m.Text))
			} else {
				msgs = append(msgs, m.Text)
			}
		}
		return "", fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return string(result.Code), nil
}
