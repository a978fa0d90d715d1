package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upper upper-cases every channel except those listed as failing.
func upper(failing ...models.Language) Formatter {
	return Func(func(text string, lang models.Language) (string, error) {
		for _, l := range failing {
			if l == lang {
				return "", fmt.Errorf("syntax error in %s", lang)
			}
		}
		return strings.ToUpper(text), nil
	})
}

var original = models.Snapshot{Markup: "<p>a</p>", Style: "p{}", Script: "x()"}

func TestApplySuccess(t *testing.T) {
	for _, policy := range []Policy{AllOrNothing, PerChannel} {
		got, err := Apply(original, upper(), policy)
		require.NoError(t, err)
		assert.Equal(t, models.Snapshot{Markup: "<P>A</P>", Style: "P{}", Script: "X()"}, got)
	}
}

func TestApplyAllOrNothing(t *testing.T) {
	got, err := Apply(original, upper(models.LangCSS), AllOrNothing)
	require.Error(t, err)
	assert.Equal(t, original, got)
	assert.True(t, errors.Is(err, errors.ErrCodeFormatFailed))
	assert.Contains(t, err.Error(), "CSS")
}

func TestApplyPerChannel(t *testing.T) {
	got, err := Apply(original, upper(models.LangCSS, models.LangJS), PerChannel)
	require.Error(t, err)
	assert.Equal(t, models.Snapshot{Markup: "<P>A</P>", Style: "p{}", Script: "x()"}, got)
	assert.Contains(t, err.Error(), "CSS")
	assert.Contains(t, err.Error(), "JS")
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, AllOrNothing, p)

	p, err = ParsePolicy("per-channel")
	require.NoError(t, err)
	assert.Equal(t, PerChannel, p)

	_, err = ParsePolicy("best-effort")
	assert.Error(t, err)
}

func TestDefaultFormatter(t *testing.T) {
	f := Default()

	css, err := f.Format("b{color:red}", models.LangCSS)
	require.NoError(t, err)
	assert.Equal(t, "b {\n  color: red;\n}\n", css)

	js, err := f.Format("let  x=1", models.LangJS)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", js)

	_, err = f.Format("function (", models.LangJS)
	assert.Error(t, err)

	markup, err := f.Format("<div><p>hi</p></div>", models.LangHTML)
	require.NoError(t, err)
	assert.Equal(t, "<div>\n  <p>hi</p>\n</div>\n", markup)

	blank, err := f.Format("  \n", models.LangJS)
	require.NoError(t, err)
	assert.Equal(t, "  \n", blank)
}

func TestDefaultFormatterKeepsComments(t *testing.T) {
	f := Default()

	js, err := f.Format("// init the counter\nlet n = 0; /* bump */ n++\n", models.LangJS)
	require.NoError(t, err)
	assert.Contains(t, js, "// init the counter")
	assert.Contains(t, js, "/* bump */")
	assert.Contains(t, js, "let n = 0;")
	assert.NotContains(t, js, keepMark)

	css, err := f.Format("/* header */\nbody{margin:0}\n", models.LangCSS)
	require.NoError(t, err)
	assert.Contains(t, css, "/* header */")
	assert.Contains(t, css, "margin: 0;")
	assert.NotContains(t, css, keepMark)

	legal, err := f.Format("/*! MIT */\nlet a=1\n", models.LangJS)
	require.NoError(t, err)
	assert.Contains(t, legal, "/*! MIT */")
}

func TestDefaultFormatterRefusesToDropComments(t *testing.T) {
	f := Default()
	src := "body {\n  /* reset */\n  margin: 0;\n}\n"

	_, err := f.Format(src, models.LangCSS)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drop 1 of 1 comments")

	snap := models.Snapshot{Markup: "<p>a</p>", Style: src, Script: "let  x=1"}
	got, err := Apply(snap, f, AllOrNothing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFormatFailed))
	assert.Equal(t, snap, got)
}

func TestCommentSpans(t *testing.T) {
	tests := []struct {
		name string
		src  string
		lang models.Language
		want []string
	}{
		{"line and block", "// a\nx = 1 /* b */\n", models.LangJS, []string{"// a", "/* b */"}},
		{"inside strings", `s = "// no" + '/* no */' + ` + "`/* no */`", models.LangJS, nil},
		{"regex literal", "r = /\\/*x/g; // yes\n", models.LangJS, []string{"// yes"}},
		{"regex after return", "return /[/*]/.test(s) /* yes */", models.LangJS, []string{"/* yes */"}},
		{"division", "a = b / c // yes\n", models.LangJS, []string{"// yes"}},
		{"unterminated block", "x /* open", models.LangJS, []string{"/* open"}},
		{"css url is not a comment", "a { background: url(//cdn/x.png) } /* yes */", models.LangCSS, []string{"/* yes */"}},
		{"css string", `a::after { content: "/* no */" }`, models.LangCSS, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, sp := range commentSpans(tt.src, tt.lang) {
				got = append(got, tt.src[sp[0]:sp[1]])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkCommentsRoundTrip(t *testing.T) {
	src := "// a\n/*! keep */\nx /* b */"
	marked := markComments(src, commentSpans(src, models.LangJS))
	assert.Equal(t, "//"+keepMark+" a\n/*! keep */\nx /*"+keepMark+" b */", marked)
	assert.Equal(t, src, unmarkComments(marked))
}
