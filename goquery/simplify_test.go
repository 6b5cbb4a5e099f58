package goquery_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/novelfetch/goquery"
	"github.com/stretchr/testify/assert"
)

// simplifyFragment simplifies the children of body in a parsed fragment.
func simplifyFragment(t *testing.T, fragment string) string {
	t.Helper()

	doc := newDocument(t, "<html><body>"+fragment+"</body></html>")
	return goquery.Simplify(doc.Find("body").Contents())
}

func TestSimplify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "drops attributes from allowed tags",
			input: `<p class="x" style="color: red">Hello</p>`,
			want:  `<p>Hello</p>`,
		},
		{
			name:  "unwraps disallowed elements",
			input: `<div><p><span>Hello</span></p></div>`,
			want:  `<p>Hello</p>`,
		},
		{
			name:  "trims text nodes",
			input: `<p>  Hello  <a href="/x">world</a>  </p>`,
			want:  `<p>Helloworld</p>`,
		},
		{
			name:  "preserves line breaks at any depth",
			input: `<p><b><i>[Divine Staff of Holy Light]<br>Attributes: Holy, Wind<br>Durability: 100/100</i></b></p>`,
			want:  `<p><b><i>[Divine Staff of Holy Light]<br/>Attributes: Holy, Wind<br/>Durability: 100/100</i></b></p>`,
		},
		{
			name:  "keeps an allowed element holding only a line break",
			input: `<p><br></p>`,
			want:  `<p><br/></p>`,
		},
		{
			name:  "drops empty allowed elements",
			input: `<p><b> </b>Text<i></i></p><p>   </p>`,
			want:  `<p>Text</p>`,
		},
		{
			name:  "escapes markup characters in text",
			input: `<p>a &lt; b &amp;&amp; c &gt; d</p>`,
			want:  `<p>a &lt; b &amp;&amp; c &gt; d</p>`,
		},
		{
			name:  "leaves quotes unescaped",
			input: `<p>“GROUND!!!!!” she said, "again"</p>`,
			want:  `<p>“GROUND!!!!!” she said, "again"</p>`,
		},
		{
			name:  "removes comments",
			input: `<p>Hi<!-- editor note --></p>`,
			want:  `<p>Hi</p>`,
		},
		{
			name:  "keeps headings and lists",
			input: `<section><h3 id="part">Part One</h3><ul class="list"><li>One</li><li> </li></ul><ol><li><strong>Two</strong></li></ol></section>`,
			want:  `<h3>Part One</h3><ul><li>One</li></ul><ol><li><strong>Two</strong></li></ol>`,
		},
		{
			name:  "returns empty string for blank input",
			input: `<div> <span> </span> </div>`,
			want:  ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, simplifyFragment(t, tt.input))
		})
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<p class="x">Hello <b>brave</b> world<br>next</p>`,
		`<div><p><b><i>[Staff]<br>Holy</i></b></p></div>`,
		`<p>a &lt; b &amp; c</p><p><u>under</u><em>em</em></p>`,
		`<article><h2>Title</h2><ol><li>One</li><li><span>Two</span></li></ol></article>`,
		`<p><br></p><p>   </p><p><strong> </strong>x</p>`,
	}

	for _, input := range inputs {
		first := simplifyFragment(t, input)
		second := simplifyFragment(t, first)
		assert.Equal(t, first, second, "input: %s", input)
	}
}

func TestSimplify_OutputVocabulary(t *testing.T) {
	t.Parallel()

	allowed := map[string]bool{
		"p": true, "br": true, "b": true, "i": true, "strong": true, "em": true, "u": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
		"ul": true, "ol": true, "li": true,
	}
	tagPattern := regexp.MustCompile(`</?([a-zA-Z0-9]+)[^>]*>`)
	emptyPattern := regexp.MustCompile(`<(p|b|i|strong|em|u|h[1-6]|ul|ol|li)>\s*</`)

	input := `<div id="chapter"><table><tr><td><p>Cell</p></td></tr></table>
		<figure><img src="x.png"><figcaption><em>Caption</em></figcaption></figure>
		<p><a href="/next"><b></b></a><font color="red">Red</font></p>
		<blockquote><p>Quote<br><sup>1</sup></p></blockquote>
		<ul><li><span></span></li></ul></div>`

	got := simplifyFragment(t, input)

	for _, m := range tagPattern.FindAllStringSubmatch(got, -1) {
		assert.True(t, allowed[m[1]], "disallowed tag %q in %s", m[1], got)
	}
	assert.NotRegexp(t, emptyPattern, got)
	assert.NotContains(t, got, "=", "attributes must be dropped")
	assert.Equal(t, `<p>Cell</p><em>Caption</em><p>Red</p><p>Quote<br/>1</p>`, got)
}
