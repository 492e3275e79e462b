package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessHTMLContent(t *testing.T) {
	in := `<h2>Akta</h2><p>Isi</p><pre>x</pre><p class="lead">Tetap</p>`
	out := ProcessHTMLContent(in)

	assert.Contains(t, out, `<h2 class="text-3xl font-bold mb-3 mt-5">Akta</h2>`)
	assert.Contains(t, out, `<p class="mb-4 text-gray-700 leading-relaxed">Isi</p>`)
	assert.Contains(t, out, `<pre class="bg-gray-100 p-4 rounded-lg mb-4 overflow-x-auto">x</pre>`)
	assert.Contains(t, out, `<p class="lead">Tetap</p>`)
}

func TestProcessHTMLContentKeepsAttributes(t *testing.T) {
	out := ProcessHTMLContent(`<a href="https://example.com">x</a>`)
	assert.Equal(t, `<a href="https://example.com" class="text-amber-700 underline">x</a>`, out)
}

func TestProcessHTMLContentSelfClosing(t *testing.T) {
	out := ProcessHTMLContent(`<img src="a.png"/>`)
	assert.Equal(t, `<img src="a.png" class="rounded-lg my-4 max-w-full h-auto"/>`, out)
}

func TestSanitizeHTMLStripsScripts(t *testing.T) {
	out := SanitizeHTML(`<p onclick="x()">Halo</p><script>alert(1)</script>`)
	assert.Equal(t, `<p>Halo</p>`, out)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Jasa notaris di Tegal", PlainText("<p>Jasa <b>notaris</b></p>\n<p>di Tegal</p>"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abcde…", Truncate("abcdefgh", 5))
}
