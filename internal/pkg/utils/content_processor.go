package utils

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type tagStyle struct {
	re    *regexp.Regexp
	class string
}

// Tailwind classes per tag. The attribute group only matches after whitespace,
// so <p> never matches <pre>.
var tagStyles = func() []tagStyle {
	classes := []struct{ tag, class string }{
		{"h1", "text-4xl font-bold mb-4 mt-6"},
		{"h2", "text-3xl font-bold mb-3 mt-5"},
		{"h3", "text-2xl font-bold mb-2 mt-4"},
		{"h4", "text-xl font-bold mb-2 mt-3"},
		{"h5", "text-lg font-bold mb-1 mt-2"},
		{"h6", "text-base font-bold mb-1 mt-2"},
		{"p", "mb-4 text-gray-700 leading-relaxed"},
		{"ul", "list-disc list-inside mb-4 ml-4 space-y-2"},
		{"ol", "list-decimal list-inside mb-4 ml-4 space-y-2"},
		{"li", "text-gray-700"},
		{"blockquote", "border-l-4 border-amber-600 pl-4 italic mb-4 text-gray-600"},
		{"table", "table-auto w-full mb-4 border"},
		{"code", "bg-gray-100 px-2 py-1 rounded text-sm font-mono"},
		{"pre", "bg-gray-100 p-4 rounded-lg mb-4 overflow-x-auto"},
		{"a", "text-amber-700 underline"},
		{"strong", "font-bold"},
		{"em", "italic"},
		{"img", "rounded-lg my-4 max-w-full h-auto"},
	}
	out := make([]tagStyle, 0, len(classes))
	for _, c := range classes {
		out = append(out, tagStyle{
			re:    regexp.MustCompile(`<` + c.tag + `(\s[^>]*)?>`),
			class: c.class,
		})
	}
	return out
}()

var articlePolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("style").OnElements("span", "p")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

// SanitizeHTML strips scripts, event handlers and unknown elements from
// editor output.
func SanitizeHTML(content string) string {
	return articlePolicy.Sanitize(content)
}

// ProcessHTMLContent adds Tailwind classes to HTML elements
func ProcessHTMLContent(content string) string {
	processed := content
	for _, style := range tagStyles {
		processed = style.re.ReplaceAllStringFunc(processed, func(tag string) string {
			// Only replace if the element doesn't already have a class attribute
			if strings.Contains(tag, "class=") {
				return tag
			}
			closing := ">"
			body := tag[:len(tag)-1]
			if strings.HasSuffix(body, "/") {
				body = strings.TrimSuffix(body, "/")
				closing = "/>"
			}
			return body + ` class="` + style.class + `"` + closing
		})
	}
	return processed
}

// ArticleHTML sanitizes and styles an article body for direct output.
func ArticleHTML(content string) template.HTML {
	return template.HTML(ProcessHTMLContent(SanitizeHTML(content)))
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// PlainText strips tags and collapses whitespace, for meta descriptions and previews.
func PlainText(content string) string {
	return strings.Join(strings.Fields(tagRe.ReplaceAllString(content, " ")), " ")
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
