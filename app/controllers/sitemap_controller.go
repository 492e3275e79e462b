package controllers

import (
	"encoding/xml"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/harsoyo/notaris-web/internal/pkg/seo"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// HandleSitemap lists the static pages and every article.
func (ac *ArticleController) HandleSitemap(c *fiber.Ctx) error {
	site := seo.SiteURL()
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: site + "/", ChangeFreq: "monthly", Priority: "1.0"},
			{Loc: site + "/about", ChangeFreq: "yearly", Priority: "0.8"},
			{Loc: site + "/services", ChangeFreq: "yearly", Priority: "0.8"},
			{Loc: site + "/articles", ChangeFreq: "weekly", Priority: "0.9"},
		},
	}
	for _, a := range ac.articles.List(c.UserContext()) {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      site + "/articles/" + a.Slug,
			LastMod:  a.LastModifiedDate(),
			Priority: "0.7",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		fiberlog.Errorf("[Sitemap] Failed to encode sitemap: %v", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(append([]byte(xml.Header), out...))
}
