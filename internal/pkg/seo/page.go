package seo

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/a-h/templ"

	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/internal/pkg/env"
	"github.com/harsoyo/notaris-web/internal/pkg/utils"
)

const defaultSite = "https://harsoyonotarisppat.com"

// SiteURL is the canonical origin without a trailing slash.
func SiteURL() string {
	return strings.TrimRight(env.GetEnv("PUBLIC_DOMAIN", defaultSite), "/")
}

// Page carries the head metadata and structured data of one rendered page.
type Page struct {
	Title       string
	Description string
	Keywords    string
	Path        string
	Image       string
	Crumbs      []Crumb
	Schemas     []Schema
}

// Canonical returns the absolute URL of the page.
func (p Page) Canonical() string {
	return SiteURL() + p.Path
}

// JSONLD renders every schema as an application/ld+json script element.
func (p Page) JSONLD(ctx context.Context) (template.HTML, error) {
	var b strings.Builder
	for i, s := range p.Schemas {
		script := templ.JSONScript(fmt.Sprintf("ld-%d", i), s).WithType("application/ld+json")
		html, err := templ.ToGoHTML(ctx, script)
		if err != nil {
			return "", err
		}
		b.WriteString(string(html))
	}
	return template.HTML(b.String()), nil
}

var home = Crumb{Label: "Beranda", URL: "/"}

func HomePage() Page {
	site := SiteURL()
	crumbs := []Crumb{home}
	return Page{
		Title:       "Notaris dan PPAT Tegal, Jawa Tengah - " + Notary + " | Layanan Hukum Terpercaya",
		Description: "Kantor Notaris dan PPAT Harsoyo di Tegal, Jawa Tengah. Melayani jasa notaris, pembuatan akta notaris, sertifikat tanah, legalisasi dokumen, dan konsultasi hukum profesional.",
		Keywords:    "notaris dan ppat, notaris tegal, notaris jawa tengah, ppat tegal, ppat jawa tengah, harsoyo notaris tegal, harsoyo notaris jawa tengah, pengurusan sertifikat tanah, legalisasi dokumen, kantor notaris tegal, biaya notaris tegal",
		Path:        "/",
		Crumbs:      crumbs,
		Schemas:     []Schema{LegalService(site), WebSite(site), BreadcrumbList(site, crumbs)},
	}
}

func AboutPageMeta() Page {
	site := SiteURL()
	crumbs := []Crumb{home, {Label: "Tentang Kami", URL: "/about"}}
	return Page{
		Title:       "Tentang Kami - Notaris & PPAT " + Notary + " | Tegal, Jawa Tengah",
		Description: Notary + " adalah Notaris & PPAT profesional di Tegal, Jawa Tengah dengan pengalaman luas. Spesialis pembuatan akta otentik, pendirian PT/CV, balik nama sertifikat, dan layanan hukum lainnya.",
		Keywords:    "tentang notaris tegal, profil harsoyo, notaris ppat tegal, pengalaman notaris, jasa hukum profesional, sejarah kantor notaris, visi misi notaris, notaris jawa tengah",
		Path:        "/about",
		Crumbs:      crumbs,
		Schemas:     []Schema{AboutPage(), BreadcrumbList(site, crumbs)},
	}
}

func ServicesPage() Page {
	site := SiteURL()
	crumbs := []Crumb{home, {Label: "Layanan", URL: "/services"}}
	return Page{
		Title:       "Layanan Notaris dan PPAT di Tegal - " + Notary + " | Jasa Hukum Profesional",
		Description: "Layanan lengkap Notaris dan PPAT di Tegal, Jawa Tengah. Pembuatan akta notaris, pengurusan sertifikat tanah, legalisasi dokumen, pendirian PT/CV, dan konsultasi hukum profesional.",
		Keywords:    "layanan notaris tegal, jasa ppat tegal, pembuatan akta notaris, pengurusan sertifikat tanah, legalisasi dokumen, pendirian pt, akta jual beli, hak tanggungan, notaris profesional tegal",
		Path:        "/services",
		Crumbs:      crumbs,
		Schemas:     []Schema{Service(), BreadcrumbList(site, crumbs)},
	}
}

func ArticlesPage(articles []models.Article) Page {
	site := SiteURL()
	crumbs := []Crumb{home, {Label: "Artikel", URL: "/articles"}}
	schemas := []Schema{CollectionPage(site), BreadcrumbList(site, crumbs)}
	if len(articles) > 0 {
		schemas = append(schemas, FAQPage(articles))
	}
	return Page{
		Title:       "Artikel Hukum & Notaris Tegal - " + Notary + " | Informasi Legal Terbaru",
		Description: "Kumpulan artikel informatif tentang hukum, notaris, dan PPAT dari Notaris Harsoyo di Tegal, Jawa Tengah. Informasi terbaru tentang jasa notaris, ppat, pengurusan sertifikat tanah, dan layanan hukum profesional.",
		Keywords:    "artikel notaris tegal, artikel hukum jawa tengah, informasi ppat, blog notaris, artikel legal, konsultasi hukum tegal, jasa notaris, layanan ppat, sertifikat tanah, hukum properti",
		Path:        "/articles",
		Crumbs:      crumbs,
		Schemas:     schemas,
	}
}

func ArticleDetailPage(a *models.Article) Page {
	site := SiteURL()
	path := "/articles/" + a.Slug
	crumbs := []Crumb{home, {Label: "Artikel", URL: "/articles"}, {Label: a.Title, URL: path}}

	description := a.Description
	if description == "" {
		description = "Artikel tentang " + a.Title + " oleh Notaris dan PPAT Harsoyo di Tegal, Jawa Tengah. Dapatkan informasi hukum terkini dari notaris profesional."
	}

	p := Page{
		Title:       a.Title + " - Notaris & PPAT Harsoyo Tegal",
		Description: utils.Truncate(description, 300),
		Keywords:    a.Title + ", notaris tegal, ppat tegal, artikel hukum, konsultasi hukum jawa tengah, harsoyo notaris",
		Path:        path,
		Crumbs:      crumbs,
		Schemas:     []Schema{Article(site, a), BreadcrumbList(site, crumbs)},
	}
	if a.HasImage() {
		p.Image = *a.ImageURL
	}
	return p
}

// NotFoundPage describes the page shown for an unknown article slug.
func NotFoundPage() Page {
	return Page{
		Title:       "Artikel tidak ditemukan - Notaris & PPAT Harsoyo Tegal",
		Description: "Artikel yang Anda cari tidak ditemukan.",
		Path:        "/articles",
		Crumbs:      []Crumb{home, {Label: "Artikel", URL: "/articles"}},
	}
}

func LoginPage() Page {
	return Page{
		Title:       "Login - Notaris & PPAT Harsoyo Tegal",
		Description: "Halaman masuk pengelola artikel.",
		Path:        "/login",
	}
}
