package seo

import (
	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/internal/pkg/utils"
)

// Schema is one schema.org JSON-LD object.
type Schema map[string]any

const (
	OfficeName = "Kantor Notaris dan PPAT Harsoyo"
	Notary     = "Harsoyo, S.IP, SH., MKn"
	Telephone  = "+6285742419333"
	Hours      = "Mo-Fr 08:00-16:00"
	AreaServed = "Tegal, Jawa Tengah"
)

func address() Schema {
	return Schema{
		"@type":           "PostalAddress",
		"streetAddress":   "JL. Hasyim Dirjo Subroto Desa Wangandawa",
		"addressLocality": "Talang",
		"addressRegion":   "Jawa Tengah",
		"addressCountry":  "ID",
	}
}

func withContext(s Schema) Schema {
	s["@context"] = "https://schema.org"
	return s
}

// Crumb is one breadcrumb entry; URL is a site path such as "/about".
type Crumb struct {
	Label string
	URL   string
}

func BreadcrumbList(site string, crumbs []Crumb) Schema {
	items := make([]Schema, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, Schema{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Label,
			"item":     site + c.URL,
		})
	}
	return withContext(Schema{
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}

func LegalService(site string) Schema {
	return withContext(Schema{
		"@type":       "LegalService",
		"name":        OfficeName,
		"description": "Kantor Notaris dan PPAT di Tegal, Jawa Tengah yang melayani jasa notaris dan PPAT profesional",
		"url":         site,
		"address":     address(),
		"geo": Schema{
			"@type":     "GeoCoordinates",
			"latitude":  "-6.866667",
			"longitude": "109.133333",
		},
		"openingHours": Hours,
		"telephone":    Telephone,
		"priceRange":   "Rp500.000 - Rp5.000.000",
		"serviceType": []string{
			"Jasa Notaris",
			"Jasa PPAT",
			"Pembuatan Akta Notaris",
			"Pengurusan Sertifikat Tanah",
			"Legalisasi Dokumen",
			"Konsultasi Hukum",
		},
	})
}

func WebSite(site string) Schema {
	return withContext(Schema{
		"@type":       "WebSite",
		"name":        "Harsoyo Notaris dan PPAT",
		"description": "Kantor Notaris dan PPAT profesional di Tegal, Jawa Tengah",
		"url":         site,
		"potentialAction": Schema{
			"@type": "SearchAction",
			"target": Schema{
				"@type":       "EntryPoint",
				"urlTemplate": site + "/articles?search={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	})
}

func AboutPage() Schema {
	return withContext(Schema{
		"@type":       "AboutPage",
		"name":        "Tentang Kami - Notaris & PPAT " + Notary,
		"description": "Kantor Notaris & PPAT " + Notary + " di Tegal, Jawa Tengah dengan pengalaman luas dalam pelayanan hukum profesional.",
		"mainEntity": Schema{
			"@type":       "LegalService",
			"name":        "Kantor Notaris & PPAT " + Notary,
			"description": "Notaris dan PPAT profesional di Tegal, Jawa Tengah dengan pengalaman melayani pembuatan akta otentik, pendirian PT/CV, balik nama sertifikat, dan konsultasi hukum.",
			"areaServed":  AreaServed,
			"knowsAbout": []string{
				"Hukum Notaris",
				"Pendirian PT dan CV",
				"Balik Nama Sertifikat",
				"Akta Otentik",
				"Hukum Perdata",
				"Legal Drafting",
				"PPAT Tegal",
			},
			"address":      address(),
			"telephone":    Telephone,
			"openingHours": []string{Hours},
			"employee": Schema{
				"@type":    "Person",
				"name":     Notary,
				"jobTitle": "Notaris & PPAT",
				"qualifications": []string{
					"Sarjana Ilmu Politik (S.IP)",
					"Sarjana Hukum (S.H.)",
					"Magister Kenotariatan (M.Kn.)",
				},
			},
		},
	})
}

func offer(name, description string) Schema {
	return Schema{
		"@type": "Offer",
		"itemOffered": Schema{
			"@type":       "Service",
			"name":        name,
			"description": description,
		},
	}
}

func Service() Schema {
	return withContext(Schema{
		"@type":       "Service",
		"name":        "Layanan Notaris dan PPAT",
		"description": "Layanan profesional Notaris dan PPAT di Tegal, Jawa Tengah meliputi pembuatan akta notaris, pengurusan sertifikat tanah, dan berbagai jasa hukum lainnya",
		"provider": Schema{
			"@type":   "LegalService",
			"name":    OfficeName,
			"address": address(),
		},
		"areaServed": AreaServed,
		"hasOfferCatalog": Schema{
			"@type": "OfferCatalog",
			"name":  "Layanan Notaris dan PPAT",
			"itemListElement": []Schema{
				offer("Layanan Notaris", "Pembuatan akta notaris, legalisasi dokumen, pendirian PT, surat wasiat, dan perjanjian kontrak"),
				offer("Layanan PPAT", "Pengurusan sertifikat tanah, peralihan hak atas tanah, pendaftaran hak tanggungan, akta jual beli"),
			},
		},
	})
}

func CollectionPage(site string) Schema {
	return withContext(Schema{
		"@type":       "CollectionPage",
		"name":        "Artikel Hukum & Notaris - " + Notary,
		"description": "Kumpulan artikel informatif tentang hukum, notaris, dan PPAT dari Notaris Harsoyo di Tegal, Jawa Tengah.",
		"url":         site + "/articles",
		"publisher": Schema{
			"@type":   "LegalService",
			"name":    OfficeName,
			"address": address(),
		},
	})
}

// FAQPage lists the articles as question and answer pairs.
func FAQPage(articles []models.Article) Schema {
	entities := make([]Schema, 0, len(articles))
	for _, a := range articles {
		answer := utils.Truncate(utils.PlainText(a.Body), 250)
		if answer == "" {
			answer = "Artikel tentang " + a.Title + " oleh Notaris dan PPAT Harsoyo di Tegal, Jawa Tengah."
		}
		entities = append(entities, Schema{
			"@type": "Question",
			"name":  a.Title,
			"acceptedAnswer": Schema{
				"@type": "Answer",
				"text":  answer,
			},
		})
	}
	return withContext(Schema{
		"@type":      "FAQPage",
		"mainEntity": entities,
	})
}

func Article(site string, a *models.Article) Schema {
	s := Schema{
		"@type":         "Article",
		"headline":      a.Title,
		"description":   a.Description,
		"datePublished": a.UploadDate,
		"dateModified":  a.LastModifiedDate(),
		"author": Schema{
			"@type": "Person",
			"name":  a.AuthorOrDefault(),
		},
		"publisher": Schema{
			"@type": "Organization",
			"name":  OfficeName,
			"url":   site,
			"logo": Schema{
				"@type": "ImageObject",
				"url":   site + "/android-chrome-512x512.png",
			},
		},
		"mainEntityOfPage": Schema{
			"@type": "WebPage",
			"@id":   site + "/articles/" + a.Slug,
		},
	}
	if a.HasImage() {
		s["image"] = *a.ImageURL
	}
	return withContext(s)
}
