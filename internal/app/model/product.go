package model

import (
	"fmt"
	"net/url"
	"strings"
)

// Product is a purchasable digital good. Cart lines and wishlist entries
// hold independent copies of the product (snapshot-on-add); editing the
// catalog never retroactively changes them.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"` // base currency (USD)
	Category       string   `json:"category"`
	Description    string   `json:"description,omitempty"`
	Image          string   `json:"image,omitempty"`
	SEOTitle       string   `json:"seoTitle,omitempty"`
	SEODescription string   `json:"seoDescription,omitempty"`
	Reviews        []Review `json:"reviews,omitempty"` // newest first
}

// Review is append-only: never edited or deleted once created
type Review struct {
	ID           string `json:"id"`
	ProductID    string `json:"productId"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"` // 1-5
	Comment      string `json:"comment"`
	Date         string `json:"date"` // ISO timestamp at creation
}

// DefaultCategory is applied when a product is created without one
const DefaultCategory = "Plugins & Tools"

// placeholder image background per category
var categoryColors = map[string]string{
	"Builders & Addons": "2563eb",
	"SEO & Marketing":   "059669",
	"eCommerce":         "7c3aed",
	"Forms & Leads":     "db2777",
	"Performance":       "d97706",
	"Booking & Events":  "dc2626",
	"LMS & Education":   "0891b2",
	"Plugins & Tools":   "475569",
}

// PlaceholderImage builds the default product image URL used when an admin
// creates a product without supplying one.
func PlaceholderImage(name, category string) string {
	color, ok := categoryColors[category]
	if !ok {
		color = categoryColors[DefaultCategory]
	}
	return fmt.Sprintf("https://placehold.co/600x400/%s/ffffff?text=%s", color, url.QueryEscape(name))
}

// Categorize assigns a category from name keywords. A heuristic carried
// over from the seed catalog; admin-supplied categories take precedence.
func Categorize(name string) string {
	n := strings.ToLower(name)
	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(n, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("builder", "bricks", "oxygen", "divi", "elementor", "spectra", "crocoblock", "addon"):
		return "Builders & Addons"
	case contains("seo", "rank math", "schema", "link", "google"):
		return "SEO & Marketing"
	case contains("woo", "shop", "cart", "sellkit", "payment", "revenue"):
		return "eCommerce"
	case contains("form", "login", "optin"):
		return "Forms & Leads"
	case contains("performance", "cache", "perfmatters", "imagify", "flyingpress"):
		return "Performance"
	case contains("booking", "schedule", "event"):
		return "Booking & Events"
	case contains("lms", "tutor", "learn"):
		return "LMS & Education"
	default:
		return DefaultCategory
	}
}
