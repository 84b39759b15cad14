package model

// SocialLinks groups the store's social profile URLs
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// StoreSettings is the singleton store configuration. On load the persisted
// value is shallow-merged over DefaultSettings; on save it is replaced
// wholesale.
type StoreSettings struct {
	StoreName      string `json:"storeName"`
	SiteURL        string `json:"siteUrl"` // needed for the sitemap
	SupportEmail   string `json:"supportEmail"`
	CurrencySymbol string `json:"currencySymbol"` // base currency symbol
	CurrencyCode   string `json:"currencyCode"`   // base currency code
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`

	// SEO & analytics integration
	GoogleAnalyticsID       string `json:"googleAnalyticsId"`
	GoogleSearchConsoleCode string `json:"googleSearchConsoleCode"`
	BingWebmasterCode       string `json:"bingWebmasterCode"`

	// Contact & content
	ContactAddress    string      `json:"contactAddress"`
	ContactPhone      string      `json:"contactPhone"`
	FooterDescription string      `json:"footerDescription"`
	LogoURL           string      `json:"logoUrl,omitempty"`
	PopularCategories []string    `json:"popularCategories"`
	Socials           SocialLinks `json:"socials"`

	// Design & home page
	PrimaryColor    string `json:"primaryColor,omitempty"`
	HeroHeadline    string `json:"heroHeadline,omitempty"`
	HeroSubheadline string `json:"heroSubheadline,omitempty"`

	// Assistant
	AISystemInstruction string `json:"aiSystemInstruction,omitempty"`

	// Per-view SEO overrides
	ShopSEOTitle          string `json:"shopSeoTitle,omitempty"`
	ShopSEODescription    string `json:"shopSeoDescription,omitempty"`
	ContactSEOTitle       string `json:"contactSeoTitle,omitempty"`
	ContactSEODescription string `json:"contactSeoDescription,omitempty"`
	FaviconURL            string `json:"faviconUrl,omitempty"`
}

// DefaultSettings returns the compiled-in store configuration used until an
// admin saves an override.
func DefaultSettings() StoreSettings {
	return StoreSettings{
		StoreName:         "DigiMarket Pro",
		SiteURL:           "https://digimarket.pro",
		SupportEmail:      "support@digimarket.pro",
		CurrencySymbol:    "$",
		CurrencyCode:      "USD",
		SEOTitle:          "DigiMarket Pro - Premium WordPress Tools",
		SEODescription:    "The best marketplace for WordPress plugins, themes, and builder integrations. Instant delivery and verified licenses.",
		ContactAddress:    "123 Digital Avenue, Tech City, Cloud State, 90210",
		ContactPhone:      "+1 (555) 123-4567",
		FooterDescription: "The #1 marketplace for premium digital products, plugins, and themes. Instant delivery and verified quality.",
		PopularCategories: []string{"WordPress Plugins", "Page Builders", "SEO Tools", "eCommerce"},
		Socials: SocialLinks{
			Facebook:  "https://facebook.com",
			Twitter:   "https://twitter.com",
			Instagram: "https://instagram.com",
			LinkedIn:  "https://linkedin.com",
		},
		PrimaryColor:    "#4f46e5",
		HeroHeadline:    "Premium WordPress Tools Without The Premium Price",
		HeroSubheadline: "Get instant access to 100% original, verified license keys for the world's best plugins and themes. Secure, affordable, and developer-friendly.",
	}
}
