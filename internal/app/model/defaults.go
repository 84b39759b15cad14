package model

import "fmt"

// seedProducts is the compiled-in catalog used when the products key is
// absent from the store.
var seedProducts = []struct {
	Name  string
	Price float64
}{
	{"CartFlows", 45},
	{"CodeSnippets + AI", 25},
	{"Convert PRO", 20},
	{"Core Framework Bricks Builder Integration", 20},
	{"Core Framework Oxygen Builder Integration", 20},
	{"Divi Monk", 20},
	{"Divi Supreme", 20},
	{"DiviFlash", 20},
	{"Docus Pro", 20},
	{"Element Pack Pro", 20},
	{"Elementor Pro", 20},
	{"Greenshift – Original License Key", 20},
	{"GutenKit", 19},
	{"Happy Addons", 20},
	{"HappyFiles", 20},
	{"HashBar Pro", 20},
	{"Hide My WP Ghost", 20},
	{"HT Mega Menu", 20},
	{"HT Script Pro – Original License Key", 20},
	{"Hydrogen Pack", 20},
	{"Imagify Pro", 20},
	{"JetFormBuilder Pro", 20},
	{"Just Tables – Original License Key", 20},
	{"Kitpapa", 20},
	{"LoginPress Pro", 20},
	{"MailPoet", 25},
	{"MetaBox Pro", 20},
	{"Email Candy Pro", 20},
	{"Eventin Pro", 20},
	{"Exclusive Addons", 20},
	{"Fluent Forms Pro", 20},
	{"Oxy Ultimate & Woo", 20},
	{"OxyExtras", 20},
	{"Oxygen Builder", 20},
	{"OxyMade", 20},
	{"OxyProps", 20},
	{"Perfmatters", 20},
	{"Ultimate Addons for Beaver Builder", 20},
	{"UltimatePost Kit", 19},
	{"Unlimited Elements", 20},
	{"UpFilter Pro", 20},
	{"Was this Helpful? – Original License Key", 20},
	{"WC Builder", 20},
	{"Whols Pro", 20},
	{"Woolenter Pro", 20},
	{"WowOptin Pro", 20},
	{"WowRevenue Pro", 20},
	{"WP Adminify", 19},
	{"WP All Export Pro", 20},
	{"WP All Import Pro", 20},
	{"WP CodeBox Pro", 20},
	{"Essential Addons for Elementor Pro", 20},
	{"Schema PRO", 20},
	{"Sellkit", 19},
	{"SEOPress Pro", 20},
	{"ShopEngine", 19},
	{"StudioCart Pro", 19},
	{"Swatchly Pro", 20},
	{"Templately Pro", 20},
	{"The Plus Addon For Elementor", 20},
	{"Ultimate Addons", 20},
	{"PowerPack Elements", 20},
	{"Premium Addons Pro", 20},
	{"Prime Slider Pro", 20},
	{"Multi Currency Pro", 20},
	{"Ninja Tables Pro", 20},
	{"NotificationX Pro", 20},
	{"OceanWP Bundle", 20},
	{"Rank Math Pro", 20},
	{"ACPT (Advanced Custom Post Types) Pro", 20},
	{"Advanced Custom Fields (ACF) Pro", 20},
	{"Advanced Scripts Manager", 20},
	{"Bricks Builder", 20},
	{"WP Funnels", 20},
	{"WP Plugin Manager Pro", 20},
	{"WP Portfolio", 20},
	{"WP Reset Pro", 20},
	{"YABE Webfonts", 20},
	{"Zion Builder", 20},
	{"Advanced Themer", 20},
	{"Amelia Booking", 20},
	{"Better Payment Pro", 20},
	{"BetterDocs Pro", 20},
	{"BetterLinks Pro", 20},
	{"Bit Form", 20},
	{"Crocoblock Wizard", 20},
	{"CSS Hero – Original License Key", 25},
	{"Bricks Templates – Original License Key", 25},
	{"Brizy PRO Builder", 25},
	{"Elements Kit – Original License Key", 25},
	{"EmbedPress Pro", 20},
	{"Essential Blocks Pro", 20},
	{"FlyingPress", 25},
	{"JetPlugins", 20},
	{"WP Social", 20},
	{"WP Ultimo (Annual License)", 89},
	{"WPML (Annual)", 20},
	{"Motion.page", 20},
	{"Otter Blocks Pro", 20},
	{"Piotnet Forms", 20},
	{"Notification X Pro", 20},
	{"ProductX Pro (WowStore)", 20},
	{"ReviewX Pro", 20},
	{"SchedulePress Pro", 20},
	{"Smart Slider 3", 25},
	{"Spectra Pro", 20},
	{"The Addon for Elementor", 20},
	{"Tutor LMS Pro", 49},
	{"WP Forms", 25},
}

// DefaultProducts builds the default catalog: deduplicated by name,
// auto-categorized, with generated placeholder images and sequential ids.
func DefaultProducts() []Product {
	seen := make(map[string]bool, len(seedProducts))
	products := make([]Product, 0, len(seedProducts))
	for _, item := range seedProducts {
		if seen[item.Name] {
			continue
		}
		seen[item.Name] = true

		category := Categorize(item.Name)
		products = append(products, Product{
			ID:          fmt.Sprintf("prod_%d", len(products)+1),
			Name:        item.Name,
			Price:       item.Price,
			Category:    category,
			Description: fmt.Sprintf("Premium license key for %s. Instant digital delivery.", item.Name),
			Image:       PlaceholderImage(item.Name, category),
		})
	}
	return products
}

// DefaultPages returns the compiled-in static pages
func DefaultPages() []Page {
	return []Page{
		{ID: "page_privacy", Title: "Privacy Policy", Slug: "privacy-policy", Content: "This is the Privacy Policy content. You can edit this in the Admin Dashboard."},
		{ID: "page_terms", Title: "Terms of Service", Slug: "terms-of-service", Content: "This is the Terms of Service content. You can edit this in the Admin Dashboard."},
		{ID: "page_dmca", Title: "DMCA", Slug: "dmca", Content: "This is the DMCA content. You can edit this in the Admin Dashboard."},
		{ID: "page_cookie", Title: "Cookie Policy", Slug: "cookie-policy", Content: "This is the Cookie Policy content. You can edit this in the Admin Dashboard."},
	}
}

// DefaultBlogPosts returns the compiled-in blog articles
func DefaultBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID:       "post_1",
			Title:    "Top 10 WordPress Plugins for 2024",
			Slug:     "top-10-wordpress-plugins-2024",
			Excerpt:  "Discover the essential plugins every WordPress site owner needs to boost performance and SEO.",
			Content:  "This is a dummy blog post content. You can edit it in the admin dashboard. Listing the top plugins...",
			Date:     "2024-03-15",
			Author:   "Admin",
			Category: "Guides",
			Image:    "https://images.unsplash.com/photo-1555066931-4365d14bab8c?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:       "post_2",
			Title:    "How to Optimize Core Web Vitals",
			Slug:     "optimize-core-web-vitals",
			Excerpt:  "Learn how to improve your LCP, FID, and CLS scores using premium caching plugins.",
			Content:  "Detailed guide on optimizing Core Web Vitals...",
			Date:     "2024-03-10",
			Author:   "Admin",
			Category: "Performance",
			Image:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:       "post_3",
			Title:    "Elementor vs Bricks Builder: Which is Better?",
			Slug:     "elementor-vs-bricks",
			Excerpt:  "A comprehensive comparison of the two most popular WordPress page builders.",
			Content:  "Comparing features, performance, and pricing...",
			Date:     "2024-03-05",
			Author:   "Admin",
			Category: "Reviews",
			Image:    "https://images.unsplash.com/photo-1507238691740-187a5b1d37b8?auto=format&fit=crop&w=800&q=80",
		},
	}
}
