package model

// Page is a static content page ("/page/{slug}")
type Page struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"` // derived from title when not supplied
	Content string `json:"content"`
}

// BlogPost is a blog article ("/blog/{slug}")
type BlogPost struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Excerpt        string `json:"excerpt"`
	Content        string `json:"content"`
	Author         string `json:"author"`
	Date           string `json:"date"` // YYYY-MM-DD
	Image          string `json:"image,omitempty"`
	Category       string `json:"category"`
	SEOTitle       string `json:"seoTitle,omitempty"`
	SEODescription string `json:"seoDescription,omitempty"`
}
