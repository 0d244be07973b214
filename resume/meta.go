package resume

import "strings"

const (
	DefaultTitle       = "jcheese"
	DefaultDescription = "this is jcheese's website"
	twitterHandle      = "@rideswap"
)

var DefaultKeywords = []string{
	"jcheese", "website", "portfolio", "blog", "projects",
	"work", "experience", "skills", "about", "contact",
}

// MetaInput 是產生社群 meta 標籤所需的資訊，空白欄位使用預設值
type MetaInput struct {
	URL         string
	Title       string
	Description string
	Keywords    string
	Image       string
}

// Meta 對應到頁面 <head> 中的一個標籤，Title 不為空時代表 <title>
type Meta struct {
	Title    string `json:"title,omitempty"`
	Name     string `json:"name,omitempty"`
	Property string `json:"property,omitempty"`
	Content  string `json:"content,omitempty"`
}

// SocialMetas 產生 SEO 與 Open Graph / Twitter 卡片使用的 meta 標籤
func SocialMetas(in MetaInput) []Meta {
	if in.Title == "" {
		in.Title = DefaultTitle
	}
	if in.Description == "" {
		in.Description = DefaultDescription
	}
	if in.Keywords == "" {
		in.Keywords = strings.Join(DefaultKeywords, ", ")
	}
	card := "summary"
	if in.Image != "" {
		card = "summary_large_image"
	}

	metas := []Meta{
		{Title: in.Title},
		{Name: "description", Content: in.Description},
		{Name: "keywords", Content: in.Keywords},
		{Property: "og:url", Content: in.URL},
		{Property: "og:title", Content: in.Title},
		{Property: "og:description", Content: in.Description},
		{Property: "twitter:card", Content: card},
		{Property: "twitter:creator", Content: twitterHandle},
		{Property: "twitter:site", Content: twitterHandle},
		{Property: "twitter:title", Content: in.Title},
		{Property: "twitter:description", Content: in.Description},
		{Property: "twitter:alt", Content: in.Title},
	}
	// 沒有圖片時不輸出空的圖片標籤
	if in.Image != "" {
		metas = append(metas,
			Meta{Name: "image", Content: in.Image},
			Meta{Property: "og:image", Content: in.Image},
			Meta{Property: "twitter:image", Content: in.Image},
		)
	}
	return metas
}
