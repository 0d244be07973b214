package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func findMeta(metas []Meta, match func(Meta) bool) (Meta, bool) {
	for _, m := range metas {
		if match(m) {
			return m, true
		}
	}
	return Meta{}, false
}

func TestSocialMetas(t *testing.T) {
	tests := []struct {
		name      string
		input     MetaInput
		wantTitle string
		wantDesc  string
		wantCard  string
		wantImage bool
	}{
		{
			name:      "defaults",
			input:     MetaInput{URL: "https://jcheese.xyz/"},
			wantTitle: DefaultTitle,
			wantDesc:  DefaultDescription,
			wantCard:  "summary",
		},
		{
			name: "custom values with image",
			input: MetaInput{
				URL:         "https://jcheese.xyz/",
				Title:       "Resume",
				Description: "My resume",
				Image:       "https://jcheese.xyz/og.png",
			},
			wantTitle: "Resume",
			wantDesc:  "My resume",
			wantCard:  "summary_large_image",
			wantImage: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metas := SocialMetas(tt.input)
			assert.Equal(t, Meta{Title: tt.wantTitle}, metas[0])

			desc, ok := findMeta(metas, func(m Meta) bool { return m.Name == "description" })
			assert.True(t, ok)
			assert.Equal(t, tt.wantDesc, desc.Content)

			url, ok := findMeta(metas, func(m Meta) bool { return m.Property == "og:url" })
			assert.True(t, ok)
			assert.Equal(t, tt.input.URL, url.Content)

			card, ok := findMeta(metas, func(m Meta) bool { return m.Property == "twitter:card" })
			assert.True(t, ok)
			assert.Equal(t, tt.wantCard, card.Content)

			creator, ok := findMeta(metas, func(m Meta) bool { return m.Property == "twitter:creator" })
			assert.True(t, ok)
			assert.Equal(t, "@rideswap", creator.Content)

			_, ok = findMeta(metas, func(m Meta) bool { return m.Property == "og:image" })
			assert.Equal(t, tt.wantImage, ok)
		})
	}
}

func TestSocialMetas_DefaultKeywords(t *testing.T) {
	metas := SocialMetas(MetaInput{})
	keywords, ok := findMeta(metas, func(m Meta) bool { return m.Name == "keywords" })
	assert.True(t, ok)
	assert.Equal(t, "jcheese, website, portfolio, blog, projects, work, experience, skills, about, contact", keywords.Content)
}
