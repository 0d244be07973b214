package resume

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/i18n"
)

func TestDefault(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	en := r.Profile(i18n.English)
	ja := r.Profile(i18n.Japanese)
	assert.Equal(t, "jcheese", en.Name)
	assert.NotEmpty(t, en.Summary)
	assert.NotEqual(t, en.Summary, ja.Summary)
	assert.NotEmpty(t, en.Projects)

	exps := r.Experiences(i18n.English)
	require.Len(t, exps, 5)
	assert.Equal(t, 2024, exps[0].StartYear)
	assert.Equal(t, "Question Labs", exps[0].Company)
	assert.True(t, exps[0].DefaultHidden)
	assert.NotEmpty(t, exps[0].Responsibilities)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name: "minimal document",
			data: "profile:\n  name: someone\n",
		},
		{
			name:    "missing profile name",
			data:    "profile:\n  skills: [Go]\n",
			wantErr: ErrInvalidResume,
		},
		{
			name:    "experience without default title",
			data:    "profile:\n  name: someone\nexperiences:\n- start_year: 2020\n  title:\n    ja: タイトル\n",
			wantErr: ErrInvalidResume,
		},
		{
			name: "malformed yaml",
			data: "profile: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.data))
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
			case tt.name == "malformed yaml":
				assert.Error(t, err)
				assert.Nil(t, r)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, r)
			}
		})
	}
}

const sample = `
profile:
  name: someone
  summary:
    en: Hello
    ja: こんにちは
experiences:
- start_year: 2021
  title:
    en: Engineer
  company: Acme
  location: Tokyo
  responsibilities:
  - en: Built <strong>things</strong><script>alert(1)</script>
    ja: <a href="https://example.com" onclick="x()">作った</a>
`

func TestResume_Localize(t *testing.T) {
	r, err := Parse([]byte(sample))
	require.NoError(t, err)

	tests := []struct {
		name    string
		lang    i18n.Lang
		summary string
		title   string
		duty    template.HTML
	}{
		{
			name:    "english",
			lang:    i18n.English,
			summary: "Hello",
			title:   "Engineer",
			duty:    "Built <strong>things</strong>",
		},
		{
			name:    "japanese falls back for missing title",
			lang:    i18n.Japanese,
			summary: "こんにちは",
			title:   "Engineer",
			duty:    `<a href="https://example.com" rel="nofollow">作った</a>`,
		},
		{
			name:    "unsupported language uses default",
			lang:    i18n.Lang("fr"),
			summary: "Hello",
			title:   "Engineer",
			duty:    "Built <strong>things</strong>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := r.Profile(tt.lang)
			assert.Equal(t, tt.summary, profile.Summary)
			assert.Empty(t, profile.Skills)
			assert.NotNil(t, profile.Skills)

			exps := r.Experiences(tt.lang)
			require.Len(t, exps, 1)
			assert.Equal(t, tt.title, exps[0].Title)
			assert.Equal(t, "Acme", exps[0].Company)
			assert.Equal(t, []template.HTML{tt.duty}, exps[0].Responsibilities)
		})
	}
}
