package resume

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"folio/i18n"
)

//go:embed resume.yaml
var defaultData []byte

var ErrInvalidResume = errors.New("invalid resume data")

// Text 是依語言區分的文字，缺少的語言會退回預設語言
type Text map[i18n.Lang]string

// In 取得指定語言的文字
func (t Text) In(lang i18n.Lang) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[i18n.Default]
}

type Project struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

type Profile struct {
	Name     string    `yaml:"name"`
	Summary  Text      `yaml:"summary"`
	Skills   []string  `yaml:"skills"`
	Projects []Project `yaml:"projects"`
}

type Experience struct {
	StartYear        int    `yaml:"start_year"`
	Title            Text   `yaml:"title"`
	Company          string `yaml:"company"`
	Location         string `yaml:"location"`
	DefaultHidden    bool   `yaml:"default_hidden"`
	Responsibilities []Text `yaml:"responsibilities"`
}

type document struct {
	Profile     Profile      `yaml:"profile"`
	Experiences []Experience `yaml:"experiences"`
}

// LocalizedProfile 是已經套用語言的個人資料
type LocalizedProfile struct {
	Name     string    `json:"name"`
	Summary  string    `json:"summary"`
	Skills   []string  `json:"skills"`
	Projects []Project `json:"projects"`
}

// LocalizedExperience 是已經套用語言的工作經歷，職責內容已經過 HTML 過濾
type LocalizedExperience struct {
	StartYear        int             `json:"startYear"`
	Title            string          `json:"title"`
	Company          string          `json:"company"`
	Location         string          `json:"location"`
	DefaultHidden    bool            `json:"defaultHidden"`
	Responsibilities []template.HTML `json:"responsibilities"`
}

type Resume struct {
	doc    document
	policy *bluemonday.Policy
}

// Default 解析內嵌的履歷資料
func Default() (*Resume, error) {
	return Parse(defaultData)
}

// Parse 解析 YAML 格式的履歷資料
func Parse(data []byte) (*Resume, error) {
	const op = "resume.Parse"
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal: %w", op, err)
	}
	if doc.Profile.Name == "" {
		return nil, fmt.Errorf("%s: profile name is required: %w", op, ErrInvalidResume)
	}
	for i, exp := range doc.Experiences {
		if exp.Title[i18n.Default] == "" {
			return nil, fmt.Errorf("%s: experience %d has no %s title: %w", op, i, i18n.Default, ErrInvalidResume)
		}
	}
	return &Resume{
		doc:    doc,
		policy: bluemonday.UGCPolicy(),
	}, nil
}

// Profile 取得指定語言的個人資料
func (r *Resume) Profile(lang i18n.Lang) LocalizedProfile {
	lang = lang.OrDefault()
	p := r.doc.Profile
	return LocalizedProfile{
		Name:     p.Name,
		Summary:  p.Summary.In(lang),
		Skills:   lo.Ternary(p.Skills == nil, []string{}, p.Skills),
		Projects: lo.Ternary(p.Projects == nil, []Project{}, p.Projects),
	}
}

// Experiences 依檔案中的順序取得指定語言的工作經歷
func (r *Resume) Experiences(lang i18n.Lang) []LocalizedExperience {
	lang = lang.OrDefault()
	return lo.Map(r.doc.Experiences, func(exp Experience, _ int) LocalizedExperience {
		return LocalizedExperience{
			StartYear:     exp.StartYear,
			Title:         exp.Title.In(lang),
			Company:       exp.Company,
			Location:      exp.Location,
			DefaultHidden: exp.DefaultHidden,
			Responsibilities: lo.Map(exp.Responsibilities, func(text Text, _ int) template.HTML {
				return template.HTML(r.policy.Sanitize(text.In(lang)))
			}),
		}
	})
}
