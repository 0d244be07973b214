package api

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"folio/adapters/session"
	"folio/i18n"
	"folio/resume"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageLabels struct {
	Experience string
	Archive    string
	Counter    string
}

var labels = map[i18n.Lang]pageLabels{
	i18n.English: {
		Experience: "Experience",
		Archive:    "Archive / My Work",
		Counter:    "Counter",
	},
	i18n.Japanese: {
		Experience: "職歴",
		Archive:    "アーカイブ / 制作物",
		Counter:    "カウンター",
	},
}

var languageNames = map[i18n.Lang]string{
	i18n.English:  "English",
	i18n.Japanese: "日本語",
}

// LoaderData 是頁面渲染所需的全部資料，也是 GET /data 的回應
type LoaderData struct {
	Lang        i18n.Lang                    `json:"lang"`
	Env         map[string]string            `json:"env"`
	Profile     resume.LocalizedProfile      `json:"profile"`
	Experiences []resume.LocalizedExperience `json:"experiences"`
	Meta        []resume.Meta                `json:"meta"`
}

type languageOption struct {
	Value  i18n.Lang
	Label  string
	Active bool
}

type homeView struct {
	LoaderData
	Labels    pageLabels
	Languages []languageOption
}

// PageHandler 處理 /counter 以外的所有頁面請求
type PageHandler struct {
	resume *resume.Resume
	logger *slog.Logger
}

func NewPageHandler(r *resume.Resume) *PageHandler {
	return &PageHandler{
		resume: r,
		logger: slog.Default().With(slog.String("caller", "PageHandler")),
	}
}

// NewPageRouter 建立頁面 router，session middleware 由呼叫端提供
func NewPageRouter(env Env, handler *PageHandler, sessionMiddleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), EnvMiddleware(env), sessionMiddleware)

	router.GET("/", handler.GetHome)
	router.GET("/data", handler.GetData)
	router.POST("/", handler.PostHome)

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})
	return router
}

func (h *PageHandler) load(c *gin.Context, lang i18n.Lang) LoaderData {
	env, _ := GetEnv(c)
	return LoaderData{
		Lang:        lang,
		Env:         lo.Ternary(env.Public == nil, map[string]string{}, env.Public),
		Profile:     h.resume.Profile(lang),
		Experiences: h.resume.Experiences(lang),
		Meta: resume.SocialMetas(resume.MetaInput{
			URL:         requestURL(c.Request),
			Description: h.resume.Profile(lang).Summary,
		}),
	}
}

func (h *PageHandler) currentSession(c *gin.Context) session.ISession {
	s, err := session.GetSession(c)
	if err != nil {
		h.logger.Warn("Session is not available", slog.Any("error", err))
		return nil
	}
	return s
}

// Render the landing page
// (GET /)
func (h *PageHandler) GetHome(c *gin.Context) {
	lang := ReadPreference(h.currentSession(c))
	h.render(c, http.StatusOK, h.load(c, lang))
}

// Get the loader data of the landing page
// (GET /data)
func (h *PageHandler) GetData(c *gin.Context) {
	lang := ReadPreference(h.currentSession(c))
	c.JSON(http.StatusOK, h.load(c, lang))
}

// Change the language preference
// (POST /)
func (h *PageHandler) PostHome(c *gin.Context) {
	value := c.PostForm("lang")
	if value == "" {
		value = c.Query("lang")
	}
	lang, ok := i18n.Parse(value)
	if !ok {
		if acceptsJSON(c.Request) {
			c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid language"})
		} else {
			c.String(http.StatusBadRequest, "invalid language")
		}
		return
	}

	if err := SetPreference(h.currentSession(c), lang); err != nil {
		h.logger.Error("Fail to save language preference", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "failed to save preference"})
		return
	}

	if acceptsJSON(c.Request) {
		c.JSON(http.StatusOK, h.load(c, lang))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) render(c *gin.Context, status int, data LoaderData) {
	view := homeView{
		LoaderData: data,
		Labels:     labels[data.Lang],
		Languages: lo.Map(i18n.Supported, func(l i18n.Lang, _ int) languageOption {
			return languageOption{Value: l, Label: languageNames[l], Active: l == data.Lang}
		}),
	}
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, "home.html", view); err != nil {
		h.logger.Error("Fail to render page", slog.Any("error", err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(sb.String()))
}

func acceptsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), gin.MIMEJSON)
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.Path
}
