package handlers

import (
	"embed"
	"html/template"
	"strconv"
	"time"

	_ "biotrack/docs"
	"biotrack/internal/logger"
	"biotrack/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var views = template.Must(template.New("views").Funcs(template.FuncMap{
	"optFloat": optFloat,
}).ParseFS(templateFS, "templates/*.tmpl"))

// optFloat formats a store-derived value that may be absent.
func optFloat(v *float64, prec int) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

// CookieOptions controls the session cookie.
type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

const defaultCookieName = "biotrack_session"

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cookie   CookieOptions
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cookie CookieOptions) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	if cookie.Name == "" {
		cookie.Name = defaultCookieName
	}
	return &Handler{services: services, log: log, cookie: cookie}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.loadSession)
	router.SetHTMLTemplate(views)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	router.GET("/", h.index)

	h.registerAuthRoutes(router)
	h.registerPageRoutes(router)
	h.registerAPIRoutes(router)

	// Live report stream, same port
	router.GET("/ws/reports", h.requireSessionAPI, h.wsReports)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/signup", h.signUpPage)
	r.POST("/signup", h.signUp)
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	pages := r.Group("/", h.requireSession)
	{
		pages.GET("/dashboard", h.dashboard)
		pages.GET("/biometrics", h.biometricsPage)
		pages.POST("/biometrics", h.saveBiometrics)
		pages.GET("/meal", h.mealPage)
		pages.POST("/meal", h.logMeal)
		pages.POST("/meal/delete/:id", h.deleteMeal)
		pages.GET("/reports", h.reportsPage)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.requireSessionAPI)
	{
		api.GET("/reports", h.getReport)
	}
}
