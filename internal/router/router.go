package router

import (
	"net/http"
	"reflect"
	"strings"

	docs "github.com/budgettrack/backend/api"
	"github.com/budgettrack/backend/internal/config"
	"github.com/budgettrack/backend/internal/controllers"
	"github.com/budgettrack/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/budgettrack/backend/internal/router.version=..."
var version = "0.0.0"

type httpError struct {
	Error string `json:"error" example:"This HTTP method is not allowed for the endpoint you called"`
}

// Config creates the router and configures the middlewares.
//
// The returned function must be called when the router is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.BaseURL))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httpError{
			Error: "This HTTP method is not allowed for the endpoint you called",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))
	r.Use(MetricsMiddleware())

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOriginFunc:  allowOrigin(cfg.CORSAllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// Validation errors use the JSON names of the fields
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}

	// Amounts are numbers in JSON
	decimal.MarshalJSONWithoutQuotes = true

	log.Debug().Str("API Base URL", cfg.BaseURL.String()).Str("Host", cfg.BaseURL.Host).Str("Path", cfg.BaseURL.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.BaseURL.Host
	docs.SwaggerInfo.BasePath = cfg.BaseURL.Path
	docs.SwaggerInfo.Title = "BudgetTrack"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for BudgetTrack. Track expenses, set monthly budgets per category and get a summary of your spending."

	return r, unregisterPrometheusMetrics, nil
}

// allowOrigin returns a function that allows all origins matching one of the patterns.
func allowOrigin(patterns []string) func(string) bool {
	return func(origin string) bool {
		for _, pattern := range patterns {
			if glob.Glob(pattern, origin) {
				return true
			}
		}

		return false
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

// AttachRoutes attaches the routes to the router group that is passed in.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup, cfg config.Config) {
	group.GET("", Landing(cfg.StaticDir))
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co.RegisterHealthzRoutes(group.Group("/healthz"))

	api := group.Group("/api")
	{
		api.GET("", GetAPI)
		api.OPTIONS("", OptionsAPI)
	}

	co.RegisterExpenseRoutes(api.Group("/expenses"))
	co.RegisterBudgetRoutes(api.Group("/budgets"))
	co.RegisterAnalyticsRoutes(api.Group("/analytics"))
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the BudgetTrack backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type APIResponse struct {
	Links APILinks `json:"links"` // Links for the API
}

type APILinks struct {
	Docs     string `json:"docs" example:"https://example.com/docs/index.html"`          // Swagger API documentation
	Version  string `json:"version" example:"https://example.com/version"`               // Endpoint returning the version of the backend
	Healthz  string `json:"healthz" example:"https://example.com/healthz"`               // Health check
	Expenses string `json:"expenses" example:"https://example.com/api/expenses"`         // URL of expense list endpoint
	Budgets  string `json:"budgets" example:"https://example.com/api/budgets"`           // URL of budget list endpoint
	Summary  string `json:"summary" example:"https://example.com/api/analytics/summary"` // URL of the summary endpoint
}

// GetAPI returns the link list for the API
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	APIResponse
//	@Router			/api [get]
func GetAPI(c *gin.Context) {
	url := c.GetString(contextURL)

	c.JSON(http.StatusOK, APIResponse{
		Links: APILinks{
			Docs:     url + "/docs/index.html",
			Version:  url + "/version",
			Healthz:  url + "/healthz",
			Expenses: url + "/api/expenses",
			Budgets:  url + "/api/budgets",
			Summary:  url + "/api/analytics/summary",
		},
	})
}

// OptionsAPI returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/api [options]
func OptionsAPI(c *gin.Context) {
	httputil.OptionsGet(c)
}
