// internal/api/server.go
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modalcopy/internal/catalog"
	"modalcopy/internal/common/config"
	"modalcopy/internal/common/database"
	apperrors "modalcopy/internal/common/errors"
	"modalcopy/internal/common/logger"
	"modalcopy/internal/common/observability"
	"modalcopy/internal/common/validation"
	"modalcopy/internal/templates"
	"modalcopy/pkg/registry"

	generatecopy "modalcopy/internal/services/copywriting/generate-copy"
	aggregatechecklist "modalcopy/internal/services/design/aggregate-checklist"
	describescreen "modalcopy/internal/services/design/describe-screen"
	browsecatalog "modalcopy/internal/services/reference/browse-catalog"
	checkspelling "modalcopy/internal/services/spelling/check-spelling"
	proxyspeller "modalcopy/internal/services/spelling/proxy-speller"
)

const (
	defaultOperationTimeout = 10 * time.Second
	sessionIdleTTL          = 30 * time.Minute
	maxBodyBytes            = 64 << 10
)

// Dependencies are the shared resources the API is built from. Redis and
// Observability may be nil.
type Dependencies struct {
	Config        *config.Config
	Logger        logger.Logger
	Registry      *registry.OperationRegistry
	Templates     *templates.Store
	Catalog       *catalog.Catalog
	Redis         *database.RedisClient
	Observability *observability.Observability
}

type Server struct {
	cfg       *config.Config
	logger    logger.Logger
	registry  *registry.OperationRegistry
	validator *validation.Validator
	errors    *apperrors.ErrorHandler
	obs       *observability.Observability
	redis     *database.RedisClient
	templates *templates.Store
	catalog   *catalog.Catalog
	sessions  *checkspelling.Sessions

	generate  *generatecopy.Handler
	describe  *describescreen.Handler
	aggregate *aggregatechecklist.Handler
	browse    *browsecatalog.Handler
	checker   *checkspelling.Handler
	proxy     *proxyspeller.Handler
}

func NewServer(deps Dependencies) (*Server, error) {
	if deps.Config == nil || deps.Logger == nil || deps.Registry == nil || deps.Templates == nil || deps.Catalog == nil {
		return nil, errors.New("api: config, logger, registry, templates and catalog are required")
	}

	validator, err := validation.NewValidator(deps.Registry)
	if err != nil {
		return nil, err
	}

	cfg := deps.Config
	log := deps.Logger

	copyCfg := generatecopy.LoadConfig()
	copyCfg.DefaultButtonText = cfg.Copy.DefaultButtonText

	checkCfg := checkspelling.LoadConfig()
	checkCfg.BaseURL = cfg.Spelling.BaseURL
	checkCfg.Engine = cfg.Spelling.Engine
	checkCfg.Timeout = config.GetDuration(cfg.Spelling.Timeout)

	proxyCfg := proxyspeller.LoadConfig()
	proxyCfg.UpstreamURL = cfg.Spelling.UpstreamURL
	proxyCfg.PassportURL = cfg.Spelling.PassportURL
	proxyCfg.MaxLength = cfg.Spelling.MaxLength
	proxyCfg.Timeout = config.GetDuration(cfg.Spelling.Timeout)
	proxyCfg.CacheTTL = config.GetSeconds(cfg.Spelling.CacheTTL)
	proxyCfg.PassportTTL = config.GetSeconds(cfg.Spelling.PassportTTL)

	// A nil *RedisClient must not become a non-nil Cache interface.
	var cache proxyspeller.Cache
	if deps.Redis != nil {
		cache = deps.Redis
	}

	return &Server{
		cfg:       cfg,
		logger:    log,
		registry:  deps.Registry,
		validator: validator,
		errors:    apperrors.NewErrorHandler(log),
		obs:       deps.Observability,
		redis:     deps.Redis,
		templates: deps.Templates,
		catalog:   deps.Catalog,
		sessions:  checkspelling.NewSessions(sessionIdleTTL),

		generate:  generatecopy.NewHandler(copyCfg, deps.Templates, log),
		describe:  describescreen.NewHandler(deps.Catalog, log),
		aggregate: aggregatechecklist.NewHandler(deps.Catalog, log),
		browse:    browsecatalog.NewHandler(deps.Catalog, log),
		checker:   checkspelling.NewHandler(checkCfg, log),
		proxy:     proxyspeller.NewHandler(proxyCfg, cache, log),
	}, nil
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(config.GetDuration(s.cfg.Server.RequestTimeout)))

	r.Get("/health", s.health)
	r.Get("/ready", s.ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/copy/categories", s.operation("list-copy-categories", s.listCategories))
		r.Post("/copy/generate", s.operation(generatecopy.OperationID, s.generateCopy))

		r.Get("/design/screen-types", s.operation("list-screen-types", s.listScreenTypes))
		r.Post("/design/describe", s.operation(describescreen.OperationID, s.describeScreen))
		r.Get("/design/checklist", s.operation("list-checklist", s.listChecklist))
		r.Post("/design/checklist", s.operation(aggregatechecklist.OperationID, s.aggregateChecklist))

		r.Post("/spell-check", s.operation(proxyspeller.OperationID, s.spellCheck))
		r.Post("/proofread", s.operation(checkspelling.OperationID, s.proofread))
		r.Post("/proofread/apply", s.operation("apply-suggestion", s.applySuggestion))

		r.Get("/reference/symbols", s.operation(browsecatalog.SymbolsOperationID, s.browseSymbols))
		r.Get("/reference/tips", s.operation(browsecatalog.TipsOperationID, s.browseTips))
		r.Get("/reference/tools", s.operation(browsecatalog.ToolsOperationID, s.browseTools))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apperrors.WriteJSON(w, apperrors.NewNotFoundError(r.URL.Path))
	})

	return r
}
