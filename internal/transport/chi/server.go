// Package chi exposes the catalog search services over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ethanaturner/libretexts-pts/internal/domain"
	"github.com/ethanaturner/libretexts-pts/internal/domain/search/request"
	logpkg "github.com/ethanaturner/libretexts-pts/internal/logger"
	"github.com/ethanaturner/libretexts-pts/internal/metrics"
	healthuc "github.com/ethanaturner/libretexts-pts/internal/usecase/health"
	searchuc "github.com/ethanaturner/libretexts-pts/internal/usecase/search"
)

// Server holds the HTTP handlers for the search API.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// RegisterRoutes mounts all API routes on the given router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/search", func(r chi.Router) {
		r.Get("/projects", s.SearchProjects)
		r.Get("/books", s.SearchBooks)
		r.Get("/homework", s.SearchHomework)
		r.Get("/users", s.SearchUsers)
		r.Get("/assets", s.SearchAssets)
		r.Get("/autocomplete", s.Autocomplete)
		r.Get("/asset-filter-options", s.AssetFilterOptions)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// resultsEnvelope is the success response shape shared by all search endpoints.
type resultsEnvelope struct {
	Err        bool `json:"err"`
	NumResults int  `json:"numResults"`
	Results    any  `json:"results"`
}

type errEnvelope struct {
	Err    bool   `json:"err"`
	ErrMsg string `json:"errMsg"`
}

// SearchProjects handles GET /api/v1/search/projects.
func (s *Server) SearchProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := request.NewProjects(request.ProjectsParams{
		Query:           q.Get("query"),
		Status:          q.Get("status"),
		Classification:  q.Get("classification"),
		VisibilityScope: q.Get("scope"),
		Sort:            q.Get("sort"),
		Page:            queryInt(q.Get("page")),
		Limit:           queryInt(q.Get("limit")),
		Caller:          CallerFromContext(r.Context()),
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	page, err := s.search.SearchProjects(r.Context(), &req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	items := make([]projectJSON, len(page.Results))
	for i, p := range page.Results {
		items[i] = projectToJSON(p)
	}
	metrics.ObserveSearch("projects", page.NumResults)
	writeResults(w, page.NumResults, items)
}

// SearchBooks handles GET /api/v1/search/books.
func (s *Server) SearchBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := request.NewBooks(request.BooksParams{
		Query:       q.Get("query"),
		Library:     q.Get("library"),
		Subject:     q.Get("subject"),
		Location:    q.Get("location"),
		License:     q.Get("license"),
		Author:      q.Get("author"),
		Course:      q.Get("course"),
		Publisher:   q.Get("publisher"),
		Affiliation: q.Get("affiliation"),
		Sort:        q.Get("sort"),
		Page:        queryInt(q.Get("page")),
		Limit:       queryInt(q.Get("limit")),
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	page, err := s.search.SearchBooks(r.Context(), &req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	items := make([]bookJSON, len(page.Results))
	for i, b := range page.Results {
		items[i] = bookToJSON(b)
	}
	metrics.ObserveSearch("books", page.NumResults)
	writeResults(w, page.NumResults, items)
}

// SearchHomework handles GET /api/v1/search/homework.
func (s *Server) SearchHomework(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := request.NewHomework(request.HomeworkParams{
		Query: q.Get("query"),
		Sort:  q.Get("sort"),
		Page:  queryInt(q.Get("page")),
		Limit: queryInt(q.Get("limit")),
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	page, err := s.search.SearchHomework(r.Context(), &req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	items := make([]homeworkJSON, len(page.Results))
	for i, h := range page.Results {
		items[i] = homeworkToJSON(h)
	}
	metrics.ObserveSearch("homework", page.NumResults)
	writeResults(w, page.NumResults, items)
}

// SearchUsers handles GET /api/v1/search/users.
func (s *Server) SearchUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := request.NewUsers(request.UsersParams{
		Query: q.Get("query"),
		Sort:  q.Get("sort"),
		Page:  queryInt(q.Get("page")),
		Limit: queryInt(q.Get("limit")),
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	page, err := s.search.SearchUsers(r.Context(), &req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	items := make([]userJSON, len(page.Results))
	for i, u := range page.Results {
		items[i] = userToJSON(u)
	}
	metrics.ObserveSearch("users", page.NumResults)
	writeResults(w, page.NumResults, items)
}

// SearchAssets handles GET /api/v1/search/assets.
func (s *Server) SearchAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	strict, _ := strconv.ParseBool(q.Get("strict"))
	req, err := request.NewAssets(request.AssetsParams{
		Query:          q.Get("query"),
		FileType:       q.Get("fileType"),
		License:        q.Get("license"),
		LicenseVersion: q.Get("licenseVersion"),
		Org:            q.Get("org"),
		StrictMode:     strict,
		Page:           queryInt(q.Get("page")),
		Limit:          queryInt(q.Get("limit")),
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	page, err := s.search.SearchAssets(r.Context(), &req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	items := make([]assetHitJSON, len(page.Results))
	for i, h := range page.Results {
		items[i] = assetHitToJSON(h)
	}
	metrics.ObserveSearch("assets", page.NumResults)
	writeResults(w, page.NumResults, items)
}

// Autocomplete handles GET /api/v1/search/autocomplete.
func (s *Server) Autocomplete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := request.NewAutocomplete(request.AutocompleteParams{
		Query: q.Get("query"),
		Limit: queryInt(q.Get("limit")),
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	suggestions, err := s.search.Autocomplete(r.Context(), &req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeResults(w, len(suggestions), suggestions)
}

// assetFilterOptionsResponse is the success shape for the filter-options endpoint.
type assetFilterOptionsResponse struct {
	Err       bool     `json:"err"`
	Licenses  []string `json:"licenses"`
	MimeTypes []string `json:"mimeTypes"`
	Orgs      []string `json:"orgs"`
}

// AssetFilterOptions handles GET /api/v1/search/asset-filter-options.
func (s *Server) AssetFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.search.AssetFilterOptions(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, assetFilterOptionsResponse{
		Licenses:  emptyIfNil(opts.Licenses),
		MimeTypes: emptyIfNil(opts.MimeTypes),
		Orgs:      emptyIfNil(opts.Orgs),
	})
}

// healthResponse is the health endpoint shape.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// handleError maps a failure to the error envelope. Validation failures carry
// their message; everything else becomes an opaque 500 so query internals
// never leak to clients.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidRequest) {
		writeErrMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	logpkg.FromContextOr(r.Context(), s.logger).Error("search request failed", zap.Error(err))
	writeErrMsg(w, http.StatusInternalServerError, "internal error")
}

func queryInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeResults(w http.ResponseWriter, numResults int, results any) {
	writeJSON(w, http.StatusOK, resultsEnvelope{
		NumResults: numResults,
		Results:    results,
	})
}

func writeErrMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errEnvelope{Err: true, ErrMsg: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
