package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dealerd/internal/catalog"
	"dealerd/internal/compare"
	"dealerd/internal/lead"
	"dealerd/pkg/types"
)

// CatalogStore is the catalog surface required by the HTTP layer.
type CatalogStore interface {
	Models() []types.VehicleModel
	Get(id string) (types.VehicleModel, error)
	Replace(models []types.VehicleModel) error
	Reset() error
	Seed() []types.VehicleModel
}

// Deps wires the core services into the HTTP adapter.
type Deps struct {
	Catalog  CatalogStore
	Compare  *compare.Registry
	Composer *lead.Composer
	// News overrides the seeded feed when non-nil.
	News []types.NewsItem
	// AdminToken enables the catalog editing routes. Empty leaves them
	// unmounted entirely.
	AdminToken string
}

func NewMux(d Deps) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	r.Use(accessLog)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsAllowedOrigins,
			AllowedMethods:   corsAllowedMethods,
			AllowedHeaders:   corsAllowedHeaders,
			AllowCredentials: true,
		}))
	}

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		segment := r.URL.Query().Get("segment")
		if segment == "" {
			segment = catalog.SegmentAll
		}
		q := r.URL.Query().Get("q")
		models := catalog.Filter(d.Catalog.Models(), segment, q)
		writeJSON(w, types.ModelsResponse{Models: models})
	})

	r.Get("/models/{id}", func(w http.ResponseWriter, r *http.Request) {
		m, err := d.Catalog.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, m)
	})

	r.Get("/segments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.SegmentsResponse{Segments: catalog.Segments()})
	})

	r.Get("/compare", func(w http.ResponseWriter, r *http.Request) {
		ids := d.Compare.IDs(sessionToken(r))
		writeJSON(w, compareResponse(d.Catalog, ids))
	})

	r.Post("/compare/toggle", func(w http.ResponseWriter, r *http.Request) {
		var req types.ToggleRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.ID) == "" {
			writeJSONError(w, http.StatusBadRequest, "id is required")
			return
		}
		if _, err := d.Catalog.Get(req.ID); err != nil {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		tok, err := ensureSession(w, r, d.Compare)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to create session")
			return
		}
		ids := d.Compare.Toggle(tok, req.ID)
		writeJSON(w, compareResponse(d.Catalog, ids))
	})

	r.Post("/leads", func(w http.ResponseWriter, r *http.Request) {
		var req types.LeadRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		resp, err := d.Composer.Compose(req)
		if err != nil {
			if lead.IsInvalidRequest(err) {
				writeJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		typ := strings.TrimSpace(req.Type)
		if typ == "" {
			typ = lead.TypeQuote
		}
		IncrementLeadComposed(typ)
		writeJSON(w, resp)
	})

	r.Get("/contact", func(w http.ResponseWriter, r *http.Request) {
		c := d.Composer.Contact()
		writeJSON(w, types.ContactResponse{
			Brand:       c.Brand,
			Address:     c.Address,
			Phone:       c.Phone,
			MapsURL:     lead.MapsLink(c.Address),
			TelURL:      lead.TelLink(c.Phone),
			WhatsAppURL: lead.WhatsAppLink(c.WhatsApp, ""),
		})
	})

	r.Get("/news", func(w http.ResponseWriter, r *http.Request) {
		items := d.News
		if items == nil {
			items = defaultNews
		}
		writeJSON(w, types.NewsResponse{Items: items})
	})

	if d.AdminToken != "" {
		r.Route("/admin", func(r chi.Router) {
			r.Use(requireToken(d.AdminToken))

			r.Get("/catalog", func(w http.ResponseWriter, r *http.Request) {
				// ?seed=1 returns the built-in lineup without touching the
				// stored catalog, for resetting an edit buffer client-side.
				models := d.Catalog.Models()
				if r.URL.Query().Get("seed") == "1" {
					models = d.Catalog.Seed()
				}
				b, err := json.MarshalIndent(models, "", "  ")
				if err != nil {
					writeJSONError(w, http.StatusInternalServerError, "failed to encode catalog")
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write(b)
			})

			r.Put("/catalog", func(w http.ResponseWriter, r *http.Request) {
				if !requireJSONContentType(w, r) {
					return
				}
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
				var models []types.VehicleModel
				if err := json.NewDecoder(r.Body).Decode(&models); err != nil {
					// The stored catalog is untouched on parse failure.
					writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
					return
				}
				resp := types.CatalogUpdateResponse{Models: len(models), Persisted: true}
				if err := d.Catalog.Replace(models); err != nil {
					// In-memory swap took effect; report the persistence
					// failure instead of hiding it.
					resp.Persisted = false
					resp.Error = err.Error()
				}
				writeJSON(w, resp)
			})

			r.Post("/catalog/reset", func(w http.ResponseWriter, r *http.Request) {
				resp := types.CatalogUpdateResponse{Models: len(d.Catalog.Seed()), Persisted: true}
				if err := d.Catalog.Reset(); err != nil {
					resp.Persisted = false
					resp.Error = err.Error()
				}
				writeJSON(w, resp)
			})
		})
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Swagger UI, enabled with -tags=swagger
	MountSwagger(r)

	return r
}

// compareResponse hydrates a selection against the catalog. Ids that no
// longer resolve are kept in IDs but skipped in Models.
func compareResponse(store CatalogStore, ids []string) types.CompareResponse {
	if ids == nil {
		ids = []string{}
	}
	models := make([]types.VehicleModel, 0, len(ids))
	for _, id := range ids {
		if m, err := store.Get(id); err == nil {
			models = append(models, m)
		}
	}
	return types.CompareResponse{IDs: ids, Models: models, Active: len(ids) >= 2}
}

// decodeJSONBody enforces the JSON content type and body size cap, then
// decodes into v. It writes the error response itself and reports success.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if !requireJSONContentType(w, r) {
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func requireJSONContentType(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	return true
}
