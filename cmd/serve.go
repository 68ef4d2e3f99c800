package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"sporthub-cli/api"
	"sporthub-cli/catalog"
	"sporthub-cli/storage"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP view of the facility catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = env.ServeAddr
			}

			fallbacks, err := storage.LoadFallbacks()
			if err != nil {
				log.WithField("error", err.Error()).Warn("fallback overrides unavailable, using built-ins")
				fallbacks = catalog.DefaultFallbacks()
			}

			srv := &catalogServer{
				client:    client,
				vocab:     vocab,
				fallbacks: fallbacks,
				resolver:  catalog.NewVenueResolver(client, fallbacks, log),
			}

			router := chi.NewRouter()
			router.Use(middleware.RequestID)
			router.Use(middleware.Recoverer)
			router.Use(middleware.Timeout(30 * time.Second))
			router.Use(cors.New(cors.Options{
				AllowedOrigins: env.CORSOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			}).Handler)

			router.Get("/health", srv.handleHealth)
			router.Route("/api", func(r chi.Router) {
				r.Get("/deportes", srv.handleDeportes)
				r.Get("/canchas", srv.handleCanchas)
				r.Get("/canchas/{id}/vista", srv.handleCanchaVista)
			})

			log.WithField("addr", addr).Info("serving facility catalog")
			return http.ListenAndServe(addr, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to SPORTHUB_SERVE_ADDR)")
	return cmd
}

type catalogServer struct {
	client    *api.Client
	vocab     *catalog.Vocabulary
	fallbacks catalog.FallbackTable
	resolver  *catalog.VenueResolver
}

func (s *catalogServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *catalogServer) handleDeportes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.vocab.All())
}

func (s *catalogServer) handleCanchas(w http.ResponseWriter, r *http.Request) {
	filters := api.CanchaFilters{}
	if deporte := r.URL.Query().Get("deporte"); deporte != "" {
		filters.Deporte = s.vocab.CanonicalName(deporte)
	}
	if v := r.URL.Query().Get("cubierta"); v != "" {
		cubierta, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "cubierta must be true or false")
			return
		}
		filters.Cubierta = &cubierta
	}

	raws, err := s.client.GetCanchas(r.Context(), filters)
	if err != nil {
		log.WithField("error", err.Error()).Error("backend facility listing failed")
		respondError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}

	facilities := make([]catalog.Facility, 0, len(raws))
	for _, raw := range raws {
		facility, err := catalog.AdaptFacility(s.vocab, raw)
		if err != nil {
			log.WithField("error", err.Error()).Warn("skipping unreadable facility record")
			continue
		}
		facilities = append(facilities, facility)
	}
	respondJSON(w, http.StatusOK, facilities)
}

func (s *catalogServer) handleCanchaVista(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid facility id")
		return
	}

	raw, err := s.client.GetCanchaByID(r.Context(), id)
	if err != nil {
		log.WithField("error", err.Error()).Error("backend facility fetch failed")
		respondError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	facility, err := catalog.AdaptFacility(s.vocab, raw)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "unreadable facility record")
		return
	}

	venue := s.resolver.Resolve(r.Context(), facility.EstablecimientoID)
	view := catalog.BuildViewModel(s.vocab, s.fallbacks, facility, venue)
	respondJSON(w, http.StatusOK, view)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
