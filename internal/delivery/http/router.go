package http

import (
	"net/http"

	"asabig-talent-platform/internal/delivery/http/handler"
	"asabig-talent-platform/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	athleteHandler   *handler.AthleteHandler
	metricHandler    *handler.MetricHandler
	uploadHandler    *handler.UploadHandler
	noteHandler      *handler.NoteHandler
	shortlistHandler *handler.ShortlistHandler
	benchmarkHandler *handler.BenchmarkHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	athleteHandler *handler.AthleteHandler,
	metricHandler *handler.MetricHandler,
	uploadHandler *handler.UploadHandler,
	noteHandler *handler.NoteHandler,
	shortlistHandler *handler.ShortlistHandler,
	benchmarkHandler *handler.BenchmarkHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		athleteHandler:   athleteHandler,
		metricHandler:    metricHandler,
		uploadHandler:    uploadHandler,
		noteHandler:      noteHandler,
		shortlistHandler: shortlistHandler,
		benchmarkHandler: benchmarkHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/player", r.authHandler.RegisterPlayer).Methods(http.MethodPost)
	auth.HandleFunc("/register/staff", r.authHandler.RegisterStaff).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Athlete routes (any authenticated user; per-record ownership is
	// enforced in the usecase)
	athletes := api.PathPrefix("/athletes").Subrouter()
	athletes.Use(r.authMiddleware.Authenticate)
	athletes.HandleFunc("/compare", r.athleteHandler.CompareAthletes).Methods(http.MethodGet)
	athletes.HandleFunc("", r.athleteHandler.ListAthletes).Methods(http.MethodGet)
	athletes.HandleFunc("/{id}", r.athleteHandler.GetAthlete).Methods(http.MethodGet)
	athletes.HandleFunc("/{id}", r.athleteHandler.UpdateAthlete).Methods(http.MethodPut)
	athletes.HandleFunc("/{id}", r.athleteHandler.DeactivateAthlete).Methods(http.MethodDelete)
	athletes.HandleFunc("/{id}/completion", r.athleteHandler.GetCompletion).Methods(http.MethodGet)
	athletes.HandleFunc("/{id}/metrics", r.metricHandler.ListMetrics).Methods(http.MethodGet)
	athletes.HandleFunc("/{id}/uploads", r.uploadHandler.CreateFileUpload).Methods(http.MethodPost)
	athletes.HandleFunc("/{id}/uploads/link", r.uploadHandler.CreateLinkUpload).Methods(http.MethodPost)
	athletes.HandleFunc("/{id}/uploads", r.uploadHandler.ListUploads).Methods(http.MethodGet)
	athletes.HandleFunc("/{id}/notes", r.noteHandler.ListNotes).Methods(http.MethodGet)

	// Staff-only athlete routes (admin, scout, academy)
	athletesStaff := api.PathPrefix("/athletes").Subrouter()
	athletesStaff.Use(r.authMiddleware.Authenticate)
	athletesStaff.Use(middleware.RequireStaff)
	athletesStaff.HandleFunc("", r.athleteHandler.CreateAthlete).Methods(http.MethodPost)
	athletesStaff.HandleFunc("/{id}/metrics", r.metricHandler.RecordMetric).Methods(http.MethodPost)

	// Scouting routes (scout, academy)
	scouting := api.PathPrefix("/athletes").Subrouter()
	scouting.Use(r.authMiddleware.Authenticate)
	scouting.Use(middleware.RequireScoutOrAcademy)
	scouting.HandleFunc("/{id}/notes", r.noteHandler.CreateNote).Methods(http.MethodPost)

	// Shortlist routes (scout, academy)
	shortlists := api.PathPrefix("/shortlists").Subrouter()
	shortlists.Use(r.authMiddleware.Authenticate)
	shortlists.Use(middleware.RequireScoutOrAcademy)
	shortlists.HandleFunc("", r.shortlistHandler.CreateShortlist).Methods(http.MethodPost)
	shortlists.HandleFunc("", r.shortlistHandler.ListShortlists).Methods(http.MethodGet)
	shortlists.HandleFunc("/{id}", r.shortlistHandler.GetShortlist).Methods(http.MethodGet)
	shortlists.HandleFunc("/{id}", r.shortlistHandler.DeleteShortlist).Methods(http.MethodDelete)
	shortlists.HandleFunc("/{id}/athletes", r.shortlistHandler.AddAthlete).Methods(http.MethodPost)
	shortlists.HandleFunc("/{id}/athletes/{athleteId}", r.shortlistHandler.RemoveAthlete).Methods(http.MethodDelete)

	// Benchmark dataset routes (any authenticated user)
	benchmarks := api.PathPrefix("/benchmarks").Subrouter()
	benchmarks.Use(r.authMiddleware.Authenticate)
	benchmarks.HandleFunc("", r.benchmarkHandler.ListDatasets).Methods(http.MethodGet)
	benchmarks.HandleFunc("/{name}", r.benchmarkHandler.ViewDataset).Methods(http.MethodGet)
	benchmarks.HandleFunc("/{name}/options", r.benchmarkHandler.FilterOptions).Methods(http.MethodGet)
	benchmarks.HandleFunc("/{name}/link", r.benchmarkHandler.LinkDatasets).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
