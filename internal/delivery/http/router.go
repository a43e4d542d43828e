package http

import (
	"net/http"

	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/delivery/http/handler"
	"clinic-records/internal/delivery/http/middleware"
	"clinic-records/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.RecordHandler[dto.CreateDoctorRequest, dto.DoctorResponse]
	patientHandler      *handler.RecordHandler[dto.CreatePatientRequest, dto.PatientResponse]
	receptionistHandler *handler.RecordHandler[dto.CreateReceptionistRequest, dto.ReceptionistResponse]
	auditLogHandler     *handler.AuditLogHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
}

func NewRouter(
	doctorHandler *handler.RecordHandler[dto.CreateDoctorRequest, dto.DoctorResponse],
	patientHandler *handler.RecordHandler[dto.CreatePatientRequest, dto.PatientResponse],
	receptionistHandler *handler.RecordHandler[dto.CreateReceptionistRequest, dto.ReceptionistResponse],
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		receptionistHandler: receptionistHandler,
		auditLogHandler:     auditLogHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		metricsMiddleware:   metricsMiddleware,
	}
}

// Setup registers every route and returns the handler to serve. CORS and
// request logging wrap the router itself so they also see preflight and
// unmatched requests.
func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)

	api.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)

	api.HandleFunc("/receptionists", r.receptionistHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/receptionists", r.receptionistHandler.Create).Methods(http.MethodPost)

	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	r.router.Handle("/metrics", r.metricsMiddleware.Handler()).Methods(http.MethodGet)

	r.router.Use(r.metricsMiddleware.Handle)
	r.router.NotFoundHandler = http.HandlerFunc(r.notFound)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "")
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
