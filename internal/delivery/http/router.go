package http

import (
	"net/http"

	"clinic-ops-backend/internal/delivery/http/handler"
	"clinic-ops-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                 *mux.Router
	authHandler            *handler.AuthHandler
	appointmentHandler     *handler.AppointmentHandler
	appointmentTypeHandler *handler.AppointmentTypeHandler
	patientHandler         *handler.PatientHandler
	professionalHandler    *handler.ProfessionalHandler
	treatmentPlanHandler   *handler.TreatmentPlanHandler
	clinicHandler          *handler.ClinicHandler
	auditLogHandler        *handler.AuditLogHandler
	authMiddleware         *middleware.AuthMiddleware
	corsMiddleware         *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	appointmentTypeHandler *handler.AppointmentTypeHandler,
	patientHandler *handler.PatientHandler,
	professionalHandler *handler.ProfessionalHandler,
	treatmentPlanHandler *handler.TreatmentPlanHandler,
	clinicHandler *handler.ClinicHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                 mux.NewRouter(),
		authHandler:            authHandler,
		appointmentHandler:     appointmentHandler,
		appointmentTypeHandler: appointmentTypeHandler,
		patientHandler:         patientHandler,
		professionalHandler:    professionalHandler,
		treatmentPlanHandler:   treatmentPlanHandler,
		clinicHandler:          clinicHandler,
		auditLogHandler:        auditLogHandler,
		authMiddleware:         authMiddleware,
		corsMiddleware:         corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterStaff).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Clinic staff routes (any authenticated staff member)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)

	// Appointment book
	staff.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Patients
	staff.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	staff.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{patientId}/treatment-plans", r.treatmentPlanHandler.ListTreatmentPlansForPatient).Methods(http.MethodGet)

	// Treatment plans
	staff.HandleFunc("/treatment-plans", r.treatmentPlanHandler.CreateTreatmentPlan).Methods(http.MethodPost)
	staff.HandleFunc("/treatment-plans/{id}", r.treatmentPlanHandler.GetTreatmentPlan).Methods(http.MethodGet)

	// Professionals (read side for scheduling)
	staff.HandleFunc("/professionals", r.professionalHandler.ListProfessionals).Methods(http.MethodGet)
	staff.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)

	// Appointment types (read side)
	staff.HandleFunc("/appointment-types", r.appointmentTypeHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.GetByID).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Professional management (admin)
	admin.HandleFunc("/professionals", r.professionalHandler.CreateProfessional).Methods(http.MethodPost)
	admin.HandleFunc("/professionals/{id}", r.professionalHandler.UpdateProfessional).Methods(http.MethodPut)

	// Appointment type management (admin)
	admin.HandleFunc("/appointment-types", r.appointmentTypeHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/appointment-types/{id}", r.appointmentTypeHandler.Delete).Methods(http.MethodDelete)

	// Clinic scheduling settings (admin)
	admin.HandleFunc("/clinic/settings", r.clinicHandler.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/clinic/settings", r.clinicHandler.UpdateSettings).Methods(http.MethodPut)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
