package http

import (
	"net/http"

	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// Handlers groups the module handlers mounted under /api/v1.
type Handlers struct {
	Auth        *handler.AuthHandler
	Patient     *handler.PatientHandler
	Doctor      *handler.DoctorHandler
	Appointment *handler.AppointmentHandler
	Admission   *handler.AdmissionHandler
	Medicine    *handler.MedicineHandler
	LabReport   *handler.LabReportHandler
	Staff       *handler.StaffHandler
	Billing     *handler.BillingHandler
	Dashboard   *handler.DashboardHandler
	AuditLog    *handler.AuditLogHandler
}

// Middlewares are the cross-cutting wrappers applied by the router.
type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	CORS      *middleware.CORSMiddleware
	Logging   *middleware.LoggingMiddleware
	Metrics   *middleware.MetricsMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

type Router struct {
	router         *mux.Router
	handlers       Handlers
	middlewares    Middlewares
	metricsHandler http.Handler
}

func NewRouter(handlers Handlers, middlewares Middlewares, metricsHandler http.Handler) *Router {
	return &Router{
		router:         mux.NewRouter(),
		handlers:       handlers,
		middlewares:    middlewares,
		metricsHandler: metricsHandler,
	}
}

// gate wraps a single handler with a role check.
func gate(check func(http.Handler) http.Handler, fn http.HandlerFunc) http.Handler {
	return check(fn)
}

// Setup registers every route and returns the root handler.
func (r *Router) Setup() http.Handler {
	h := r.handlers

	r.router.Use(r.middlewares.Metrics.Handle)
	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Handle("/register", r.middlewares.RateLimit.Handle(http.HandlerFunc(h.Auth.Register))).Methods(http.MethodPost)
	auth.Handle("/login", r.middlewares.RateLimit.Handle(http.HandlerFunc(h.Auth.Login))).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", h.Auth.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.middlewares.Auth.Authenticate)
	authProtected.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", h.Auth.GetCurrentUser).Methods(http.MethodGet)

	// Everything below needs an authenticated staff account
	protected := api.NewRoute().Subrouter()
	protected.Use(r.middlewares.Auth.Authenticate)
	protected.Use(middleware.RequireStaff)

	adminOnly := middleware.RequireAdmin
	clinical := middleware.RequireAdminOrDoctor
	pharmacy := middleware.RequireAdminOrNurse

	// Patients
	protected.HandleFunc("/patients", h.Patient.ListPatients).Methods(http.MethodGet)
	protected.Handle("/patients", gate(clinical, h.Patient.CreatePatient)).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", h.Patient.GetPatient).Methods(http.MethodGet)
	protected.Handle("/patients/{id}", gate(clinical, h.Patient.UpdatePatient)).Methods(http.MethodPut)
	protected.Handle("/patients/{id}", gate(clinical, h.Patient.DeletePatient)).Methods(http.MethodDelete)
	protected.HandleFunc("/patients/{id}/lab-reports", h.LabReport.ListPatientLabReports).Methods(http.MethodGet)

	// Doctors
	protected.HandleFunc("/doctors", h.Doctor.ListDoctors).Methods(http.MethodGet)
	protected.Handle("/doctors", gate(adminOnly, h.Doctor.CreateDoctor)).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/specialization/{specialization}", h.Doctor.ListDoctorsBySpecialization).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", h.Doctor.GetDoctor).Methods(http.MethodGet)
	protected.Handle("/doctors/{id}", gate(adminOnly, h.Doctor.UpdateDoctor)).Methods(http.MethodPut)
	protected.Handle("/doctors/{id}", gate(adminOnly, h.Doctor.DeleteDoctor)).Methods(http.MethodDelete)
	protected.HandleFunc("/doctors/{id}/lab-reports", h.LabReport.ListDoctorLabReports).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/appointments", h.Appointment.ListAppointments).Methods(http.MethodGet)
	protected.Handle("/appointments", gate(clinical, h.Appointment.CreateAppointment)).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/today", h.Appointment.TodayAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/recent", h.Appointment.RecentAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/patient/{id}", h.Appointment.ListPatientAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/doctor/{id}", h.Appointment.ListDoctorAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", h.Appointment.GetAppointment).Methods(http.MethodGet)
	protected.Handle("/appointments/{id}", gate(clinical, h.Appointment.UpdateAppointment)).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}/status", h.Appointment.UpdateAppointmentStatus).Methods(http.MethodPatch)
	protected.Handle("/appointments/{id}", gate(clinical, h.Appointment.DeleteAppointment)).Methods(http.MethodDelete)

	// Admissions
	protected.HandleFunc("/admissions", h.Admission.ListAdmissions).Methods(http.MethodGet)
	protected.Handle("/admissions", gate(clinical, h.Admission.CreateAdmission)).Methods(http.MethodPost)
	protected.HandleFunc("/admissions/patient/{id}", h.Admission.ListPatientAdmissions).Methods(http.MethodGet)
	protected.HandleFunc("/admissions/{id}", h.Admission.GetAdmission).Methods(http.MethodGet)
	protected.Handle("/admissions/{id}", gate(clinical, h.Admission.UpdateAdmission)).Methods(http.MethodPut)
	protected.Handle("/admissions/{id}/discharge", gate(clinical, h.Admission.DischargePatient)).Methods(http.MethodPut)
	protected.Handle("/admissions/{id}", gate(clinical, h.Admission.DeleteAdmission)).Methods(http.MethodDelete)

	// Pharmacy
	medicines := protected.PathPrefix("/pharmacy/medicines").Subrouter()
	medicines.HandleFunc("", h.Medicine.ListMedicines).Methods(http.MethodGet)
	medicines.Handle("", gate(pharmacy, h.Medicine.CreateMedicine)).Methods(http.MethodPost)
	medicines.HandleFunc("/low-stock", h.Medicine.LowStock).Methods(http.MethodGet)
	medicines.HandleFunc("/expiring", h.Medicine.Expiring).Methods(http.MethodGet)
	medicines.HandleFunc("/stats", h.Medicine.Stats).Methods(http.MethodGet)
	medicines.HandleFunc("/category/{category}", h.Medicine.ListMedicinesByCategory).Methods(http.MethodGet)
	medicines.HandleFunc("/{id}", h.Medicine.GetMedicine).Methods(http.MethodGet)
	medicines.Handle("/{id}", gate(pharmacy, h.Medicine.UpdateMedicine)).Methods(http.MethodPut)
	medicines.Handle("/{id}/stock", gate(pharmacy, h.Medicine.AdjustStock)).Methods(http.MethodPatch)
	medicines.Handle("/{id}", gate(pharmacy, h.Medicine.DeleteMedicine)).Methods(http.MethodDelete)

	// Lab reports
	protected.HandleFunc("/lab-reports", h.LabReport.ListLabReports).Methods(http.MethodGet)
	protected.Handle("/lab-reports", gate(clinical, h.LabReport.CreateLabReport)).Methods(http.MethodPost)
	protected.HandleFunc("/lab-reports/stats", h.LabReport.Stats).Methods(http.MethodGet)
	protected.HandleFunc("/lab-reports/recent", h.LabReport.RecentLabReports).Methods(http.MethodGet)
	protected.HandleFunc("/lab-reports/{id}", h.LabReport.GetLabReport).Methods(http.MethodGet)
	protected.Handle("/lab-reports/{id}", gate(clinical, h.LabReport.UpdateLabReport)).Methods(http.MethodPut)
	protected.Handle("/lab-reports/{id}/status", gate(clinical, h.LabReport.UpdateLabReportStatus)).Methods(http.MethodPatch)
	protected.Handle("/lab-reports/{id}", gate(clinical, h.LabReport.DeleteLabReport)).Methods(http.MethodDelete)

	// Staff
	protected.HandleFunc("/staff", h.Staff.ListStaff).Methods(http.MethodGet)
	protected.Handle("/staff", gate(adminOnly, h.Staff.CreateStaff)).Methods(http.MethodPost)
	protected.HandleFunc("/staff/departments", h.Staff.Departments).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{id}", h.Staff.GetStaff).Methods(http.MethodGet)
	protected.Handle("/staff/{id}", gate(adminOnly, h.Staff.UpdateStaff)).Methods(http.MethodPut)
	protected.Handle("/staff/{id}", gate(adminOnly, h.Staff.DeleteStaff)).Methods(http.MethodDelete)

	// Billing
	billing := protected.PathPrefix("/billing").Subrouter()
	billing.HandleFunc("/transactions", h.Billing.ListTransactions).Methods(http.MethodGet)
	billing.Handle("/transactions", gate(adminOnly, h.Billing.CreateTransaction)).Methods(http.MethodPost)
	billing.HandleFunc("/transactions/{id}", h.Billing.GetTransaction).Methods(http.MethodGet)
	billing.Handle("/transactions/{id}/payments", gate(adminOnly, h.Billing.RecordPayment)).Methods(http.MethodPost)
	billing.Handle("/transactions/{id}", gate(adminOnly, h.Billing.DeleteTransaction)).Methods(http.MethodDelete)
	billing.HandleFunc("/revenue", h.Billing.Revenue).Methods(http.MethodGet)

	// Dashboard
	dashboard := protected.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("/statistics", h.Dashboard.Statistics).Methods(http.MethodGet)
	dashboard.HandleFunc("/recent-appointments", h.Dashboard.RecentAppointments).Methods(http.MethodGet)
	dashboard.HandleFunc("/today-appointments", h.Dashboard.TodayAppointments).Methods(http.MethodGet)
	dashboard.HandleFunc("/revenue", h.Dashboard.Revenue).Methods(http.MethodGet)

	// Audit logs (admin)
	audit := protected.PathPrefix("/audit-logs").Subrouter()
	audit.Use(middleware.RequireAdmin)
	audit.HandleFunc("", h.AuditLog.ListAuditLogs).Methods(http.MethodGet)
	audit.HandleFunc("/{id}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	// CORS answers preflight requests before routing
	return r.middlewares.Logging.Handle(r.middlewares.CORS.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
