package invoicing

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// Service wires config, validation, storage, rendering, email, and audit into
// HTTP handlers.
type Service struct {
	cfg       Config
	validator Validator
	store     Store
	mailer    Mailer
	pdf       PDFRenderer
	audit     AuditRecorder
	logger    *slog.Logger
}

func NewService(cfg Config, store Store, mailer Mailer, audit AuditRecorder, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return Service{
		cfg:       cfg,
		validator: Validator{Config: cfg},
		store:     store,
		mailer:    mailer,
		pdf:       NewPDFRenderer(cfg),
		audit:     audit,
		logger:    logger,
	}
}

// Routes builds the API router.
func (s Service) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/invoices", s.ListInvoices)
		r.Get("/latest-invoice-number", s.LatestInvoiceNumber)
		r.Patch("/invoices/{id}/status", s.UpdateInvoiceStatus)
		r.Post("/save-invoice", s.SaveInvoice)
		r.Post("/create-invoice", s.CreateInvoice)
		r.Post("/send-invoice", s.SendInvoice)
	})
	return r
}

// ListInvoices matches GET /api/invoices
func (s Service) ListInvoices(w http.ResponseWriter, r *http.Request) {
	logger := RequestLogger(s.logger, middleware.GetReqID(r.Context()))

	invoices, err := s.store.ListInvoices(r.Context())
	if err != nil {
		s.writeError(w, logger, err, "Error fetching invoices")
		return
	}
	if invoices == nil {
		invoices = []Invoice{}
	}
	s.appendAudit(r, "invoice.list")
	writeJSON(w, http.StatusOK, invoices)
}

// LatestInvoiceNumber matches GET /api/latest-invoice-number
func (s Service) LatestInvoiceNumber(w http.ResponseWriter, r *http.Request) {
	logger := RequestLogger(s.logger, middleware.GetReqID(r.Context()))

	year := time.Now().Year()
	numbers, err := s.store.NumbersForYear(r.Context(), year)
	if err != nil {
		s.writeError(w, logger, err, "Error fetching latest invoice number")
		return
	}
	s.appendAudit(r, "invoice.number")
	writeJSON(w, http.StatusOK, map[string]string{"number": NextInvoiceNumber(numbers, year)})
}

// UpdateInvoiceStatus matches PATCH /api/invoices/{id}/status
func (s Service) UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	logger := RequestLogger(s.logger, middleware.GetReqID(r.Context()))
	id := chi.URLParam(r, "id")

	var body struct {
		Status PaymentStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "BAD_JSON", "Invalid JSON body")
		return
	}
	if body.Status == "" {
		writeJSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}
	if !body.Status.Valid() {
		writeJSONError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("Status must be one of %s, %s, %s", StatusPending, StatusPaid, StatusDue))
		return
	}

	updated, err := s.store.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		s.writeError(w, logger, err, "Error updating invoice status")
		return
	}
	s.appendAudit(r, "invoice.status")
	writeJSON(w, http.StatusOK, updated)
}

// SaveInvoice matches POST /api/save-invoice
func (s Service) SaveInvoice(w http.ResponseWriter, r *http.Request) {
	logger := RequestLogger(s.logger, middleware.GetReqID(r.Context()))

	inv, ok := s.decodeAndPrepare(w, r.Body)
	if !ok {
		return
	}
	saved, err := s.store.SaveInvoice(r.Context(), inv)
	if err != nil {
		s.writeError(w, logger, err, "Error saving invoice")
		return
	}
	s.appendAudit(r, "invoice.save")
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Invoice saved successfully!",
		"invoice": saved,
	})
}

// CreateInvoice matches POST /api/create-invoice. The invoice is persisted,
// then the PDF is streamed back as an attachment.
func (s Service) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	logger := RequestLogger(s.logger, middleware.GetReqID(r.Context()))

	inv, ok := s.decodeAndPrepare(w, r.Body)
	if !ok {
		return
	}
	saved, err := s.store.SaveInvoice(r.Context(), inv)
	if err != nil {
		s.writeError(w, logger, err, "Error creating invoice")
		return
	}
	s.appendAudit(r, "invoice.create")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice.pdf")
	if err := s.pdf.RenderTo(w, saved); err != nil {
		// Headers are already on the wire; nothing left but to log.
		logger.Error("pdf render failed", "error", err)
	}
}

// SendInvoice matches POST /api/send-invoice. The invoice is rendered and
// emailed, not persisted.
func (s Service) SendInvoice(w http.ResponseWriter, r *http.Request) {
	logger := RequestLogger(s.logger, middleware.GetReqID(r.Context()))

	inv, ok := s.decodeAndPrepare(w, r.Body)
	if !ok {
		return
	}
	if inv.Client.Email == "" {
		writeJSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Client email is required")
		return
	}
	if s.mailer == nil {
		writeJSONError(w, http.StatusInternalServerError, "EMAIL_FAILED", "Email delivery is not configured")
		return
	}

	pdfBytes, err := s.pdf.Render(inv)
	if err != nil {
		s.writeError(w, logger, err, "Error rendering invoice")
		return
	}
	if err := s.mailer.SendInvoice(r.Context(), inv, pdfBytes); err != nil {
		logger.Error("email send failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "EMAIL_FAILED", "Error sending email")
		return
	}
	s.appendAudit(r, "invoice.send")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully!"})
}

// decodeAndPrepare parses the request body, rejects invalid line items, and
// normalizes the record: summary recomputed from items, status defaulted.
func (s Service) decodeAndPrepare(w http.ResponseWriter, body io.ReadCloser) (Invoice, bool) {
	inv, err := decodeInvoice(body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "BAD_JSON", err.Error())
		return Invoice{}, false
	}
	if result := s.validator.Validate(inv); !result.Valid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code":   "VALIDATION_ERROR",
			"errors": result.Errors,
		})
		return Invoice{}, false
	}
	inv.Summary = s.validator.RecomputeSummary(inv.Items)
	if inv.PaymentStatus == "" {
		inv.PaymentStatus = StatusPending
	}
	return inv, true
}

func (s Service) writeError(w http.ResponseWriter, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
	case errors.Is(err, ErrStorageUnavailable):
		logger.Error(msg, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "STORAGE_UNAVAILABLE", msg)
	case errors.Is(err, ErrRenderFailure):
		logger.Error(msg, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "RENDER_FAILED", msg)
	default:
		logger.Error(msg, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", msg)
	}
}

func (s Service) appendAudit(r *http.Request, action string) {
	if s.audit == nil {
		return
	}
	entry := AuditLog{
		AuditID:   uuid.NewString(),
		RequestID: middleware.GetReqID(r.Context()),
		Actor:     "system",
		Action:    action,
		Ts:        time.Now().UTC(),
	}
	if _, err := HashChain(r.Context(), s.audit, entry); err != nil {
		s.logger.Warn("audit append failed", "error", err)
	}
}

func (s Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"requestId", middleware.GetReqID(r.Context()))
	})
}

func decodeInvoice(body io.ReadCloser) (Invoice, error) {
	defer body.Close()
	var inv Invoice
	if err := json.NewDecoder(body).Decode(&inv); err != nil {
		return inv, fmt.Errorf("invalid JSON: %w", err)
	}
	return inv, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"code": code, "message": message})
}
