package employeehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/employee"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employee", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
			r.Get("/pdf", h.handleRecordSheet)
		})
	})
}

type qualificationRequest struct {
	// Id is accepted for client convenience but never honored: the store
	// regenerates qualification ids on every write.
	ID              *int64  `json:"id"`
	Course          string  `json:"course"`
	YearPassed      int     `json:"yearPassed"`
	MarksPercentage float64 `json:"marksPercentage"`
}

type employeeRequest struct {
	Name           string                 `json:"name"`
	DOB            string                 `json:"dob"`
	Address        string                 `json:"address"`
	Contact        string                 `json:"contact"`
	Qualifications []qualificationRequest `json:"qualifications"`
}

func (req employeeRequest) toInput() (employee.Input, error) {
	dob, err := shared.ParseDate(req.DOB)
	if err != nil {
		return employee.Input{}, err
	}
	input := employee.Input{
		Name:           req.Name,
		DOB:            dob,
		Address:        req.Address,
		Contact:        req.Contact,
		Qualifications: make([]employee.QualificationInput, 0, len(req.Qualifications)),
	}
	for _, q := range req.Qualifications {
		input.Qualifications = append(input.Qualifications, employee.QualificationInput{
			Course:          q.Course,
			YearPassed:      q.YearPassed,
			MarksPercentage: q.MarksPercentage,
		})
	}
	return input, nil
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		h.fail(w, r, "list employees failed", err)
		return
	}
	api.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Employee not found")
			return
		}
		h.fail(w, r, "get employee failed", err)
		return
	}
	api.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	input, err := payload.toInput()
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid date of birth")
		return
	}

	emp, err := h.Service.Create(r.Context(), user.UserID, input)
	if err != nil {
		var validationErr *employee.ValidationError
		if errors.As(err, &validationErr) {
			api.Fail(w, http.StatusBadRequest, validationErr.Reason)
			return
		}
		h.fail(w, r, "create employee failed", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/employee/%d", emp.ID))
	api.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	input, err := payload.toInput()
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid date of birth")
		return
	}

	if err := h.Service.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Employee not found")
			return
		}
		h.fail(w, r, "update employee failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Employee not found")
			return
		}
		h.fail(w, r, "delete employee failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRecordSheet(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "Employee not found")
			return
		}
		h.fail(w, r, "get employee failed", err)
		return
	}

	pdfBytes, err := employee.RecordSheetPDF(emp)
	if err != nil {
		h.fail(w, r, "record sheet render failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=employee-%d.pdf", id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "err", err, "requestId", middleware.GetRequestID(r.Context()))
	api.FailWithDetail(w, http.StatusInternalServerError, "An error occurred", err.Error())
}

// employeeID parses the URL segment. A non-numeric id cannot name any
// employee, so it maps to the same not-found outcome as a missing row.
func employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "employeeID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "Employee not found")
		return 0, false
	}
	return id, true
}
