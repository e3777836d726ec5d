package submission

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caretrack/caretrack/internal/platform/x12"
	"github.com/caretrack/caretrack/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	edi := api.Group("/edi")
	edi.POST("/validate", h.ValidateBatch)
	edi.POST("/batches", h.GenerateBatch)
	edi.GET("/submissions", h.ListSubmissions)
	edi.GET("/submissions/:id", h.GetSubmission)
	edi.GET("/submissions/:id/document", h.GetDocument)
	edi.POST("/submissions/:id/submit", h.MarkSubmitted)
	edi.POST("/submissions/:id/acknowledgment", h.RecordAcknowledgment)
	edi.GET("/submissions/:id/acknowledgments", h.ListAcknowledgments)
}

// -- request DTOs: dates arrive as ISO 2006-01-02 strings --

type batchRequest struct {
	Submitter                x12.Submitter  `json:"submitter"`
	Receiver                 x12.Receiver   `json:"receiver"`
	Provider                 x12.Provider   `json:"provider"`
	Claims                   []claimRequest `json:"claims"`
	BatchID                  string         `json:"batch_id,omitempty"`
	InterchangeControlNumber string         `json:"interchange_control_number,omitempty"`
	GroupControlNumber       string         `json:"group_control_number,omitempty"`
	UsageIndicator           string         `json:"usage_indicator,omitempty"`
}

type claimRequest struct {
	ClaimNumber     string               `json:"claim_number"`
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	Patient         patientRequest       `json:"patient"`
	DiagnosisCodes  []string             `json:"diagnosis_codes"`
	TotalAmount     float64              `json:"total_amount"`
	PlaceOfService  string               `json:"place_of_service"`
	FrequencyCode   string               `json:"frequency_code,omitempty"`
	PriorAuthNumber string               `json:"prior_auth_number,omitempty"`
	ServiceLines    []serviceLineRequest `json:"service_lines"`
	Notes           string               `json:"notes,omitempty"`
}

type patientRequest struct {
	MedicaidID  string `json:"medicaid_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender,omitempty"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
}

type serviceLineRequest struct {
	LineNumber     int      `json:"line_number"`
	ServiceDate    string   `json:"service_date"`
	ProcedureCode  string   `json:"procedure_code"`
	Modifiers      []string `json:"modifiers,omitempty"`
	Units          float64  `json:"units"`
	UnitRate       float64  `json:"unit_rate"`
	LineAmount     float64  `json:"line_amount"`
	DiagPointers   []string `json:"diagnosis_pointers"`
	PlaceOfService string   `json:"place_of_service,omitempty"`
	Description    string   `json:"description,omitempty"`
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: expected YYYY-MM-DD, got %q", field, value)
	}
	return t, nil
}

func (req *batchRequest) toBatch() (*x12.Batch, error) {
	b := &x12.Batch{
		Submitter:                req.Submitter,
		Receiver:                 req.Receiver,
		Provider:                 req.Provider,
		InterchangeControlNumber: req.InterchangeControlNumber,
		GroupControlNumber:       req.GroupControlNumber,
		UsageIndicator:           req.UsageIndicator,
	}
	for i, cr := range req.Claims {
		start, err := parseDate(fmt.Sprintf("claims[%d].start_date", i), cr.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(fmt.Sprintf("claims[%d].end_date", i), cr.EndDate)
		if err != nil {
			return nil, err
		}
		dob, err := parseDate(fmt.Sprintf("claims[%d].patient.date_of_birth", i), cr.Patient.DateOfBirth)
		if err != nil {
			return nil, err
		}

		claim := x12.Claim{
			ClaimNumber: cr.ClaimNumber,
			StartDate:   start,
			EndDate:     end,
			Patient: x12.Patient{
				MedicaidID:  cr.Patient.MedicaidID,
				FirstName:   cr.Patient.FirstName,
				LastName:    cr.Patient.LastName,
				MiddleName:  cr.Patient.MiddleName,
				DateOfBirth: dob,
				Gender:      cr.Patient.Gender,
				Address:     cr.Patient.Address,
				City:        cr.Patient.City,
				State:       cr.Patient.State,
				Zip:         cr.Patient.Zip,
			},
			DiagnosisCodes:  cr.DiagnosisCodes,
			TotalAmount:     cr.TotalAmount,
			PlaceOfService:  cr.PlaceOfService,
			FrequencyCode:   cr.FrequencyCode,
			PriorAuthNumber: cr.PriorAuthNumber,
			Notes:           cr.Notes,
		}
		for j, lr := range cr.ServiceLines {
			svcDate, err := parseDate(fmt.Sprintf("claims[%d].service_lines[%d].service_date", i, j), lr.ServiceDate)
			if err != nil {
				return nil, err
			}
			claim.ServiceLines = append(claim.ServiceLines, x12.ServiceLine{
				LineNumber:     lr.LineNumber,
				ServiceDate:    svcDate,
				ProcedureCode:  lr.ProcedureCode,
				Modifiers:      lr.Modifiers,
				Units:          lr.Units,
				UnitRate:       lr.UnitRate,
				LineAmount:     lr.LineAmount,
				DiagPointers:   lr.DiagPointers,
				PlaceOfService: lr.PlaceOfService,
				Description:    lr.Description,
			})
		}
		b.Claims = append(b.Claims, claim)
	}
	return b, nil
}

type validationResponse struct {
	Valid  bool                  `json:"valid"`
	Errors []x12.ValidationError `json:"errors"`
}

type generateResponse struct {
	Submission *Submission `json:"submission"`
	Document   string      `json:"document"`
}

func (h *Handler) ValidateBatch(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := req.toBatch()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	errs := h.svc.ValidateBatch(b)
	return c.JSON(http.StatusOK, validationResponse{Valid: len(errs) == 0, Errors: errs})
}

func (h *Handler) GenerateBatch(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := req.toBatch()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, errs, err := h.svc.GenerateBatch(c.Request().Context(), b, req.BatchID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, validationResponse{Valid: false, Errors: errs})
	}

	if c.QueryParam("format") == "raw" {
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", sub.Filename))
		return c.Blob(http.StatusCreated, "text/plain; charset=utf-8", []byte(sub.Document))
	}
	return c.JSON(http.StatusCreated, generateResponse{Submission: sub, Document: sub.Document})
}

func (h *Handler) GetSubmission(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sub, err := h.svc.GetSubmission(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "submission not found")
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *Handler) ListSubmissions(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListSubmissions(c.Request().Context(), c.QueryParam("status"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sub, err := h.svc.GetSubmission(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "submission not found")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", sub.Filename))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(sub.Document))
}

func (h *Handler) MarkSubmitted(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sub, err := h.svc.MarkSubmitted(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *Handler) RecordAcknowledgment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil || len(raw) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "acknowledgment body is required")
	}
	ack, err := h.svc.RecordAcknowledgment(c.Request().Context(), id, string(raw))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusCreated, ack)
}

func (h *Handler) ListAcknowledgments(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	acks, err := h.svc.GetAcknowledgments(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, acks)
}
