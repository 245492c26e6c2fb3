package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/servicedesk/service-desk/internal/api/metrics"
	"github.com/servicedesk/service-desk/internal/api/middleware"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

const submittedMessage = "Your request has been received. A technician will pick it up shortly."

// PublicHandler serves the pages that need no sign-in: the catalog and the
// intake form.
type PublicHandler struct {
	catalog   ports.CatalogService
	incidents ports.IncidentService
}

func NewPublicHandler(catalog ports.CatalogService, incidents ports.IncidentService) *PublicHandler {
	return &PublicHandler{catalog: catalog, incidents: incidents}
}

type catalogResponse struct {
	Services []serviceResponse `json:"services"`
}

type requestFormResponse struct {
	Services []serviceResponse `json:"services"`
	Fields   []fieldResponse   `json:"fields"`
}

type submitRequest struct {
	Service string `json:"service" form:"service" validate:"required"`
	Comment string `json:"comment" form:"comment" validate:"required"`
}

type submittedIncident struct {
	ID        string             `json:"id"`
	Number    string             `json:"number"`
	Service   serviceRefResponse `json:"service"`
	Comment   string             `json:"comment"`
	Status    string             `json:"status"`
	CreatedAt string             `json:"created_at"`
}

type submitResponse struct {
	Message  string            `json:"message"`
	Incident submittedIncident `json:"incident"`
}

// Home lists the active catalog.
//
// @Summary      Public service catalog
// @Tags         public
// @Produce      json
// @Success      200  {object}  catalogResponse
// @Router       / [get]
func (h *PublicHandler) Home(c echo.Context) error {
	services, err := h.catalog.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalogResponse{Services: toServiceResponses(services)})
}

// RequestForm describes the intake form.
//
// @Summary      Intake form metadata
// @Tags         public
// @Produce      json
// @Success      200  {object}  requestFormResponse
// @Router       /request/ [get]
func (h *PublicHandler) RequestForm(c echo.Context) error {
	services, err := h.catalog.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requestFormResponse{
		Services: toServiceResponses(services),
		Fields: []fieldResponse{
			{Name: "service", Type: "select", Required: true},
			{Name: "comment", Type: "textarea", Required: true},
		},
	})
}

// Submit creates an incident. Signed-in callers are recorded as creator.
//
// @Summary      Submit an incident
// @Tags         public
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        Idempotency-Key  header    string  false  "Replays the earlier submission when repeated"
// @Param        service          formData  string  true   "Service id"
// @Param        comment          formData  string  true   "Problem description"
// @Success      201              {object}  submitResponse
// @Success      200              {object}  submitResponse  "Idempotent replay"
// @Failure      422              {object}  map[string]string
// @Failure      429              {object}  map[string]string
// @Router       /request/ [post]
func (h *PublicHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	who := middleware.Identity(c)
	res, err := h.incidents.Submit(c.Request().Context(), who, ports.SubmitIncidentInput{
		ServiceID:      req.Service,
		Comment:        req.Comment,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
		ClientKey:      c.RealIP(),
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	if !res.Replayed {
		status = http.StatusCreated
		channel := "anonymous"
		if who.IsAuthenticated() {
			channel = "authenticated"
		}
		metrics.IncidentsSubmittedTotal.WithLabelValues(channel).Inc()
	}

	inc := res.Incident
	return c.JSON(status, submitResponse{
		Message: submittedMessage,
		Incident: submittedIncident{
			ID:        inc.ID,
			Number:    inc.Number,
			Service:   serviceRefResponse{ID: res.Service.ID, Name: res.Service.Name},
			Comment:   inc.Comment,
			Status:    string(inc.Status),
			CreatedAt: inc.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}
