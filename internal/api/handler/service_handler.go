package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/servicedesk/service-desk/internal/api/metrics"
	"github.com/servicedesk/service-desk/internal/api/middleware"
	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

// ServiceHandler manages the catalog from the ITSM panel.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type serviceListResponse struct {
	Services  []serviceResponse `json:"services"`
	CanManage bool              `json:"can_manage"`
}

type serviceFormResponse struct {
	Fields  []fieldResponse  `json:"fields"`
	Service *serviceResponse `json:"service,omitempty"`
}

type serviceRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=255"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price" validate:"required"`
	IsActive    string `json:"is_active" form:"is_active"`
}

type deletePreviewResponse struct {
	Service            serviceResponse `json:"service"`
	DependentIncidents int64           `json:"dependent_incidents"`
	Warning            string          `json:"warning"`
}

type deleteResponse struct {
	Deleted          string `json:"deleted"`
	IncidentsDeleted int64  `json:"incidents_deleted"`
}

var serviceFields = []fieldResponse{
	{Name: "name", Type: "text", Required: true},
	{Name: "description", Type: "markdown", Required: false},
	{Name: "price", Type: "decimal", Required: true},
	{Name: "is_active", Type: "checkbox", Required: false},
}

// fields accepts the usual checkbox encodings for is_active: "on", "true",
// "1". Anything else, including absence, is false.
func (r serviceRequest) fields() domain.ServiceFields {
	active := strings.EqualFold(strings.TrimSpace(r.IsActive), "on")
	if !active {
		active, _ = strconv.ParseBool(strings.TrimSpace(r.IsActive))
	}
	return domain.ServiceFields{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		IsActive:    active,
	}
}

// List returns every service with the caller's management flag.
//
// @Summary      Manage services
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  serviceListResponse
// @Failure      401  {object}  map[string]string
// @Router       /itsm/services/ [get]
func (h *ServiceHandler) List(c echo.Context) error {
	list, err := h.catalog.List(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serviceListResponse{
		Services:  toServiceResponses(list.Services),
		CanManage: list.CanManage,
	})
}

// CreateForm describes the fields of a new service.
//
// @Summary      New service form
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  serviceFormResponse
// @Failure      403  {object}  map[string]string
// @Router       /itsm/services/create/ [get]
func (h *ServiceHandler) CreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, serviceFormResponse{Fields: serviceFields})
}

// Create adds a service to the catalog.
//
// @Summary      Create a service
// @Tags         services
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Name"
// @Param        description  formData  string  false  "Markdown description"
// @Param        price        formData  string  true   "Price, two decimals at most"
// @Param        is_active    formData  string  false  "on/true when offered"
// @Success      201          {object}  serviceResponse
// @Failure      403          {object}  map[string]string
// @Failure      422          {object}  map[string]string
// @Router       /itsm/services/create/ [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.catalog.Create(c.Request().Context(), middleware.Identity(c), req.fields())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toServiceResponse(*view))
}

// EditForm returns the current values of a service.
//
// @Summary      Edit service form
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  serviceFormResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /itsm/services/{id}/edit/ [get]
func (h *ServiceHandler) EditForm(c echo.Context) error {
	view, err := h.catalog.Get(c.Request().Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	svc := toServiceResponse(*view)
	return c.JSON(http.StatusOK, serviceFormResponse{Fields: serviceFields, Service: &svc})
}

// Update replaces the editable attributes of a service.
//
// @Summary      Update a service
// @Tags         services
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Service id"
// @Param        name         formData  string  true   "Name"
// @Param        description  formData  string  false  "Markdown description"
// @Param        price        formData  string  true   "Price"
// @Param        is_active    formData  string  false  "on/true when offered"
// @Success      200          {object}  serviceResponse
// @Failure      403          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Failure      422          {object}  map[string]string
// @Router       /itsm/services/{id}/edit/ [post]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.catalog.Update(c.Request().Context(), middleware.Identity(c), c.Param("id"), req.fields())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toServiceResponse(*view))
}

// DeletePreview shows what a delete would take with it.
//
// @Summary      Delete confirmation
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  deletePreviewResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /itsm/services/{id}/delete/ [get]
func (h *ServiceHandler) DeletePreview(c echo.Context) error {
	p, err := h.catalog.DeletePreview(c.Request().Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletePreviewResponse{
		Service:            toServiceResponse(p.Service),
		DependentIncidents: p.DependentIncidents,
		Warning:            p.Warning,
	})
}

// Delete removes the service and every incident that references it.
//
// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  deleteResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /itsm/services/{id}/delete/ [post]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	removed, err := h.catalog.Delete(c.Request().Context(), middleware.Identity(c), id)
	if err != nil {
		return err
	}

	metrics.ServicesDeletedTotal.Inc()
	metrics.IncidentsCascadeDeletedTotal.Add(float64(removed))
	return c.JSON(http.StatusOK, deleteResponse{Deleted: id, IncidentsDeleted: removed})
}
