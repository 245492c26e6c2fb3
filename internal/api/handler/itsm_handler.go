package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/servicedesk/service-desk/internal/api/metrics"
	"github.com/servicedesk/service-desk/internal/api/middleware"
	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/policy"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

// ITSMHandler serves the staff dashboard and the incident pages.
type ITSMHandler struct {
	incidents ports.IncidentService
}

func NewITSMHandler(incidents ports.IncidentService) *ITSMHandler {
	return &ITSMHandler{incidents: incidents}
}

type dashboardResponse struct {
	User  userResponse `json:"user"`
	Flags policy.Flags `json:"permissions"`
}

type incidentListRequest struct {
	Status     string `query:"status"`
	ServiceID  string `query:"service_id"`
	AssignedTo string `query:"assigned_to"`
	Search     string `query:"q"`
}

type incidentListResponse struct {
	Incidents     []incidentResponse `json:"incidents"`
	StatusChoices []choiceResponse   `json:"status_choices"`
}

type incidentDetailResponse struct {
	Incident      incidentResponse `json:"incident"`
	CanEditStatus bool             `json:"can_edit_status"`
	CanAssign     bool             `json:"can_assign"`
	StatusChoices []choiceResponse `json:"status_choices"`
	Techs         []userResponse   `json:"techs,omitempty"`
}

type incidentActionRequest struct {
	ID         string `param:"id"`
	Action     string `json:"action" form:"action" validate:"required,oneof=status assign"`
	Status     string `json:"status" form:"status"`
	AssignedTo string `json:"assigned_to" form:"assigned_to" validate:"omitempty,mongodb"`
}

// Dashboard returns the caller's role flags.
//
// @Summary      ITSM dashboard
// @Tags         itsm
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /itsm/ [get]
func (h *ITSMHandler) Dashboard(c echo.Context) error {
	who := middleware.Identity(c)
	flags, err := h.incidents.Dashboard(c.Request().Context(), who)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		User:  userResponse{ID: who.UserID, Username: who.Username},
		Flags: flags,
	})
}

// ListIncidents returns every incident, newest first.
//
// @Summary      List incidents
// @Tags         itsm
// @Produce      json
// @Security     BearerAuth
// @Param        status       query     string  false  "Filter by status"
// @Param        service_id   query     string  false  "Filter by service"
// @Param        assigned_to  query     string  false  "Filter by assignee"
// @Param        q            query     string  false  "Search comment and number"
// @Success      200          {object}  incidentListResponse
// @Failure      401          {object}  map[string]string
// @Failure      422          {object}  map[string]string
// @Router       /itsm/incidents/ [get]
func (h *ITSMHandler) ListIncidents(c echo.Context) error {
	var req incidentListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	views, err := h.incidents.List(c.Request().Context(), middleware.Identity(c), ports.IncidentFilter{
		Status:     domain.IncidentStatus(req.Status),
		ServiceID:  req.ServiceID,
		AssignedTo: req.AssignedTo,
		Search:     req.Search,
	})
	if err != nil {
		return err
	}

	out := make([]incidentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toIncidentResponse(v))
	}
	return c.JSON(http.StatusOK, incidentListResponse{Incidents: out, StatusChoices: statusChoices()})
}

// IncidentDetail returns one incident and what the caller may do with it.
//
// @Summary      Incident detail
// @Tags         itsm
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Incident id"
// @Success      200  {object}  incidentDetailResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /itsm/incidents/{id}/ [get]
func (h *ITSMHandler) IncidentDetail(c echo.Context) error {
	return h.renderDetail(c, c.Param("id"), http.StatusOK)
}

// IncidentAction changes the status (action=status) or the assignee
// (action=assign) and returns the refreshed detail.
//
// @Summary      Update an incident
// @Tags         itsm
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Incident id"
// @Param        action       formData  string  true   "status or assign"
// @Param        status       formData  string  false  "New status for action=status"
// @Param        assigned_to  formData  string  false  "Assignee id for action=assign; empty unassigns"
// @Success      200          {object}  incidentDetailResponse
// @Failure      403          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Failure      422          {object}  map[string]string
// @Router       /itsm/incidents/{id}/ [post]
func (h *ITSMHandler) IncidentAction(c echo.Context) error {
	var req incidentActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	who := middleware.Identity(c)

	switch req.Action {
	case "status":
		inc, err := h.incidents.ChangeStatus(ctx, who, req.ID, req.Status)
		if err != nil {
			return err
		}
		metrics.IncidentStatusChangesTotal.WithLabelValues(string(inc.Status)).Inc()
	case "assign":
		inc, err := h.incidents.Assign(ctx, who, req.ID, req.AssignedTo)
		if err != nil {
			return err
		}
		action := "assign"
		if inc.AssignedTo == nil {
			action = "unassign"
		}
		metrics.IncidentAssignmentsTotal.WithLabelValues(action).Inc()
	}

	return h.renderDetail(c, req.ID, http.StatusOK)
}

func (h *ITSMHandler) renderDetail(c echo.Context, id string, status int) error {
	d, err := h.incidents.Get(c.Request().Context(), middleware.Identity(c), id)
	if err != nil {
		return err
	}

	choices := make([]choiceResponse, 0, len(d.StatusChoices))
	for _, sc := range d.StatusChoices {
		choices = append(choices, choiceResponse{Value: sc.Value, Label: sc.Label})
	}
	resp := incidentDetailResponse{
		Incident:      toIncidentResponse(d.Incident),
		CanEditStatus: d.CanEditStatus,
		CanAssign:     d.CanAssign,
		StatusChoices: choices,
	}
	if d.CanAssign {
		resp.Techs = toUserResponses(d.Techs)
	}
	return c.JSON(status, resp)
}
