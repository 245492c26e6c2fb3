package handler

import (
	"time"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type serviceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
	Price           string `json:"price"`
	IsActive        bool   `json:"is_active"`
}

type serviceRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type incidentResponse struct {
	ID          string             `json:"id"`
	Number      string             `json:"number"`
	Service     serviceRefResponse `json:"service"`
	Comment     string             `json:"comment"`
	Status      string             `json:"status"`
	StatusLabel string             `json:"status_label"`
	CreatedBy   *userResponse      `json:"created_by"`
	AssignedTo  *userResponse      `json:"assigned_to"`
	CreatedAt   string             `json:"created_at"`
}

type choiceResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type fieldResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

func toUserResponse(ref *ports.UserRef) *userResponse {
	if ref == nil {
		return nil
	}
	return &userResponse{ID: ref.ID, Username: ref.Username}
}

func toUserResponses(refs []ports.UserRef) []userResponse {
	out := make([]userResponse, 0, len(refs))
	for _, r := range refs {
		out = append(out, userResponse{ID: r.ID, Username: r.Username})
	}
	return out
}

func toServiceResponse(v ports.ServiceView) serviceResponse {
	return serviceResponse{
		ID:              v.ID,
		Name:            v.Name,
		Description:     v.Description,
		DescriptionHTML: v.DescriptionHTML,
		Price:           v.Price,
		IsActive:        v.IsActive,
	}
}

func toServiceResponses(views []ports.ServiceView) []serviceResponse {
	out := make([]serviceResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toServiceResponse(v))
	}
	return out
}

func toIncidentResponse(v ports.IncidentView) incidentResponse {
	return incidentResponse{
		ID:          v.ID,
		Number:      v.Number,
		Service:     serviceRefResponse{ID: v.ServiceID, Name: v.ServiceName},
		Comment:     v.Comment,
		Status:      string(v.Status),
		StatusLabel: v.Status.Label(),
		CreatedBy:   toUserResponse(v.CreatedBy),
		AssignedTo:  toUserResponse(v.AssignedTo),
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func statusChoices() []choiceResponse {
	out := make([]choiceResponse, 0, 4)
	for _, s := range domain.IncidentStatuses() {
		out = append(out, choiceResponse{Value: string(s), Label: s.Label()})
	}
	return out
}
