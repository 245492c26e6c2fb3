package domain

import (
	"strings"
	"time"
)

// IncidentStatus is the lifecycle state of an incident.
type IncidentStatus string

const (
	StatusNew        IncidentStatus = "new"
	StatusInProgress IncidentStatus = "in_progress"
	StatusDone       IncidentStatus = "done"
	StatusCancelled  IncidentStatus = "cancelled"
)

var statusLabels = map[IncidentStatus]string{
	StatusNew:        "New",
	StatusInProgress: "In progress",
	StatusDone:       "Done",
	StatusCancelled:  "Cancelled",
}

// IncidentStatuses returns the status choices in display order.
func IncidentStatuses() []IncidentStatus {
	return []IncidentStatus{StatusNew, StatusInProgress, StatusDone, StatusCancelled}
}

func (s IncidentStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s IncidentStatus) Label() string {
	return statusLabels[s]
}

// Terminal reports whether s ends the normal workflow. Nothing prevents
// moving a terminal incident to another status.
func (s IncidentStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// ParseIncidentStatus only checks membership in the status set. Any status
// may follow any other.
func ParseIncidentStatus(raw string) (IncidentStatus, error) {
	s := IncidentStatus(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Incident is a support ticket raised against a catalog service.
type Incident struct {
	ID         string         `json:"id"`
	Number     string         `json:"number"`
	ServiceID  string         `json:"service_id"`
	CreatedBy  *string        `json:"created_by"`
	Comment    string         `json:"comment"`
	Status     IncidentStatus `json:"status"`
	AssignedTo *string        `json:"assigned_to"`
	CreatedAt  time.Time      `json:"created_at"`
}

// IsAssignedTo reports whether the incident is assigned to userID.
func (i *Incident) IsAssignedTo(userID string) bool {
	return i.AssignedTo != nil && *i.AssignedTo == userID
}
