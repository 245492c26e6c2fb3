// Package policy decides who may do what on incidents and catalog services.
// Every function here is pure: the answer depends only on the caller's role
// and the resource passed in.
package policy

import (
	"github.com/servicedesk/service-desk/internal/core/domain"
)

type Resource string

const (
	ResourceITSM     Resource = "itsm"
	ResourceIncident Resource = "incident"
	ResourceService  Resource = "service"
)

type Action string

const (
	ActionView         Action = "view"
	ActionChangeStatus Action = "change_status"
	ActionAssign       Action = "assign"
	ActionCreate       Action = "create"
	ActionEdit         Action = "edit"
	ActionDelete       Action = "delete"
)

type roleSet map[domain.Role]struct{}

func roles(rs ...domain.Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

var (
	everyone     = roles(domain.RoleAdmin, domain.RoleTech, domain.RoleEmployee)
	workers      = roles(domain.RoleAdmin, domain.RoleTech)
	adminsOnly   = roles(domain.RoleAdmin)
	catalogStaff = roles(domain.RoleAdmin, domain.RoleEmployee)
)

// table lists the roles allowed per resource and action. Anonymous callers
// never appear: the public catalog and the intake form live outside it.
var table = map[Resource]map[Action]roleSet{
	ResourceITSM: {
		ActionView: everyone,
	},
	ResourceIncident: {
		ActionView:         everyone,
		ActionCreate:       everyone,
		ActionChangeStatus: workers,
		ActionAssign:       adminsOnly,
	},
	ResourceService: {
		ActionView:   everyone,
		ActionCreate: catalogStaff,
		ActionEdit:   catalogStaff,
		ActionDelete: catalogStaff,
	},
}

// Allowed reports whether who may perform act on res.
func Allowed(who domain.Identity, res Resource, act Action) bool {
	if !who.IsAuthenticated() {
		return false
	}
	_, ok := table[res][act][who.Role]
	return ok
}

// Authorize is Allowed as an error: ErrUnauthenticated for anonymous callers,
// ErrForbidden for a signed-in caller lacking the capability.
func Authorize(who domain.Identity, res Resource, act Action) error {
	if !who.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	if !Allowed(who, res, act) {
		return domain.ErrForbidden
	}
	return nil
}

func IsAdmin(who domain.Identity) bool {
	return who.IsAuthenticated() && who.Role == domain.RoleAdmin
}

func IsTech(who domain.Identity) bool {
	return who.IsAuthenticated() && who.Role == domain.RoleTech
}

func IsEmployee(who domain.Identity) bool {
	return who.IsAuthenticated() && who.Role == domain.RoleEmployee
}

// CanEditStatus holds exactly for admins and technicians.
func CanEditStatus(who domain.Identity, _ *domain.Incident) bool {
	return Allowed(who, ResourceIncident, ActionChangeStatus)
}

// CanAssign holds exactly for admins.
func CanAssign(who domain.Identity, _ *domain.Incident) bool {
	return Allowed(who, ResourceIncident, ActionAssign)
}

// CanManageServices covers create, edit and delete on the catalog.
func CanManageServices(who domain.Identity) bool {
	return Allowed(who, ResourceService, ActionCreate) &&
		Allowed(who, ResourceService, ActionEdit) &&
		Allowed(who, ResourceService, ActionDelete)
}

// Flags are the role switches shown on the ITSM dashboard.
type Flags struct {
	Role              string `json:"role"`
	IsAdmin           bool   `json:"is_admin"`
	IsTech            bool   `json:"is_tech"`
	IsEmployee        bool   `json:"is_employee"`
	CanEditStatus     bool   `json:"can_edit_status"`
	CanAssign         bool   `json:"can_assign"`
	CanManageServices bool   `json:"can_manage_services"`
}

func Capabilities(who domain.Identity) Flags {
	return Flags{
		Role:              who.Role.String(),
		IsAdmin:           IsAdmin(who),
		IsTech:            IsTech(who),
		IsEmployee:        IsEmployee(who),
		CanEditStatus:     CanEditStatus(who, nil),
		CanAssign:         CanAssign(who, nil),
		CanManageServices: CanManageServices(who),
	}
}
