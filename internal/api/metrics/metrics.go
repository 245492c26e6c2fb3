// Package metrics defines the service desk's own Prometheus metrics. HTTP
// request metrics come from the echoprometheus middleware instead.
//
// Every metric is registered on the default registry at package init through
// promauto, so importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "servicedesk"

// ── Incidents ─────────────────────────────────────────────────────────────────

// IncidentsSubmittedTotal counts incidents created through the intake form.
// Label:
//   - channel: "anonymous" or "authenticated"
var IncidentsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incidents_submitted_total",
		Help:      "Total number of incidents submitted, by channel.",
	},
	[]string{"channel"},
)

// IncidentStatusChangesTotal counts successful status updates by target status.
var IncidentStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incident_status_changes_total",
		Help:      "Total number of incident status changes, by new status.",
	},
	[]string{"status"},
)

// IncidentAssignmentsTotal counts assignee changes.
// Label:
//   - action: "assign" or "unassign"
var IncidentAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incident_assignments_total",
		Help:      "Total number of incident assignee changes.",
	},
	[]string{"action"},
)

// SubmissionsRateLimitedTotal counts intake submissions rejected by the limiter.
var SubmissionsRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_rate_limited_total",
		Help:      "Total number of anonymous submissions rejected by the rate limiter.",
	},
)

// ── Catalog ───────────────────────────────────────────────────────────────────

var ServicesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "services_deleted_total",
		Help:      "Total number of catalog services deleted.",
	},
)

// IncidentsCascadeDeletedTotal counts incidents removed together with their service.
var IncidentsCascadeDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incidents_cascade_deleted_total",
		Help:      "Total number of incidents deleted because their service was deleted.",
	},
)

// ── Messaging ─────────────────────────────────────────────────────────────────

var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of direct messages sent.",
	},
)

// ── Access control ────────────────────────────────────────────────────────────

// AuthzDeniedTotal counts requests answered with 403.
// Label:
//   - route: the matched route pattern (e.g. "/itsm/incidents/:id/")
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied for lack of permission, by route.",
	},
	[]string{"route"},
)
