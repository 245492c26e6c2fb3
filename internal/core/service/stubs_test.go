package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(username string, role domain.Role) *domain.User {
	u, err := r.Create(context.Background(), &domain.User{Username: username, Role: role})
	if err != nil {
		panic(err)
	}
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, role domain.Role) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		if role != domain.RoleAnonymous && u.Role != role {
			continue
		}
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubServiceRepo struct {
	seq      int
	services map[string]*domain.Service
	listErr  error
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[string]*domain.Service)}
}

func (r *stubServiceRepo) add(name, price string, active bool) *domain.Service {
	s, err := domain.NewService(domain.ServiceFields{Name: name, Price: price, IsActive: active})
	if err != nil {
		panic(err)
	}
	if err := r.Create(context.Background(), s); err != nil {
		panic(err)
	}
	return s
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) error {
	r.seq++
	s.ID = fmt.Sprintf("svc-%d", r.seq)
	clone := *s
	r.services[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) Update(_ context.Context, s *domain.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	clone := *s
	r.services[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Service
	for _, s := range r.services {
		if activeOnly && !s.IsActive {
			continue
		}
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

type stubIncidentRepo struct {
	seq       int
	incidents map[string]*domain.Incident
	updateErr error
}

func newStubIncidentRepo() *stubIncidentRepo {
	return &stubIncidentRepo{incidents: make(map[string]*domain.Incident)}
}

func cloneIncident(i *domain.Incident) *domain.Incident {
	clone := *i
	if i.CreatedBy != nil {
		v := *i.CreatedBy
		clone.CreatedBy = &v
	}
	if i.AssignedTo != nil {
		v := *i.AssignedTo
		clone.AssignedTo = &v
	}
	return &clone
}

func (r *stubIncidentRepo) Create(_ context.Context, inc *domain.Incident) error {
	r.seq++
	inc.ID = fmt.Sprintf("inc-%d", r.seq)
	r.incidents[inc.ID] = cloneIncident(inc)
	return nil
}

func (r *stubIncidentRepo) FindByID(_ context.Context, id string) (*domain.Incident, error) {
	inc, ok := r.incidents[id]
	if !ok {
		return nil, domain.ErrIncidentNotFound
	}
	return cloneIncident(inc), nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubIncidentRepo) List(_ context.Context, f ports.IncidentFilter) ([]*domain.Incident, error) {
	var out []*domain.Incident
	for _, inc := range r.incidents {
		if f.Status != "" && inc.Status != f.Status {
			continue
		}
		if f.ServiceID != "" && inc.ServiceID != f.ServiceID {
			continue
		}
		if f.AssignedTo != "" && !inc.IsAssignedTo(f.AssignedTo) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(inc.Comment), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, cloneIncident(inc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubIncidentRepo) UpdateStatus(_ context.Context, id string, status domain.IncidentStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	inc, ok := r.incidents[id]
	if !ok {
		return domain.ErrIncidentNotFound
	}
	inc.Status = status
	return nil
}

func (r *stubIncidentRepo) UpdateAssignee(_ context.Context, id string, assignee *string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	inc, ok := r.incidents[id]
	if !ok {
		return domain.ErrIncidentNotFound
	}
	if assignee == nil {
		inc.AssignedTo = nil
		return nil
	}
	v := *assignee
	inc.AssignedTo = &v
	return nil
}

func (r *stubIncidentRepo) CountByService(_ context.Context, serviceID string) (int64, error) {
	var n int64
	for _, inc := range r.incidents {
		if inc.ServiceID == serviceID {
			n++
		}
	}
	return n, nil
}

func (r *stubIncidentRepo) DeleteByService(_ context.Context, serviceID string) (int64, error) {
	var n int64
	for id, inc := range r.incidents {
		if inc.ServiceID == serviceID {
			delete(r.incidents, id)
			n++
		}
	}
	return n, nil
}

func (r *stubIncidentRepo) DetachUser(_ context.Context, userID string) error {
	for _, inc := range r.incidents {
		if inc.CreatedBy != nil && *inc.CreatedBy == userID {
			inc.CreatedBy = nil
		}
		if inc.IsAssignedTo(userID) {
			inc.AssignedTo = nil
		}
	}
	return nil
}

type stubMessageRepo struct {
	seq      int
	messages []*domain.Message
}

func (r *stubMessageRepo) Append(_ context.Context, m *domain.Message) error {
	r.seq++
	m.ID = fmt.Sprintf("msg-%d", r.seq)
	clone := *m
	r.messages = append(r.messages, &clone)
	return nil
}

func (r *stubMessageRepo) Conversation(_ context.Context, a, b string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubMessageRepo) DeleteByUser(_ context.Context, userID string) error {
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.SenderID != userID && m.ReceiverID != userID {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

// ---------------------------------------------------------------------------
// Redis-side stubs
// ---------------------------------------------------------------------------

type stubIdempotency struct {
	keys map[string]string
	err  error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string)}
}

func (s *stubIdempotency) Lookup(_ context.Context, key string) (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	id, ok := s.keys[key]
	return id, ok, nil
}

func (s *stubIdempotency) Remember(_ context.Context, key, incidentID string) error {
	if s.err != nil {
		return s.err
	}
	s.keys[key] = incidentID
	return nil
}

type stubLimiter struct {
	limit int
	seen  map[string]int
	err   error
}

func newStubLimiter(limit int) *stubLimiter {
	return &stubLimiter{limit: limit, seen: make(map[string]int)}
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.seen[key]++
	return l.seen[key] <= l.limit, nil
}

type stubDenylist struct {
	revoked map[string]time.Time
	err     error
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Time)}
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, until time.Time) error {
	if d.err != nil {
		return d.err
	}
	d.revoked[tokenID] = until
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	_, ok := d.revoked[tokenID]
	return ok, nil
}

// plainText trims input and leaves markdown as-is.
type plainText struct{}

func (plainText) Markdown(src string) (string, error) { return "<p>" + src + "</p>", nil }
func (plainText) Plain(src string) string             { return strings.TrimSpace(src) }

// ---------------------------------------------------------------------------
// Identities
// ---------------------------------------------------------------------------

func identityOf(u *domain.User) domain.Identity {
	return domain.Identity{UserID: u.ID, Username: u.Username, Role: u.Role}
}
