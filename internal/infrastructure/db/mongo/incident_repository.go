package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
)

type IncidentRepository struct {
	col *mongo.Collection
}

func NewIncidentRepository(db *mongo.Database) *IncidentRepository {
	return &IncidentRepository{col: db.Collection(collectionIncidents)}
}

type incidentDoc struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	Number     string              `bson:"number"`
	ServiceID  primitive.ObjectID  `bson:"service_id"`
	CreatedBy  *primitive.ObjectID `bson:"created_by"`
	Comment    string              `bson:"comment"`
	Status     string              `bson:"status"`
	AssignedTo *primitive.ObjectID `bson:"assigned_to"`
	CreatedAt  time.Time           `bson:"created_at"`
}

func (d incidentDoc) toDomain() *domain.Incident {
	return &domain.Incident{
		ID:         d.ID.Hex(),
		Number:     d.Number,
		ServiceID:  d.ServiceID.Hex(),
		CreatedBy:  optionalHex(d.CreatedBy),
		Comment:    d.Comment,
		Status:     domain.IncidentStatus(d.Status),
		AssignedTo: optionalHex(d.AssignedTo),
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

// Create inserts a new incident document and sets inc.ID.
func (r *IncidentRepository) Create(ctx context.Context, inc *domain.Incident) error {
	serviceID, ok := objectID(inc.ServiceID)
	if !ok {
		return domain.ErrServiceNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := incidentDoc{
		ID:         primitive.NewObjectID(),
		Number:     inc.Number,
		ServiceID:  serviceID,
		CreatedBy:  optionalObjectID(inc.CreatedBy),
		Comment:    inc.Comment,
		Status:     string(inc.Status),
		AssignedTo: optionalObjectID(inc.AssignedTo),
		CreatedAt:  inc.CreatedAt.UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	inc.ID = doc.ID.Hex()
	return nil
}

func (r *IncidentRepository) FindByID(ctx context.Context, id string) (*domain.Incident, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrIncidentNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc incidentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("find incident: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns the incidents matching f, newest first. A filter on a
// malformed id matches nothing.
func (r *IncidentRepository) List(ctx context.Context, f ports.IncidentFilter) ([]*domain.Incident, error) {
	filter, ok := incidentFilter(f)
	if !ok {
		return []*domain.Incident{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer cur.Close(ctx)

	var docs []incidentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode incidents: %w", err)
	}
	out := make([]*domain.Incident, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func incidentFilter(f ports.IncidentFilter) (bson.M, bool) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	if f.ServiceID != "" {
		oid, ok := objectID(f.ServiceID)
		if !ok {
			return nil, false
		}
		filter["service_id"] = oid
	}
	if f.AssignedTo != "" {
		oid, ok := objectID(f.AssignedTo)
		if !ok {
			return nil, false
		}
		filter["assigned_to"] = oid
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"comment": pattern},
			bson.M{"number": pattern},
		}
	}
	return filter, true
}

// UpdateStatus sets the status of a single incident.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id string, status domain.IncidentStatus) error {
	return r.set(ctx, id, bson.M{"status": string(status)})
}

// UpdateAssignee sets or clears (nil) the assignee.
func (r *IncidentRepository) UpdateAssignee(ctx context.Context, id string, assignee *string) error {
	var value interface{}
	if assignee != nil {
		oid, ok := objectID(*assignee)
		if !ok {
			return domain.ErrUserNotFound
		}
		value = oid
	}
	return r.set(ctx, id, bson.M{"assigned_to": value})
}

func (r *IncidentRepository) set(ctx context.Context, id string, fields bson.M) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrIncidentNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update incident: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrIncidentNotFound
	}
	return nil
}

func (r *IncidentRepository) CountByService(ctx context.Context, serviceID string) (int64, error) {
	oid, ok := objectID(serviceID)
	if !ok {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"service_id": oid})
	if err != nil {
		return 0, fmt.Errorf("count incidents: %w", err)
	}
	return n, nil
}

func (r *IncidentRepository) DeleteByService(ctx context.Context, serviceID string) (int64, error) {
	oid, ok := objectID(serviceID)
	if !ok {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"service_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete incidents: %w", err)
	}
	return res.DeletedCount, nil
}

// DetachUser clears created_by and assigned_to wherever they point at userID.
func (r *IncidentRepository) DetachUser(ctx context.Context, userID string) error {
	oid, ok := objectID(userID)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for _, field := range []string{"created_by", "assigned_to"} {
		if _, err := r.col.UpdateMany(ctx, bson.M{field: oid}, bson.M{"$set": bson.M{field: nil}}); err != nil {
			return fmt.Errorf("detach %s: %w", field, err)
		}
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the incidents collection.
func (r *IncidentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "service_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_to", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
