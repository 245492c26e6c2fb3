package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/servicedesk/service-desk/internal/core/domain"
)

// MessageRepository stores direct messages. It serves as both the
// ConversationReader and the MessageWriter of the chat service.
type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(collectionMessages)}
}

type messageDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	SenderID   primitive.ObjectID `bson:"sender_id"`
	ReceiverID primitive.ObjectID `bson:"receiver_id"`
	Text       string             `bson:"text"`
	Timestamp  time.Time          `bson:"timestamp"`
}

func (r *MessageRepository) Append(ctx context.Context, m *domain.Message) error {
	sender, ok := objectID(m.SenderID)
	if !ok {
		return domain.ErrUserNotFound
	}
	receiver, ok := objectID(m.ReceiverID)
	if !ok {
		return domain.ErrUserNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := messageDoc{
		ID:         primitive.NewObjectID(),
		SenderID:   sender,
		ReceiverID: receiver,
		Text:       m.Text,
		Timestamp:  m.CreatedAt.UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	m.ID = doc.ID.Hex()
	return nil
}

// Conversation returns the messages exchanged between a and b in either
// direction, oldest first.
func (r *MessageRepository) Conversation(ctx context.Context, a, b string) ([]*domain.Message, error) {
	aID, okA := objectID(a)
	bID, okB := objectID(b)
	if !okA || !okB {
		return []*domain.Message{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": aID, "receiver_id": bID},
		bson.M{"sender_id": bID, "receiver_id": aID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	defer cur.Close(ctx)

	var docs []messageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	out := make([]*domain.Message, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.Message{
			ID:         d.ID.Hex(),
			SenderID:   d.SenderID.Hex(),
			ReceiverID: d.ReceiverID.Hex(),
			Text:       d.Text,
			CreatedAt:  d.Timestamp.UTC(),
		})
	}
	return out, nil
}

func (r *MessageRepository) DeleteByUser(ctx context.Context, userID string) error {
	oid, ok := objectID(userID)
	if !ok {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"$or": bson.A{
		bson.M{"sender_id": oid},
		bson.M{"receiver_id": oid},
	}})
	if err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	return nil
}

func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "receiver_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "receiver_id", Value: 1}}},
	})
	return err
}
