package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/servicedesk/service-desk/internal/infrastructure/db/mongo"
	redisdb "github.com/servicedesk/service-desk/internal/infrastructure/db/redis"
	"github.com/servicedesk/service-desk/pkg/logger"
)

const disconnectTimeout = 5 * time.Second

// stores holds the open connections and the repositories built on them.
type stores struct {
	mongo *mongodriver.Client
	redis *redis.Client

	users     *mongo.UserRepository
	services  *mongo.ServiceRepository
	incidents *mongo.IncidentRepository
	messages  *mongo.MessageRepository
}

// openStores connects to MongoDB, ensures indexes and, when withRedis is set,
// connects to Redis too. The user commands only need MongoDB.
func openStores(ctx context.Context, withRedis bool) (*stores, error) {
	log := logger.Get()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	st := &stores{
		mongo:     client,
		users:     mongo.NewUserRepository(db),
		services:  mongo.NewServiceRepository(db),
		incidents: mongo.NewIncidentRepository(db),
		messages:  mongo.NewMessageRepository(db),
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	if err := mongo.EnsureIndexes(ctx, st.users, st.services, st.incidents, st.messages); err != nil {
		st.close()
		return nil, err
	}

	if withRedis {
		st.redis, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			st.close()
			return nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}
	return st, nil
}

func (s *stores) pingMongo(ctx context.Context) error {
	return s.mongo.Ping(ctx, readpref.Primary())
}

func (s *stores) pingRedis(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *stores) close() {
	log := logger.Get()
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := s.mongo.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("mongo disconnect")
	}
}
