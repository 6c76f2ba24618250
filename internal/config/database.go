package config

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/logging"
	"github.com/dnl4/brasil/internal/redisclient"
)

var (
	// MongoDB client
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatal(err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := ensureIndexes(); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("Connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
}

// InitRedis initializes the Redis connection
func InitRedis() {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Wrap with traced client
	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		log.Fatal(err)
	}

	logging.Logger.Info("Connected to Redis", zap.String("uri", AppConfig.RedisURI))
}

// collectionIndex binds an index model to the collection it lives on
type collectionIndex struct {
	collection string
	model      mongo.IndexModel
}

// collectionIndexes returns the indexes every collection depends on
func collectionIndexes() []collectionIndex {
	return []collectionIndex{
		{
			collection: AppConfig.UsersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetName("user_id_1").SetUnique(true),
			},
		},
		{
			// Display names are globally unique; the service-level
			// availability check is advisory, this index is the invariant
			collection: AppConfig.UsersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "display_name", Value: 1}},
				Options: options.Index().SetName("display_name_1").SetUnique(true),
			},
		},
		{
			// Services search groups ratings by provider phone + service
			collection: AppConfig.RatingsCollection,
			model: mongo.IndexModel{
				Keys: bson.D{
					{Key: "prestador_whatsapp", Value: 1},
					{Key: "servico", Value: 1},
					{Key: "created_at", Value: -1},
				},
				Options: options.Index().SetName("prestador_servico_created_1"),
			},
		},
		{
			collection: AppConfig.RatingsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("user_created_1"),
			},
		},
		{
			// One report per reporter per rating
			collection: AppConfig.ReportsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "rating_id", Value: 1}, {Key: "reporter_id", Value: 1}},
				Options: options.Index().SetName("rating_reporter_1").SetUnique(true),
			},
		},
		{
			// Suggestions feed is ordered by vote count
			collection: AppConfig.SuggestionsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "votes", Value: -1}},
				Options: options.Index().SetName("votes_-1"),
			},
		},
	}
}

// ensureIndexes creates the indexes on startup
func ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := logging.Logger

	for _, idx := range collectionIndexes() {
		_, err := MongoDB.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// Another instance created it first
				continue
			}
			logger.Error("failed to create index",
				zap.String("collection", idx.collection),
				zap.Error(err))
			return err
		}
	}

	logger.Info("all required indexes verified")
	return nil
}

// maskMongoURI masks credentials in MongoDB URI for logging
func maskMongoURI(uri string) string {
	if strings.Contains(uri, "@") {
		parts := strings.Split(uri, "@")
		if len(parts) == 2 {
			protocolParts := strings.Split(parts[0], "://")
			if len(protocolParts) == 2 {
				return protocolParts[0] + "://***:***@" + parts[1]
			}
		}
	}
	return uri
}
