package config

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/redisclient"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// Postgres is the registry database pool
	Postgres *sql.DB
	// MongoDB holds the audit trail, nil when unavailable
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitPostgres opens the connection pool, checks it and applies the schema
func InitPostgres(ctx context.Context) error {
	db, err := sql.Open("postgres", AppConfig.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(AppConfig.DBMaxOpenConns)
	db.SetMaxIdleConns(AppConfig.DBMaxIdleConns)
	db.SetConnMaxLifetime(AppConfig.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return fmt.Errorf("ping postgres: %w", err)
	}

	if err := repository.Migrate(pingCtx, db); err != nil {
		db.Close()
		return err
	}

	Postgres = db

	logging.Logger.Info("connected to PostgreSQL",
		zap.String("url", maskDatabaseURL(AppConfig.DatabaseURL)),
		zap.Int("max_open_conns", AppConfig.DBMaxOpenConns),
	)
	return nil
}

// InitMongoDB connects the audit store. Failures are logged and leave
// MongoDB nil so the API keeps serving without an audit trail.
func InitMongoDB() {
	if !AppConfig.AuditLogsEnabled {
		logging.Logger.Info("audit logs disabled, skipping MongoDB")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(20).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logging.Logger.Error("failed to connect to MongoDB", zap.Error(err))
		return
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logging.Logger.Error("failed to ping MongoDB",
			zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
			zap.Error(err))
		_ = client.Disconnect(context.Background())
		return
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := ensureAuditLogsIndex(ctx, logging.Logger.Unwrap().Named("database")); err != nil {
		logging.Logger.Error("failed to ensure audit indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("connected to MongoDB",
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
		MinIdleConns: 2,
	})

	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		// the CEP cache and login limiter both degrade without Redis
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis", zap.String("uri", AppConfig.RedisURI))
}

// maskMongoURI masks the credentials of a MongoDB URI
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	return "mongodb://****:****@" + uri[at+1:]
}

// maskDatabaseURL hides the password of a PostgreSQL URL
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "redacted")
	}
	return u.String()
}

// ensureAuditLogsIndex creates the indexes used to browse the audit trail
func ensureAuditLogsIndex(ctx context.Context, logger *zap.Logger) error {
	collection := MongoDB.Collection(AppConfig.AuditLogsCollection)

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		logger.Error("failed to list indexes", zap.Error(err))
		return err
	}
	defer cursor.Close(ctx)

	existing := make(map[string]bool)
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			continue
		}
		if name, ok := index["name"].(string); ok {
			existing[name] = true
		}
	}

	var toCreate []mongo.IndexModel
	for _, model := range auditIndexModels() {
		if !existing[*model.Options.Name] {
			toCreate = append(toCreate, model)
		}
	}

	for _, model := range toCreate {
		if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			logger.Error("failed to create audit_logs index",
				zap.String("collection", AppConfig.AuditLogsCollection),
				zap.String("index", *model.Options.Name),
				zap.Error(err))
			return err
		}
	}

	if len(toCreate) > 0 {
		logger.Info("created audit_logs collection indexes",
			zap.String("collection", AppConfig.AuditLogsCollection),
			zap.Int("count", len(toCreate)))
	}
	return nil
}

func auditIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "resource", Value: 1}, {Key: "resource_id", Value: 1}},
			Options: options.Index().SetName("resource_1_resource_id_1"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("user_id_1_timestamp_-1"),
		},
		{
			// keep audit entries for one year
			Keys:    bson.D{{Key: "timestamp", Value: 1}},
			Options: options.Index().SetName("timestamp_ttl").SetExpireAfterSeconds(365 * 24 * 60 * 60),
		},
	}
}
