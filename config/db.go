package config

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var (
	mongoClient *mongo.Client
	mongoDB     *mongo.Database
)

// ConnectDB establishes the MongoDB connection. A missing MONGO_URI or an
// unreachable server is not fatal: the process continues in demo mode with
// ephemeral storage, so it returns false instead of an error.
func ConnectDB() bool {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		Log.Warn("MONGO_URI not set, running in demo mode without database")
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(30 * time.Second).
		SetConnectTimeout(30 * time.Second).
		SetSocketTimeout(60 * time.Second).
		SetMaxPoolSize(10).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		Log.Warn("MongoDB connection failed, running in demo mode without database", zap.Error(err))
		return false
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		Log.Warn("MongoDB ping failed, running in demo mode without database", zap.Error(err))
		return false
	}

	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "buildestate"
	}

	mongoClient = client
	mongoDB = client.Database(dbName)
	SLog.Infof("MongoDB connected: %s", dbName)
	return true
}

func GetCollection(name string) *mongo.Collection {
	if mongoDB == nil {
		return nil
	}
	return mongoDB.Collection(name)
}

func DisconnectDB(ctx context.Context) {
	if mongoClient == nil {
		return
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		Log.Error("MongoDB disconnect failed", zap.Error(err))
	}
}
