package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	mongoClient *mongo.Client
	database    *mongo.Database
)

// ConnectDB dials the primary store. MONGODB_URI is the single required
// piece of environment configuration.
func ConnectDB() error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
		log.Println("MONGODB_URI not set, using", uri)
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "carehub360"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}
	mongoClient = client
	database = client.Database(dbName)
	log.Println("Connected to database:", dbName)
	return nil
}

// OpenCollection returns a handle to a collection in the primary store.
func OpenCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

func DisconnectDB(ctx context.Context) {
	if mongoClient == nil {
		return
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting from database:", err)
	}
}
