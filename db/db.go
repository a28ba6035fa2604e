package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	DesksCollection       *mongo.Collection
	BuildingsCollection   *mongo.Collection
	LocationsCollection   *mongo.Collection
	DeskTypesCollection   *mongo.Collection
	SlotMasterCollection  *mongo.Collection
	DeskPricingCollection *mongo.Collection
	BookingTxnsCollection *mongo.Collection
	UserCollection        *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("deskdb")
	DesksCollection = database.Collection("desks")
	BuildingsCollection = database.Collection("buildings")
	LocationsCollection = database.Collection("locations")
	DeskTypesCollection = database.Collection("desk_types")
	SlotMasterCollection = database.Collection("slot_master")
	DeskPricingCollection = database.Collection("desk_pricing")
	BookingTxnsCollection = database.Collection("booking_transactions")
	UserCollection = database.Collection("users")
}
