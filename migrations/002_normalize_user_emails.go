package migrations

import (
	"context"
	"log"
	"strings"

	"CareHub360/config"
	"CareHub360/models"
	"CareHub360/util"

	"go.mongodb.org/mongo-driver/bson"
)

// NormalizeUserEmails lowercases and trims stored account emails so the
// unique-email rule holds regardless of how legacy records were entered.
func NormalizeUserEmails() {
	ctx := context.Background()
	collection := config.OpenCollection(util.UserCollection)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("Migration 002: error fetching users:", err)
		return
	}
	defer cursor.Close(ctx)

	updated := 0
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			log.Println("Migration 002: error decoding user:", err)
			continue
		}
		normalized := strings.ToLower(strings.TrimSpace(user.Email))
		if normalized == user.Email {
			continue
		}
		_, err := collection.UpdateOne(ctx,
			bson.M{"_id": user.ID},
			bson.M{"$set": bson.M{"email": normalized}})
		if err != nil {
			log.Println("Migration 002: error updating user:", err)
			continue
		}
		updated++
	}
	log.Printf("Migration 002: normalized emails for %d users", updated)
}
