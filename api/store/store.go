/* store.go
 * Contains the Store struct and NewStore function. The methods for this package live in
 * visits.go which contains everything for interacting with the visit log collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Visits *mongo.Collection
	}
}

// NewStore initialises the Store and its db connection
// Preconditions: Receives strings containing the database name and mongo URI
// Postconditions: Sets collection values and returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Visits = db.Collection("visits")

	return s, nil
}
