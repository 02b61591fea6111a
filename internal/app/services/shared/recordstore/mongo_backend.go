package recordstore

import (
	"context"
	"errors"
	"symptomix-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionDocument struct {
	Name      string    `bson:"_id"`
	Content   string    `bson:"content"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoBackend keeps each collection as one document keyed by its name.
type MongoBackend struct {
	Collection *mongo.Collection
}

func NewMongoBackend(db *mongo.Client, dbName string) *MongoBackend {
	return &MongoBackend{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRecordCollections),
	}
}

func (b *MongoBackend) Name() string {
	return constvars.StoreBackendMongoDB
}

func (b *MongoBackend) Read(ctx context.Context, collection string) ([]byte, error) {
	var document collectionDocument
	err := b.Collection.FindOne(ctx, bson.M{"_id": collection}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrDocumentNotFound
	} else if err != nil {
		return nil, err
	}
	return []byte(document.Content), nil
}

func (b *MongoBackend) Write(ctx context.Context, collection string, content []byte) error {
	document := collectionDocument{
		Name:      collection,
		Content:   string(content),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := b.Collection.ReplaceOne(ctx, bson.M{"_id": collection}, document, options.Replace().SetUpsert(true))
	return err
}
