package audit

import (
	"context"

	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type auditMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Client, dbName string) contracts.AuditTrailRepository {
	return &auditMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMutationAudit),
	}
}

func (repo *auditMongoRepository) RecordMutation(ctx context.Context, record *contracts.MutationRecord) error {
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *auditMongoRepository) FindByDataset(ctx context.Context, dataset string, limit int64) ([]contracts.MutationRecord, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "recorded_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := repo.Collection.Find(ctx, bson.M{"dataset": dataset}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocuments(err)
	}
	defer cursor.Close(ctx)

	records := []contracts.MutationRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBFindDocuments(err)
	}
	return records, nil
}
