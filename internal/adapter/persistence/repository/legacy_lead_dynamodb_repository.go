package repository

import (
	"context"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultLegacyLeadsTableName = "leads"

// LegacyLeadDynamoRepository reads the leads table written by the first
// version of the app. It is only used by the migration command.
type LegacyLeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILegacyClientSource = (*LegacyLeadDynamoRepository)(nil)

func NewLegacyLeadDynamoRepository(ddb *dynamodb.Client, tableName string) *LegacyLeadDynamoRepository {
	return &LegacyLeadDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultLegacyLeadsTableName),
	}
}

func (r *LegacyLeadDynamoRepository) ListAll(ctx context.Context) ([]entities.ClientRecord, error) {
	return scanClients(ctx, r.ddb, r.tableName)
}

func (r *LegacyLeadDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}
