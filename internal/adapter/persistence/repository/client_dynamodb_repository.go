package repository

import (
	"context"
	"time"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

// ClientDynamoRepository persists client records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Documents are decoded leniently (see decodeClientDocument) and always
// written back in the canonical shape.
type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) ListAll(ctx context.Context) ([]entities.ClientRecord, error) {
	return scanClients(ctx, r.ddb, r.tableName)
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.ClientRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientRecord{}, nil
	}
	return unmarshalClient(out.Item)
}

// Create writes c only when no document with the same id exists.
func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.ClientRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ClientRecord{}, interfaces.ErrDocumentExists
		}
		return entities.ClientRecord{}, err
	}
	return c, nil
}

// Replace overwrites the whole document. Legacy attributes not part of the
// canonical schema are dropped.
func (r *ClientDynamoRepository) Replace(ctx context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.ClientRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ClientRecord{}, nil
		}
		return entities.ClientRecord{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) UpdateStage(ctx context.Context, id string, stage entities.Stage) (entities.ClientRecord, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #stage = :stage, #updatedAt = :updatedAt"
		vals := map[string]types.AttributeValue{
			":stage":     &types.AttributeValueMemberS{Value: string(stage)},
			":updatedAt": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#stage":     "stage",
			"#updatedAt": "updatedAt",
		}
		return expr, vals, names
	})
}

// MergeStageNotes sets stageNotes[stage] without touching the other stages.
// Documents created before stageNotes existed get an empty map first, since
// DynamoDB rejects a nested SET under a missing attribute.
func (r *ClientDynamoRepository) MergeStageNotes(ctx context.Context, id string, stage entities.Stage, notes entities.StageNotes) (entities.ClientRecord, error) {
	seeded, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #stageNotes = if_not_exists(#stageNotes, :empty)"
		vals := map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}},
		}
		names := map[string]string{"#stageNotes": "stageNotes"}
		return expr, vals, names
	})
	if err != nil || seeded.ID == "" {
		return seeded, err
	}

	notesAV, err := attributevalue.Marshal(stageNotesItem{StartNote: notes.StartNote, FinalNote: notes.FinalNote})
	if err != nil {
		return entities.ClientRecord{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #stageNotes.#stage = :notes, #updatedAt = :updatedAt"
		vals := map[string]types.AttributeValue{
			":notes":     notesAV,
			":updatedAt": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#stageNotes": "stageNotes",
			"#stage":      string(stage),
			"#updatedAt":  "updatedAt",
		}
		return expr, vals, names
	})
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func (r *ClientDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ClientRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ClientRecord{}, nil
		}
		return entities.ClientRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ClientRecord{}, nil
	}
	return unmarshalClient(out.Attributes)
}

func scanClients(ctx context.Context, ddb *dynamodb.Client, table string) ([]entities.ClientRecord, error) {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})

	var items []entities.ClientRecord
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			rec, err := unmarshalClient(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, rec)
		}
	}
	return items, nil
}

func unmarshalClient(av map[string]types.AttributeValue) (entities.ClientRecord, error) {
	var raw map[string]any
	if err := attributevalue.UnmarshalMap(av, &raw); err != nil {
		return entities.ClientRecord{}, err
	}
	return decodeClientDocument(raw), nil
}
