package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVisitsTableName = "visits"
	visitsClientIDIndex    = "client_id-index"
)

type visitItem struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	LeadID    string `dynamodbav:"lead_id,omitempty"`
	Date      string `dynamodbav:"date"`
	Time      string `dynamodbav:"time"`
	GPS       string `dynamodbav:"gps"`
	Notes     string `dynamodbav:"notes"`
	CreatedAt string `dynamodbav:"created_at"`
}

// VisitDynamoRepository persists site visits in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
type VisitDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var (
	_ interfaces.IVisitRepository   = (*VisitDynamoRepository)(nil)
	_ interfaces.ILegacyVisitLinker = (*VisitDynamoRepository)(nil)
)

func NewVisitDynamoRepository(ddb *dynamodb.Client, tableName string) *VisitDynamoRepository {
	return &VisitDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultVisitsTableName),
	}
}

func (r *VisitDynamoRepository) Create(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	av, err := attributevalue.MarshalMap(toVisitItem(v))
	if err != nil {
		return entities.Visit{}, err
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
		return entities.Visit{}, err
	}
	return v, nil
}

// ListByClientID returns the client's visits oldest first.
func (r *VisitDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Visit, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(visitsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})

	items := make([]entities.Visit, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it visitItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromVisitItem(it))
		}
	}
	sortVisits(items)
	return items, nil
}

// LinkLegacyVisits copies lead_id into client_id on every visit that has no
// client_id yet, which puts it in client_id-index. It returns how many
// visits were updated.
func (r *VisitDynamoRepository) LinkLegacyVisits(ctx context.Context) (int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("attribute_not_exists(#cid) AND attribute_exists(#lid)"),
		ExpressionAttributeNames: map[string]string{
			"#cid": "client_id",
			"#lid": "lead_id",
		},
	})

	linked := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return linked, err
		}
		for _, raw := range page.Items {
			var it visitItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return linked, err
			}
			leadID := strings.TrimSpace(it.LeadID)
			if it.ID == "" || leadID == "" {
				continue
			}

			_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
				TableName:           aws.String(r.tableName),
				Key:                 idKey(it.ID),
				UpdateExpression:    aws.String("SET #cid = :cid"),
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#cid)"),
				ExpressionAttributeNames: map[string]string{
					"#id":  "id",
					"#cid": "client_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":cid": &types.AttributeValueMemberS{Value: leadID},
				},
			})
			if err != nil {
				if isConditionalCheckFailed(err) {
					continue
				}
				return linked, err
			}
			linked++
		}
	}
	return linked, nil
}

func sortVisits(visits []entities.Visit) {
	sort.SliceStable(visits, func(i, j int) bool { return visits[i].CreatedAt.Before(visits[j].CreatedAt) })
}

func toVisitItem(v entities.Visit) visitItem {
	return visitItem{
		ID:        v.ID,
		ClientID:  v.ClientID,
		Date:      v.Date,
		Time:      v.Time,
		GPS:       v.GPS,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVisitItem(it visitItem) entities.Visit {
	clientID := it.ClientID
	if clientID == "" {
		clientID = strings.TrimSpace(it.LeadID)
	}
	return entities.Visit{
		ID:        it.ID,
		ClientID:  clientID,
		Date:      it.Date,
		Time:      it.Time,
		GPS:       it.GPS,
		Notes:     it.Notes,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
