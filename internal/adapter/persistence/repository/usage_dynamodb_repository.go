package repository

import (
	"context"
	"time"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCallsTableName    = "voice_calls"
	defaultCallsCompanyIndex = "company_id-received_at-index"
)

type callItem struct {
	PK              string `dynamodbav:"pk,omitempty"`
	SK              string `dynamodbav:"sk,omitempty"`
	CallID          string `dynamodbav:"call_id"`
	CompanyID       string `dynamodbav:"company_id"`
	TenantID        string `dynamodbav:"tenant_id,omitempty"`
	DurationSeconds int64  `dynamodbav:"duration"`
	ReceivedAt      string `dynamodbav:"received_at"`
	FromNumber      string `dynamodbav:"from_number,omitempty"`
	ToNumber        string `dynamodbav:"to_number,omitempty"`
	Status          string `dynamodbav:"status,omitempty"`
}

// UsageDynamoRepository reads call records from both stores.
//
// Entity-scoped calls live in the billing table:
//   - pk: target storage path
//   - sk: CALL#<received_at>#<call id>
//
// The global call log is a separate table keyed by call_id with a GSI on
// (company_id, received_at).
type UsageDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	callsTable   string
	companyIndex string
}

var _ interfaces.IUsageRepository = (*UsageDynamoRepository)(nil)

func NewUsageDynamoRepository(ddb DynamoAPI, tableName, callsTable, companyIndex string) *UsageDynamoRepository {
	return &UsageDynamoRepository{
		ddb:          ddb,
		tableName:    tableOrDefault(tableName, defaultBillingTableName),
		callsTable:   tableOrDefault(callsTable, defaultCallsTableName),
		companyIndex: tableOrDefault(companyIndex, defaultCallsCompanyIndex),
	}
}

func (r *UsageDynamoRepository) ListEntityScoped(ctx context.Context, target entities.BillingTarget, period entities.BillingPeriod) ([]entities.UsageRecord, error) {
	from, to := callRange(period)
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND #sk BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#pk": attrPK,
			"#sk": attrSK,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: target.StoragePath()},
			":from": &types.AttributeValueMemberS{Value: skCallPrefix + from},
			":to":   &types.AttributeValueMemberS{Value: skCallPrefix + to},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCalls(items, period)
}

func (r *UsageDynamoRepository) ListGlobal(ctx context.Context, target entities.BillingTarget, period entities.BillingPeriod) ([]entities.UsageRecord, error) {
	from, to := callRange(period)
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.callsTable),
		IndexName:              aws.String(r.companyIndex),
		KeyConditionExpression: aws.String("#company = :company AND #received BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#company":  "company_id",
			"#received": "received_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":company": &types.AttributeValueMemberS{Value: target.CompanyID()},
			":from":    &types.AttributeValueMemberS{Value: from},
			":to":      &types.AttributeValueMemberS{Value: to},
		},
	}
	if tenant := target.TenantID(); tenant != "" {
		in.FilterExpression = aws.String("#tenant = :tenant")
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, map[string]string{"#tenant": "tenant_id"})
		in.ExpressionAttributeValues[":tenant"] = &types.AttributeValueMemberS{Value: tenant}
	}

	items, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	return unmarshalCalls(items, period)
}

// callRange covers the whole last second of the period; records are filtered
// exactly afterwards.
func callRange(period entities.BillingPeriod) (string, string) {
	return formatCallTime(period.Start), formatCallTime(period.End.Add(time.Second))
}

func unmarshalCalls(items []map[string]types.AttributeValue, period entities.BillingPeriod) ([]entities.UsageRecord, error) {
	out := make([]entities.UsageRecord, 0, len(items))
	for _, av := range items {
		var it callItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		rec := fromCallItem(it)
		if period.Contains(rec.ReceivedAt) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ScopedCallItem builds the billing-table item for an entity-scoped call.
func ScopedCallItem(target entities.BillingTarget, rec entities.UsageRecord) (map[string]types.AttributeValue, error) {
	it := toCallItem(rec)
	it.PK = target.StoragePath()
	it.SK = skCallPrefix + it.ReceivedAt + "#" + rec.ID
	return attributevalue.MarshalMap(it)
}

func toCallItem(rec entities.UsageRecord) callItem {
	return callItem{
		CallID:          rec.ID,
		CompanyID:       rec.CompanyID,
		TenantID:        rec.TenantID,
		DurationSeconds: rec.DurationSeconds,
		ReceivedAt:      formatCallTime(rec.ReceivedAt),
		FromNumber:      rec.FromNumber,
		ToNumber:        rec.ToNumber,
		Status:          rec.Status,
	}
}

func fromCallItem(it callItem) entities.UsageRecord {
	return entities.UsageRecord{
		ID:              it.CallID,
		CompanyID:       it.CompanyID,
		TenantID:        it.TenantID,
		DurationSeconds: it.DurationSeconds,
		ReceivedAt:      parseCallTime(it.ReceivedAt),
		FromNumber:      it.FromNumber,
		ToNumber:        it.ToNumber,
		Status:          it.Status,
	}
}
