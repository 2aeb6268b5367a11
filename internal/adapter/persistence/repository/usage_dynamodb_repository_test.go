package repository

import (
	"context"
	"testing"
	"time"

	"voice_billing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMarshal(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestUsageDynamoRepository_ListEntityScoped(t *testing.T) {
	period, err := entities.NewBillingPeriod(9, 2025)
	require.NoError(t, err)
	target := entities.TopLevelEntity{Company: "acme"}

	inside, err := ScopedCallItem(target, entities.UsageRecord{
		ID: "c1", CompanyID: "acme", DurationSeconds: 61,
		ReceivedAt: time.Date(2025, 9, 30, 23, 59, 59, 400_000_000, time.UTC),
	})
	require.NoError(t, err)
	outside, err := ScopedCallItem(target, entities.UsageRecord{
		ID: "c2", CompanyID: "acme", DurationSeconds: 5,
		ReceivedAt: time.Date(2025, 10, 1, 0, 0, 0, 500_000_000, time.UTC),
	})
	require.NoError(t, err)

	ddb := newFakeDynamo()
	ddb.queryPages = []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{inside, outside}}}
	repo := NewUsageDynamoRepository(ddb, "", "", "")

	got, err := repo.ListEntityScoped(context.Background(), target, period)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, int64(61), got[0].DurationSeconds)

	q := ddb.queries[0]
	from := q.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value
	to := q.ExpressionAttributeValues[":to"].(*types.AttributeValueMemberS).Value
	assert.Equal(t, "CALL#2025-09-01T00:00:00.000Z", from)
	assert.Equal(t, "CALL#2025-10-01T00:00:00.000Z", to)
}

func TestUsageDynamoRepository_ListGlobalFiltersTenant(t *testing.T) {
	period, err := entities.NewBillingPeriod(9, 2025)
	require.NoError(t, err)

	ddb := newFakeDynamo()
	repo := NewUsageDynamoRepository(ddb, "", "calls", "by-company")

	_, err = repo.ListGlobal(context.Background(), entities.TopLevelEntity{Company: "acme"}, period)
	require.NoError(t, err)
	assert.Nil(t, ddb.queries[0].FilterExpression)
	assert.Equal(t, "by-company", aws.ToString(ddb.queries[0].IndexName))
	assert.Equal(t, "calls", aws.ToString(ddb.queries[0].TableName))

	sub, err := entities.NewBillingTarget("acme", "north")
	require.NoError(t, err)
	_, err = repo.ListGlobal(context.Background(), sub, period)
	require.NoError(t, err)
	assert.Equal(t, "#tenant = :tenant", aws.ToString(ddb.queries[1].FilterExpression))
	assert.Equal(t, "tenant_id", ddb.queries[1].ExpressionAttributeNames["#tenant"])
}
