package repository

import (
	"context"
	"errors"
	"sort"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type razorpayItem struct {
	KeyID         string `dynamodbav:"key_id,omitempty"`
	KeySecret     string `dynamodbav:"key_secret,omitempty"`
	WebhookSecret string `dynamodbav:"webhook_secret,omitempty"`
}

type profileItem struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	CompanyID string `dynamodbav:"company_id"`
	TenantID  string `dynamodbav:"tenant_id,omitempty"`

	Party               partyItem    `dynamodbav:"party"`
	Bank                bankItem     `dynamodbav:"bank"`
	AuthorizedSignatory string       `dynamodbav:"authorized_signatory,omitempty"`
	Billing             *rateItem    `dynamodbav:"billing,omitempty"`
	Razorpay            razorpayItem `dynamodbav:"razorpay_keys"`
	PaymentCompanyID    string       `dynamodbav:"payment_company_id,omitempty"`
}

// EntityDynamoRepository reads company and tenant profiles.
//
// Table requirements (shared billing table):
//   - company profile: pk COMPANY#<company>, sk PROFILE
//   - tenant profile:  pk COMPANY#<company>, sk TENANT#<tenant>
//
// Tenant profiles live in their company's partition so they can be listed
// with a single query.
type EntityDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEntityRepository = (*EntityDynamoRepository)(nil)

func NewEntityDynamoRepository(ddb DynamoAPI, tableName string) *EntityDynamoRepository {
	return &EntityDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultBillingTableName),
	}
}

func profileKey(target entities.BillingTarget) (string, string) {
	if vendor, ok := target.Vendor(); ok {
		return vendor.StoragePath(), skTenantPrefix + target.TenantID()
	}
	return target.StoragePath(), skProfile
}

func (r *EntityDynamoRepository) GetProfile(ctx context.Context, target entities.BillingTarget) (entities.EntityProfile, error) {
	pk, sk := profileKey(target)
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       keyOf(pk, sk),
	})
	if err != nil {
		return entities.EntityProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.EntityProfile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EntityProfile{}, err
	}
	return fromProfileItem(it), nil
}

// Put writes a profile unconditionally. It is used for seeding.
func (r *EntityDynamoRepository) Put(ctx context.Context, p entities.EntityProfile) error {
	it, err := toProfileItem(p)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *EntityDynamoRepository) ListCompanies(ctx context.Context) ([]entities.EntityProfile, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#sk = :profile"),
		ExpressionAttributeNames: map[string]string{
			"#sk": attrSK,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":profile": &types.AttributeValueMemberS{Value: skProfile},
		},
	})
	if err != nil {
		return nil, err
	}

	out, err := unmarshalProfiles(items)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompanyID < out[j].CompanyID })
	return out, nil
}

func (r *EntityDynamoRepository) ListTenants(ctx context.Context, companyID string) ([]entities.EntityProfile, error) {
	if companyID == "" {
		return nil, errors.New("company_id required")
	}
	company := entities.TopLevelEntity{Company: companyID}
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": attrPK,
			"#sk": attrSK,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: company.StoragePath()},
			":prefix": &types.AttributeValueMemberS{Value: skTenantPrefix},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProfiles(items)
}

func unmarshalProfiles(items []map[string]types.AttributeValue) ([]entities.EntityProfile, error) {
	out := make([]entities.EntityProfile, 0, len(items))
	for _, av := range items {
		var it profileItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProfileItem(it))
	}
	return out, nil
}

func toProfileItem(p entities.EntityProfile) (profileItem, error) {
	target, err := entities.NewBillingTarget(p.CompanyID, p.TenantID)
	if err != nil {
		return profileItem{}, err
	}
	pk, sk := profileKey(target)
	it := profileItem{
		PK:                  pk,
		SK:                  sk,
		CompanyID:           target.CompanyID(),
		TenantID:            target.TenantID(),
		Party:               partyItem(p.Party),
		Bank:                bankItem(p.Bank),
		AuthorizedSignatory: p.AuthorizedSignatory,
		Razorpay: razorpayItem{
			KeyID:         p.Razorpay.KeyID,
			KeySecret:     p.Razorpay.EncryptedKeySecret,
			WebhookSecret: p.Razorpay.EncryptedWebhookSecret,
		},
		PaymentCompanyID: p.PaymentCompanyID,
	}
	if p.Rates != nil {
		rates := toRateItem(*p.Rates)
		it.Billing = &rates
	}
	return it, nil
}

func fromProfileItem(it profileItem) entities.EntityProfile {
	p := entities.EntityProfile{
		CompanyID:           it.CompanyID,
		TenantID:            it.TenantID,
		Party:               entities.PartyInfo(it.Party),
		Bank:                entities.BankDetails(it.Bank),
		AuthorizedSignatory: it.AuthorizedSignatory,
		Razorpay: entities.RazorpayCredentials{
			KeyID:                  it.Razorpay.KeyID,
			EncryptedKeySecret:     it.Razorpay.KeySecret,
			EncryptedWebhookSecret: it.Razorpay.WebhookSecret,
		},
		PaymentCompanyID: it.PaymentCompanyID,
	}
	if it.Billing != nil {
		rates := fromRateItem(*it.Billing)
		p.Rates = &rates
	}
	return p
}
