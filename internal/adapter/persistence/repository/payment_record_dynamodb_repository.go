package repository

import (
	"context"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentRecordItem struct {
	PK            string `dynamodbav:"pk"`
	SK            string `dynamodbav:"sk"`
	ID            string `dynamodbav:"id"`
	InvoiceNumber string `dynamodbav:"invoice_number"`
	CompanyID     string `dynamodbav:"company_id"`
	TenantID      string `dynamodbav:"tenant_id,omitempty"`
	PaymentID     string `dynamodbav:"payment_id"`
	OrderID       string `dynamodbav:"order_id,omitempty"`
	Signature     string `dynamodbav:"signature,omitempty"`
	AmountPaid    string `dynamodbav:"amount_paid"`
	Currency      string `dynamodbav:"currency"`
	PaymentDate   string `dynamodbav:"payment_date"`
	PaymentMode   string `dynamodbav:"payment_mode"`
	Source        string `dynamodbav:"source"`
	InvoiceStatus string `dynamodbav:"invoice_status"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// PaymentRecordDynamoRepository reads receipts written by
// InvoiceDynamoRepository.SettlePayment.
//
// Table requirements:
//   - PK: pk (string), the target storage path
//   - SK: sk (string), PAYMENT#REC_<invoice number>
type PaymentRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoAPI, tableName string) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultBillingTableName),
	}
}

func (r *PaymentRecordDynamoRepository) GetByInvoiceNumber(ctx context.Context, target entities.BillingTarget, invoiceNumber string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(target.StoragePath(), skPaymentPrefix+entities.PaymentRecordID(invoiceNumber)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByTarget(ctx context.Context, target entities.BillingTarget) ([]entities.PaymentRecord, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": attrPK,
			"#sk": attrSK,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: target.StoragePath()},
			":prefix": &types.AttributeValueMemberS{Value: skPaymentPrefix},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.PaymentRecord, 0, len(items))
	for _, av := range items {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromPaymentRecordItem(it))
	}
	return out, nil
}

func toPaymentRecordItem(target entities.BillingTarget, rec entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		PK:            target.StoragePath(),
		SK:            skPaymentPrefix + rec.ID,
		ID:            rec.ID,
		InvoiceNumber: rec.InvoiceNumber,
		CompanyID:     rec.CompanyID,
		TenantID:      rec.TenantID,
		PaymentID:     rec.PaymentID,
		OrderID:       rec.OrderID,
		Signature:     rec.Signature,
		AmountPaid:    decimalToString(rec.AmountPaid),
		Currency:      rec.Currency,
		PaymentDate:   formatTime(rec.PaymentDate),
		PaymentMode:   rec.PaymentMode,
		Source:        string(rec.Source),
		InvoiceStatus: string(rec.InvoiceStatus),
		CreatedAt:     formatTime(rec.CreatedAt),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:            it.ID,
		InvoiceNumber: it.InvoiceNumber,
		CompanyID:     it.CompanyID,
		TenantID:      it.TenantID,
		PaymentID:     it.PaymentID,
		OrderID:       it.OrderID,
		Signature:     it.Signature,
		AmountPaid:    stringToDecimal(it.AmountPaid),
		Currency:      it.Currency,
		PaymentDate:   parseTime(it.PaymentDate),
		PaymentMode:   it.PaymentMode,
		Source:        entities.PaymentSource(it.Source),
		InvoiceStatus: entities.PaymentStatus(it.InvoiceStatus),
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
