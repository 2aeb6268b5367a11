package repository

import (
	"context"
	"fmt"
	"time"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBillingTableName = "voice_billing"

type lineItemItem struct {
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	Unit        string `dynamodbav:"unit,omitempty"`
	Rate        string `dynamodbav:"rate"`
	Amount      string `dynamodbav:"amount"`
}

type usageItem struct {
	TotalCalls    int    `dynamodbav:"total_calls"`
	TotalSeconds  int64  `dynamodbav:"total_seconds"`
	BilledMinutes int64  `dynamodbav:"billed_minutes"`
	Policy        string `dynamodbav:"policy"`
}

type rateItem struct {
	RatePerMinute  string `dynamodbav:"rate_per_minute,omitempty"`
	MaintenanceFee string `dynamodbav:"maintenance_fee,omitempty"`
	TaxRate        string `dynamodbav:"tax_rate,omitempty"`
	Currency       string `dynamodbav:"currency,omitempty"`
	BillingPolicy  string `dynamodbav:"billing_policy,omitempty"`
	PurchaseOrder  string `dynamodbav:"purchase_order,omitempty"`
	PODate         string `dynamodbav:"po_date,omitempty"`
}

type partyItem struct {
	ID      string `dynamodbav:"id,omitempty"`
	Name    string `dynamodbav:"name,omitempty"`
	Email   string `dynamodbav:"email,omitempty"`
	Phone   string `dynamodbav:"phone,omitempty"`
	GSTIN   string `dynamodbav:"gstin,omitempty"`
	PAN     string `dynamodbav:"pan,omitempty"`
	Address string `dynamodbav:"address,omitempty"`
}

type bankItem struct {
	BankName      string `dynamodbav:"bank_name,omitempty"`
	AccountName   string `dynamodbav:"account_name,omitempty"`
	AccountNumber string `dynamodbav:"account_number,omitempty"`
	IFSC          string `dynamodbav:"ifsc,omitempty"`
}

type invoiceItem struct {
	PK            string `dynamodbav:"pk"`
	SK            string `dynamodbav:"sk"`
	InvoiceNumber string `dynamodbav:"invoice_number"`
	CompanyID     string `dynamodbav:"company_id"`
	TenantID      string `dynamodbav:"tenant_id,omitempty"`
	PeriodStart   string `dynamodbav:"period_start"`
	PeriodEnd     string `dynamodbav:"period_end"`
	InvoiceDate   string `dynamodbav:"invoice_date"`
	DueDate       string `dynamodbav:"due_date,omitempty"`

	Usage     usageItem      `dynamodbav:"usage"`
	LineItems []lineItemItem `dynamodbav:"line_items"`
	Rates     rateItem       `dynamodbav:"rates"`

	Subtotal     string `dynamodbav:"subtotal"`
	TaxAmount    string `dynamodbav:"tax_amount"`
	RoundOff     string `dynamodbav:"round_off"`
	Total        string `dynamodbav:"total"`
	Currency     string `dynamodbav:"currency"`
	TotalInWords string `dynamodbav:"total_in_words"`

	PlaceOfSupply       string    `dynamodbav:"place_of_supply"`
	BilledTo            partyItem `dynamodbav:"company_info"`
	Vendor              partyItem `dynamodbav:"vendor_info"`
	Bank                bankItem  `dynamodbav:"bank_details"`
	AuthorizedSignatory string    `dynamodbav:"authorized_signatory,omitempty"`

	PaymentStatus string `dynamodbav:"payment_status"`
	PaymentID     string `dynamodbav:"payment_id,omitempty"`
	PaymentDate   string `dynamodbav:"payment_date,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists invoices in the billing table.
//
// Table requirements:
//   - PK: pk (string), the target storage path
//   - SK: sk (string), INVOICE#<invoice number>
//
// Payment records share the partition (see PaymentRecordDynamoRepository) so
// settlement can write both items in one transaction.
type InvoiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultBillingTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, target entities.BillingTarget, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(target.StoragePath(), skInvoicePrefix+id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, bool, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": attrPK,
		},
	})
	if err == nil {
		return inv, true, nil
	}
	if !isConditionalCheckFailed(err) {
		return entities.Invoice{}, false, err
	}

	stored, err := r.GetByID(ctx, inv.Target(), inv.ID)
	if err != nil {
		return entities.Invoice{}, false, err
	}
	return stored, false, nil
}

func (r *InvoiceDynamoRepository) ListByStatus(ctx context.Context, target entities.BillingTarget, status entities.PaymentStatus) ([]entities.Invoice, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#pk":     attrPK,
			"#sk":     attrSK,
			"#status": "payment_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: target.StoragePath()},
			":prefix": &types.AttributeValueMemberS{Value: skInvoicePrefix},
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Invoice, 0, len(items))
	for _, av := range items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromInvoiceItem(it))
	}
	return out, nil
}

func (r *InvoiceDynamoRepository) TransitionStatus(
	ctx context.Context,
	target entities.BillingTarget,
	id string,
	from []entities.PaymentStatus,
	to entities.PaymentStatus,
	at time.Time,
) (bool, error) {
	cond, values := statusCondition(from)
	values[":to"] = &types.AttributeValueMemberS{Value: string(to)}
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(at)}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 keyOf(target.StoragePath(), skInvoicePrefix+id),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#pk) AND " + cond),
		ExpressionAttributeNames: map[string]string{
			"#pk":         attrPK,
			"#status":     "payment_status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SettlePayment updates the invoice and inserts its payment record in a single
// transaction. The invoice must still be payable and the record must not exist.
func (r *InvoiceDynamoRepository) SettlePayment(
	ctx context.Context,
	target entities.BillingTarget,
	id string,
	status entities.PaymentStatus,
	record entities.PaymentRecord,
) (bool, error) {
	recordAV, err := attributevalue.MarshalMap(toPaymentRecordItem(target, record))
	if err != nil {
		return false, err
	}

	cond, values := statusCondition(entities.PayableStatuses)
	values[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	values[":payment_id"] = &types.AttributeValueMemberS{Value: record.PaymentID}
	values[":payment_date"] = &types.AttributeValueMemberS{Value: formatTime(record.PaymentDate)}
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(record.CreatedAt)}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key:       keyOf(target.StoragePath(), skInvoicePrefix+id),
					UpdateExpression: aws.String(
						"SET #status = :status, #payment_id = :payment_id, #payment_date = :payment_date, #updated_at = :updated_at",
					),
					ConditionExpression: aws.String("attribute_exists(#pk) AND " + cond),
					ExpressionAttributeNames: map[string]string{
						"#pk":           attrPK,
						"#status":       "payment_status",
						"#payment_id":   "payment_id",
						"#payment_date": "payment_date",
						"#updated_at":   "updated_at",
					},
					ExpressionAttributeValues: values,
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                recordAV,
					ConditionExpression: aws.String("attribute_not_exists(#pk)"),
					ExpressionAttributeNames: map[string]string{
						"#pk": attrPK,
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// statusCondition renders "#status IN (:from0, ...)" with its values.
func statusCondition(from []entities.PaymentStatus) (string, map[string]types.AttributeValue) {
	values := make(map[string]types.AttributeValue, len(from)+4)
	expr := "#status IN ("
	for i, s := range from {
		name := fmt.Sprintf(":from%d", i)
		if i > 0 {
			expr += ", "
		}
		expr += name
		values[name] = &types.AttributeValueMemberS{Value: string(s)}
	}
	return expr + ")", values
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		PK:            inv.Target().StoragePath(),
		SK:            skInvoicePrefix + inv.ID,
		InvoiceNumber: inv.ID,
		CompanyID:     inv.CompanyID,
		TenantID:      inv.TenantID,
		PeriodStart:   formatTime(inv.BillingPeriod.Start),
		PeriodEnd:     formatTime(inv.BillingPeriod.End),
		InvoiceDate:   formatTime(inv.InvoiceDate),
		DueDate:       formatTime(inv.DueDate),
		Usage: usageItem{
			TotalCalls:    inv.Usage.TotalCalls,
			TotalSeconds:  inv.Usage.TotalSeconds,
			BilledMinutes: inv.Usage.BilledMinutes,
			Policy:        string(inv.Usage.Policy),
		},
		LineItems:           make([]lineItemItem, 0, len(inv.LineItems)),
		Rates:               toRateItem(inv.Rates),
		Subtotal:            decimalToString(inv.Subtotal),
		TaxAmount:           decimalToString(inv.TaxAmount),
		RoundOff:            decimalToString(inv.RoundOff),
		Total:               decimalToString(inv.Total),
		Currency:            inv.Currency,
		TotalInWords:        inv.TotalInWords,
		PlaceOfSupply:       inv.PlaceOfSupply,
		BilledTo:            partyItem(inv.BilledTo),
		Vendor:              partyItem(inv.Vendor),
		Bank:                bankItem(inv.Bank),
		AuthorizedSignatory: inv.AuthorizedSignatory,
		PaymentStatus:       string(inv.PaymentStatus),
		PaymentID:           inv.PaymentID,
		CreatedAt:           formatTime(inv.CreatedAt),
		UpdatedAt:           formatTime(inv.UpdatedAt),
	}
	if inv.PaymentDate != nil {
		it.PaymentDate = formatTime(*inv.PaymentDate)
	}
	for _, li := range inv.LineItems {
		it.LineItems = append(it.LineItems, lineItemItem{
			Description: li.Description,
			Quantity:    decimalToString(li.Quantity),
			Unit:        li.Unit,
			Rate:        decimalToString(li.Rate),
			Amount:      decimalToString(li.Amount),
		})
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:        it.InvoiceNumber,
		CompanyID: it.CompanyID,
		TenantID:  it.TenantID,
		BillingPeriod: entities.BillingPeriod{
			Start: parseTime(it.PeriodStart),
			End:   parseTime(it.PeriodEnd),
		},
		InvoiceDate: parseTime(it.InvoiceDate),
		DueDate:     parseTime(it.DueDate),
		Usage: entities.UsageSummary{
			TotalCalls:    it.Usage.TotalCalls,
			TotalSeconds:  it.Usage.TotalSeconds,
			BilledMinutes: it.Usage.BilledMinutes,
			Policy:        entities.BillingPolicy(it.Usage.Policy),
		},
		LineItems:           make([]entities.LineItem, 0, len(it.LineItems)),
		Rates:               fromRateItem(it.Rates),
		Subtotal:            stringToDecimal(it.Subtotal),
		TaxAmount:           stringToDecimal(it.TaxAmount),
		RoundOff:            stringToDecimal(it.RoundOff),
		Total:               stringToDecimal(it.Total),
		Currency:            it.Currency,
		TotalInWords:        it.TotalInWords,
		PlaceOfSupply:       it.PlaceOfSupply,
		BilledTo:            entities.PartyInfo(it.BilledTo),
		Vendor:              entities.PartyInfo(it.Vendor),
		Bank:                entities.BankDetails(it.Bank),
		AuthorizedSignatory: it.AuthorizedSignatory,
		PaymentStatus:       entities.PaymentStatus(it.PaymentStatus),
		PaymentID:           it.PaymentID,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	if it.PaymentDate != "" {
		paid := parseTime(it.PaymentDate)
		inv.PaymentDate = &paid
	}
	for _, li := range it.LineItems {
		inv.LineItems = append(inv.LineItems, entities.LineItem{
			Description: li.Description,
			Quantity:    stringToDecimal(li.Quantity),
			Unit:        li.Unit,
			Rate:        stringToDecimal(li.Rate),
			Amount:      stringToDecimal(li.Amount),
		})
	}
	return inv
}

func toRateItem(rc entities.RateCard) rateItem {
	return rateItem{
		RatePerMinute:  decimalToString(rc.RatePerMinute),
		MaintenanceFee: decimalToString(rc.MaintenanceFee),
		TaxRate:        decimalToString(rc.TaxRate),
		Currency:       rc.Currency,
		BillingPolicy:  string(rc.BillingPolicy),
		PurchaseOrder:  rc.PurchaseOrder,
		PODate:         rc.PODate,
	}
}

func fromRateItem(it rateItem) entities.RateCard {
	return entities.RateCard{
		RatePerMinute:  stringToDecimal(it.RatePerMinute),
		MaintenanceFee: stringToDecimal(it.MaintenanceFee),
		TaxRate:        stringToDecimal(it.TaxRate),
		Currency:       it.Currency,
		BillingPolicy:  entities.BillingPolicy(it.BillingPolicy),
		PurchaseOrder:  it.PurchaseOrder,
		PODate:         it.PODate,
	}
}
