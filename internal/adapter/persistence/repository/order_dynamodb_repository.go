package repository

import (
	"context"
	"errors"
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/usecase"
	"trilha_vertical/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersUserIDIndex      = "user_id-index"
)

type orderParticipantItem struct {
	Name              string `dynamodbav:"name"`
	Age               int    `dynamodbav:"age"`
	ExperienceLevel   string `dynamodbav:"experience_level"`
	HealthDeclaration bool   `dynamodbav:"health_declaration"`
}

type orderLineItem struct {
	PackageID   string               `dynamodbav:"package_id"`
	PackageName string               `dynamodbav:"package_name"`
	UnitPrice   int64                `dynamodbav:"unit_price"`
	Quantity    int                  `dynamodbav:"quantity"`
	Participant orderParticipantItem `dynamodbav:"participant"`
}

type orderDiscountItem struct {
	CouponID       string `dynamodbav:"coupon_id"`
	CouponCode     string `dynamodbav:"coupon_code"`
	Type           string `dynamodbav:"type"`
	Value          int64  `dynamodbav:"value"`
	DiscountAmount int64  `dynamodbav:"discount_amount"`
}

type orderItem struct {
	ID                string             `dynamodbav:"id"`
	UserID            string             `dynamodbav:"user_id"`
	Items             []orderLineItem    `dynamodbav:"items"`
	Status            string             `dynamodbav:"status"`
	PaymentMethod     string             `dynamodbav:"payment_method"`
	PaymentStatus     string             `dynamodbav:"payment_status"`
	ProviderPaymentID string             `dynamodbav:"provider_payment_id,omitempty"`
	ProcessedAt       string             `dynamodbav:"processed_at,omitempty"`
	SelectedDate      string             `dynamodbav:"selected_date"`
	Notes             string             `dynamodbav:"notes,omitempty"`
	Currency          string             `dynamodbav:"currency"`
	Subtotal          int64              `dynamodbav:"subtotal"`
	Discount          *orderDiscountItem `dynamodbav:"discount,omitempty"`
	Total             int64              `dynamodbav:"total"`
	CreatedAt         string             `dynamodbav:"created_at"`
	UpdatedAt         string             `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Amounts are stored in minor units (int64) with the currency alongside;
// items and the coupon snapshot are embedded in the order item, orders are
// never deleted.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	it.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// The row vanished between read and write; surface it, a silent
			// zero-value order would read as a successful update.
			return entities.Order{}, usecase.ErrOrderNotFound
		}
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, usecase.ErrOrderNotFound
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, usecase.ErrOrderNotFound
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// ListByUserID queries the user_id-index GSI. Reads through the index are
// eventually consistent; callers that just placed an order should use GetByID.
func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItem(it))
	}
	return items, nil
}

func toOrderItem(o entities.Order) orderItem {
	currency := string(o.Subtotal.Currency)
	if currency == "" {
		currency = string(entities.CurrencyBRL)
	}

	lines := make([]orderLineItem, 0, len(o.Items))
	for _, li := range o.Items {
		lines = append(lines, orderLineItem{
			PackageID:   li.PackageID,
			PackageName: li.PackageName,
			UnitPrice:   li.UnitPrice.Amount,
			Quantity:    li.Quantity,
			Participant: orderParticipantItem{
				Name:              li.Participant.Name,
				Age:               li.Participant.Age,
				ExperienceLevel:   li.Participant.ExperienceLevel,
				HealthDeclaration: li.Participant.HealthDeclaration,
			},
		})
	}

	it := orderItem{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         lines,
		Status:        string(o.Status),
		PaymentMethod: string(o.Payment.Method),
		PaymentStatus: string(o.Payment.Status),
		SelectedDate:  o.Climbing.SelectedDate.UTC().Format(time.RFC3339Nano),
		Notes:         o.Climbing.Notes,
		Currency:      currency,
		Subtotal:      o.Subtotal.Amount,
		Total:         o.Total.Amount,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	it.ProviderPaymentID = o.Payment.ProviderPaymentID
	if o.Payment.ProcessedAt != nil {
		it.ProcessedAt = o.Payment.ProcessedAt.UTC().Format(time.RFC3339Nano)
	}
	if o.Discount != nil {
		it.Discount = &orderDiscountItem{
			CouponID:       o.Discount.CouponID,
			CouponCode:     o.Discount.CouponCode,
			Type:           string(o.Discount.Type),
			Value:          o.Discount.Value,
			DiscountAmount: o.Discount.DiscountAmount.Amount,
		}
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	currency := entities.Currency(it.Currency)
	if currency == "" {
		currency = entities.CurrencyBRL
	}

	lines := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		lines = append(lines, entities.OrderItem{
			PackageID:   li.PackageID,
			PackageName: li.PackageName,
			UnitPrice:   entities.Money{Amount: li.UnitPrice, Currency: currency},
			Quantity:    li.Quantity,
			Participant: entities.ParticipantDetails{
				Name:              li.Participant.Name,
				Age:               li.Participant.Age,
				ExperienceLevel:   li.Participant.ExperienceLevel,
				HealthDeclaration: li.Participant.HealthDeclaration,
			},
		})
	}

	selectedDate, _ := time.Parse(time.RFC3339Nano, it.SelectedDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	o := entities.Order{
		ID:     it.ID,
		UserID: it.UserID,
		Items:  lines,
		Status: entities.OrderStatus(it.Status),
		Payment: entities.PaymentInfo{
			Method:            entities.PaymentMethod(it.PaymentMethod),
			Status:            entities.PaymentStatus(it.PaymentStatus),
			ProviderPaymentID: it.ProviderPaymentID,
		},
		Climbing: entities.ClimbingDetails{
			SelectedDate: selectedDate,
			Notes:        it.Notes,
		},
		Subtotal:  entities.Money{Amount: it.Subtotal, Currency: currency},
		Total:     entities.Money{Amount: it.Total, Currency: currency},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.ProcessedAt != "" {
		processedAt, err := time.Parse(time.RFC3339Nano, it.ProcessedAt)
		if err == nil {
			o.Payment.ProcessedAt = &processedAt
		}
	}
	if it.Discount != nil {
		o.Discount = &entities.DiscountInfo{
			CouponID:       it.Discount.CouponID,
			CouponCode:     it.Discount.CouponCode,
			Type:           entities.DiscountType(it.Discount.Type),
			Value:          it.Discount.Value,
			DiscountAmount: entities.Money{Amount: it.Discount.DiscountAmount, Currency: currency},
		}
	}
	return o
}
