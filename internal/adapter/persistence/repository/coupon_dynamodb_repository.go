package repository

import (
	"context"
	"errors"
	"strings"
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
	defaultCouponsTableName = "coupons"
	couponsCodeIndex        = "code-index"
)

type couponItem struct {
	ID             string   `dynamodbav:"id"`
	Code           string   `dynamodbav:"code"`
	Type           string   `dynamodbav:"type"`
	Value          int64    `dynamodbav:"value"`
	ValidFrom      string   `dynamodbav:"valid_from"`
	ValidUntil     string   `dynamodbav:"valid_until"`
	MaxUses        int      `dynamodbav:"max_uses,omitempty"`
	UsedCount      int      `dynamodbav:"used_count"`
	MinOrderAmount int64    `dynamodbav:"min_order_amount,omitempty"`
	PaymentMethods []string `dynamodbav:"payment_methods,omitempty"`
	IsActive       bool     `dynamodbav:"is_active"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// CouponDynamoRepository persists Coupon entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//
// Codes are stored lowercased so code-index lookups are case-insensitive.
// used_count is only ever mutated through MarkUsed's conditional update.

type CouponDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICouponStore = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb *dynamodb.Client) *CouponDynamoRepository {
	return &CouponDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUPONS_TABLE", defaultCouponsTableName),
	}
}

func (r *CouponDynamoRepository) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	c.Code = strings.ToLower(strings.TrimSpace(c.Code))
	it := toCouponItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Coupon{}, err
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
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	code = strings.ToLower(strings.TrimSpace(code))

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(couponsCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Items) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

// MarkUsed increments used_count in a single conditional update. The
// condition admits unlimited coupons (no max_uses attribute, or zero) and
// limited ones with remaining uses; a failed condition means the coupon was
// exhausted by a concurrent redemption.
func (r *CouponDynamoRepository) MarkUsed(ctx context.Context, couponID, userID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: couponID},
		},
		ConditionExpression: aws.String(
			"attribute_exists(#id) AND (attribute_not_exists(#max_uses) OR #max_uses = :zero OR #used_count < #max_uses)",
		),
		UpdateExpression: aws.String("SET #used_count = #used_count + :one, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":zero":       &types.AttributeValueMemberN{Value: "0"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#max_uses":   "max_uses",
			"#used_count": "used_count",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return usecase.ErrCouponExhausted
		}
		return err
	}
	return nil
}

func toCouponItem(c entities.Coupon) couponItem {
	methods := make([]string, 0, len(c.PaymentMethods))
	for _, m := range c.PaymentMethods {
		methods = append(methods, string(m))
	}
	return couponItem{
		ID:             c.ID,
		Code:           c.Code,
		Type:           string(c.Type),
		Value:          c.Value,
		ValidFrom:      c.ValidFrom.UTC().Format(time.RFC3339Nano),
		ValidUntil:     c.ValidUntil.UTC().Format(time.RFC3339Nano),
		MaxUses:        c.MaxUses,
		UsedCount:      c.UsedCount,
		MinOrderAmount: c.MinOrderAmount,
		PaymentMethods: methods,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCouponItem(it couponItem) entities.Coupon {
	validFrom, _ := time.Parse(time.RFC3339Nano, it.ValidFrom)
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	methods := make([]entities.PaymentMethod, 0, len(it.PaymentMethods))
	for _, m := range it.PaymentMethods {
		methods = append(methods, entities.PaymentMethod(m))
	}
	return entities.Coupon{
		ID:             it.ID,
		Code:           it.Code,
		Type:           entities.DiscountType(it.Type),
		Value:          it.Value,
		ValidFrom:      validFrom,
		ValidUntil:     validUntil,
		MaxUses:        it.MaxUses,
		UsedCount:      it.UsedCount,
		MinOrderAmount: it.MinOrderAmount,
		PaymentMethods: methods,
		IsActive:       it.IsActive,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
