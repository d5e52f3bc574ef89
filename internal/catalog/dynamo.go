package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DynamoDB key constants for the single-table design. Styles and
// products share a fixed partition each (small, bounded collections),
// while user profiles and wishlists partition per user.
const (
	pkStyle      = "STYLE"
	pkProduct    = "PRODUCT"
	pkUserPrefix = "USER#"
	pkWishPrefix = "WISHLIST#"
	skProfile    = "PROFILE"
)

// DynamoStore implements Store using AWS DynamoDB.
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
}

// Compile-time interface check.
var _ Store = (*DynamoStore)(nil)

// NewDynamoStore creates a DynamoStore for the given table.
// The client should be initialized from the shared AWS config.
func NewDynamoStore(client *dynamodb.Client, tableName string) *DynamoStore {
	return &DynamoStore{
		client:    client,
		tableName: tableName,
	}
}

// --- Internal helpers ---

// putItem marshals a domain object and writes it to DynamoDB under PK/SK.
// Fields derived from PK/SK carry dynamodbav:"-" on the type.
func (s *DynamoStore) putItem(ctx context.Context, pk, sk string, data interface{}) error {
	item, err := attributevalue.MarshalMap(data)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	item["PK"] = &types.AttributeValueMemberS{Value: pk}
	item["SK"] = &types.AttributeValueMemberS{Value: sk}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem PK=%s SK=%s: %w", pk, sk, err)
	}
	return nil
}

// getItem reads a single item and unmarshals it into out.
// Returns false if the item does not exist (out is not modified).
func (s *DynamoStore) getItem(ctx context.Context, pk, sk string, out interface{}) (bool, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: pk},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
	})
	if err != nil {
		return false, fmt.Errorf("GetItem PK=%s SK=%s: %w", pk, sk, err)
	}
	if result.Item == nil {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return false, fmt.Errorf("unmarshal PK=%s SK=%s: %w", pk, sk, err)
	}
	return true, nil
}

// deleteItem removes a single item by PK/SK.
func (s *DynamoStore) deleteItem(ctx context.Context, pk, sk string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: pk},
			"SK": &types.AttributeValueMemberS{Value: sk},
		},
	})
	if err != nil {
		return fmt.Errorf("DeleteItem PK=%s SK=%s: %w", pk, sk, err)
	}
	return nil
}

// queryPartition returns all raw items under a partition key, following
// pagination (DynamoDB returns up to 1MB per Query call).
func (s *DynamoStore) queryPartition(ctx context.Context, pk string) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
	}

	var allItems []map[string]types.AttributeValue
	for {
		result, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("Query PK=%s: %w", pk, err)
		}
		allItems = append(allItems, result.Items...)

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return allItems, nil
}

func itemSK(item map[string]types.AttributeValue) string {
	if v, ok := item["SK"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

// --- Users ---

func (s *DynamoStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	created := *user
	created.ID = uuid.NewString()
	if err := s.putItem(ctx, pkUserPrefix+created.ID, skProfile, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// --- Styles ---

func (s *DynamoStore) GetStyles(ctx context.Context, gender, bodyType, occasion string) ([]Style, error) {
	items, err := s.queryPartition(ctx, pkStyle)
	if err != nil {
		return nil, err
	}

	styles := make([]Style, 0, len(items))
	for _, item := range items {
		var style Style
		if err := attributevalue.UnmarshalMap(item, &style); err != nil {
			return nil, fmt.Errorf("unmarshal style SK=%s: %w", itemSK(item), err)
		}
		style.ID = itemSK(item)
		if gender != "" && !strings.EqualFold(style.Gender, gender) {
			continue
		}
		if bodyType != "" && !strings.EqualFold(style.BodyType, bodyType) {
			continue
		}
		if occasion != "" && !strings.EqualFold(style.Occasion, occasion) {
			continue
		}
		styles = append(styles, style)
	}
	return styles, nil
}

func (s *DynamoStore) GetStyle(ctx context.Context, id string) (*Style, error) {
	var style Style
	found, err := s.getItem(ctx, pkStyle, id, &style)
	if err != nil || !found {
		return nil, err
	}
	style.ID = id
	return &style, nil
}

func (s *DynamoStore) PutStyle(ctx context.Context, style *Style) error {
	return s.putItem(ctx, pkStyle, style.ID, style)
}

// --- Products ---

func (s *DynamoStore) GetProducts(ctx context.Context, category string) ([]Product, error) {
	items, err := s.queryPartition(ctx, pkProduct)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(items))
	for _, item := range items {
		var product Product
		if err := attributevalue.UnmarshalMap(item, &product); err != nil {
			return nil, fmt.Errorf("unmarshal product SK=%s: %w", itemSK(item), err)
		}
		product.ID = itemSK(item)
		if category != "" && !strings.EqualFold(product.Category, category) {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (s *DynamoStore) PutProduct(ctx context.Context, product *Product) error {
	return s.putItem(ctx, pkProduct, product.ID, product)
}

// --- Wishlist ---

func (s *DynamoStore) GetWishlist(ctx context.Context, userID string) ([]WishlistItem, error) {
	items, err := s.queryPartition(ctx, pkWishPrefix+userID)
	if err != nil {
		return nil, err
	}

	wishlist := make([]WishlistItem, 0, len(items))
	for _, item := range items {
		var wi WishlistItem
		if err := attributevalue.UnmarshalMap(item, &wi); err != nil {
			return nil, fmt.Errorf("unmarshal wishlist item SK=%s: %w", itemSK(item), err)
		}
		wi.ID = itemSK(item)
		wi.UserID = userID
		wishlist = append(wishlist, wi)
	}
	return wishlist, nil
}

func (s *DynamoStore) GetWishlistItem(ctx context.Context, userID, itemType, itemID string) (*WishlistItem, error) {
	items, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ItemType == itemType && item.ItemID == itemID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (s *DynamoStore) AddToWishlist(ctx context.Context, item *WishlistItem) (*WishlistItem, error) {
	created := *item
	created.ID = uuid.NewString()
	if err := s.putItem(ctx, pkWishPrefix+created.UserID, created.ID, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *DynamoStore) RemoveFromWishlist(ctx context.Context, userID, id string) error {
	return s.deleteItem(ctx, pkWishPrefix+userID, id)
}
