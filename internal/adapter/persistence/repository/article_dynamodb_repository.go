package repository

import (
	"context"
	"strconv"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultArticlesTableName = "articles"

type articleItem struct {
	ID          string `dynamodbav:"id"`
	Reference   string `dynamodbav:"reference"`
	Designation string `dynamodbav:"designation"`
	Unit        string `dynamodbav:"unite"`
	PriceHT     string `dynamodbav:"prix_ht"`
}

// ArticleDynamoRepository reads catalog items used to price quotes.
//
// Table requirements:
//   - PK: id (string)
//
// Prices are stored as strings to avoid float drift on round-trips.

type ArticleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IArticleRepository = (*ArticleDynamoRepository)(nil)

func NewArticleDynamoRepository(ddb *dynamodb.Client) *ArticleDynamoRepository {
	return &ArticleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ARTICLES_TABLE", defaultArticlesTableName),
	}
}

func (r *ArticleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Article, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Article{}, err
	}
	if len(out.Item) == 0 {
		return entities.Article{}, nil
	}

	var it articleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Article{}, err
	}

	price, _ := strconv.ParseFloat(it.PriceHT, 64)
	return entities.Article{
		ID:          it.ID,
		Reference:   it.Reference,
		Designation: it.Designation,
		Unit:        it.Unit,
		PriceHT:     price,
	}, nil
}
