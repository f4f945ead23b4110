package repository

import (
	"context"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID        string `dynamodbav:"id"`
	FirstName string `dynamodbav:"prenom"`
	LastName  string `dynamodbav:"nom"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"num_tel,omitempty"`
	Address   string `dynamodbav:"adresse,omitempty"`
	TaxCode   string `dynamodbav:"matricule_fiscal,omitempty"`
}

// UserDynamoRepository reads user contact details. The account system owns
// this table; the backend only ever reads it.
//
// Table requirements:
//   - PK: id (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{
		ID:        it.ID,
		FirstName: it.FirstName,
		LastName:  it.LastName,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		TaxCode:   it.TaxCode,
	}, nil
}
