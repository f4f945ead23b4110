package repository

import (
	"context"
	"time"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultComplaintsTableName = "complaints"

type orderReferenceItem struct {
	DocType      string  `dynamodbav:"type_doc"`
	Number       string  `dynamodbav:"numero"`
	DeliveryDate string  `dynamodbav:"delivery_date,omitempty"`
	ProductRef   string  `dynamodbav:"product_ref,omitempty"`
	Quantity     float64 `dynamodbav:"quantity,omitempty"`
}

type complaintItem struct {
	ID          string                `dynamodbav:"id"`
	OwnerID     string                `dynamodbav:"owner_id"`
	Order       orderReferenceItem    `dynamodbav:"commande"`
	Nature      string                `dynamodbav:"nature"`
	Expectation string                `dynamodbav:"attente"`
	Description string                `dynamodbav:"description,omitempty"`
	Attachments []attachmentItem      `dynamodbav:"pieces_jointes,omitempty"`
	Rendered    *renderedDocumentItem `dynamodbav:"pdf,omitempty"`
	CreatedAt   string                `dynamodbav:"created_at"`
}

// ComplaintDynamoRepository persists complaints in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ComplaintDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IComplaintRepository = (*ComplaintDynamoRepository)(nil)

func NewComplaintDynamoRepository(ddb *dynamodb.Client) *ComplaintDynamoRepository {
	return &ComplaintDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPLAINTS_TABLE", defaultComplaintsTableName),
	}
}

func (r *ComplaintDynamoRepository) Create(ctx context.Context, c entities.Complaint) (entities.Complaint, error) {
	it := toComplaintItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Complaint{}, err
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
		return entities.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintDynamoRepository) GetByID(ctx context.Context, id string) (entities.Complaint, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Complaint{}, err
	}
	if len(out.Item) == 0 {
		return entities.Complaint{}, nil
	}

	var it complaintItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Complaint{}, err
	}
	return fromComplaintItem(it), nil
}

func (r *ComplaintDynamoRepository) SetRenderedDocument(ctx context.Context, id string, doc entities.RenderedDocument) error {
	item := renderedDocumentItem{
		Data:        doc.Data,
		ContentType: doc.ContentType,
		GeneratedAt: doc.GeneratedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.Marshal(item)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #pdf = :pdf"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#pdf": "pdf",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pdf": av,
		},
	})
	return err
}

func toComplaintItem(c entities.Complaint) complaintItem {
	it := complaintItem{
		ID:      c.ID,
		OwnerID: c.OwnerID,
		Order: orderReferenceItem{
			DocType:    string(c.Order.DocType),
			Number:     c.Order.Number,
			ProductRef: c.Order.ProductRef,
			Quantity:   c.Order.Quantity,
		},
		Nature:      string(c.Nature),
		Expectation: string(c.Expectation),
		Description: c.Description,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.Order.DeliveryDate != nil {
		it.Order.DeliveryDate = c.Order.DeliveryDate.UTC().Format(time.RFC3339Nano)
	}
	for _, a := range c.Attachments {
		it.Attachments = append(it.Attachments, attachmentItem{
			Filename: a.Filename,
			MimeType: a.MimeType,
			Size:     a.Size,
			Data:     a.Data,
		})
	}
	if c.Rendered != nil {
		it.Rendered = &renderedDocumentItem{
			Data:        c.Rendered.Data,
			ContentType: c.Rendered.ContentType,
			GeneratedAt: c.Rendered.GeneratedAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return it
}

func fromComplaintItem(it complaintItem) entities.Complaint {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	c := entities.Complaint{
		ID:      it.ID,
		OwnerID: it.OwnerID,
		Order: entities.OrderReference{
			DocType:    entities.OrderDocType(it.Order.DocType),
			Number:     it.Order.Number,
			ProductRef: it.Order.ProductRef,
			Quantity:   it.Order.Quantity,
		},
		Nature:      entities.ComplaintNature(it.Nature),
		Expectation: entities.ComplaintExpectation(it.Expectation),
		Description: it.Description,
		CreatedAt:   createdAt,
	}
	if it.Order.DeliveryDate != "" {
		if d, err := time.Parse(time.RFC3339Nano, it.Order.DeliveryDate); err == nil {
			c.Order.DeliveryDate = &d
		}
	}
	for _, a := range it.Attachments {
		c.Attachments = append(c.Attachments, entities.Attachment{
			Filename: a.Filename,
			MimeType: a.MimeType,
			Size:     a.Size,
			Data:     a.Data,
		})
	}
	if it.Rendered != nil {
		generatedAt, _ := time.Parse(time.RFC3339Nano, it.Rendered.GeneratedAt)
		c.Rendered = &entities.RenderedDocument{
			Data:        it.Rendered.Data,
			ContentType: it.Rendered.ContentType,
			GeneratedAt: generatedAt,
		}
	}
	return c
}
