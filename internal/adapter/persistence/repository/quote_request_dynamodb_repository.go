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

const defaultQuoteRequestsTablePrefix = "quote_requests_"

type attachmentItem struct {
	Filename string `dynamodbav:"filename"`
	MimeType string `dynamodbav:"mimetype"`
	Size     int64  `dynamodbav:"size"`
	Data     []byte `dynamodbav:"data,omitempty"`
}

type renderedDocumentItem struct {
	Data        []byte `dynamodbav:"data"`
	ContentType string `dynamodbav:"content_type"`
	GeneratedAt string `dynamodbav:"generated_at"`
}

type quoteRequestItem struct {
	ID           string                    `dynamodbav:"id"`
	Family       string                    `dynamodbav:"family"`
	Number       string                    `dynamodbav:"numero"`
	OwnerID      string                    `dynamodbav:"owner_id"`
	Spec         entities.QuoteRequestSpec `dynamodbav:"spec"`
	Requirements string                    `dynamodbav:"requirements,omitempty"`
	Remarks      string                    `dynamodbav:"remarks,omitempty"`
	Attachments  []attachmentItem          `dynamodbav:"documents,omitempty"`
	Rendered     *renderedDocumentItem     `dynamodbav:"demande_pdf,omitempty"`
	CreatedAt    string                    `dynamodbav:"created_at"`
}

// QuoteRequestDynamoRepository persists quote requests in DynamoDB, one
// table per family.
//
// Table requirements (each family table):
//   - PK: id (string)
//
// Attachment buffers live inline on the item, like the legacy documents did.
// ListNumbers deliberately projects only id/numero/family so the
// reconciliation scan never pulls those buffers.

type QuoteRequestDynamoRepository struct {
	ddb         *dynamodb.Client
	tablePrefix string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb *dynamodb.Client) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{
		ddb:         ddb,
		tablePrefix: getenvDefault("QUOTE_REQUESTS_TABLE_PREFIX", defaultQuoteRequestsTablePrefix),
	}
}

func (r *QuoteRequestDynamoRepository) tableFor(family entities.Family) string {
	return r.tablePrefix + string(family)
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
	it := toQuoteRequestItem(qr)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableFor(qr.Family)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return qr, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, family entities.Family, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableFor(family)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

// FindAnyByID probes every family table in order until one holds the id.
// Ids are UUIDs, so at most one table can match.
func (r *QuoteRequestDynamoRepository) FindAnyByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	for _, family := range entities.Families {
		qr, err := r.GetByID(ctx, family, id)
		if err != nil {
			return entities.QuoteRequest{}, err
		}
		if qr.ID != "" {
			return qr, nil
		}
	}
	return entities.QuoteRequest{}, nil
}

func (r *QuoteRequestDynamoRepository) SetRenderedDocument(ctx context.Context, family entities.Family, id string, doc entities.RenderedDocument) error {
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
		TableName: aws.String(r.tableFor(family)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #pdf = :pdf"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#pdf": "demande_pdf",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pdf": av,
		},
	})
	return err
}

// ListNumbers scans one family table with an id/numero projection, paging
// through the full table, and applies the optional case-insensitive partial
// match client-side.
func (r *QuoteRequestDynamoRepository) ListNumbers(ctx context.Context, family entities.Family, pattern string) ([]entities.NumberRef, error) {
	refs := make([]entities.NumberRef, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableFor(family)),
			ProjectionExpression: aws.String("#id, #numero"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#numero": "numero",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it struct {
				ID     string `dynamodbav:"id"`
				Number string `dynamodbav:"numero"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if !containsFold(it.Number, pattern) {
				continue
			}
			refs = append(refs, entities.NumberRef{ID: it.ID, Number: it.Number, Family: family})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return refs, nil
}

func toQuoteRequestItem(qr entities.QuoteRequest) quoteRequestItem {
	it := quoteRequestItem{
		ID:           qr.ID,
		Family:       string(qr.Family),
		Number:       qr.Number,
		OwnerID:      qr.OwnerID,
		Spec:         qr.Spec,
		Requirements: qr.Requirements,
		Remarks:      qr.Remarks,
		CreatedAt:    qr.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, a := range qr.Attachments {
		it.Attachments = append(it.Attachments, attachmentItem{
			Filename: a.Filename,
			MimeType: a.MimeType,
			Size:     a.Size,
			Data:     a.Data,
		})
	}
	if qr.Rendered != nil {
		it.Rendered = &renderedDocumentItem{
			Data:        qr.Rendered.Data,
			ContentType: qr.Rendered.ContentType,
			GeneratedAt: qr.Rendered.GeneratedAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return it
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	qr := entities.QuoteRequest{
		ID:           it.ID,
		Family:       entities.Family(it.Family),
		Number:       it.Number,
		OwnerID:      it.OwnerID,
		Spec:         it.Spec,
		Requirements: it.Requirements,
		Remarks:      it.Remarks,
		CreatedAt:    createdAt,
	}
	for _, a := range it.Attachments {
		qr.Attachments = append(qr.Attachments, entities.Attachment{
			Filename: a.Filename,
			MimeType: a.MimeType,
			Size:     a.Size,
			Data:     a.Data,
		})
	}
	if it.Rendered != nil {
		generatedAt, _ := time.Parse(time.RFC3339Nano, it.Rendered.GeneratedAt)
		qr.Rendered = &entities.RenderedDocument{
			Data:        it.Rendered.Data,
			ContentType: it.Rendered.ContentType,
			GeneratedAt: generatedAt,
		}
	}
	return qr
}
