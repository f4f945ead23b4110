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

const defaultQuotesTableName = "quotes"

type clientSnapshotItem struct {
	UserID  string `dynamodbav:"user_id,omitempty"`
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email,omitempty"`
	Address string `dynamodbav:"address,omitempty"`
	Phone   string `dynamodbav:"phone,omitempty"`
	TaxCode string `dynamodbav:"tax_code,omitempty"`
}

type quoteLineItem struct {
	Reference   string  `dynamodbav:"reference,omitempty"`
	Designation string  `dynamodbav:"designation"`
	Unit        string  `dynamodbav:"unit"`
	Quantity    float64 `dynamodbav:"quantity"`
	UnitPriceHT float64 `dynamodbav:"puht"`
	DiscountPct float64 `dynamodbav:"remise_pct"`
	VATPct      float64 `dynamodbav:"tva_pct"`
	TotalHT     float64 `dynamodbav:"total_ht"`
}

type quoteTotalsItem struct {
	TotalHT  float64 `dynamodbav:"mtht"`
	NetHT    float64 `dynamodbav:"mtnetht"`
	VAT      float64 `dynamodbav:"mttva"`
	FodecPct float64 `dynamodbav:"fodec_pct"`
	Fodec    float64 `dynamodbav:"mfodec"`
	Stamp    float64 `dynamodbav:"timbre"`
	TotalTTC float64 `dynamodbav:"mttc"`
}

type issuedQuoteItem struct {
	ID                  string             `dynamodbav:"id"`
	Number              string             `dynamodbav:"numero"`
	SourceRequestID     string             `dynamodbav:"source_request_id,omitempty"`
	SourceRequestNumber string             `dynamodbav:"source_request_numero,omitempty"`
	SourceFamily        string             `dynamodbav:"source_family,omitempty"`
	Client              clientSnapshotItem `dynamodbav:"client"`
	Lines               []quoteLineItem    `dynamodbav:"items"`
	Totals              quoteTotalsItem    `dynamodbav:"totals"`
	CreatedAt           string             `dynamodbav:"created_at"`
}

// IssuedQuoteDynamoRepository persists issued quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Lookups by source request deliberately go through a projected scan rather
// than a GSI: historical items may carry only source_request_numero (no id)
// or only source_request_id, and the two-path match has to see both.

type IssuedQuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIssuedQuoteRepository = (*IssuedQuoteDynamoRepository)(nil)

func NewIssuedQuoteDynamoRepository(ddb *dynamodb.Client) *IssuedQuoteDynamoRepository {
	return &IssuedQuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *IssuedQuoteDynamoRepository) Create(ctx context.Context, q entities.IssuedQuote) (entities.IssuedQuote, error) {
	it := toIssuedQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.IssuedQuote{}, err
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
		return entities.IssuedQuote{}, err
	}
	return q, nil
}

func (r *IssuedQuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.IssuedQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IssuedQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.IssuedQuote{}, nil
	}

	var it issuedQuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.IssuedQuote{}, err
	}
	return fromIssuedQuoteItem(it), nil
}

// FindBySource returns the most recent quote matching the request id or the
// denormalized request number.
func (r *IssuedQuoteDynamoRepository) FindBySource(ctx context.Context, requestID, requestNumber string) (entities.IssuedQuote, error) {
	var latest entities.IssuedQuote

	err := r.scanQuotes(ctx, func(it issuedQuoteItem) error {
		matched := (requestID != "" && it.SourceRequestID == requestID) ||
			(requestNumber != "" && it.SourceRequestNumber == requestNumber)
		if !matched {
			return nil
		}
		q := fromIssuedQuoteItem(it)
		if latest.ID == "" || q.CreatedAt.After(latest.CreatedAt) {
			latest = q
		}
		return nil
	})
	if err != nil {
		return entities.IssuedQuote{}, err
	}
	return latest, nil
}

// ListConversions reports which of the given request ids/numbers already
// have a quote. Matching is client-side on a projected scan so both linkage
// paths are observed in one pass.
func (r *IssuedQuoteDynamoRepository) ListConversions(ctx context.Context, requestIDs, requestNumbers []string) ([]entities.ConversionRef, error) {
	idSet := make(map[string]struct{}, len(requestIDs))
	for _, id := range requestIDs {
		idSet[id] = struct{}{}
	}
	numberSet := make(map[string]struct{}, len(requestNumbers))
	for _, n := range requestNumbers {
		numberSet[n] = struct{}{}
	}

	refs := make([]entities.ConversionRef, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("source_request_id, source_request_numero"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it struct {
				SourceRequestID     string `dynamodbav:"source_request_id"`
				SourceRequestNumber string `dynamodbav:"source_request_numero"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}

			_, byID := idSet[it.SourceRequestID]
			_, byNumber := numberSet[it.SourceRequestNumber]
			if it.SourceRequestID != "" && byID || it.SourceRequestNumber != "" && byNumber {
				refs = append(refs, entities.ConversionRef{
					SourceRequestID:     it.SourceRequestID,
					SourceRequestNumber: it.SourceRequestNumber,
				})
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return refs, nil
}

func (r *IssuedQuoteDynamoRepository) scanQuotes(ctx context.Context, visit func(issuedQuoteItem) error) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}

		for _, raw := range out.Items {
			var it issuedQuoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return err
			}
			if err := visit(it); err != nil {
				return err
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toIssuedQuoteItem(q entities.IssuedQuote) issuedQuoteItem {
	it := issuedQuoteItem{
		ID:                  q.ID,
		Number:              q.Number,
		SourceRequestID:     q.SourceRequestID,
		SourceRequestNumber: q.SourceRequestNumber,
		SourceFamily:        string(q.SourceFamily),
		Client: clientSnapshotItem{
			UserID:  q.Client.UserID,
			Name:    q.Client.Name,
			Email:   q.Client.Email,
			Address: q.Client.Address,
			Phone:   q.Client.Phone,
			TaxCode: q.Client.TaxCode,
		},
		Totals: quoteTotalsItem{
			TotalHT:  q.Totals.TotalHT,
			NetHT:    q.Totals.NetHT,
			VAT:      q.Totals.VAT,
			FodecPct: q.Totals.FodecPct,
			Fodec:    q.Totals.Fodec,
			Stamp:    q.Totals.Stamp,
			TotalTTC: q.Totals.TotalTTC,
		},
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, l := range q.Lines {
		it.Lines = append(it.Lines, quoteLineItem{
			Reference:   l.Reference,
			Designation: l.Designation,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			UnitPriceHT: l.UnitPriceHT,
			DiscountPct: l.DiscountPct,
			VATPct:      l.VATPct,
			TotalHT:     l.TotalHT,
		})
	}
	return it
}

func fromIssuedQuoteItem(it issuedQuoteItem) entities.IssuedQuote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	q := entities.IssuedQuote{
		ID:                  it.ID,
		Number:              it.Number,
		SourceRequestID:     it.SourceRequestID,
		SourceRequestNumber: it.SourceRequestNumber,
		SourceFamily:        entities.Family(it.SourceFamily),
		Client: entities.ClientSnapshot{
			UserID:  it.Client.UserID,
			Name:    it.Client.Name,
			Email:   it.Client.Email,
			Address: it.Client.Address,
			Phone:   it.Client.Phone,
			TaxCode: it.Client.TaxCode,
		},
		Totals: entities.QuoteTotals{
			TotalHT:  it.Totals.TotalHT,
			NetHT:    it.Totals.NetHT,
			VAT:      it.Totals.VAT,
			FodecPct: it.Totals.FodecPct,
			Fodec:    it.Totals.Fodec,
			Stamp:    it.Totals.Stamp,
			TotalTTC: it.Totals.TotalTTC,
		},
		CreatedAt: createdAt,
	}
	for _, l := range it.Lines {
		q.Lines = append(q.Lines, entities.QuoteLine{
			Reference:   l.Reference,
			Designation: l.Designation,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			UnitPriceHT: l.UnitPriceHT,
			DiscountPct: l.DiscountPct,
			VATPct:      l.VATPct,
			TotalHT:     l.TotalHT,
		})
	}
	return q
}
