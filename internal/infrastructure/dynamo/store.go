// Package dynamo implements the verification lookup store for deployments
// that keep license records in DynamoDB. PartiQL gives the same
// "equality lookup by an attribute we only hypothesize exists" shape the
// relational backend has.
package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/go-verify-api/internal/domain"
)

// Store executes schema-probing point lookups via PartiQL statements.
type Store struct {
	client *dynamodb.Client
}

func NewStore(client *dynamodb.Client) *Store {
	return &Store{client: client}
}

// Lookup fetches at most one item where the attribute equals token. A table
// that does not exist is the expected probing outcome, not a failure.
func (s *Store) Lookup(ctx context.Context, table, column, token string) (domain.Record, error) {
	stmt := fmt.Sprintf(`SELECT * FROM %q WHERE %q = ?`, table, column)

	out, err := s.client.ExecuteStatement(ctx, &dynamodb.ExecuteStatementInput{
		Statement:  aws.String(stmt),
		Parameters: []types.AttributeValue{&types.AttributeValueMemberS{Value: token}},
		Limit:      aws.Int32(1),
	})
	if err != nil {
		return nil, classify(err)
	}
	if len(out.Items) == 0 {
		return nil, domain.ErrNotFound
	}

	var rec map[string]any
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	return domain.Record(rec), nil
}

// classify maps SDK errors onto the domain sentinels. Missing tables and
// statements that reference attributes the table cannot serve are the
// expected probing outcome; credential problems are reported distinctly.
func classify(err error) error {
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return fmt.Errorf("table missing: %w", domain.ErrSchemaAbsent)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ValidationException":
			return fmt.Errorf("%s: %w", apiErr.ErrorMessage(), domain.ErrSchemaAbsent)
		case "AccessDeniedException", "UnrecognizedClientException":
			return fmt.Errorf("%s: %w", apiErr.ErrorMessage(), domain.ErrAccessDenied)
		}
	}
	return err
}
