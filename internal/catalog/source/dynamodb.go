package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomicstack/menu-browser/internal/catalog"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBAPI is the subset of the DynamoDB client used to read the menu.
// It allows for mocking in tests.
type DynamoDBAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoDB reads every document of a table as a menu entry. Each document
// holds the entry fields; the "id" attribute is the document key.
type DynamoDB struct {
	client DynamoDBAPI
	table  string
}

// NewDynamoDB wraps an existing client.
func NewDynamoDB(client DynamoDBAPI, table string) *DynamoDB {
	return &DynamoDB{client: client, table: table}
}

// NewDynamoDBFromConfig creates a client from the default AWS configuration
// chain. A non-empty endpoint overrides the service endpoint, e.g. for
// DynamoDB Local.
func NewDynamoDBFromConfig(ctx context.Context, table, endpoint string) (*DynamoDB, error) {
	if strings.TrimSpace(table) == "" {
		return nil, ErrMissingTable
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return NewDynamoDB(client, table), nil
}

func (d *DynamoDB) Name() string { return string(KindDynamoDB) + ":" + d.table }

func (d *DynamoDB) Load(ctx context.Context) ([]catalog.Entry, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(d.table),
	}
	paginator := dynamodb.NewScanPaginator(d.client, input)
	entries := []catalog.Entry{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan menu table %s: %w", d.table, err)
		}
		var pageEntries []catalog.Entry
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageEntries); err != nil {
			return nil, fmt.Errorf("unmarshal menu documents: %w", err)
		}
		entries = append(entries, pageEntries...)
	}
	return entries, nil
}
