package repository

import (
	"context"
	"errors"
	"testing"

	"material_estimator/internal/domain/catalog"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeCatalogAPI keeps rows in memory and serves them back two per page.
type fakeCatalogAPI struct {
	items   []map[string]types.AttributeValue
	scanErr error
	scans   int
}

func (f *fakeCatalogAPI) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans++
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	start := 0
	if in.ExclusiveStartKey != nil {
		var k struct {
			Offset int `dynamodbav:"offset"`
		}
		if err := attributevalue.UnmarshalMap(in.ExclusiveStartKey, &k); err != nil {
			return nil, err
		}
		start = k.Offset
	}
	end := start + 2
	if end > len(f.items) {
		end = len(f.items)
	}
	out := &dynamodb.ScanOutput{Items: f.items[start:end]}
	if end < len(f.items) {
		out.LastEvaluatedKey, _ = attributevalue.MarshalMap(struct {
			Offset int `dynamodbav:"offset"`
		}{end})
	}
	return out, nil
}

func (f *fakeCatalogAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.items = append(f.items, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func TestCatalogDynamoRepository_RoundTrip(t *testing.T) {
	api := &fakeCatalogAPI{}
	repo := NewCatalogDynamoRepository(api, "")
	if repo.tableName != DefaultCatalogTableName {
		t.Fatalf("expected default table name, got %q", repo.tableName)
	}

	// Store rows in reverse so ListEntries has to restore the order.
	defaults := catalog.DefaultEntries()
	if err := repo.PutEntries(context.Background(), defaults); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, j := 0, len(api.items)-1; i < j; i, j = i+1, j-1 {
		api.items[i], api.items[j] = api.items[j], api.items[i]
	}

	entries, err := repo.ListEntries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != len(defaults) {
		t.Fatalf("expected %d entries, got %d", len(defaults), len(entries))
	}
	for i := range defaults {
		if entries[i] != defaults[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, defaults[i], entries[i])
		}
	}
	if api.scans != (len(defaults)+1)/2 {
		t.Fatalf("expected paginated scans, got %d", api.scans)
	}

	if _, err := catalog.New(entries); err != nil {
		t.Fatalf("loaded entries do not form a catalog: %v", err)
	}
}

func TestCatalogDynamoRepository_ScanError(t *testing.T) {
	api := &fakeCatalogAPI{scanErr: errors.New("throttled")}
	repo := NewCatalogDynamoRepository(api, "prices")

	_, err := repo.ListEntries(context.Background())
	if err == nil || !errors.Is(err, api.scanErr) {
		t.Fatalf("expected wrapped scan error, got %v", err)
	}
}
