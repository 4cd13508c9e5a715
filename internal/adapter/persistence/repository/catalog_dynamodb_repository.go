package repository

import (
	"context"
	"fmt"
	"sort"

	"material_estimator/internal/domain/catalog"
	"material_estimator/internal/domain/entities"
	"material_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultCatalogTableName = "material_catalog"

type catalogItem struct {
	Style          string  `dynamodbav:"style"`
	Material       string  `dynamodbav:"material"`
	UnitCost       float64 `dynamodbav:"unit_cost"`
	QuantityPerSqm float64 `dynamodbav:"quantity_per_sqm"`
	Position       int     `dynamodbav:"position"`
}

// CatalogAPI is the subset of the DynamoDB client the repository uses.
type CatalogAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// CatalogDynamoRepository reads pricing catalog rows from DynamoDB.
//
// Table requirements:
//   - PK: style (string)
//   - SK: material (string)
//   - position (number) orders materials within a style

type CatalogDynamoRepository struct {
	ddb       CatalogAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb CatalogAPI, tableName string) *CatalogDynamoRepository {
	if tableName == "" {
		tableName = DefaultCatalogTableName
	}
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListEntries scans the whole table. Rows come back grouped by style in
// catalog style order, then by position.
func (r *CatalogDynamoRepository) ListEntries(ctx context.Context) ([]catalog.StyleEntry, error) {
	var items []catalogItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		var batch []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.tableName, err)
		}
		items = append(items, batch...)
	}

	rank := make(map[string]int, len(entities.DesignStyles()))
	for i, s := range entities.DesignStyles() {
		rank[string(s)] = i
	}
	sort.SliceStable(items, func(i, j int) bool {
		ri, iok := rank[items[i].Style]
		rj, jok := rank[items[j].Style]
		if iok != jok {
			return iok
		}
		if ri != rj {
			return ri < rj
		}
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].Material < items[j].Material
	})

	entries := make([]catalog.StyleEntry, len(items))
	for i, it := range items {
		entries[i] = fromCatalogItem(it)
	}
	return entries, nil
}

// PutEntries writes entries, recording their order as position within each
// style. Existing rows with the same key are overwritten.
func (r *CatalogDynamoRepository) PutEntries(ctx context.Context, entries []catalog.StyleEntry) error {
	positions := make(map[entities.DesignStyle]int)
	for _, e := range entries {
		it := toCatalogItem(e, positions[e.Style])
		positions[e.Style]++

		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return fmt.Errorf("put %s/%s: %w", e.Style, e.Material, err)
		}
	}
	return nil
}

func toCatalogItem(e catalog.StyleEntry, position int) catalogItem {
	return catalogItem{
		Style:          string(e.Style),
		Material:       e.Material,
		UnitCost:       e.UnitCost,
		QuantityPerSqm: e.QuantityPerSqm,
		Position:       position,
	}
}

func fromCatalogItem(it catalogItem) catalog.StyleEntry {
	return catalog.StyleEntry{
		Style: entities.DesignStyle(it.Style),
		MaterialEntry: catalog.MaterialEntry{
			Material:       it.Material,
			UnitCost:       it.UnitCost,
			QuantityPerSqm: it.QuantityPerSqm,
		},
	}
}
