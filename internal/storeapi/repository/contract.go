package repository

import (
	"context"
	"encoding/json"
)

// RecordRepository persists schemaless JSON documents grouped by collection,
// which is all the storefront expects from its data service.
type RecordRepository interface {
	Migrate(ctx context.Context) (err error)
	List(ctx context.Context, collection string, filter map[string]string) (data []json.RawMessage, err error)
	Get(ctx context.Context, collection string, id string) (data json.RawMessage, err error)
	Create(ctx context.Context, collection string, document map[string]interface{}) (data json.RawMessage, err error)
	Update(ctx context.Context, collection string, id string, partial map[string]interface{}) (data json.RawMessage, err error)
	Delete(ctx context.Context, collection string, id string) (err error)
}
