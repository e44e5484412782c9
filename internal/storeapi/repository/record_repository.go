package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

// Filter fields end up inside the query text, so only plain identifiers are
// accepted.
var fieldNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type RecordRepositoryImpl struct {
	db *sqlx.DB
}

func CreateRecordRepository(db *sqlx.DB) RecordRepository {
	return &RecordRepositoryImpl{
		db: db,
	}
}

func (r *RecordRepositoryImpl) Migrate(ctx context.Context) (err error) {
	_, err = r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS records (
		collection TEXT NOT NULL,
		id TEXT NOT NULL,
		data JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (collection, id)
	)`)
	if err != nil {
		log.Error().Err(err).Str("component", "Migrate").Msg("")
		return
	}

	return nil
}

func (r *RecordRepositoryImpl) List(ctx context.Context, collection string, filter map[string]string) (data []json.RawMessage, err error) {
	query := "SELECT data FROM records WHERE collection = $1"
	args := []interface{}{collection}

	for field, value := range filter {
		if !fieldNamePattern.MatchString(field) {
			continue
		}
		args = append(args, value)
		query += fmt.Sprintf(" AND data->>'%s' = $%d", field, len(args))
	}
	query += " ORDER BY created_at"

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Str("component", "List").Msg("")
		return nil, errs.ErrInternalServer
	}
	defer rows.Close()

	data = []json.RawMessage{}
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			log.Error().Err(err).Str("component", "List").Msg("")
			return nil, errs.ErrInternalServer
		}
		data = append(data, json.RawMessage(raw))
	}
	if err = rows.Err(); err != nil {
		log.Error().Err(err).Str("component", "List").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *RecordRepositoryImpl) Get(ctx context.Context, collection string, id string) (data json.RawMessage, err error) {
	var raw []byte
	row := r.db.QueryRowxContext(ctx, "SELECT data FROM records WHERE collection = $1 AND id = $2", collection, id)
	if err = row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.ErrNotFound
		}
		log.Error().Err(err).Str("component", "Get").Msg("")
		return nil, errs.ErrInternalServer
	}

	return json.RawMessage(raw), nil
}

func (r *RecordRepositoryImpl) Create(ctx context.Context, collection string, document map[string]interface{}) (data json.RawMessage, err error) {
	id, ok := document["id"].(string)
	if !ok || id == "" {
		id = ulid.Make().String()
		document["id"] = id
	}

	raw, err := json.Marshal(document)
	if err != nil {
		log.Error().Err(err).Str("component", "Create").Msg("")
		return nil, errs.ErrInternalServer
	}

	_, err = r.db.ExecContext(ctx, "INSERT INTO records(collection, id, data) VALUES ($1, $2, $3)", collection, id, raw)
	if err != nil {
		log.Error().Err(err).Str("component", "Create").Msg("")
		return nil, errs.ErrInternalServer
	}

	return json.RawMessage(raw), nil
}

func (r *RecordRepositoryImpl) Update(ctx context.Context, collection string, id string, partial map[string]interface{}) (data json.RawMessage, err error) {
	delete(partial, "id")

	raw, err := json.Marshal(partial)
	if err != nil {
		log.Error().Err(err).Str("component", "Update").Msg("")
		return nil, errs.ErrInternalServer
	}

	var merged []byte
	row := r.db.QueryRowxContext(ctx, "UPDATE records SET data = data || $3 WHERE collection = $1 AND id = $2 RETURNING data", collection, id, raw)
	if err = row.Scan(&merged); err != nil {
		if err == sql.ErrNoRows {
			return nil, errs.ErrNotFound
		}
		log.Error().Err(err).Str("component", "Update").Msg("")
		return nil, errs.ErrInternalServer
	}

	return json.RawMessage(merged), nil
}

func (r *RecordRepositoryImpl) Delete(ctx context.Context, collection string, id string) (err error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM records WHERE collection = $1 AND id = $2", collection, id)
	if err != nil {
		log.Error().Err(err).Str("component", "Delete").Msg("")
		return errs.ErrInternalServer
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "Delete").Msg("")
		return errs.ErrInternalServer
	}
	if affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}
