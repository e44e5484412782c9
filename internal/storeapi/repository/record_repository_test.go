package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (RecordRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return CreateRecordRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func Test_ListWithFilter(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"data"}).
		AddRow([]byte(`{"id":"line-1","productId":"p1"}`)).
		AddRow([]byte(`{"id":"line-2","productId":"p1"}`))
	mock.ExpectQuery("SELECT data FROM records WHERE collection = $1 AND data->>'productId' = $2 ORDER BY created_at").
		WithArgs("cart", "p1").
		WillReturnRows(rows)

	data, err := repo.List(context.Background(), "cart", map[string]string{"productId": "p1"})
	require.NoError(t, err)

	require.Len(t, data, 2)
	assert.JSONEq(t, `{"id":"line-1","productId":"p1"}`, string(data[0]))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_ListIgnoresUnsafeFilterFields(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT data FROM records WHERE collection = $1 ORDER BY created_at").
		WithArgs("cart").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := repo.List(context.Background(), "cart", map[string]string{"bad field'); --": "x"})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_GetNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT data FROM records WHERE collection = $1 AND id = $2").
		WithArgs("products", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := repo.Get(context.Background(), "products", "missing")

	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func Test_CreateAssignsID(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("INSERT INTO records(collection, id, data) VALUES ($1, $2, $3)").
		WithArgs("cart", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	data, err := repo.Create(context.Background(), "cart", map[string]interface{}{"productId": "p1", "quantity": 1})
	require.NoError(t, err)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &created))
	id, _ := created["id"].(string)
	assert.Len(t, id, 26)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_UpdateMergesPartial(t *testing.T) {
	repo, mock := newMockRepository(t)

	merged := sqlmock.NewRows([]string{"data"}).
		AddRow([]byte(`{"id":"line-1","productId":"p1","quantity":3}`))
	mock.ExpectQuery("UPDATE records SET data = data || $3 WHERE collection = $1 AND id = $2 RETURNING data").
		WithArgs("cart", "line-1", []byte(`{"quantity":3}`)).
		WillReturnRows(merged)

	data, err := repo.Update(context.Background(), "cart", "line-1", map[string]interface{}{"quantity": 3})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"line-1","productId":"p1","quantity":3}`, string(data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_DeleteNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM records WHERE collection = $1 AND id = $2").
		WithArgs("cart", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "cart", "missing")

	assert.ErrorIs(t, err, errs.ErrNotFound)
}
