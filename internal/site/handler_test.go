package site

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHandler(sqlx.NewDb(db, "sqlmock"), zap.NewNop().Sugar()), mock
}

func TestHandler_Create(t *testing.T) {
	h, mock := newTestHandler(t)
	orgID := ksuid.New().String()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO sites`)).
		WithArgs(sqlmock.AnyArg(), orgID, "Plant A", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodPost, "/sites",
		strings.NewReader(`{"organisationId":"`+orgID+`","name":"Plant A"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Plant A"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_CreateInvalidOrganisationID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/sites",
		strings.NewReader(`{"organisationId":"nope","name":"Plant A"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid organisation id"}`, rec.Body.String())
}

func TestHandler_List(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery(`SELECT id, organisation_id, name, location FROM sites`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organisation_id", "name", "location"}).
			AddRow("site-1", "org-1", "Plant A", "Johannesburg"))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/sites", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"location":"Johannesburg"`)
}
