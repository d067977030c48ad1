package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

func validTransportation() *entities.Transportation {
	return &entities.Transportation{
		ID:                "transport-1",
		Type:              entities.TransportFlight,
		DepartureDateTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		ArrivalDateTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Price:             entities.Money{Amount: 120, Currency: "EUR"},
		TripID:            "trip-1",
		CreatedAt:         time.Now(),
	}
}

func TestTransportationAdapter_Create(t *testing.T) {
	t.Run("creates a leg without departure and arrival names", func(t *testing.T) {
		client, mock := setupMockClient(t)
		adapter := NewTransportationAdapter(client)

		mock.ExpectExec(`INSERT INTO "transportations"`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := adapter.Create(context.Background(), validTransportation())

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// Empty optional location names are stored as SQL NULL, which the
// transportations columns must accept.
func TestTransportationRecord_EmptyLocationNamesAreNull(t *testing.T) {
	record := transportationRecord(validTransportation(), true)

	assert.Equal(t, sql.NullString{}, record["departure_name"])
	assert.Equal(t, sql.NullString{}, record["arrival_name"])
	assert.Equal(t, sql.NullString{}, record["provider_name"])
}
