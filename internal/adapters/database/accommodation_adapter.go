package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/clients/postgres"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

var accommodationColumns = []interface{}{
	"id", "name", "type",
	"address_street", "address_city", "address_state", "address_country", "address_zip_code",
	"check_in_date", "check_out_date",
	"price_amount", "price_currency",
	"booking_confirmation", "notes", "images",
	"trip_id", "created_at",
}

// AccommodationAdapter implements the AccommodationRepository interface
type AccommodationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAccommodationAdapter creates a new accommodation adapter
func NewAccommodationAdapter(client *postgres.Client) repositories.AccommodationRepository {
	return &AccommodationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new accommodation
func (a *AccommodationAdapter) Create(ctx context.Context, accommodation *entities.Accommodation) error {
	query, args, err := a.db.Insert("accommodations").
		Rows(accommodationRecord(accommodation, true)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build accommodation insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create accommodation", err)
	}

	return nil
}

// GetByID retrieves an accommodation by ID
func (a *AccommodationAdapter) GetByID(ctx context.Context, id string) (*entities.Accommodation, error) {
	query, args, err := a.db.Select(accommodationColumns...).
		From("accommodations").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build accommodation query", err)
	}

	accommodation, err := scanAccommodation(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("no accommodation found with that ID")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get accommodation", err)
	}

	return accommodation, nil
}

// ListByTrip retrieves all accommodations attached to a trip
func (a *AccommodationAdapter) ListByTrip(ctx context.Context, tripID string) ([]*entities.Accommodation, error) {
	return a.list(ctx, goqu.Ex{"trip_id": tripID})
}

// ListByTrips retrieves all accommodations attached to any of the trips
func (a *AccommodationAdapter) ListByTrips(ctx context.Context, tripIDs []string) ([]*entities.Accommodation, error) {
	if len(tripIDs) == 0 {
		return nil, nil
	}
	return a.list(ctx, goqu.Ex{"trip_id": tripIDs})
}

func (a *AccommodationAdapter) list(ctx context.Context, where goqu.Ex) ([]*entities.Accommodation, error) {
	query, args, err := a.db.Select(accommodationColumns...).
		From("accommodations").
		Where(where).
		Order(goqu.I("check_in_date").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build accommodation list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list accommodations", err)
	}
	defer rows.Close()

	var accommodations []*entities.Accommodation
	for rows.Next() {
		accommodation, err := scanAccommodation(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan accommodation", err)
		}
		accommodations = append(accommodations, accommodation)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate accommodations", err)
	}

	return accommodations, nil
}

// Update persists a full accommodation record
func (a *AccommodationAdapter) Update(ctx context.Context, accommodation *entities.Accommodation) error {
	query, args, err := a.db.Update("accommodations").
		Set(accommodationRecord(accommodation, false)).
		Where(goqu.Ex{"id": accommodation.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build accommodation update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update accommodation", err)
	}

	return requireRowsAffected(result, "no accommodation found with that ID")
}

// Delete removes an accommodation
func (a *AccommodationAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("accommodations").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build accommodation delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete accommodation", err)
	}

	return requireRowsAffected(result, "no accommodation found with that ID")
}

// DeleteByTrip removes all accommodations attached to a trip
func (a *AccommodationAdapter) DeleteByTrip(ctx context.Context, tripID string) error {
	query, args, err := a.db.Delete("accommodations").
		Where(goqu.Ex{"trip_id": tripID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build accommodation delete query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to delete accommodations for trip", err)
	}

	return nil
}

func accommodationRecord(accommodation *entities.Accommodation, insert bool) goqu.Record {
	record := goqu.Record{
		"name":                 accommodation.Name,
		"type":                 accommodation.Type,
		"address_street":       nullString(accommodation.Address.Street),
		"address_city":         nullString(accommodation.Address.City),
		"address_state":        nullString(accommodation.Address.State),
		"address_country":      nullString(accommodation.Address.Country),
		"address_zip_code":     nullString(accommodation.Address.ZipCode),
		"check_in_date":        accommodation.CheckInDate,
		"check_out_date":       accommodation.CheckOutDate,
		"price_amount":         accommodation.Price.Amount,
		"price_currency":       accommodation.Price.Currency,
		"booking_confirmation": nullString(accommodation.BookingConfirmation),
		"notes":                nullString(accommodation.Notes),
		"images":               pq.Array(accommodation.Images),
	}
	if insert {
		record["id"] = accommodation.ID
		record["trip_id"] = accommodation.TripID
		record["created_at"] = accommodation.CreatedAt
	}
	return record
}

func scanAccommodation(row rowScanner) (*entities.Accommodation, error) {
	accommodation := &entities.Accommodation{}
	var street, city, state, country, zipCode sql.NullString
	var bookingConfirmation, notes sql.NullString

	err := row.Scan(
		&accommodation.ID,
		&accommodation.Name,
		&accommodation.Type,
		&street,
		&city,
		&state,
		&country,
		&zipCode,
		&accommodation.CheckInDate,
		&accommodation.CheckOutDate,
		&accommodation.Price.Amount,
		&accommodation.Price.Currency,
		&bookingConfirmation,
		&notes,
		pq.Array(&accommodation.Images),
		&accommodation.TripID,
		&accommodation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	accommodation.Address = entities.Address{
		Street:  street.String,
		City:    city.String,
		State:   state.String,
		Country: country.String,
		ZipCode: zipCode.String,
	}
	accommodation.BookingConfirmation = bookingConfirmation.String
	accommodation.Notes = notes.String

	return accommodation, nil
}
