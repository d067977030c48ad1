package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/clients/postgres"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

var transportationColumns = []interface{}{
	"id", "type",
	"departure_name", "departure_address", "arrival_name", "arrival_address",
	"departure_datetime", "arrival_datetime",
	"provider_name", "provider_contact_info", "booking_reference",
	"price_amount", "price_currency",
	"seat_info", "notes",
	"trip_id", "created_at",
}

// TransportationAdapter implements the TransportationRepository interface
type TransportationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewTransportationAdapter creates a new transportation adapter
func NewTransportationAdapter(client *postgres.Client) repositories.TransportationRepository {
	return &TransportationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new transportation leg
func (a *TransportationAdapter) Create(ctx context.Context, transportation *entities.Transportation) error {
	query, args, err := a.db.Insert("transportations").
		Rows(transportationRecord(transportation, true)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build transportation insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create transportation", err)
	}

	return nil
}

// GetByID retrieves a transportation leg by ID
func (a *TransportationAdapter) GetByID(ctx context.Context, id string) (*entities.Transportation, error) {
	query, args, err := a.db.Select(transportationColumns...).
		From("transportations").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build transportation query", err)
	}

	transportation, err := scanTransportation(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("no transportation found with that ID")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get transportation", err)
	}

	return transportation, nil
}

// ListByTrip retrieves all transportation legs attached to a trip
func (a *TransportationAdapter) ListByTrip(ctx context.Context, tripID string) ([]*entities.Transportation, error) {
	return a.list(ctx, goqu.Ex{"trip_id": tripID})
}

// ListByTrips retrieves all transportation legs attached to any of the trips
func (a *TransportationAdapter) ListByTrips(ctx context.Context, tripIDs []string) ([]*entities.Transportation, error) {
	if len(tripIDs) == 0 {
		return nil, nil
	}
	return a.list(ctx, goqu.Ex{"trip_id": tripIDs})
}

func (a *TransportationAdapter) list(ctx context.Context, where goqu.Ex) ([]*entities.Transportation, error) {
	query, args, err := a.db.Select(transportationColumns...).
		From("transportations").
		Where(where).
		Order(goqu.I("departure_datetime").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build transportation list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list transportations", err)
	}
	defer rows.Close()

	var transportations []*entities.Transportation
	for rows.Next() {
		transportation, err := scanTransportation(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan transportation", err)
		}
		transportations = append(transportations, transportation)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate transportations", err)
	}

	return transportations, nil
}

// Update persists a full transportation record
func (a *TransportationAdapter) Update(ctx context.Context, transportation *entities.Transportation) error {
	query, args, err := a.db.Update("transportations").
		Set(transportationRecord(transportation, false)).
		Where(goqu.Ex{"id": transportation.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build transportation update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update transportation", err)
	}

	return requireRowsAffected(result, "no transportation found with that ID")
}

// Delete removes a transportation leg
func (a *TransportationAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("transportations").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build transportation delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete transportation", err)
	}

	return requireRowsAffected(result, "no transportation found with that ID")
}

// DeleteByTrip removes all transportation legs attached to a trip
func (a *TransportationAdapter) DeleteByTrip(ctx context.Context, tripID string) error {
	query, args, err := a.db.Delete("transportations").
		Where(goqu.Ex{"trip_id": tripID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build transportation delete query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to delete transportations for trip", err)
	}

	return nil
}

func transportationRecord(transportation *entities.Transportation, insert bool) goqu.Record {
	record := goqu.Record{
		"type":                  transportation.Type,
		"departure_name":        nullString(transportation.DepartureLocation.Name),
		"departure_address":     nullString(transportation.DepartureLocation.Address),
		"arrival_name":          nullString(transportation.ArrivalLocation.Name),
		"arrival_address":       nullString(transportation.ArrivalLocation.Address),
		"departure_datetime":    transportation.DepartureDateTime,
		"arrival_datetime":      transportation.ArrivalDateTime,
		"provider_name":         nullString(transportation.Provider.Name),
		"provider_contact_info": nullString(transportation.Provider.ContactInfo),
		"booking_reference":     nullString(transportation.BookingReference),
		"price_amount":          transportation.Price.Amount,
		"price_currency":        transportation.Price.Currency,
		"seat_info":             nullString(transportation.SeatInfo),
		"notes":                 nullString(transportation.Notes),
	}
	if insert {
		record["id"] = transportation.ID
		record["trip_id"] = transportation.TripID
		record["created_at"] = transportation.CreatedAt
	}
	return record
}

func scanTransportation(row rowScanner) (*entities.Transportation, error) {
	transportation := &entities.Transportation{}
	var departureName, departureAddress, arrivalName, arrivalAddress sql.NullString
	var providerName, providerContactInfo sql.NullString
	var bookingReference, seatInfo, notes sql.NullString

	err := row.Scan(
		&transportation.ID,
		&transportation.Type,
		&departureName,
		&departureAddress,
		&arrivalName,
		&arrivalAddress,
		&transportation.DepartureDateTime,
		&transportation.ArrivalDateTime,
		&providerName,
		&providerContactInfo,
		&bookingReference,
		&transportation.Price.Amount,
		&transportation.Price.Currency,
		&seatInfo,
		&notes,
		&transportation.TripID,
		&transportation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	transportation.DepartureLocation = entities.Place{Name: departureName.String, Address: departureAddress.String}
	transportation.ArrivalLocation = entities.Place{Name: arrivalName.String, Address: arrivalAddress.String}
	transportation.Provider = entities.Carrier{Name: providerName.String, ContactInfo: providerContactInfo.String}
	transportation.BookingReference = bookingReference.String
	transportation.SeatInfo = seatInfo.String
	transportation.Notes = notes.String

	return transportation, nil
}
