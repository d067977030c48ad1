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

var activityColumns = []interface{}{
	"id", "title", "description", "category",
	"location_name", "location_address",
	"start_datetime", "end_datetime",
	"price_amount", "price_currency",
	"booking_reference", "notes", "images",
	"trip_id", "created_at",
}

// ActivityAdapter implements the ActivityRepository interface
type ActivityAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewActivityAdapter creates a new activity adapter
func NewActivityAdapter(client *postgres.Client) repositories.ActivityRepository {
	return &ActivityAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new activity
func (a *ActivityAdapter) Create(ctx context.Context, activity *entities.Activity) error {
	query, args, err := a.db.Insert("activities").
		Rows(activityRecord(activity, true)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build activity insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create activity", err)
	}

	return nil
}

// GetByID retrieves an activity by ID
func (a *ActivityAdapter) GetByID(ctx context.Context, id string) (*entities.Activity, error) {
	query, args, err := a.db.Select(activityColumns...).
		From("activities").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build activity query", err)
	}

	activity, err := scanActivity(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("no activity found with that ID")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get activity", err)
	}

	return activity, nil
}

// ListByTrip retrieves all activities attached to a trip
func (a *ActivityAdapter) ListByTrip(ctx context.Context, tripID string) ([]*entities.Activity, error) {
	return a.list(ctx, goqu.Ex{"trip_id": tripID})
}

// ListByTrips retrieves all activities attached to any of the trips
func (a *ActivityAdapter) ListByTrips(ctx context.Context, tripIDs []string) ([]*entities.Activity, error) {
	if len(tripIDs) == 0 {
		return nil, nil
	}
	return a.list(ctx, goqu.Ex{"trip_id": tripIDs})
}

func (a *ActivityAdapter) list(ctx context.Context, where goqu.Ex) ([]*entities.Activity, error) {
	query, args, err := a.db.Select(activityColumns...).
		From("activities").
		Where(where).
		Order(goqu.I("start_datetime").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build activity list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list activities", err)
	}
	defer rows.Close()

	var activities []*entities.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan activity", err)
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate activities", err)
	}

	return activities, nil
}

// Update persists a full activity record
func (a *ActivityAdapter) Update(ctx context.Context, activity *entities.Activity) error {
	query, args, err := a.db.Update("activities").
		Set(activityRecord(activity, false)).
		Where(goqu.Ex{"id": activity.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build activity update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update activity", err)
	}

	return requireRowsAffected(result, "no activity found with that ID")
}

// Delete removes an activity
func (a *ActivityAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("activities").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build activity delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete activity", err)
	}

	return requireRowsAffected(result, "no activity found with that ID")
}

// DeleteByTrip removes all activities attached to a trip
func (a *ActivityAdapter) DeleteByTrip(ctx context.Context, tripID string) error {
	query, args, err := a.db.Delete("activities").
		Where(goqu.Ex{"trip_id": tripID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build activity delete query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to delete activities for trip", err)
	}

	return nil
}

func activityRecord(activity *entities.Activity, insert bool) goqu.Record {
	var endDateTime interface{}
	if activity.EndDateTime != nil {
		endDateTime = *activity.EndDateTime
	}

	record := goqu.Record{
		"title":             activity.Title,
		"description":       nullString(activity.Description),
		"category":          activity.Category,
		"location_name":     nullString(activity.Location.Name),
		"location_address":  nullString(activity.Location.Address),
		"start_datetime":    activity.StartDateTime,
		"end_datetime":      endDateTime,
		"price_amount":      activity.Price.Amount,
		"price_currency":    activity.Price.Currency,
		"booking_reference": nullString(activity.BookingReference),
		"notes":             nullString(activity.Notes),
		"images":            pq.Array(activity.Images),
	}
	if insert {
		record["id"] = activity.ID
		record["trip_id"] = activity.TripID
		record["created_at"] = activity.CreatedAt
	}
	return record
}

func scanActivity(row rowScanner) (*entities.Activity, error) {
	activity := &entities.Activity{}
	var description, locationName, locationAddress sql.NullString
	var bookingReference, notes sql.NullString
	var endDateTime sql.NullTime

	err := row.Scan(
		&activity.ID,
		&activity.Title,
		&description,
		&activity.Category,
		&locationName,
		&locationAddress,
		&activity.StartDateTime,
		&endDateTime,
		&activity.Price.Amount,
		&activity.Price.Currency,
		&bookingReference,
		&notes,
		pq.Array(&activity.Images),
		&activity.TripID,
		&activity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	activity.Description = description.String
	activity.Location = entities.Place{Name: locationName.String, Address: locationAddress.String}
	activity.BookingReference = bookingReference.String
	activity.Notes = notes.String
	if endDateTime.Valid {
		end := endDateTime.Time
		activity.EndDateTime = &end
	}

	return activity, nil
}
