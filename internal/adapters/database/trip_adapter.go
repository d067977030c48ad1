package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/clients/postgres"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

var tripColumns = []interface{}{
	"id", "title", "description", "destination", "start_date", "end_date",
	"cover_image", "budget_amount", "budget_currency", "is_public",
	"user_id", "created_at",
}

// TripAdapter implements the TripRepository interface
type TripAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewTripAdapter creates a new trip adapter
func NewTripAdapter(client *postgres.Client) repositories.TripRepository {
	return &TripAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new trip
func (a *TripAdapter) Create(ctx context.Context, trip *entities.Trip) error {
	record := goqu.Record{
		"id":              trip.ID,
		"title":           trip.Title,
		"description":     nullString(trip.Description),
		"destination":     trip.Destination,
		"start_date":      trip.StartDate,
		"end_date":        trip.EndDate,
		"cover_image":     nullString(trip.CoverImage),
		"budget_amount":   trip.Budget.Amount,
		"budget_currency": trip.Budget.Currency,
		"is_public":       trip.IsPublic,
		"user_id":         trip.UserID,
		"created_at":      trip.CreatedAt,
	}

	query, args, err := a.db.Insert("trips").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build trip insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create trip", err)
	}

	return nil
}

// GetByID retrieves a trip by ID
func (a *TripAdapter) GetByID(ctx context.Context, id string) (*entities.Trip, error) {
	query, args, err := a.db.Select(tripColumns...).
		From("trips").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build trip query", err)
	}

	trip, err := scanTrip(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("no trip found with that ID")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get trip", err)
	}

	return trip, nil
}

// ListByUser retrieves all trips owned by a user
func (a *TripAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Trip, error) {
	return a.list(ctx, goqu.Ex{"user_id": userID})
}

// ListPublic retrieves all trips flagged public
func (a *TripAdapter) ListPublic(ctx context.Context) ([]*entities.Trip, error) {
	return a.list(ctx, goqu.Ex{"is_public": true})
}

func (a *TripAdapter) list(ctx context.Context, where goqu.Ex) ([]*entities.Trip, error) {
	query, args, err := a.db.Select(tripColumns...).
		From("trips").
		Where(where).
		Order(goqu.I("start_date").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build trip list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list trips", err)
	}
	defer rows.Close()

	var trips []*entities.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan trip", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate trips", err)
	}

	return trips, nil
}

// ListIDsByUser retrieves the ids of all trips owned by a user
func (a *TripAdapter) ListIDsByUser(ctx context.Context, userID string) ([]string, error) {
	query, args, err := a.db.Select("id").
		From("trips").
		Where(goqu.Ex{"user_id": userID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build trip id query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list trip ids", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewInternalError("failed to scan trip id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate trip ids", err)
	}

	return ids, nil
}

// Update persists a full trip record
func (a *TripAdapter) Update(ctx context.Context, trip *entities.Trip) error {
	record := goqu.Record{
		"title":           trip.Title,
		"description":     nullString(trip.Description),
		"destination":     trip.Destination,
		"start_date":      trip.StartDate,
		"end_date":        trip.EndDate,
		"cover_image":     nullString(trip.CoverImage),
		"budget_amount":   trip.Budget.Amount,
		"budget_currency": trip.Budget.Currency,
		"is_public":       trip.IsPublic,
	}

	query, args, err := a.db.Update("trips").
		Set(record).
		Where(goqu.Ex{"id": trip.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build trip update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update trip", err)
	}

	return requireRowsAffected(result, "no trip found with that ID")
}

// Delete removes a trip
func (a *TripAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("trips").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build trip delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete trip", err)
	}

	return requireRowsAffected(result, "no trip found with that ID")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (*entities.Trip, error) {
	trip := &entities.Trip{}
	var description, coverImage sql.NullString

	err := row.Scan(
		&trip.ID,
		&trip.Title,
		&description,
		&trip.Destination,
		&trip.StartDate,
		&trip.EndDate,
		&coverImage,
		&trip.Budget.Amount,
		&trip.Budget.Currency,
		&trip.IsPublic,
		&trip.UserID,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	trip.Description = description.String
	trip.CoverImage = coverImage.String

	return trip, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func requireRowsAffected(result sql.Result, notFoundMessage string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(notFoundMessage)
	}
	return nil
}
