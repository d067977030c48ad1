package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Create(ctx context.Context, trip *entities.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*entities.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Trip), args.Error(1)
}

func (m *MockTripRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Trip), args.Error(1)
}

func (m *MockTripRepository) ListPublic(ctx context.Context) ([]*entities.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Trip), args.Error(1)
}

func (m *MockTripRepository) ListIDsByUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTripRepository) Update(ctx context.Context, trip *entities.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAccommodationRepository struct {
	mock.Mock
}

func (m *MockAccommodationRepository) Create(ctx context.Context, accommodation *entities.Accommodation) error {
	args := m.Called(ctx, accommodation)
	return args.Error(0)
}

func (m *MockAccommodationRepository) GetByID(ctx context.Context, id string) (*entities.Accommodation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepository) ListByTrip(ctx context.Context, tripID string) ([]*entities.Accommodation, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepository) ListByTrips(ctx context.Context, tripIDs []string) ([]*entities.Accommodation, error) {
	args := m.Called(ctx, tripIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Accommodation), args.Error(1)
}

func (m *MockAccommodationRepository) Update(ctx context.Context, accommodation *entities.Accommodation) error {
	args := m.Called(ctx, accommodation)
	return args.Error(0)
}

func (m *MockAccommodationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccommodationRepository) DeleteByTrip(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

type MockTransportationRepository struct {
	mock.Mock
}

func (m *MockTransportationRepository) Create(ctx context.Context, transportation *entities.Transportation) error {
	args := m.Called(ctx, transportation)
	return args.Error(0)
}

func (m *MockTransportationRepository) GetByID(ctx context.Context, id string) (*entities.Transportation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transportation), args.Error(1)
}

func (m *MockTransportationRepository) ListByTrip(ctx context.Context, tripID string) ([]*entities.Transportation, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transportation), args.Error(1)
}

func (m *MockTransportationRepository) ListByTrips(ctx context.Context, tripIDs []string) ([]*entities.Transportation, error) {
	args := m.Called(ctx, tripIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transportation), args.Error(1)
}

func (m *MockTransportationRepository) Update(ctx context.Context, transportation *entities.Transportation) error {
	args := m.Called(ctx, transportation)
	return args.Error(0)
}

func (m *MockTransportationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransportationRepository) DeleteByTrip(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *entities.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) GetByID(ctx context.Context, id string) (*entities.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListByTrip(ctx context.Context, tripID string) ([]*entities.Activity, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListByTrips(ctx context.Context, tripIDs []string) ([]*entities.Activity, error) {
	args := m.Called(ctx, tripIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Activity), args.Error(1)
}

func (m *MockActivityRepository) Update(ctx context.Context, activity *entities.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockActivityRepository) DeleteByTrip(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type MockCacheProvider struct {
	mock.Mock
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	args := m.Called(ctx, key, value, expirationSeconds)
	return args.Error(0)
}

func (m *MockCacheProvider) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockSuggestionProvider struct {
	mock.Mock
}

func (m *MockSuggestionProvider) Generate(ctx context.Context, query entities.SuggestionQuery) (*entities.SuggestionSet, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SuggestionSet), args.Error(1)
}

func (m *MockSuggestionProvider) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
