package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

func newCtrl(t *testing.T) *gomock.Controller {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return ctrl
}

func newTestService(repo *MocklocationRepository) *Service {
	return NewService(repo, 3*time.Second, logx.Nop())
}

func TestService_Record_Success(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMocklocationRepository(ctrl)

	var got *domain.LocationSample
	repo.EXPECT().
		InsertSample(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.LocationSample) error {
			got = s
			return nil
		})

	service := newTestService(repo)

	deliveryID := int64(7)
	coords := domain.Coordinates{Lat: 55.75, Lng: 37.61}

	err := service.Record(context.Background(), 42, coords, &deliveryID)
	require.NoError(t, err)

	require.NotNil(t, got)
	require.Equal(t, int64(42), got.CourierID)
	require.NotNil(t, got.DeliveryID)
	require.Equal(t, int64(7), *got.DeliveryID)
	require.Equal(t, coords, got.Coords)
	require.False(t, got.RecordedAt.IsZero())
}

func TestService_Record_Validation(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMocklocationRepository(ctrl)
	service := newTestService(repo)

	badDelivery := int64(-1)
	ctx := context.Background()
	ok := domain.Coordinates{Lat: 55.75, Lng: 37.61}

	tests := []struct {
		name       string
		courierID  int64
		coords     domain.Coordinates
		deliveryID *int64
	}{
		{"zero courier", 0, ok, nil},
		{"lat out of range", 42, domain.Coordinates{Lat: 91, Lng: 0}, nil},
		{"lng out of range", 42, domain.Coordinates{Lat: 0, Lng: -181}, nil},
		{"negative delivery id", 42, ok, &badDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Record(ctx, tt.courierID, tt.coords, tt.deliveryID)
			require.ErrorIs(t, err, apperr.ErrInvalid)
		})
	}
}

func TestService_LatestFor_Success(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMocklocationRepository(ctrl)

	sample := &domain.LocationSample{
		ID:         9,
		CourierID:  42,
		Coords:     domain.Coordinates{Lat: 55.75, Lng: 37.61},
		RecordedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().
		ActiveAssignmentByDelivery(gomock.Any(), int64(7)).
		Return(&domain.Assignment{ID: 3, DeliveryID: 7, CourierID: 42, Active: true}, nil)
	repo.EXPECT().
		LatestByCourier(gomock.Any(), int64(42)).
		Return(sample, nil)

	service := newTestService(repo)

	got, err := service.LatestFor(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, sample, got)
}

func TestService_LatestFor_NoActiveAssignment(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMocklocationRepository(ctrl)

	repo.EXPECT().
		ActiveAssignmentByDelivery(gomock.Any(), int64(7)).
		Return(nil, nil)

	service := newTestService(repo)

	got, err := service.LatestFor(context.Background(), 7)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestService_LatestFor_NoSamples(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMocklocationRepository(ctrl)

	repo.EXPECT().
		ActiveAssignmentByDelivery(gomock.Any(), int64(7)).
		Return(&domain.Assignment{ID: 3, DeliveryID: 7, CourierID: 42, Active: true}, nil)
	repo.EXPECT().
		LatestByCourier(gomock.Any(), int64(42)).
		Return(nil, nil)

	service := newTestService(repo)

	got, err := service.LatestFor(context.Background(), 7)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestService_LatestFor_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMocklocationRepository(ctrl)

	wantErr := errors.New("boom")
	repo.EXPECT().
		ActiveAssignmentByDelivery(gomock.Any(), int64(7)).
		Return(nil, wantErr)

	service := newTestService(repo)

	_, err := service.LatestFor(context.Background(), 7)
	require.ErrorIs(t, err, wantErr)
}

func TestService_LatestFor_InvalidID(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMocklocationRepository(ctrl)
	service := newTestService(repo)

	_, err := service.LatestFor(context.Background(), 0)
	require.ErrorIs(t, err, apperr.ErrInvalid)
}
