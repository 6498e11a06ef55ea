package service

import (
	"context"

	"address-resolver/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Search(ctx context.Context, query string) (models.SearchResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(models.SearchResult), args.Error(1)
}

// MockAddressResolver is a mock implementation of the AddressResolver interface
type MockAddressResolver struct {
	mock.Mock
}

func (m *MockAddressResolver) Resolve(ctx context.Context, original, query string) (models.AddressRecord, error) {
	args := m.Called(ctx, original, query)
	return args.Get(0).(models.AddressRecord), args.Error(1)
}

// MockBatchStore is a mock implementation of the BatchStore interface
type MockBatchStore struct {
	mock.Mock
}

func (m *MockBatchStore) SaveRun(ctx context.Context, run models.BatchRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockBatchStore) GetRun(ctx context.Context, id string) (*models.BatchRun, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.BatchRun), args.Error(1)
}

func lotCandidate() models.GeocodeCandidate {
	return models.GeocodeCandidate{
		AddressName: "경기 의정부시 녹양동 157-5",
		AddressType: models.AddressTypeRegion,
		X:           "127.0420",
		Y:           "37.7580",
		Address: &models.LotAddress{
			AddressName: "경기 의정부시 녹양동 157-5",
			Region1:     "경기",
			Region2:     "의정부시",
			Region3:     "녹양동",
			BCode:       "4115012300",
		},
		RoadAddress: &models.RoadAddress{
			AddressName: "경기 의정부시 녹양로 34",
			Region1:     "경기",
			Region2:     "의정부시",
			RoadName:    "녹양로",
			ZoneNo:      "11614",
		},
	}
}

func roadCandidate() models.GeocodeCandidate {
	return models.GeocodeCandidate{
		AddressName: "경기 의정부시 녹양로 34",
		AddressType: models.AddressTypeRoad,
		X:           "127.0421",
		Y:           "37.7588",
		Address: &models.LotAddress{
			AddressName: "경기 의정부시 녹양동 157-5",
			Region1:     "경기",
			Region2:     "의정부시",
			Region3:     "녹양동",
			BCode:       "4115012300",
		},
		RoadAddress: &models.RoadAddress{
			AddressName: "경기 의정부시 녹양로 34",
			Region1:     "경기",
			Region2:     "의정부시",
			RoadName:    "녹양로",
			ZoneNo:      "11614",
		},
	}
}

func okResult(candidates ...models.GeocodeCandidate) models.SearchResult {
	return models.SearchResult{Status: models.StatusOK, Candidates: candidates}
}
