package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	s3Mocks "resort/infras/s3/mocks"
	amenityMocks "resort/internal/domains/amenity/mocks"
	"resort/internal/domains/amenity/model"
	"resort/internal/domains/amenity/model/dto"
	"resort/internal/domains/amenity/service"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
)

func newService(t *testing.T) (service.Amenity, *amenityMocks.MockAmenity, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel, mockS3), mockRepo, mockCache
}

func TestAmenityService_Create(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	tests := []struct {
		name      string
		req       dto.CreateAmenityRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateAmenityRequest{
				Name:        "Infinity Pool",
				Description: "Heated infinity pool with sea view",
				Capacity:    20,
				PriceCents:  120000,
				Type:        "pool",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate name",
			req: dto.CreateAmenityRequest{
				Name: "Infinity Pool",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateAmenityRequest{
				Name: "Infinity Pool",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmenityService_GetAll(t *testing.T) {
	amenities := []model.Amenity{
		{ID: "a-1", Name: "Pool Villa", PriceCents: 450000, Available: true},
		{ID: "a-2", Name: "Kayak Rental", PriceCents: 50000, Available: true},
	}

	tests := []struct {
		name         string
		setupMock    func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache)
		wantLen      int
		wantFallback bool
	}{
		{
			name: "cache miss, fetched from repository",
			setupMock: func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(len(amenities), nil)

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(amenities, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantLen:      2,
			wantFallback: false,
		},
		{
			name: "catalog unavailable, defaults served",
			setupMock: func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("connection refused"))
			},
			wantLen:      len(model.Defaults()),
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			time.Sleep(10 * time.Millisecond)

			assert.NoError(t, err)
			assert.Len(t, res.Amenities, tt.wantLen)
			assert.Equal(t, tt.wantFallback, res.Fallback)
		})
	}
}

func TestAmenityService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "found",
			id:   "a-1",
			setupMock: func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Amenity{ID: "a-1", Name: "Pool Villa"}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(repo *amenityMocks.MockAmenity, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Amenity{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, res.ID)
			}
		})
	}
}

func TestAmenityService_GetByName(t *testing.T) {
	tests := []struct {
		name        string
		amenityName string
		setupMock   func(repo *amenityMocks.MockAmenity)
		wantErr     bool
		wantPrice   int64
	}{
		{
			name:        "resolved from catalog",
			amenityName: "Spa Treatment",
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Amenity{ID: "a-3", Name: "Spa Treatment", PriceCents: 80000}, nil)
			},
			wantPrice: 80000,
		},
		{
			name:        "catalog down, resolved from defaults",
			amenityName: "Private Pool Villa",
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Amenity{}, errors.New("connection refused"))
			},
			wantPrice: 450000,
		},
		{
			name:        "catalog down, name unknown",
			amenityName: "Helipad",
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Amenity{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			res, err := svc.GetByName(context.Background(), tt.amenityName)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.amenityName, res.Name)
				assert.Equal(t, tt.wantPrice, res.PriceCents)
			}
		})
	}
}

func TestAmenityService_Update(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	name := "Renamed Amenity"

	tests := []struct {
		name      string
		req       dto.UpdateAmenityRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateAmenityRequest{Name: &name},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "amenity not found",
			req:  dto.UpdateAmenityRequest{Name: &name},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "a-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmenityService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "amenity not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "a-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
