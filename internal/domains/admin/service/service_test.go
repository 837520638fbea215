package service_test

import (
	"context"
	"errors"
	"testing"

	"studio/config"
	otelMocks "studio/infras/otel/mocks"
	"studio/internal/domains/admin/mocks"
	"studio/internal/domains/admin/model"
	"studio/internal/domains/admin/service"
	"studio/shared/failure"
	"studio/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Seed.Username = "admin"
	cfg.Admin.Seed.Password = "admin123"

	return cfg
}

func TestAdminService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdmin(ctrl)
	svc := service.New(mockRepo, newConfig(), otelMocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		created   bool
		wantErr   bool
	}{
		{
			name: "first seed writes the admin",
			setupMock: func() {
				mockRepo.EXPECT().
					InsertIgnoreConflict(gomock.Any(), gomock.Any(), model.FieldUsername).
					DoAndReturn(func(_ context.Context, admin model.Admin, _ string) (bool, error) {
						assert.Equal(t, "admin", admin.Username)
						assert.NoError(t, password.Verify("admin123", admin.PasswordHash))

						return true, nil
					})
			},
			created: true,
		},
		{
			name: "existing admin is left alone",
			setupMock: func() {
				mockRepo.EXPECT().
					InsertIgnoreConflict(gomock.Any(), gomock.Any(), model.FieldUsername).
					Return(false, nil)
			},
		},
		{
			name: "storage error",
			setupMock: func() {
				mockRepo.EXPECT().
					InsertIgnoreConflict(gomock.Any(), gomock.Any(), model.FieldUsername).
					Return(false, errors.New("database is locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			created, err := svc.Seed(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, failure.KindStorage, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.created, created)
		})
	}
}

func TestAdminService_SeedWithoutCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(mocks.NewMockAdmin(ctrl), &config.Config{}, otelMocks.NewOtel())

	_, err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, service.ErrSeedCredentials)
}

func TestAdminService_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdmin(ctrl)
	svc := service.New(mockRepo, newConfig(), otelMocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Admin{ID: 1, Username: "admin"}, true, nil)

	admin, found, err := svc.Find(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(1), admin.ID)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Admin{}, false, errors.New("no such table"))

	_, _, err = svc.Find(context.Background(), "admin")
	assert.Equal(t, failure.KindStorage, failure.GetKind(err))
}

func TestAdminService_SetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdmin(ctrl)
	svc := service.New(mockRepo, newConfig(), otelMocks.NewOtel())

	mockRepo.EXPECT().
		Update(gomock.Any(), map[string]any{model.FieldPasswordHash: "hash"}, gomock.Any()).
		Return(int64(1), nil)

	require.NoError(t, svc.SetPassword(context.Background(), "admin", "hash"))

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), nil)

	err := svc.SetPassword(context.Background(), "ghost", "hash")
	assert.Equal(t, 404, failure.GetCode(err))
}
