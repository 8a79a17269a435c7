package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"subscription-tracker/internal/models"
	"subscription-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite is the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo, nil)
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestValidateActivityType() {
	s.NoError(ValidateActivityType(models.AuditActionSignedIn))
	s.NoError(ValidateActivityType(models.AuditActionSubscriptionCancel))
	s.Error(ValidateActivityType("invalid_action"))
	s.Error(ValidateActivityType(""))
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_NilLog() {
	s.ErrorIs(s.service.CreateAuditLog(s.ctx, nil), ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_RepositoryError() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	err := s.service.CreateAuditLog(s.ctx, &models.AuditLog{Action: models.AuditActionStateReset, Resource: models.AuditResourceState})

	s.Error(err)
	s.Contains(err.Error(), "failed to create audit log")
}

func (s *AuditServiceTestSuite) TestRecord_RemoteOwner() {
	userID := uuid.New()
	owner := models.NewRemoteOwner(userID)

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
			s.Equal(userID, *log.UserID)
			s.Equal(owner.Key, log.OwnerKey)
			s.Equal(models.AuditActionSubscriptionCancel, log.Action)
			s.Equal("netflix", log.ResourceID)
			s.Equal("remote", log.Metadata["backend"])
			return nil
		})

	s.service.Record(s.ctx, owner, models.AuditActionSubscriptionCancel, models.AuditResourceSubscription, "netflix", map[string]interface{}{"backend": "remote"})
}

func (s *AuditServiceTestSuite) TestRecord_LocalOwnerWithoutMetadata() {
	owner := models.NewLocalOwner("client-12345678")

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
			s.Nil(log.UserID)
			s.Equal(owner.Key, log.OwnerKey)
			s.Nil(log.Metadata)
			return nil
		})

	s.service.Record(s.ctx, owner, models.AuditActionStateReset, models.AuditResourceState, "", nil)
}

func (s *AuditServiceTestSuite) TestRecord_SwallowsFailures() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	s.NotPanics(func() {
		s.service.Record(s.ctx, models.NewLocalOwner("client-12345678"), models.AuditActionCustomAdded, models.AuditResourceSubscription, "custom-1", nil)
	})
}

func (s *AuditServiceTestSuite) TestRecord_UnknownActionNeverReachesRepository() {
	s.service.Record(s.ctx, models.NewLocalOwner("client-12345678"), "made_up", models.AuditResourceState, "", nil)
}

func (s *AuditServiceTestSuite) TestGetUserActivity() {
	userID := uuid.New()
	start := time.Now().Add(-24 * time.Hour)
	end := time.Now()
	logs := []*models.AuditLog{{Action: models.AuditActionSignedIn}}

	s.mockRepo.EXPECT().GetUserActivity(gomock.Any(), userID, &start, &end, 0, 20).Return(logs, int64(1), nil)

	result, total, err := s.service.GetUserActivity(s.ctx, userID, &start, &end, 0, 20)

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(logs, result)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_InvalidInputs() {
	_, _, err := s.service.GetUserActivity(s.ctx, uuid.Nil, nil, nil, 0, 20)
	s.ErrorIs(err, ErrInvalidUserID)

	start := time.Now()
	end := start.Add(-time.Hour)
	_, _, err = s.service.GetUserActivity(s.ctx, uuid.New(), &start, &end, 0, 20)
	s.ErrorIs(err, ErrAuditDateRange)
}

func (s *AuditServiceTestSuite) TestGetOwnerActivity() {
	s.mockRepo.EXPECT().GetByOwnerKey(gomock.Any(), "client:client-12345678", 10, 5).Return(nil, int64(0), nil)

	_, total, err := s.service.GetOwnerActivity(s.ctx, "client:client-12345678", 10, 5)
	s.NoError(err)
	s.Zero(total)

	_, _, err = s.service.GetOwnerActivity(s.ctx, "", 0, 5)
	s.ErrorIs(err, ErrInvalidOwner)
}

func (s *AuditServiceTestSuite) TestPrune() {
	s.mockRepo.EXPECT().DeleteOlderThan(gomock.Any(), 90*24*time.Hour).Return(int64(7), nil)

	deleted, err := s.service.Prune(s.ctx, 90*24*time.Hour)
	s.NoError(err)
	s.Equal(int64(7), deleted)

	deleted, err = s.service.Prune(s.ctx, 0)
	s.NoError(err)
	s.Zero(deleted)
}

func (s *AuditServiceTestSuite) TestPrune_Error() {
	s.mockRepo.EXPECT().DeleteOlderThan(gomock.Any(), time.Hour).Return(int64(0), errors.New("locked"))

	_, err := s.service.Prune(s.ctx, time.Hour)
	s.Error(err)
	s.Contains(err.Error(), "failed to prune audit logs")
}
