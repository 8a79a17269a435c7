package services

import (
	"context"
	"errors"
	"testing"

	"subscription-tracker/internal/models"
	"subscription-tracker/internal/repositories"
	"subscription-tracker/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ConciergeServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockConciergeRequestRepositoryInterface
	audit    *recordingAudit
	service  ConciergeServiceInterface
}

func (s *ConciergeServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockConciergeRequestRepositoryInterface(s.ctrl)
	s.audit = &recordingAudit{}
	s.service = NewConciergeService(s.mockRepo, s.audit, newTestMetrics())
}

func (s *ConciergeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestConciergeServiceSuite(t *testing.T) {
	suite.Run(t, new(ConciergeServiceTestSuite))
}

func (s *ConciergeServiceTestSuite) TestRequest_CreatesNew() {
	email := gofakeit.Email()
	userID := uuid.New()

	s.mockRepo.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, repositories.ErrConciergeRequestNotFound)
	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.ConciergeRequest) error {
			s.Equal(email, req.Email)
			s.Equal(models.ConciergeSourceWebApp, req.Source)
			s.Equal(&userID, req.UserID)
			req.ID = uuid.New()
			return nil
		})

	req, created, err := s.service.Request(s.ctx, "  "+email+" ", "", &userID)

	s.Require().NoError(err)
	s.True(created)
	s.Equal(email, req.Email)
	s.Equal([]string{models.AuditActionConciergeRequested}, s.audit.actions())
	s.True(s.audit.entries[0].owner.Remote)
}

func (s *ConciergeServiceTestSuite) TestRequest_ReturnsExisting() {
	existing := &models.ConciergeRequest{ID: uuid.New(), Email: "help@example.com", Source: "landing"}
	s.mockRepo.EXPECT().GetByEmail(gomock.Any(), "help@example.com").Return(existing, nil)

	req, created, err := s.service.Request(s.ctx, "help@example.com", "web-app", nil)

	s.Require().NoError(err)
	s.False(created)
	s.Equal(existing, req)
	s.Empty(s.audit.actions())
}

func (s *ConciergeServiceTestSuite) TestRequest_InvalidEmail() {
	for _, email := range []string{"", "not-an-email", "a@b"} {
		_, _, err := s.service.Request(s.ctx, email, "", nil)
		s.ErrorIs(err, ErrInvalidConciergeEmail, email)
	}
}

func (s *ConciergeServiceTestSuite) TestRequest_LookupError() {
	s.mockRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, _, err := s.service.Request(s.ctx, "help@example.com", "", nil)

	s.Error(err)
	s.Contains(err.Error(), "failed to look up concierge request")
}
