package handlers

import (
	"net/http"
	"testing"
	"time"

	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestConciergeHandler(t *testing.T) {
	suite.Run(t, new(ConciergeHandlerSuite))
}

type ConciergeHandlerSuite struct {
	handlerSuite
	ctrl      *gomock.Controller
	concierge *service_mocks.MockConciergeServiceInterface
	handler   *ConciergeHandler
}

func (s *ConciergeHandlerSuite) SetupTest() {
	s.setupEcho()
	s.ctrl = gomock.NewController(s.T())
	s.concierge = service_mocks.NewMockConciergeServiceInterface(s.ctrl)
	s.handler = NewConciergeHandler(s.concierge)
}

func (s *ConciergeHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ConciergeHandlerSuite) TestCreateRequest() {
	email := gofakeit.Email()
	stored := &models.ConciergeRequest{ID: uuid.New(), Email: email, Source: "web-app", CreatedAt: time.Now()}

	s.Run("new request", func() {
		s.concierge.EXPECT().Request(gomock.Any(), email, "", (*uuid.UUID)(nil)).Return(stored, true, nil)

		c, rec := s.newContext(http.MethodPost, "/api/v1/concierge-requests", dto.ConciergeSignupRequest{Email: email})
		s.Require().NoError(s.handler.CreateRequest(c))

		s.assertStatus(rec, http.StatusCreated)
		var response dto.ConciergeSignupResponse
		s.decodeData(rec, &response)
		s.Equal(stored.ID, response.ID)
		s.Equal("web-app", response.Source)
	})

	s.Run("repeat request", func() {
		s.concierge.EXPECT().Request(gomock.Any(), email, "landing", gomock.Any()).Return(stored, false, nil)

		c, rec := s.newContext(http.MethodPost, "/api/v1/concierge-requests", dto.ConciergeSignupRequest{Email: email, Source: "landing"})
		s.Require().NoError(s.handler.CreateRequest(c))
		s.assertStatus(rec, http.StatusOK)
	})

	s.Run("signed-in user is linked", func() {
		userID := uuid.New()
		s.concierge.EXPECT().Request(gomock.Any(), email, "", &userID).Return(stored, true, nil)

		c, rec := s.newContext(http.MethodPost, "/api/v1/concierge-requests", dto.ConciergeSignupRequest{Email: email})
		c.Set(UserIDContextKey, userID)
		s.Require().NoError(s.handler.CreateRequest(c))
		s.assertStatus(rec, http.StatusCreated)
	})

	s.Run("invalid email", func() {
		c, _ := s.newContext(http.MethodPost, "/api/v1/concierge-requests", dto.ConciergeSignupRequest{Email: "not-an-email"})

		var validationErrs validator.ValidationErrors
		s.ErrorAs(s.handler.CreateRequest(c), &validationErrs)
	})
}
