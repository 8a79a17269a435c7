package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/services"
	"subscription-tracker/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestSubscriptionHandler(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerSuite))
}

type SubscriptionHandlerSuite struct {
	handlerSuite
	ctrl          *gomock.Controller
	subscriptions *service_mocks.MockSubscriptionServiceInterface
	handler       *SubscriptionHandler
	owner         models.Owner
	view          *models.SubscriptionView
}

func (s *SubscriptionHandlerSuite) SetupTest() {
	s.setupEcho()
	s.ctrl = gomock.NewController(s.T())
	s.subscriptions = service_mocks.NewMockSubscriptionServiceInterface(s.ctrl)
	s.handler = NewSubscriptionHandler(s.subscriptions)
	s.owner = models.NewLocalOwner("client-abcdef12")
	s.view = &models.SubscriptionView{
		Active:          []models.Subscription{{ID: "spotify", Name: "Spotify", PricePerMonthUSD: 9.99}},
		Canceled:        []models.Subscription{{ID: "netflix", Name: "Netflix", PricePerMonthUSD: 15.49}},
		Removed:         []models.Subscription{},
		ActiveCount:     1,
		MonthlyTotalUSD: 9.99,
	}
}

func (s *SubscriptionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SubscriptionHandlerSuite) TestGetSubscriptions() {
	s.Run("returns the reconciled view", func() {
		s.subscriptions.EXPECT().GetView(gomock.Any(), s.owner).Return(s.view, nil)

		c, rec := s.newContext(http.MethodGet, "/api/v1/subscriptions", nil)
		s.Require().NoError(s.handler.GetSubscriptions(s.withOwner(c, s.owner)))

		s.assertStatus(rec, http.StatusOK)
		var view models.SubscriptionView
		s.decodeData(rec, &view)
		s.Equal(1, view.ActiveCount)
		s.Equal(9.99, view.MonthlyTotalUSD)
		s.Equal("netflix", view.Canceled[0].ID)
	})

	s.Run("missing owner", func() {
		c, rec := s.newContext(http.MethodGet, "/api/v1/subscriptions", nil)
		s.Require().NoError(s.handler.GetSubscriptions(c))
		s.assertError(rec, errors.AuthMissingOwner)
	})

	s.Run("storage failure hides the cause", func() {
		s.subscriptions.EXPECT().GetView(gomock.Any(), s.owner).Return(nil, fmt.Errorf("failed to load state: %w", fmt.Errorf("connection refused")))

		c, rec := s.newContext(http.MethodGet, "/api/v1/subscriptions", nil)
		s.Require().NoError(s.handler.GetSubscriptions(s.withOwner(c, s.owner)))

		s.assertError(rec, errors.SystemInternalError)
		s.NotContains(rec.Body.String(), "connection refused")
	})
}

func (s *SubscriptionHandlerSuite) TestTransitions() {
	cases := []struct {
		name   string
		call   func() *gomock.Call
		handle echo.HandlerFunc
	}{
		{"cancel", func() *gomock.Call { return s.subscriptions.EXPECT().Cancel(gomock.Any(), s.owner, "netflix") }, s.handler.Cancel},
		{"remove", func() *gomock.Call { return s.subscriptions.EXPECT().Remove(gomock.Any(), s.owner, "netflix") }, s.handler.Remove},
		{"restore", func() *gomock.Call { return s.subscriptions.EXPECT().Restore(gomock.Any(), s.owner, "netflix") }, s.handler.Restore},
		{"discard pending", func() *gomock.Call { return s.subscriptions.EXPECT().DiscardPending(gomock.Any(), s.owner, "netflix") }, s.handler.DiscardPending},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			tc.call().Return(s.view, nil)

			c, rec := s.newContext(http.MethodPost, "/", nil)
			s.withParam(s.withOwner(c, s.owner), "id", " netflix ")
			s.Require().NoError(tc.handle(c))
			s.assertStatus(rec, http.StatusOK)
		})
	}
}

func (s *SubscriptionHandlerSuite) TestTransitionErrors() {
	cases := []struct {
		err  error
		code errors.ErrorCode
	}{
		{models.ErrSubscriptionNotFound, errors.SubscriptionNotFound},
		{models.ErrInvalidTransition, errors.SubscriptionInvalidTransition},
		{models.ErrNotPending, errors.SubscriptionNotPending},
		{models.ErrAlreadyActive, errors.SubscriptionAlreadyActive},
		{fmt.Errorf("failed to write canceled: %w", models.ErrStaleWrite), errors.StateStaleWrite},
	}

	for _, tc := range cases {
		s.Run(string(tc.code), func() {
			s.subscriptions.EXPECT().Cancel(gomock.Any(), s.owner, "netflix").Return(nil, tc.err)

			c, rec := s.newContext(http.MethodPost, "/", nil)
			s.withParam(s.withOwner(c, s.owner), "id", "netflix")
			s.Require().NoError(s.handler.Cancel(c))
			s.assertError(rec, tc.code)
		})
	}

	s.Run("blank id", func() {
		c, rec := s.newContext(http.MethodPost, "/", nil)
		s.withParam(s.withOwner(c, s.owner), "id", "  ")
		s.Require().NoError(s.handler.Remove(c))
		s.assertError(rec, errors.ValidationRequiredField)
	})
}

func (s *SubscriptionHandlerSuite) TestApplyStateCommand() {
	s.Run("decodes the tagged command", func() {
		s.subscriptions.EXPECT().
			ApplyCommand(gomock.Any(), s.owner, models.SetCanceledIDsCommand{IDs: []string{"netflix", "spotify"}, ExpectedVersion: 3}).
			Return(s.view, nil)

		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/state",
			`{"type":"set_canceled_ids","ids":["netflix"," spotify ","Netflix",""],"expectedVersion":3}`)
		s.Require().NoError(s.handler.ApplyStateCommand(s.withOwner(c, s.owner)))
		s.assertStatus(rec, http.StatusOK)
	})

	s.Run("reset all", func() {
		s.subscriptions.EXPECT().ApplyCommand(gomock.Any(), s.owner, models.ResetAllCommand{}).Return(s.view, nil)

		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/state", `{"type":"reset_all"}`)
		s.Require().NoError(s.handler.ApplyStateCommand(s.withOwner(c, s.owner)))
		s.assertStatus(rec, http.StatusOK)
	})

	s.Run("unknown type", func() {
		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/state", `{"type":"drop_everything"}`)
		s.Require().NoError(s.handler.ApplyStateCommand(s.withOwner(c, s.owner)))
		s.assertError(rec, errors.ValidationUnknownType)
	})

	s.Run("payload for another type", func() {
		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/state", `{"type":"reset_all","ids":["netflix"]}`)
		s.Require().NoError(s.handler.ApplyStateCommand(s.withOwner(c, s.owner)))
		s.assertError(rec, errors.ValidationGeneral)
	})

	s.Run("not json", func() {
		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/state", `type=reset_all`)
		s.Require().NoError(s.handler.ApplyStateCommand(s.withOwner(c, s.owner)))
		s.assertError(rec, errors.ValidationGeneral)
	})

	s.Run("stale write", func() {
		s.subscriptions.EXPECT().ApplyCommand(gomock.Any(), s.owner, gomock.Any()).Return(nil, models.ErrStaleWrite)

		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/state", `{"type":"set_removed_ids","ids":[],"expectedVersion":1}`)
		s.Require().NoError(s.handler.ApplyStateCommand(s.withOwner(c, s.owner)))
		s.assertError(rec, errors.StateStaleWrite)
	})
}

func (s *SubscriptionHandlerSuite) TestAddCustom() {
	s.Run("adds a custom entry", func() {
		s.subscriptions.EXPECT().
			AddCustom(gomock.Any(), s.owner, models.CustomEntryInput{
				Name:  "Hulu",
				Price: models.PriceEdit{PricePerMonthUSD: 7.99, Cadence: "month"},
			}).
			Return(s.view, nil)

		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/custom",
			`{"name":" Hulu ","pricePerMonthUsd":"7.99","cadence":"month"}`)
		s.Require().NoError(s.handler.AddCustom(s.withOwner(c, s.owner)))
		s.assertStatus(rec, http.StatusCreated)
	})

	s.Run("accepts a numeric price", func() {
		s.subscriptions.EXPECT().
			AddCustom(gomock.Any(), s.owner, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ models.Owner, input models.CustomEntryInput) (*models.SubscriptionView, error) {
				s.Equal(12.5, input.Price.PricePerMonthUSD)
				return s.view, nil
			})

		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/custom", `{"pricePerMonthUsd":12.5}`)
		s.Require().NoError(s.handler.AddCustom(s.withOwner(c, s.owner)))
		s.assertStatus(rec, http.StatusCreated)
	})

	s.Run("price out of range fails validation", func() {
		c, _ := s.newContext(http.MethodPost, "/api/v1/subscriptions/custom", `{"name":"Gym","pricePerMonthUsd":"0"}`)
		err := s.handler.AddCustom(s.withOwner(c, s.owner))

		var validationErrs validator.ValidationErrors
		s.ErrorAs(err, &validationErrs)
	})

	s.Run("non-numeric price", func() {
		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/custom", `{"name":"Gym","pricePerMonthUsd":true}`)
		s.Require().NoError(s.handler.AddCustom(s.withOwner(c, s.owner)))
		s.assertError(rec, errors.ValidationInvalidPrice)
	})
}

func (s *SubscriptionHandlerSuite) TestPickFromDirectory() {
	s.Run("adds a pending pick", func() {
		s.subscriptions.EXPECT().PickFromDirectory(gomock.Any(), s.owner, "hulu").Return(s.view, nil)

		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/directory-picks", dto.DirectoryPickRequest{OptionID: "hulu"})
		s.Require().NoError(s.handler.PickFromDirectory(s.withOwner(c, s.owner)))
		s.assertStatus(rec, http.StatusCreated)
	})

	s.Run("unknown option", func() {
		s.subscriptions.EXPECT().PickFromDirectory(gomock.Any(), s.owner, "nope").Return(nil, services.ErrDirectoryOptionNotFound)

		c, rec := s.newContext(http.MethodPost, "/api/v1/subscriptions/directory-picks", dto.DirectoryPickRequest{OptionID: "nope"})
		s.Require().NoError(s.handler.PickFromDirectory(s.withOwner(c, s.owner)))
		s.assertError(rec, errors.DirectoryOptionNotFound)
	})
}

func (s *SubscriptionHandlerSuite) TestEditPrice() {
	s.Run("updates the price", func() {
		s.subscriptions.EXPECT().
			EditPrice(gomock.Any(), s.owner, "hulu", models.PriceEdit{PricePerMonthUSD: 7.99, NextChargeAt: "2025-04-01", NotifyEmail: true}).
			Return(s.view, nil)

		c, rec := s.newContext(http.MethodPut, "/", `{"pricePerMonthUsd":"7.99","nextChargeAt":"2025-04-01","notifyEmail":true}`)
		s.withParam(s.withOwner(c, s.owner), "id", "hulu")
		s.Require().NoError(s.handler.EditPrice(c))
		s.assertStatus(rec, http.StatusOK)
	})

	s.Run("invalid date fails validation", func() {
		c, _ := s.newContext(http.MethodPut, "/", `{"pricePerMonthUsd":"7.99","nextChargeAt":"2025-02-30"}`)
		s.withParam(s.withOwner(c, s.owner), "id", "hulu")

		var validationErrs validator.ValidationErrors
		s.ErrorAs(s.handler.EditPrice(c), &validationErrs)
	})
}

func (s *SubscriptionHandlerSuite) TestOpenCancel() {
	s.Run("returns the link", func() {
		s.subscriptions.EXPECT().OpenCancel(gomock.Any(), s.owner, "netflix").Return("https://www.netflix.com/cancelplan", nil)

		c, rec := s.newContext(http.MethodPost, "/", nil)
		s.withParam(s.withOwner(c, s.owner), "id", "netflix")
		s.Require().NoError(s.handler.OpenCancel(c))

		s.assertStatus(rec, http.StatusOK)
		var response dto.OpenCancelResponse
		s.decodeData(rec, &response)
		s.Equal("https://www.netflix.com/cancelplan", response.CancelURL)
	})

	s.Run("debounced", func() {
		s.subscriptions.EXPECT().OpenCancel(gomock.Any(), s.owner, "netflix").Return("", services.ErrDebounced)

		c, rec := s.newContext(http.MethodPost, "/", nil)
		s.withParam(s.withOwner(c, s.owner), "id", "netflix")
		s.Require().NoError(s.handler.OpenCancel(c))
		s.assertError(rec, errors.SubscriptionDebounced)
	})

	s.Run("no link", func() {
		user := models.NewRemoteOwner(uuid.New())
		s.subscriptions.EXPECT().OpenCancel(gomock.Any(), user, "gym").Return("", services.ErrNoCancelURL)

		c, rec := s.newContext(http.MethodPost, "/", nil)
		s.withParam(s.withOwner(c, user), "id", "gym")
		s.Require().NoError(s.handler.OpenCancel(c))
		s.assertError(rec, errors.SubscriptionNoCancelURL)
	})
}
