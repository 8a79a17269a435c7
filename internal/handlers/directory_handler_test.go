package handlers

import (
	"net/http"
	"testing"
	"time"

	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/services"
	"subscription-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestDirectoryHandler(t *testing.T) {
	suite.Run(t, new(DirectoryHandlerSuite))
}

type DirectoryHandlerSuite struct {
	handlerSuite
	ctrl      *gomock.Controller
	directory *service_mocks.MockDirectoryServiceInterface
	handler   *DirectoryHandler
	snapshot  *models.DirectorySnapshot
}

func (s *DirectoryHandlerSuite) SetupTest() {
	s.setupEcho()
	s.ctrl = gomock.NewController(s.T())
	s.directory = service_mocks.NewMockDirectoryServiceInterface(s.ctrl)
	s.handler = NewDirectoryHandler(s.directory)
	s.snapshot = &models.DirectorySnapshot{
		Options: []models.DirectoryOption{
			{ID: "hulu", Name: "Hulu", CancelURL: "https://secure.hulu.com/account/cancel"},
			{ID: "netflix", Name: "Netflix", CancelURL: "https://www.netflix.com/cancelplan"},
		},
		ETag:       "1700000000000-512",
		ModifiedAt: time.Date(2024, 11, 14, 22, 13, 20, 0, time.UTC),
	}
}

func (s *DirectoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DirectoryHandlerSuite) TestGetDirectory() {
	s.Run("serves the snapshot with revalidation headers", func() {
		s.directory.EXPECT().GetSnapshot(gomock.Any()).Return(s.snapshot, nil)

		c, rec := s.newContext(http.MethodGet, "/api/v1/directory", nil)
		s.Require().NoError(s.handler.GetDirectory(c))

		s.assertStatus(rec, http.StatusOK)
		s.Equal("no-cache", rec.Header().Get("Cache-Control"))
		s.Equal(`"1700000000000-512"`, rec.Header().Get("ETag"))

		var response dto.DirectoryResponse
		s.decodeData(rec, &response)
		s.Equal(2, response.Count)
		s.Equal("hulu", response.Options[0].ID)
	})

	s.Run("not modified", func() {
		s.directory.EXPECT().GetSnapshot(gomock.Any()).Return(s.snapshot, nil)

		c, rec := s.newContext(http.MethodGet, "/api/v1/directory", nil)
		c.Request().Header.Set("If-None-Match", `W/"1700000000000-512"`)
		s.Require().NoError(s.handler.GetDirectory(c))

		s.Equal(http.StatusNotModified, rec.Code)
		s.Empty(rec.Body.String())
		s.Equal(`"1700000000000-512"`, rec.Header().Get("ETag"))
	})

	s.Run("stale etag gets the body", func() {
		s.directory.EXPECT().GetSnapshot(gomock.Any()).Return(s.snapshot, nil)

		c, rec := s.newContext(http.MethodGet, "/api/v1/directory", nil)
		c.Request().Header.Set("If-None-Match", `"1600000000000-100"`)
		s.Require().NoError(s.handler.GetDirectory(c))
		s.assertStatus(rec, http.StatusOK)
	})

	s.Run("missing file", func() {
		s.directory.EXPECT().GetSnapshot(gomock.Any()).Return(nil, services.ErrDirectoryUnavailable)

		c, rec := s.newContext(http.MethodGet, "/api/v1/directory", nil)
		s.Require().NoError(s.handler.GetDirectory(c))
		s.assertError(rec, errors.DirectoryUnavailable)
	})
}

func (s *DirectoryHandlerSuite) TestSearchDirectory() {
	s.Run("passes query and limit", func() {
		s.directory.EXPECT().Search(gomock.Any(), "net", 3).Return(s.snapshot.Options[1:], nil)

		c, rec := s.newContext(http.MethodGet, "/api/v1/directory/search?q=+net+&limit=3", nil)
		s.Require().NoError(s.handler.SearchDirectory(c))

		s.assertStatus(rec, http.StatusOK)
		var response dto.DirectorySearchResponse
		s.decodeData(rec, &response)
		s.Equal("net", response.Query)
		s.Len(response.Results, 1)
	})

	s.Run("caps the limit", func() {
		s.directory.EXPECT().Search(gomock.Any(), "", maxDirectorySearchLimit).Return(nil, nil)

		c, rec := s.newContext(http.MethodGet, "/api/v1/directory/search?limit=5000", nil)
		s.Require().NoError(s.handler.SearchDirectory(c))
		s.assertStatus(rec, http.StatusOK)
	})
}

func TestETagMatches(t *testing.T) {
	assert.True(t, etagMatches(`"a"`, `"a"`))
	assert.True(t, etagMatches(`"b", W/"a"`, `"a"`))
	assert.True(t, etagMatches(`*`, `"a"`))
	assert.False(t, etagMatches(``, `"a"`))
	assert.False(t, etagMatches(`"a-1"`, `"a"`))
}
