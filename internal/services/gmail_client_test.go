package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"subscription-tracker/internal/config"

	"github.com/stretchr/testify/suite"
	"google.golang.org/api/option"
)

type GmailClientTestSuite struct {
	suite.Suite
	server    *httptest.Server
	listCalls int32
	status    int
	client    MailClientInterface
}

func (s *GmailClientTestSuite) SetupTest() {
	s.status = http.StatusOK
	atomic.StoreInt32(&s.listCalls, 0)

	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/messages", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.listCalls, 1)
		if s.status != http.StatusOK {
			s.writeError(w)
			return
		}
		s.Contains(r.URL.Query().Get("q"), "newer_than:6m")
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			fmt.Fprint(w, `{"messages":[{"id":"m1"},{"id":"m2"}],"nextPageToken":"p2"}`)
			return
		}
		fmt.Fprint(w, `{"messages":[{"id":"m3"}]}`)
	})
	mux.HandleFunc("/gmail/v1/users/me/messages/m1", func(w http.ResponseWriter, r *http.Request) {
		if s.status != http.StatusOK {
			s.writeError(w)
			return
		}
		s.Equal("metadata", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"m1","snippet":"Your receipt","payload":{"headers":[`+
			`{"name":"From","value":"Netflix <info@account.netflix.com>"},`+
			`{"name":"Subject","value":"Your Netflix membership"},`+
			`{"name":"List-Id","value":"<billing.netflix.com>"}]}}`)
	})
	s.server = httptest.NewServer(mux)

	client, err := NewGmailClient(context.Background(), &config.GoogleConfig{ScanWindow: "6m", ScanPageSize: 2},
		option.WithHTTPClient(s.server.Client()),
		option.WithEndpoint(s.server.URL+"/"),
	)
	s.Require().NoError(err)
	s.client = client
}

func (s *GmailClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *GmailClientTestSuite) writeError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(s.status)
	reason := "authError"
	if s.status == http.StatusForbidden {
		reason = "insufficientPermissions"
	}
	fmt.Fprintf(w, `{"error":{"code":%d,"message":"denied","errors":[{"reason":%q}]}}`, s.status, reason)
}

func TestGmailClientSuite(t *testing.T) {
	suite.Run(t, new(GmailClientTestSuite))
}

func (s *GmailClientTestSuite) TestListCandidateIDs_FollowsPages() {
	ids, err := s.client.ListCandidateIDs(context.Background(), 10)
	s.Require().NoError(err)
	s.Equal([]string{"m1", "m2", "m3"}, ids)
	s.Equal(int32(2), atomic.LoadInt32(&s.listCalls))
}

func (s *GmailClientTestSuite) TestListCandidateIDs_StopsAtLimit() {
	ids, err := s.client.ListCandidateIDs(context.Background(), 2)
	s.Require().NoError(err)
	s.Equal([]string{"m1", "m2"}, ids)
	s.Equal(int32(1), atomic.LoadInt32(&s.listCalls))
}

func (s *GmailClientTestSuite) TestListCandidateIDs_ZeroLimit() {
	ids, err := s.client.ListCandidateIDs(context.Background(), 0)
	s.Require().NoError(err)
	s.Empty(ids)
	s.Zero(atomic.LoadInt32(&s.listCalls))
}

func (s *GmailClientTestSuite) TestGetMetadata() {
	meta, err := s.client.GetMetadata(context.Background(), "m1")
	s.Require().NoError(err)

	s.Equal("m1", meta.ID)
	s.Equal("Netflix <info@account.netflix.com>", meta.From)
	s.Equal("Your Netflix membership", meta.Subject)
	s.Equal("<billing.netflix.com>", meta.ListID)
	s.Equal("Your receipt", meta.Snippet)
}

func (s *GmailClientTestSuite) TestUnauthorizedIsMapped() {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		s.status = status

		_, err := s.client.ListCandidateIDs(context.Background(), 5)
		s.ErrorIs(err, ErrMailUnauthorized, "status %d", status)

		_, err = s.client.GetMetadata(context.Background(), "m1")
		s.ErrorIs(err, ErrMailUnauthorized, "status %d", status)
	}
}

func (s *GmailClientTestSuite) TestOtherErrorsAreNotUnauthorized() {
	s.status = http.StatusBadRequest

	_, err := s.client.ListCandidateIDs(context.Background(), 5)
	s.Error(err)
	s.NotErrorIs(err, ErrMailUnauthorized)
}

func TestBuildScanQuery(t *testing.T) {
	query := BuildScanQuery(" 12m ")
	for _, part := range []string{"newer_than:12m", "category:updates", "-label:promotions", "(receipt OR subscription"} {
		if !strings.Contains(query, part) {
			t.Errorf("query %q is missing %q", query, part)
		}
	}

	if !strings.Contains(BuildScanQuery(""), "newer_than:18m") {
		t.Error("empty window should fall back to 18m")
	}
}
