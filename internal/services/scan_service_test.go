package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeMailClient struct {
	ids       []string
	messages  map[string]models.MessageMetadata
	listErr   error
	getErr    error
	inFlight  int32
	maxFlight int32
}

func (c *fakeMailClient) ListCandidateIDs(_ context.Context, limit int) ([]string, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	if len(c.ids) > limit {
		return c.ids[:limit], nil
	}
	return c.ids, nil
}

func (c *fakeMailClient) GetMetadata(_ context.Context, id string) (*models.MessageMetadata, error) {
	n := atomic.AddInt32(&c.inFlight, 1)
	defer atomic.AddInt32(&c.inFlight, -1)
	for {
		peak := atomic.LoadInt32(&c.maxFlight)
		if n <= peak || atomic.CompareAndSwapInt32(&c.maxFlight, peak, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)

	if c.getErr != nil {
		return nil, c.getErr
	}
	msg := c.messages[id]
	msg.ID = id
	return &msg, nil
}

type fakeMailFactory struct {
	client *fakeMailClient
	err    error
}

func (f *fakeMailFactory) ForUser(context.Context, uuid.UUID) (MailClientInterface, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

type ScanServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	cfg     *config.GoogleConfig
	client  *fakeMailClient
	factory *fakeMailFactory
	store   StateStoreInterface
	audit   *recordingAudit
	service ScanServiceInterface
	owner   models.Owner
}

func (s *ScanServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = &config.GoogleConfig{ScanMaxMessages: 400, ScanConcurrency: 3, ScanTimeout: 5 * time.Second}

	s.client = &fakeMailClient{messages: map[string]models.MessageMetadata{}}
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("m%02d", i)
		s.client.ids = append(s.client.ids, id)
		s.client.messages[id] = models.MessageMetadata{From: "Friend <friend@example.org>", Subject: "Lunch?"}
	}
	s.client.messages["m03"] = models.MessageMetadata{From: "Spotify <no-reply@spotify.com>", Subject: "Your receipt"}
	s.client.messages["m07"] = models.MessageMetadata{From: "info@account.netflix.com", Subject: "Your bill"}
	s.client.messages["m09"] = models.MessageMetadata{Subject: "Payment", Snippet: "Thanks for your Spotify Premium payment"}
	s.factory = &fakeMailFactory{client: s.client}

	metrics := newTestMetrics()
	activity := NewActivityLogger(nil)
	s.store = NewStateStore(repositories.NewMemoryStateDocumentRepository(0), repositories.NewMemoryStateDocumentRepository(0), metrics, activity, nil)
	s.audit = &recordingAudit{}
	s.service = NewScanService(s.cfg, s.factory, nil, s.store, s.audit, metrics, activity)
	s.owner = models.NewRemoteOwner(uuid.New())
}

func TestScanServiceSuite(t *testing.T) {
	suite.Run(t, new(ScanServiceTestSuite))
}

func (s *ScanServiceTestSuite) TestScan_DetectsInMailboxOrder() {
	result, err := s.service.Scan(s.ctx, s.owner)
	s.Require().NoError(err)

	s.Equal([]models.DetectedVendor{{ID: "spotify", Name: "Spotify"}, {ID: "netflix", Name: "Netflix"}}, result.Detected)
	s.Equal(12, result.MessagesScanned)
	s.LessOrEqual(atomic.LoadInt32(&s.client.maxFlight), int32(3))

	state, err := s.store.Load(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Equal(result.Detected, state.Detected)
	s.Equal([]string{models.AuditActionInboxScanned}, s.audit.actions())
}

func (s *ScanServiceTestSuite) TestScan_ReplacesPreviousDetections() {
	_, err := s.store.SetDetected(s.ctx, s.owner, []models.DetectedVendor{{ID: "apple", Name: "Apple"}}, 0)
	s.Require().NoError(err)

	s.client.ids = []string{"m07"}
	result, err := s.service.Scan(s.ctx, s.owner)
	s.Require().NoError(err)

	state, err := s.store.Load(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Equal([]models.DetectedVendor{{ID: "netflix", Name: "Netflix"}}, state.Detected)
	s.Equal(result.Detected, state.Detected)
}

func (s *ScanServiceTestSuite) TestScan_EmptyMailbox() {
	s.client.ids = nil

	result, err := s.service.Scan(s.ctx, s.owner)
	s.Require().NoError(err)
	s.NotNil(result.Detected)
	s.Empty(result.Detected)
	s.Zero(result.MessagesScanned)
}

func (s *ScanServiceTestSuite) TestScan_RespectsMessageCap() {
	s.cfg.ScanMaxMessages = 5

	result, err := s.service.Scan(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Equal(5, result.MessagesScanned)
	s.Equal([]models.DetectedVendor{{ID: "spotify", Name: "Spotify"}}, result.Detected)
}

func (s *ScanServiceTestSuite) TestScan_RequiresSignedInOwner() {
	_, err := s.service.Scan(s.ctx, models.NewLocalOwner("client-abcdef12"))
	s.ErrorIs(err, ErrScanRequiresSignIn)
}

func (s *ScanServiceTestSuite) TestScan_UnauthorizedPassesThrough() {
	s.factory.err = fmt.Errorf("%w: %w", ErrMailUnauthorized, ErrGoogleNotConnected)

	_, err := s.service.Scan(s.ctx, s.owner)
	s.ErrorIs(err, ErrMailUnauthorized)
	s.NotErrorIs(err, ErrScanFailed)
}

func (s *ScanServiceTestSuite) TestScan_FetchFailureLeavesStateUntouched() {
	_, err := s.store.SetDetected(s.ctx, s.owner, []models.DetectedVendor{{ID: "apple", Name: "Apple"}}, 0)
	s.Require().NoError(err)

	s.client.getErr = errors.New("backend error")
	_, err = s.service.Scan(s.ctx, s.owner)
	s.ErrorIs(err, ErrScanFailed)

	state, err := s.store.Load(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Equal([]models.DetectedVendor{{ID: "apple", Name: "Apple"}}, state.Detected)
	s.Empty(s.audit.actions())
}

func (s *ScanServiceTestSuite) TestScan_ListFailure() {
	s.client.listErr = errors.New("quota exceeded")

	_, err := s.service.Scan(s.ctx, s.owner)
	s.ErrorIs(err, ErrScanFailed)
}

func (s *ScanServiceTestSuite) TestScan_RateLimited() {
	s.cfg.ScanRatePerSecond = 1000
	s.cfg.ScanConcurrency = 0

	result, err := s.service.Scan(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Len(result.Detected, 2)
	s.Equal(int32(1), atomic.LoadInt32(&s.client.maxFlight))
}
