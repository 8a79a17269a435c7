package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/models"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var (
	ErrScanFailed         = errors.New("inbox scan failed")
	ErrScanRequiresSignIn = errors.New("inbox scan requires a signed-in user")
)

// ScanService finds billing mail, detects the vendors behind it and stores
// the result as the owner's detected list.
type ScanService struct {
	cfg      *config.GoogleConfig
	mail     MailClientFactoryInterface
	detector *VendorDetector
	store    StateStoreInterface
	audit    AuditServiceInterface
	metrics  MetricsRecorderInterface
	activity ActivityLoggerInterface
	now      func() time.Time
}

func NewScanService(
	cfg *config.GoogleConfig,
	mail MailClientFactoryInterface,
	detector *VendorDetector,
	store StateStoreInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) ScanServiceInterface {
	if detector == nil {
		detector = NewVendorDetector(nil)
	}
	return &ScanService{
		cfg:      cfg,
		mail:     mail,
		detector: detector,
		store:    store,
		audit:    audit,
		metrics:  metrics,
		activity: activity,
		now:      time.Now,
	}
}

// Scan fetches candidate message metadata with bounded concurrency and a
// request rate cap. Results keep the order the mailbox listed them in so
// detection order is stable. The detected list is replaced wholesale.
func (s *ScanService) Scan(ctx context.Context, owner models.Owner) (*models.ScanResult, error) {
	if !owner.Remote || owner.UserID == nil {
		return nil, ErrScanRequiresSignIn
	}

	start := s.now()
	if s.cfg.ScanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ScanTimeout)
		defer cancel()
	}

	client, err := s.mail.ForUser(ctx, *owner.UserID)
	if err != nil {
		return nil, s.fail(ctx, owner, start, err)
	}

	ids, err := client.ListCandidateIDs(ctx, s.cfg.ScanMaxMessages)
	if err != nil {
		return nil, s.fail(ctx, owner, start, err)
	}
	s.activity.LogScanStarted(ctx, owner, len(ids))

	messages, err := s.fetchAll(ctx, client, ids)
	if err != nil {
		return nil, s.fail(ctx, owner, start, err)
	}

	vendors := s.detector.Detect(messages)
	if _, err := s.store.SetDetected(ctx, owner, vendors, 0); err != nil {
		return nil, s.fail(ctx, owner, start, err)
	}

	elapsed := s.now().Sub(start)
	s.metrics.IncrementCounter("scan.completed", nil)
	s.metrics.RecordGauge("scan.messages", float64(len(ids)), nil)
	s.metrics.RecordProcessingTime("scan", elapsed)
	for _, vendor := range vendors {
		s.metrics.IncrementCounter("scan.vendor_detected", map[string]string{"vendor": vendor.ID})
	}
	s.activity.LogScanCompleted(ctx, owner, len(vendors), elapsed.Milliseconds())
	s.audit.Record(ctx, owner, models.AuditActionInboxScanned, models.AuditResourceInbox, "", map[string]interface{}{
		"messages": len(ids),
		"detected": len(vendors),
	})

	return &models.ScanResult{
		Detected:        vendors,
		MessagesScanned: len(ids),
		ScannedAt:       s.now().UTC(),
	}, nil
}

func (s *ScanService) fetchAll(ctx context.Context, client MailClientInterface, ids []string) ([]models.MessageMetadata, error) {
	concurrency := s.cfg.ScanConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	limit := rate.Inf
	if s.cfg.ScanRatePerSecond > 0 {
		limit = rate.Limit(s.cfg.ScanRatePerSecond)
	}
	limiter := rate.NewLimiter(limit, concurrency)

	messages := make([]models.MessageMetadata, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, id := range ids {
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			msg, err := client.GetMetadata(gctx, id)
			if err != nil {
				return err
			}
			messages[i] = *msg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *ScanService) fail(ctx context.Context, owner models.Owner, start time.Time, err error) error {
	reason := "error"
	if errors.Is(err, ErrMailUnauthorized) {
		reason = "unauthorized"
	} else if errors.Is(err, context.DeadlineExceeded) {
		reason = "timeout"
	}

	s.metrics.IncrementCounter("scan.failed", map[string]string{"reason": reason})
	s.activity.LogScanFailed(ctx, owner, err.Error(), s.now().Sub(start).Milliseconds())

	if reason == "unauthorized" {
		return err
	}
	return fmt.Errorf("%w: %w", ErrScanFailed, err)
}
