package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/models"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var (
	ErrMailUnauthorized = errors.New("mail access is not authorized")
	errStopPaging       = errors.New("stop paging")
)

var metadataHeaders = []string{"From", "Subject", "List-ID"}

// BuildScanQuery is the Gmail search used to find billing mail inside window
// (for example "18m").
func BuildScanQuery(window string) string {
	window = strings.TrimSpace(window)
	if window == "" {
		window = "18m"
	}
	return "category:primary OR category:updates newer_than:" + window +
		" (receipt OR subscription OR invoice OR billed OR billing OR payment)" +
		" -subject:promo -subject:promotion -label:promotions -subject:sale"
}

// GmailClient reads message metadata through the Gmail API for one user.
type GmailClient struct {
	svc      *gmail.Service
	query    string
	pageSize int64
}

func NewGmailClient(ctx context.Context, cfg *config.GoogleConfig, opts ...option.ClientOption) (MailClientInterface, error) {
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	pageSize := cfg.ScanPageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	return &GmailClient{
		svc:      svc,
		query:    BuildScanQuery(cfg.ScanWindow),
		pageSize: pageSize,
	}, nil
}

// ListCandidateIDs pages through matching messages until limit ids are
// collected or the results run out.
func (c *GmailClient) ListCandidateIDs(ctx context.Context, limit int) ([]string, error) {
	ids := []string{}
	if limit <= 0 {
		return ids, nil
	}

	err := c.svc.Users.Messages.List("me").
		Q(c.query).
		MaxResults(c.pageSize).
		Pages(ctx, func(resp *gmail.ListMessagesResponse) error {
			for _, msg := range resp.Messages {
				ids = append(ids, msg.Id)
				if len(ids) >= limit {
					return errStopPaging
				}
			}
			return nil
		})
	if err != nil && !errors.Is(err, errStopPaging) {
		return nil, mapGmailError(err)
	}

	return ids, nil
}

func (c *GmailClient) GetMetadata(ctx context.Context, id string) (*models.MessageMetadata, error) {
	msg, err := c.svc.Users.Messages.Get("me", id).
		Format("metadata").
		MetadataHeaders(metadataHeaders...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapGmailError(err)
	}

	meta := &models.MessageMetadata{
		ID:      msg.Id,
		Snippet: msg.Snippet,
	}
	if msg.Payload != nil {
		for _, header := range msg.Payload.Headers {
			switch strings.ToLower(header.Name) {
			case "from":
				meta.From = header.Value
			case "subject":
				meta.Subject = header.Value
			case "list-id":
				meta.ListID = header.Value
			}
		}
	}
	return meta, nil
}

// mapGmailError turns revoked or missing grants into ErrMailUnauthorized.
func mapGmailError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", ErrMailUnauthorized, err)
		case http.StatusForbidden:
			for _, item := range apiErr.Errors {
				if item.Reason == "insufficientPermissions" || item.Reason == "ACCESS_TOKEN_SCOPE_INSUFFICIENT" {
					return fmt.Errorf("%w: %w", ErrMailUnauthorized, err)
				}
			}
		}
		return err
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %w", ErrMailUnauthorized, err)
	}
	return err
}

// GmailClientFactory opens Gmail clients backed by a user's stored grant.
type GmailClientFactory struct {
	cfg  *config.GoogleConfig
	auth GoogleAuthServiceInterface
	opts []option.ClientOption
}

func NewGmailClientFactory(cfg *config.GoogleConfig, auth GoogleAuthServiceInterface, opts ...option.ClientOption) MailClientFactoryInterface {
	return &GmailClientFactory{cfg: cfg, auth: auth, opts: opts}
}

func (f *GmailClientFactory) ForUser(ctx context.Context, userID uuid.UUID) (MailClientInterface, error) {
	ts, err := f.auth.TokenSource(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrGoogleNotConnected) {
			return nil, fmt.Errorf("%w: %w", ErrMailUnauthorized, err)
		}
		return nil, err
	}

	opts := append([]option.ClientOption{option.WithTokenSource(ts)}, f.opts...)
	return NewGmailClient(ctx, f.cfg, opts...)
}
