package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/models"
	"subscription-tracker/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

var (
	ErrGoogleNotConfigured = errors.New("google sign-in is not configured")
	ErrGoogleNotConnected  = errors.New("google account is not connected")
	ErrOAuthExchange       = errors.New("failed to exchange authorization code")
	ErrProfileUnavailable  = errors.New("failed to read google profile")
)

// GoogleAuthService completes the Google OAuth flow, keeps the encrypted
// grant for later inbox scans and issues session tokens.
type GoogleAuthService struct {
	oauth       *oauth2.Config
	configured  bool
	users       repositories.UserRepositoryInterface
	credentials repositories.GoogleCredentialRepositoryInterface
	cipher      TokenCipherInterface
	tokens      TokenServiceInterface
	audit       AuditServiceInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger

	// gmailOptions are appended when reading the profile after sign-in.
	gmailOptions []option.ClientOption
}

func NewGoogleAuthService(
	cfg *config.GoogleConfig,
	users repositories.UserRepositoryInterface,
	credentials repositories.GoogleCredentialRepositoryInterface,
	cipher TokenCipherInterface,
	tokens TokenServiceInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) GoogleAuthServiceInterface {
	return newGoogleAuthService(cfg, users, credentials, cipher, tokens, audit, metrics, logger)
}

func newGoogleAuthService(
	cfg *config.GoogleConfig,
	users repositories.UserRepositoryInterface,
	credentials repositories.GoogleCredentialRepositoryInterface,
	cipher TokenCipherInterface,
	tokens TokenServiceInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *GoogleAuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoogleAuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		configured:  cfg.ClientID != "" && cfg.ClientSecret != "",
		users:       users,
		credentials: credentials,
		cipher:      cipher,
		tokens:      tokens,
		audit:       audit,
		metrics:     metrics,
		logger:      logger,
	}
}

// AuthCodeURL asks for offline access and forces the consent screen so
// Google returns a refresh token.
func (s *GoogleAuthService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

func (s *GoogleAuthService) CompleteSignIn(ctx context.Context, code string) (*models.SignInResult, error) {
	if !s.configured {
		return nil, ErrGoogleNotConfigured
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.metrics.IncrementCounter("auth.sign_in", map[string]string{"status": "exchange_failed"})
		return nil, fmt.Errorf("%w: %w", ErrOAuthExchange, err)
	}

	email, err := s.profileEmail(ctx, token)
	if err != nil {
		s.metrics.IncrementCounter("auth.sign_in", map[string]string{"status": "profile_failed"})
		return nil, err
	}

	user, err := s.users.FirstOrCreateByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.WarnContext(ctx, "failed to update last login", slog.String("user_id", user.ID.String()), slog.String("error", err.Error()))
	}
	user.LastLoginAt = &now

	if err := s.storeToken(ctx, user.ID, token); err != nil {
		return nil, err
	}

	session, expiresAt, err := s.tokens.GenerateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.metrics.IncrementCounter("auth.sign_in", map[string]string{"status": "success"})
	s.audit.Record(ctx, models.NewRemoteOwner(user.ID), models.AuditActionSignedIn, models.AuditResourceSession, user.ID.String(), nil)

	return &models.SignInResult{
		User:         user,
		SessionToken: session,
		ExpiresIn:    int64(time.Until(expiresAt).Seconds()),
	}, nil
}

func (s *GoogleAuthService) profileEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	opts := append([]option.ClientOption{option.WithTokenSource(s.oauth.TokenSource(ctx, token))}, s.gmailOptions...)
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProfileUnavailable, err)
	}

	profile, err := svc.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProfileUnavailable, err)
	}

	email := strings.TrimSpace(profile.EmailAddress)
	if !models.IsValidEmail(email) {
		return "", fmt.Errorf("%w: profile has no usable email", ErrProfileUnavailable)
	}
	return email, nil
}

func (s *GoogleAuthService) storeToken(ctx context.Context, userID uuid.UUID, token *oauth2.Token) error {
	access, err := s.cipher.Encrypt(token.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	refresh, err := s.cipher.Encrypt(token.RefreshToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	credential := &models.GoogleCredential{
		UserID:                 userID,
		AccessTokenCiphertext:  access,
		RefreshTokenCiphertext: refresh,
		TokenType:              token.TokenType,
		Expiry:                 token.Expiry,
		Scopes:                 strings.Join(s.oauth.Scopes, " "),
	}
	if err := s.credentials.Upsert(ctx, credential); err != nil {
		return fmt.Errorf("failed to store google credential: %w", err)
	}
	return nil
}

// TokenSource returns a token source for the user's stored grant. Tokens
// refreshed through it are written back encrypted.
func (s *GoogleAuthService) TokenSource(ctx context.Context, userID uuid.UUID) (oauth2.TokenSource, error) {
	credential, err := s.credentials.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCredentialNotFound) {
			return nil, ErrGoogleNotConnected
		}
		return nil, err
	}

	access, err := s.cipher.Decrypt(credential.AccessTokenCiphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	refresh, err := s.cipher.Decrypt(credential.RefreshTokenCiphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}

	stored := &oauth2.Token{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    credential.TokenType,
		Expiry:       credential.Expiry,
	}

	return &persistingTokenSource{
		base:   s.oauth.TokenSource(ctx, stored),
		last:   access,
		userID: userID,
		owner:  s,
	}, nil
}

func (s *GoogleAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	_, err = s.credentials.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return user, true, nil
	case errors.Is(err, repositories.ErrCredentialNotFound):
		return user, false, nil
	default:
		return nil, false, err
	}
}

// Disconnect forgets the stored grant; the next scan needs a new sign-in.
func (s *GoogleAuthService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	return s.credentials.DeleteByUserID(ctx, userID)
}

type persistingTokenSource struct {
	mu     sync.Mutex
	base   oauth2.TokenSource
	last   string
	userID uuid.UUID
	owner  *GoogleAuthService
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := p.base.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if token.AccessToken != p.last {
		p.last = token.AccessToken
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.owner.storeToken(ctx, p.userID, token); err != nil {
			p.owner.logger.Warn("failed to persist refreshed google token",
				slog.String("user_id", p.userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return token, nil
}
