package commands

import (
	"context"
	"log/slog"

	"oficina-criativa/internal/domain/user"
	"oficina-criativa/internal/pkg/errs"
	"oficina-criativa/internal/pkg/jwt"
	"oficina-criativa/internal/pkg/password"
	"oficina-criativa/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrInvalidLoginToken    = errs.New("invalid or expired login token")
	ErrTooManyLoginRequests = errs.New("too many login requests")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

// LoginTokenStore issues one-shot login tokens. Issue returns the raw
// token; only a digest of it is persisted. Consume invalidates the
// token whether or not it matched.
type LoginTokenStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Consume(ctx context.Context, email, token string) (bool, error)
}

type LoginRateLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
}

// LoginLinkSender delivers the magic link out of band. Delivery
// failures are logged, not surfaced to the caller.
type LoginLinkSender interface {
	SendLoginLink(ctx context.Context, email, token string) error
}

type UserRepository interface {
	Upsert(ctx context.Context, candidate *user.User) (uuid.UUID, user.Role, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type AuthCommands interface {
	RequestMagicLink(ctx context.Context, rawEmail string) (string, error)
	VerifyMagicLink(ctx context.Context, rawEmail, token string) (*LoginResult, error)
	Login(ctx context.Context, rawEmail, plainPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo      UserRepository
	userReadStore queries.UserReadStore
	purchases     queries.PurchaseReadStore
	tokens        LoginTokenStore
	limiter       LoginRateLimiter
	sender        LoginLinkSender
	jwtService    *jwt.Service
}

func NewAuthCommands(
	userRepo UserRepository,
	userReadStore queries.UserReadStore,
	purchases queries.PurchaseReadStore,
	tokens LoginTokenStore,
	limiter LoginRateLimiter,
	sender LoginLinkSender,
	jwtService *jwt.Service,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:      userRepo,
		userReadStore: userReadStore,
		purchases:     purchases,
		tokens:        tokens,
		limiter:       limiter,
		sender:        sender,
		jwtService:    jwtService,
	}
}

// RequestMagicLink issues a one-shot login token for buyers with at
// least one recorded purchase. Unknown emails are not an error: the
// caller responds the same way either way so the endpoint does not
// leak which emails have purchases.
func (a *authCommandsImpl) RequestMagicLink(ctx context.Context, rawEmail string) (string, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return "", errs.Mark(err, ErrAuthenticationFailed)
	}

	allowed, err := a.limiter.Allow(ctx, email.Value())
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperation)
	}
	if !allowed {
		return "", ErrTooManyLoginRequests
	}

	owned, err := a.purchases.FindByEmail(ctx, email.Value())
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperation)
	}
	if len(owned) == 0 {
		slog.Info("magic link requested for email without purchases", "email", email.Value())
		return "", nil
	}

	token, err := a.tokens.Issue(ctx, email.Value())
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}

	if sendErr := a.sender.SendLoginLink(ctx, email.Value(), token); sendErr != nil {
		slog.Warn("failed to send login link", "email", email.Value(), "error", sendErr.Error())
	}

	return token, nil
}

func (a *authCommandsImpl) VerifyMagicLink(ctx context.Context, rawEmail, token string) (*LoginResult, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLoginToken)
	}

	ok, err := a.tokens.Consume(ctx, email.Value(), token)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	if !ok {
		return nil, ErrInvalidLoginToken
	}

	userID, role, err := a.userRepo.Upsert(ctx, user.NewUser(email, user.RoleUser))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	return a.issueSession(ctx, userID, role)
}

// Login is the password path, kept for back-office admins.
func (a *authCommandsImpl) Login(ctx context.Context, rawEmail, plainPassword string) (*LoginResult, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, hashedPassword, err := a.userReadStore.FindByEmail(ctx, email.Value())
	if err != nil || view == nil {
		return nil, ErrInvalidCredentials
	}
	if hashedPassword == "" {
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.issueSession(ctx, view.ID, role)
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	view, err := a.userReadStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}

	return a.generatePair(claims.UserID, role)
}

func (a *authCommandsImpl) issueSession(ctx context.Context, userID uuid.UUID, role user.Role) (*LoginResult, error) {
	pair, err := a.generatePair(userID, role)
	if err != nil {
		return nil, err
	}

	if updateErr := a.userRepo.UpdateLastLogin(ctx, userID); updateErr != nil {
		slog.Warn("failed to update last login", "user_id", userID, "error", updateErr.Error())
	}

	return &LoginResult{
		UserID:    userID,
		Role:      role,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) generatePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
