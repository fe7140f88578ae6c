package session

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	JWTSecret       string
	ExpiryInHours   int
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, jwtSecret string, expiryInHours int, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		JWTSecret:       jwtSecret,
		ExpiryInHours:   expiryInHours,
		Log:             logger,
	}
}

func sessionKey(sessionID string) string {
	return constvars.SessionKeyPrefix + sessionID
}

// CreateSession stores a session for user in redis and returns the signed
// token that refers to it. Both expire together.
func (svc *sessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	requestID := utils.GetRequestID(ctx)
	ttl := time.Duration(svc.ExpiryInHours) * time.Hour

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err))
		return "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, svc.JWTSecret, svc.ExpiryInHours)
	if err != nil {
		svc.Log.Error("sessionService.CreateSession error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		return "", err
	}

	svc.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingUserRoleKey, user.Role))
	return token, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
