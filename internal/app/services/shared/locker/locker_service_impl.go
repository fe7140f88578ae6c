package locker

import (
	"context"
	"fmt"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("lockService.TryLock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationKey, expiration),
	)

	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID := utils.GetRequestID(ctx)

	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		s.Log.Error("lockService.Unlock error retrieving value from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if storedVal == "" {
		return nil
	}

	expectedValue, err := json.Marshal(lockValue)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if storedVal != string(expectedValue) {
		err := exceptions.ErrRedisUnlock(fmt.Errorf("lock %s not owned by this client", key))
		s.Log.Error("lockService.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockStoredValueKey, storedVal),
			zap.String(constvars.LoggingLockExpectedValueKey, string(expectedValue)),
			zap.Error(err),
		)
		return err
	}

	return s.redisRepo.Delete(ctx, key)
}
