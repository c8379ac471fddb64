package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrSessionRevoked     = errors.New("session revoked")
	ErrMissingSession     = errors.New("unauthorized")
	ErrUserNotFound       = errors.New("user not found")
	ErrManagerNotFound    = errors.New("manager not found")
	ErrPartnerNotFound    = errors.New("partner not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrForeignPartner     = errors.New("cannot create partner for another manager")
	ErrForeignInteraction = errors.New("cannot create interaction for another manager")
	ErrReassignPartner    = errors.New("only masters can reassign a partner to another manager")
	ErrMasterOnlyMetrics  = errors.New("only masters can update metrics directly")
	ErrInvalidDate        = errors.New("invalid date")
)

const (
	CACHE_TTL_5_MINS = 5 * time.Minute

	// ten logged minutes per effort point
	EFFORT_MINUTES_PER_POINT = 10
	EFFORT_MAX               = 100
	RELATIONSHIP_SCALE       = 20
)

func DBKeyUser(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func DBKeyRevokedToken(tokenID string) string {
	return fmt.Sprintf("session:revoked:%s", tokenID)
}

func LimitKeyLogin(username string) string {
	return fmt.Sprintf("limit:login:%s", username)
}

// storeFailure logs an unexpected store error and tags it so it surfaces as a generic 500.
func storeFailure(logger *zap.Logger, op string, err error) error {
	logger.Error("store failure", zap.String("op", op), zap.Error(err))
	return errorx.Wrap(err, errorx.Service)
}
