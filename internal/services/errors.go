package services

import (
	"errors"

	store "github.com/yungbote/questline-backend/internal/data/db"
	"github.com/yungbote/questline-backend/internal/platform/apierr"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

// internalErr logs the cause and hides it behind a generic 500.
func internalErr(log *logger.Logger, op string, err error) error {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae
	}
	log.Error(op+" failed", "error", err)
	return apierr.Internal(err)
}

// classifyWrite maps constraint violations from a write onto client errors.
func classifyWrite(log *logger.Logger, op string, err error, conflictMsg, missingMsg string) error {
	switch {
	case err == nil:
		return nil
	case store.IsDuplicateKey(err) && conflictMsg != "":
		log.Debug(op+" conflict", "error", err)
		return apierr.Conflict(conflictMsg, err)
	case store.IsForeignKey(err) && missingMsg != "":
		log.Debug(op+" references missing row", "error", err)
		return apierr.NotFound(missingMsg)
	default:
		return internalErr(log, op, err)
	}
}
