package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ForumApp/community-service/internal/repository"
)

// suppressPersistence drops a failed-flush error after logging it: the
// in-memory mutation stands and the caller still receives the entity, so a
// flush failure must not surface as an operation failure.
func suppressPersistence(logger *zap.Logger, op string, err error) error {
	if err == nil || !errors.Is(err, repository.ErrPersistence) {
		return err
	}

	logger.Sugar().Errorf("%s applied in memory but was not persisted: %s", op, err.Error())

	return nil
}
