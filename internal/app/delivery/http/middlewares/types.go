package middlewares

import (
	"safeclinic-web/internal/app/config"
	"safeclinic-web/internal/app/contracts"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	RequestLogger  *logrus.Logger
	RouteGuard     contracts.RouteGuard
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	requestLogger *logrus.Logger,
	routeGuard contracts.RouteGuard,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		RequestLogger:  requestLogger,
		RouteGuard:     routeGuard,
		InternalConfig: internalConfig,
	}
}
