package config

import (
	"safeclinic-web/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
		},
		Backend: Backend{
			BaseURL:          utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5555/api/v1"),
			TimeoutInSeconds: utils.GetEnvInt("BACKEND_TIMEOUT_IN_SECONDS", 15),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Session: Session{
			TTLInHours: utils.GetEnvInt("SESSION_TTL_IN_HOURS", 8),
		},
		Retry: Retry{
			ProfileMaxAttempts:   utils.GetEnvInt("RETRY_PROFILE_MAX_ATTEMPTS", 3),
			ProfileDelayInSecond: utils.GetEnvInt("RETRY_PROFILE_DELAY_IN_SECONDS", 1),
		},
		RateLimit: RateLimit{
			LoginPerMinute: utils.GetEnvInt("RATE_LIMIT_LOGIN_PER_MINUTE", 5),
			LoginBurst:     utils.GetEnvInt("RATE_LIMIT_LOGIN_BURST", 5),
		},
	}
}
