package exceptions

import (
	"fmt"
	"safeclinic-web/internal/pkg/constvars"
)

var (
	// Parse / encode
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInputValidation = func(err error, clientMessage string) *CustomError {
		return WrapWithError(err, KindValidation, constvars.StatusBadRequest, clientMessage, constvars.ErrDevValidationFailed)
	}

	// HTTP plumbing towards the backend
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevCreateHTTPRequest)
	}
	ErrBackendUnreachable = func(err error) *CustomError {
		return WrapWithError(err, KindConnection, constvars.StatusBadGateway, constvars.ErrClientCannotReachServer, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return WrapWithError(err, KindConnection, constvars.StatusBadGateway, constvars.ErrClientCannotReachServer, constvars.ErrDevReadResponseBody)
	}
	ErrBackendServer = func(resource string, statusCode int) *CustomError {
		return WrapWithoutError(KindServer, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf("%s: %s returned %d", constvars.ErrDevBackendServerError, resource, statusCode))
	}
	ErrBackendValidation = func(clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientCannotProcessRequest
		}
		return WrapWithoutError(KindValidation, constvars.StatusBadRequest, clientMessage, constvars.ErrDevBackendRejected)
	}
	ErrAuthorizationRejected = func(resource string) *CustomError {
		return WrapWithoutError(KindAuthorization, constvars.StatusUnauthorized, constvars.ErrClientSessionExpired, fmt.Sprintf("%s on %s", constvars.ErrDevBackendUnauthorized, resource))
	}
	ErrMalformedResponse = func(err error, resource string) *CustomError {
		return WrapWithError(err, KindMalformedResponse, constvars.StatusBadGateway, constvars.ErrClientSomethingWrong, fmt.Sprintf(constvars.ErrDevBackendEnvelope, resource))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, KindConnection, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Authentication / session
	ErrInvalidCredentials = func(clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientInvalidCredentials
		}
		return WrapWithoutError(KindInvalidCredentials, constvars.StatusUnauthorized, clientMessage, constvars.ErrDevInvalidCredentials)
	}
	ErrTooManyLoginAttempts = func() *CustomError {
		return WrapWithoutError(KindRateLimited, constvars.StatusTooManyRequests, constvars.ErrClientTooManyLoginAttempts, constvars.ErrDevTooManyLoginAttempts)
	}
	ErrPasswordsDoNotMatch = func() *CustomError {
		return WrapWithoutError(KindValidation, constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevValidationFailed)
	}
	ErrTokenMissing = func() *CustomError {
		return WrapWithoutError(KindAuthorization, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return WrapWithError(err, KindAuthorization, constvars.StatusUnauthorized, constvars.ErrClientSessionExpired, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return WrapWithError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevAuthGenerateToken)
	}
	ErrSessionAbsent = func() *CustomError {
		return WrapWithoutError(KindAuthorization, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionAbsent)
	}
	ErrRoleMismatch = func(clientMessage string) *CustomError {
		return WrapWithoutError(KindValidation, constvars.StatusForbidden, clientMessage, constvars.ErrDevSessionRoleMismatch)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrong, constvars.ErrDevRedisDeleteData)
	}
)
