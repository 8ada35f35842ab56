package constvars

// Validation messages mapper, keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":   "é obrigatório",
	"email":      "deve ser um e-mail válido",
	"min":        "deve ter pelo menos %s caracteres",
	"max":        "deve ter no máximo %s caracteres",
	"eqfield":    "deve ser igual a %s",
	"oneof":      "deve ser um de [%s]",
	"datetime":   "deve estar no formato %s",
	"password":   "deve ter pelo menos 8 caracteres, um caractere especial e uma letra maiúscula",
	"cpf":        "deve ser um CPF com 11 dígitos",
	"phone_br":   "deve ser um telefone válido com DDD",
	"crm":        "deve ser um número de CRM válido",
	"work_shift": "deve ser morning, afternoon ou night",
}

// Messages shown to the end user (pt-BR, matching the product language).
const (
	ErrClientCannotProcessRequest = "não foi possível processar sua solicitação"
	ErrClientSomethingWrong       = "ocorreu um erro na aplicação"
	ErrClientServerLongRespond    = "o servidor demorou para responder"
	ErrClientCannotReachServer    = "erro ao conectar com o servidor"
	ErrClientBackendUnavailable   = "o servidor está indisponível no momento, tente novamente"
	ErrClientInvalidCredentials   = "e-mail ou senha inválidos"
	ErrClientSessionExpired       = "sessão expirada, por favor faça login novamente"
	ErrClientNotLoggedIn          = "você não está autenticado, por favor faça login"
	ErrClientTooManyLoginAttempts = "muitas tentativas de login, aguarde um momento"
	ErrClientPasswordsDoNotMatch  = "as senhas não coincidem"

	ErrClientPatientRequired   = "informe o paciente da consulta"
	ErrClientPatientsOnly      = "acesso permitido apenas para pacientes"
	ErrClientDoctorsOnly       = "acesso restrito a médicos"
	ErrClientReceptionistsOnly = "acesso restrito a recepcionistas"
)

// Messages logged for developers (never shown to the user).
const (
	ErrDevCannotParseJSON   = "cannot parse JSON"
	ErrDevCannotMarshalJSON = "cannot marshal JSON"
	ErrDevValidationFailed  = "validation failed"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevReadResponseBody  = "failed to read response body"

	ErrDevBackendRejected        = "backend rejected the request"
	ErrDevBackendServerError     = "backend responded with a server error"
	ErrDevBackendUnauthorized    = "backend rejected the bearer token"
	ErrDevBackendEnvelope        = "backend response does not match the expected envelope for %s"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	ErrDevAuthSigningMethod    = "unexpected signing method"
	ErrDevAuthTokenInvalid     = "invalid session token"
	ErrDevAuthTokenMissing     = "session token missing"
	ErrDevAuthGenerateToken    = "failed to generate session token"
	ErrDevSessionAbsent        = "no session stored for the given session id"
	ErrDevSessionRoleMismatch  = "session role does not match the route's required role"
	ErrDevTooManyLoginAttempts = "login attempt rate limit exceeded"

	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
)
