package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SESSION_KEY    ContextKey = "session"
	CONTEXT_SESSION_ID_KEY ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "SFCLN_WEB_"
)

const (
	// Fixed field names of the persisted session hash.
	SessionFieldToken        = "token"
	SessionFieldRefreshToken = "refreshToken"
	SessionFieldUser         = "user"

	SessionKeyPrefix = "session:"

	SessionCookieName = "safeclinic_session"
)

const (
	RoutePathLoginPatient      = "/login/paciente"
	RoutePathLoginDoctor       = "/login/medico"
	RoutePathLoginReceptionist = "/login/recepcionista"

	RoutePathPanelPatient      = "/painel/paciente"
	RoutePathPanelDoctor       = "/painel/medico"
	RoutePathPanelReceptionist = "/painel/recepcionista"
)

const (
	CPFDigitsLength = 11
)

const (
	WorkShiftMorning   = "morning"
	WorkShiftAfternoon = "afternoon"
	WorkShiftNight     = "night"
)

const (
	AppointmentTypeOnline   = "online"
	AppointmentTypeInPerson = "in-person"
)
