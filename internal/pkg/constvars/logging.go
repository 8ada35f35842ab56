package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingSessionIDKey     = "session_id"
	LoggingUserIDKey        = "user_id"
	LoggingRoleKey          = "role"
	LoggingRequiredRoleKey  = "required_role"
	LoggingGuardStateKey    = "guard_state"
	LoggingEndpointKey      = "endpoint"
	LoggingStatusCodeKey    = "status_code"
	LoggingAttemptKey       = "attempt"
	LoggingPatientIDKey     = "patient_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingCountKey         = "count"
)
