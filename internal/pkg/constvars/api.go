package constvars

// SafeClinic backend endpoints, relative to <API_BASE>/api/v1.
const (
	EndpointAuthLogin = "/auth/login"

	EndpointPatients      = "/patients"
	EndpointDoctors       = "/doctors"
	EndpointReceptionists = "/receptionists"

	EndpointAppointments = "/appointments"
	EndpointSpecialities = "/specialities"
	EndpointSchedules    = "/schedules"

	EndpointNotifications        = "/notifications"
	EndpointNotificationsReadAll = "/notifications/read-all"
)

const (
	ResourcePatient      = "patient"
	ResourceDoctor       = "doctor"
	ResourceReceptionist = "receptionist"
	ResourceAppointment  = "appointment"
	ResourceSpeciality   = "speciality"
	ResourceSchedule     = "schedule"
	ResourceNotification = "notification"
	ResourceSession      = "session"
	ResourceLogin        = "login"
)
