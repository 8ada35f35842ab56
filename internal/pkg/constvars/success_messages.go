package constvars

const (
	LoginSuccess  = "login realizado com sucesso"
	LogoutSuccess = "logout realizado com sucesso"

	PatientRegisteredSuccess      = "paciente registrado com sucesso"
	DoctorRegisteredSuccess       = "médico registrado com sucesso"
	ReceptionistRegisteredSuccess = "recepcionista registrado com sucesso"

	ProfileFetchedSuccess       = "perfil carregado com sucesso"
	ProfileUpdatedSuccess       = "perfil atualizado com sucesso"
	AppointmentCreatedSuccess   = "consulta agendada com sucesso"
	AppointmentUpdatedSuccess   = "consulta atualizada com sucesso"
	AppointmentCancelledSuccess = "consulta cancelada com sucesso"
	DashboardLoadedSuccess      = "painel carregado com sucesso"
	ScheduleCreatedSuccess      = "agenda criada com sucesso"
	ScheduleBlockedSuccess      = "agenda bloqueada com sucesso"
	NotificationReadSuccess     = "notificação marcada como lida"
	NotificationsAllReadSuccess = "notificações marcadas como lidas"
	DataFetchedSuccess          = "dados carregados com sucesso"
)
