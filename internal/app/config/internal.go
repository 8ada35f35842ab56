package config

type InternalConfig struct {
	App       App
	Backend   Backend
	JWT       JWT
	Session   Session
	Retry     Retry
	RateLimit RateLimit
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
}

// Backend locates the clinic REST API this gateway fronts.
type Backend struct {
	BaseURL          string
	TimeoutInSeconds int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Session struct {
	TTLInHours int
}

// Retry bounds the automatic re-attempts on dashboard profile loads.
type Retry struct {
	ProfileMaxAttempts   int
	ProfileDelayInSecond int
}

type RateLimit struct {
	LoginPerMinute int
	LoginBurst     int
}
