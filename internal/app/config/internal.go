package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                       string
	Port                      string
	Address                   string
	EndpointPrefix            string
	MaxRequests               int
	MaxTimeRequestsPerSeconds int
	ShutdownTimeoutInSeconds  int
}

type JWT struct {
	Secret        string
	ExpTimeInDays int
}
