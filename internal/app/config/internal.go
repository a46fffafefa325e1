package config

type InternalConfig struct {
	App     App
	FHIR    FHIR
	Gateway *GatewaySettings
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
}

type FHIR struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
}
