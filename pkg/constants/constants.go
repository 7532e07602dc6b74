package constants

const (
	AppName      = "psyassist"
	DisplayName  = "PsyAssist"
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "PSYASSIST"
)
