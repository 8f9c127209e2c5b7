package internal

const (
	AppName    = "PulseCheck"
	AppVersion = "1.2.0"
)
