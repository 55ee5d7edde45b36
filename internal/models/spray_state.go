package models

// SprayState is the actuator state of the spray system.
type SprayState string

const (
	SprayIdle   SprayState = "IDLE"
	SprayActive SprayState = "ACTIVE"
)
