package utils

const (
	DefaultFPS     = 60
	DefaultAddress = ":3001"

	SideLeft  = "left"
	SideRight = "right"

	//INFO Spectators receive updates but cannot move a paddle
	SideSpectator = "spectator"

	ControllerRandom   = "random"
	ControllerTracking = "tracking"
)

const (
	EnvPrefix       = "PONGAI_"
	EnvAddress      = EnvPrefix + "ADDR"
	EnvConfigPath   = EnvPrefix + "CONFIG"
	EnvController   = EnvPrefix + "CONTROLLER"
	EnvWinningScore = EnvPrefix + "WINNING_SCORE"
)
