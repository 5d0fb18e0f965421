// meta/meta.go
package meta

import (
	"math"
	"time"
)

// Duration is the wall-clock budget of one estimation.
const Duration = 10 * time.Second

// Exploration is the UCB1 exploration constant C.
const Exploration = math.Sqrt2

// StayThreshold is the win probability at or above which the bot stays in the hand.
const StayThreshold = 0.5

// Hands is the number of hands played by a simulation run.
const Hands = 100

// Workers is the number of hands played concurrently by a simulation run.
const Workers = 4

// OutputDir is where simulation records are written.
const OutputDir = "experiments"

// LogLevel is the default zerolog level.
const LogLevel = "info"
