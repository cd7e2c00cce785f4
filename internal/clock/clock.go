package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock abstracts time lookup so quota day-boundary logic is testable.
type Clock interface {
	Now() time.Time
}

var Module = fx.Module("clock",
	fx.Provide(NewSystem),
)

type systemClock struct{}

func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
