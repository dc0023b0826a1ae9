package rotlog

import (
	"context"
	"time"

	"github.com/kpango/fastime"
)

// FastTimeNow returns a clock refreshed once per second in the background
// until ctx is done. Lines carry one-second resolution, so long-running
// pollers can use it as Options.TimeNow to skip a syscall per line.
func FastTimeNow(ctx context.Context) func() time.Time {
	t := fastime.New().StartTimerD(ctx, time.Second)
	return t.Now
}
