package server

import (
	"fmt"

	"github.com/etnz/chaucha"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultResetPaid is the cron spec of the monthly reset: midnight, first day of the month.
const DefaultResetPaid = "0 0 1 * *"

// ScheduleResetPaid adds to c a job marking every fixed expense of store as
// unpaid, following the cron spec.
func ScheduleResetPaid(c *cron.Cron, store *chaucha.Store, spec string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	_, err := c.AddFunc(spec, func() {
		log.Info("new month, resetting paid fixed expenses")
		if err := store.ResetPaid(); err != nil {
			log.Error("cannot reset paid fixed expenses", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}
