package utils

import (
	"claimit/config"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[DISASTER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeDisasterScheduler sets up the periodic FEMA refresh. The read
// path never triggers a fetch; this job is the only scheduled writer. A
// failed refresh is logged and swallowed so the next run can try again.
func InitializeDisasterScheduler() {
	logScheduler("Initializing disaster refresh scheduler...")

	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.FemaRefreshCron, func() {
		logScheduler("Running scheduled disaster refresh...")
		result, err := SyncDisasterDeclarations(config.AppConfig.FemaStates)
		if err != nil {
			logScheduler("Scheduled refresh failed: " + err.Error())
			return
		}
		logScheduler(fmt.Sprintf("Scheduled refresh done: inserted=%d updated=%d skipped=%d",
			result.Inserted, result.Updated, result.Skipped))
	})
	if err != nil {
		logScheduler("Invalid cron spec, scheduler disabled: " + err.Error())
		return
	}

	c.Start()
	logScheduler("Disaster refresh scheduler started with spec " + config.AppConfig.FemaRefreshCron)
}
