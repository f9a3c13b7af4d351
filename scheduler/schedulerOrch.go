package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"parlayLeague/models"
	"parlayLeague/scheduler/scheduler_jobs"
	"parlayLeague/services/oddsService"
)

// SetupCron registers the background sweeps and starts the cron runner.
func SetupCron(db *gorm.DB, provider oddsService.Provider) *cron.Cron {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 */5 * * * *", func() {
		// Every 5 minutes: lock markets for games that have started.
		if err := scheduler_jobs.LockStartedGames(db); err != nil {
			recordCronError(db, "lock_sweep", err)
		}
	})

	_, err = cronService.AddFunc("0 0 */1 * * *", func() {
		// Every hour: pull results, settle wagers, finalize matchups.
		if err := scheduler_jobs.SettleFinishedGames(db, provider); err != nil {
			recordCronError(db, "settle_sweep", err)
		}
	})

	_, err = cronService.AddFunc("0 0 9 * * *", func() {
		// At 9am every day: refresh the odds board for the current week.
		if err := scheduler_jobs.RefreshOddsBoard(db, provider); err != nil {
			recordCronError(db, "odds_refresh", err)
		}
	})

	if err != nil {
		recordCronError(db, "cron_setup", err)
	}

	cronService.Start()
	return cronService
}

func recordCronError(db *gorm.DB, source string, err error) {
	errLog := models.ErrorLog{
		Source:  source,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}
