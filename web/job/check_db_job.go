package job

import (
	"census-api/database"
	"census-api/logger"
)

// CheckDBJob periodically pings the database so connectivity loss shows up in
// the logs before a request fails on it.
type CheckDBJob struct {
	failures int
}

func NewCheckDBJob() *CheckDBJob {
	return new(CheckDBJob)
}

func (j *CheckDBJob) Run() {
	if err := database.Ping(); err != nil {
		j.failures++
		logger.Warningf("database ping failed (%d in a row): %v", j.failures, err)
		return
	}
	if j.failures > 0 {
		logger.Info("database connectivity restored")
	}
	j.failures = 0
}
