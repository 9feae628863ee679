package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/yipfram/DidactypoBack/backend/services"
)

// Start schedules the weekly challenge rotation, Mondays at 04:00
// server time, and returns the running cron so main can stop it on
// shutdown.
func Start(weekly *services.WeeklyChallengeService, logger *log.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("0 4 * * 1", func() {
		if err := weekly.Rotate(); err != nil {
			logger.Printf("erreur lors de la mise à jour du défi : %v", err)
			return
		}
		logger.Println("défi de la semaine mis à jour")
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
