// services/scheduler.go
package services

import (
	"log"
	"time"

	"study-dashboard-system/models"

	"github.com/go-co-op/gocron/v2"
)

// StartTokenCleanupScheduler purges expired refresh tokens so logged-out and
// lapsed sessions cannot be resumed.
func (s *AuthService) StartTokenCleanupScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every hour: drop refresh tokens past their expiry
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			res := s.DB.Where("expires_at <= ?", time.Now()).Delete(&models.RefreshToken{})
			if res.Error != nil {
				log.Printf("[Scheduler] token cleanup error: %v", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				log.Printf("[Scheduler] purged %d expired refresh tokens", res.RowsAffected)
			}
		}),
	)
}
