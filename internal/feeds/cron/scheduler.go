package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/transit-design-lab/snd-backend/internal/feeds"
)

type Scheduler struct {
	fetcher    *feeds.Fetcher
	feedID     string
	lodesState string
}

func NewScheduler(fetcher *feeds.Fetcher, feedID, lodesState string) *Scheduler {
	return &Scheduler{fetcher: fetcher, feedID: feedID, lodesState: lodesState}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	//  (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.runNightlyJobs()
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (refreshing feeds nightly at 12:00AM)")
	c.Start()
}

func (s *Scheduler) runNightlyJobs() {
	log.Println("Nightly job started (GTFS + LODES refresh)...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if _, err := s.fetcher.FetchGTFS(ctx, s.feedID, true); err != nil {
		log.Printf("GTFS fetch failed: %v", err)
		return
	}

	year := time.Now().Year() - 2 // LODES publishes with a lag
	if _, err := s.fetcher.FetchLODES(ctx, s.lodesState, year); err != nil {
		log.Printf("LODES fetch failed: %v", err)
		return
	}

	log.Println("Nightly job completed successfully at:", time.Now().Format(time.RFC1123))
}
