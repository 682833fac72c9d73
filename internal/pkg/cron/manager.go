package cron

import (
	"Vynce/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine              *cron.Cron
	interestSnapshotJob *job.InterestSnapshotJob
}

func NewCronManager(interestSnapshotJob *job.InterestSnapshotJob) *Manager {
	return &Manager{
		engine:              cron.New(cron.WithSeconds()),
		interestSnapshotJob: interestSnapshotJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.interestSnapshotJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
