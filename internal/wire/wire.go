package wire

import (
	"Vynce/internal/api"
	"Vynce/internal/api/config"
	"Vynce/internal/api/handler"
	"Vynce/internal/feed"
	"Vynce/internal/job"
	"Vynce/internal/pkg/cron"
	"Vynce/internal/repository"
	"Vynce/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer holds the top-level components the app runs.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	dropRepo := repository.NewDropRepository(db)
	actionRepo := repository.NewDropActionRepository(db)
	followRepo := repository.NewUserFollowRepo(db)
	interestRepo := repository.NewUserInterestRepository(db)

	profileStore := repository.NewInterestProfileStore(interestRepo)
	tracker := feed.NewTracker(profileStore, dropRepo)
	controls := feed.NewControls(dropRepo, feed.ControlsConfig{
		MaxPerHour: cfg.Feed.MaxDropsPerHour,
		MaxPerDay:  cfg.Feed.MaxDropsPerDay,
	})

	cacheTTL := time.Duration(cfg.Feed.CacheMinutes) * time.Minute
	feedCache := feed.NewMemoryCache(cacheTTL)

	dropService := service.NewDropService(dropRepo, controls)
	actionService := service.NewDropActionService(actionRepo, dropRepo, tracker)
	followService := service.NewUserFollowService(followRepo, tracker)
	feedService := service.NewFeedService(dropRepo, tracker, feedCache, service.FeedServiceConfig{
		CandidateWindow: time.Duration(cfg.Feed.CandidateWindowHours) * time.Hour,
		CandidateLimit:  cfg.Feed.CandidateLimit,
	})

	handlers := &api.HandlersGroup{
		DropHandler:       handler.NewDropHandler(dropService, feedService),
		DropActionHandler: handler.NewDropActionHandler(actionService),
		UserFollowHandler: handler.NewUserFollowHandler(followService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewInterestSnapshotJob(interestRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
