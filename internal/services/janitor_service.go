package services

import (
	"MovingList/internal/config"
	"MovingList/internal/metrics"
	"MovingList/internal/repository"
	"context"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"sync"
	"time"
)

// Janitor hard-deletes boxes and items that have been soft-deleted for
// longer than the configured retention.
type Janitor struct {
	itemRepo      repository.ItemRepository
	boxRepo       repository.BoxRepository
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
	now           func() time.Time
}

func NewJanitorService(
	itemRepo repository.ItemRepository,
	boxRepo repository.BoxRepository,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		itemRepo:      itemRepo,
		boxRepo:       boxRepo,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
		now:           time.Now,
	}
}

// ForceStartCleanCycle runs one purge in the background unless one is running.
func (j *Janitor) ForceStartCleanCycle() error {
	if !j.tryStart() {
		return ErrCleaningRunning
	}

	go func() {
		defer j.finish()
		j.startClean(context.Background(), true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() error {
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	j.logService.Log.WithField("cron", cronSchedule).Debug("starting cleaning job")

	_, err := j.cron.AddFunc(cronSchedule, func() {
		if !j.tryStart() {
			return
		}
		defer j.finish()
		j.startClean(context.Background(), false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return err
	}
	j.cron.Start()
	return nil
}

func (j *Janitor) StopClean() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) tryStart() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) finish() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}

// startClean purges items first so the box purge never meets live children.
func (j *Janitor) startClean(ctx context.Context, forced bool) (purgedItems, purgedBoxes int) {
	cutoff := j.now().Add(-j.configuration.Server.CleanConfig.Retention)
	logFields := logrus.Fields{"job": "clean", "forced": forced, "cutoff": cutoff}

	items, err := j.itemRepo.FindDeleted(ctx, cutoff)
	if err != nil {
		j.logService.Log.WithFields(logFields).WithError(err).Error("Failed to find deleted items")
		return 0, 0
	}
	itemIDs := make([]uint, 0, len(items))
	for i := range items {
		itemIDs = append(itemIDs, items[i].ID)
	}
	if err := j.itemRepo.HardDelete(ctx, itemIDs); err != nil {
		j.logService.Log.WithFields(logFields).WithError(err).Error("Failed to purge items")
		return 0, 0
	}
	metrics.JanitorPurged.WithLabelValues("item").Add(float64(len(itemIDs)))

	boxes, err := j.boxRepo.FindDeleted(ctx, cutoff)
	if err != nil {
		j.logService.Log.WithFields(logFields).WithError(err).Error("Failed to find deleted boxes")
		return len(itemIDs), 0
	}
	boxIDs := make([]uint, 0, len(boxes))
	for i := range boxes {
		boxIDs = append(boxIDs, boxes[i].ID)
	}
	if err := j.boxRepo.HardDelete(ctx, boxIDs); err != nil {
		j.logService.Log.WithFields(logFields).WithError(err).Error("Failed to purge boxes")
		return len(itemIDs), 0
	}
	metrics.JanitorPurged.WithLabelValues("box").Add(float64(len(boxIDs)))

	if len(itemIDs) > 0 || len(boxIDs) > 0 {
		j.logService.Log.WithFields(logFields).WithFields(logrus.Fields{
			"items": len(itemIDs),
			"boxes": len(boxIDs),
		}).Info("cleaning job finished")
	}
	return len(itemIDs), len(boxIDs)
}
