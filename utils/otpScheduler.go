package utils

import (
	"eduak/logger"
	"eduak/models"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InitializeOTPCleanupScheduler purges used and expired OTP rows on spec.
func InitializeOTPCleanupScheduler(db *gorm.DB, spec string) (*cron.Cron, error) {
	logger.Log.Info("[OTP-SCHEDULER] Initializing OTP cleanup scheduler...", zap.String("spec", spec))

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		removed, err := PurgeStaleOTPs(db, time.Now())
		if err != nil {
			logger.Log.Error("[OTP-SCHEDULER] cleanup failed", zap.Error(err))
			return
		}
		logger.Log.Info("[OTP-SCHEDULER] cleanup finished", zap.Int64("removed", removed))
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

// PurgeStaleOTPs hard-deletes codes that are used or expired at now.
func PurgeStaleOTPs(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Unscoped().
		Where("is_used = ? OR expires_at <= ?", true, now).
		Delete(&models.OTP{})
	return res.RowsAffected, res.Error
}
