package workers

import (
	"context"
	"time"

	"rapifix_backend/internal/logger"

	"gorm.io/gorm"
)

// MaintenanceWorker выполняет периодическую уборку в БД.
type MaintenanceWorker struct {
	db *gorm.DB
}

func NewMaintenanceWorker(db *gorm.DB) *MaintenanceWorker {
	return &MaintenanceWorker{db: db}
}

// Start запускает фоновые задачи. Останавливается по контексту.
func (w *MaintenanceWorker) Start(ctx context.Context) {
	go w.cleanExpiredRefreshTokens(ctx)
	go w.cleanExpiredResetTokens(ctx)
}

// cleanExpiredRefreshTokens удаляет протухшие refresh-токены
// каждые 6 часов. Живые сессии это не затрагивает.
func (w *MaintenanceWorker) cleanExpiredRefreshTokens(ctx context.Context) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Maintenance worker stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				DELETE FROM refresh_tokens
				WHERE expires_at < NOW()
			`)
			if result.Error != nil {
				logger.WithError(result.Error).Error("Failed to clean expired refresh tokens")
			} else if result.RowsAffected > 0 {
				logger.Info("Cleaned expired refresh tokens", "count", result.RowsAffected)
			}
		}
	}
}

// cleanExpiredResetTokens сбрасывает неиспользованные токены
// восстановления пароля после истечения срока.
func (w *MaintenanceWorker) cleanExpiredResetTokens(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result := w.db.Exec(`
				UPDATE users
				SET reset_token = '', reset_token_exp = NULL
				WHERE reset_token <> '' AND reset_token_exp < NOW()
			`)
			if result.Error != nil {
				logger.WithError(result.Error).Error("Failed to clean expired reset tokens")
			} else if result.RowsAffected > 0 {
				logger.Info("Cleaned expired reset tokens", "count", result.RowsAffected)
			}
		}
	}
}
