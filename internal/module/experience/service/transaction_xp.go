package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"financequest/internal/module/experience/domain"
)

const (
	transactionXP      = 3
	dailyTransactionCap = 5
)

// AwardTransactionXP is called after every successful transaction create.
// It never surfaces an error — failures are logged and swallowed so the
// underlying transaction write always succeeds.
func (e *engine) AwardTransactionXP(ctx context.Context, userID uuid.UUID) {
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profiles := e.profiles(tx)
		events := e.eventRepoFor(tx)

		profile, err := profiles.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		today := profile.TodayIn()
		if profile.LastTransactionDate == nil || !profile.LastTransactionDate.Equal(today) {
			profile.TransactionsTodayCount = 0
			profile.LastTransactionDate = &today
		}

		if profile.TransactionsTodayCount >= dailyTransactionCap {
			return nil
		}

		event := &domain.XPEvent{
			ID:          uuid.New(),
			UserID:      userID,
			XPAmount:    transactionXP,
			EventType:   domain.EventTransaction,
			Description: "Logged transaction",
		}
		if err := events.Create(ctx, event); err != nil {
			return err
		}

		profile.CurrentXP += transactionXP
		profile.TotalXPEarned += transactionXP
		profile.TransactionsTodayCount++
		profile.CurrentLevel = domain.Level(profile.CurrentXP)

		return profiles.Update(ctx, profile)
	})
	if err != nil {
		e.logger.Warn("award_transaction_xp failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}
