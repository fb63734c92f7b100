package service

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chrisarpong/TEIN-Registration/internals/features/notifications/model"
)

const maxAttempts = 5

// OutboxWorker drains the email outbox in the background. Delivery failure
// never reaches a request: rows retry with backoff and park as failed after
// maxAttempts.
type OutboxWorker struct {
	db           *gorm.DB
	sender       Sender
	pollInterval time.Duration
	batchSize    int
}

func NewOutboxWorker(db *gorm.DB, sender Sender) *OutboxWorker {
	return &OutboxWorker{
		db:           db,
		sender:       sender,
		pollInterval: 15 * time.Second,
		batchSize:    10,
	}
}

// Start runs until the context is cancelled.
func (w *OutboxWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	log.Printf("[OUTBOX] worker started (interval=%s batch=%d)", w.pollInterval, w.batchSize)

	for {
		select {
		case <-ctx.Done():
			log.Println("[OUTBOX] worker stopped")
			return
		case <-ticker.C:
			w.processBatch()
		}
	}
}

func (w *OutboxWorker) processBatch() {
	now := time.Now()

	var entries []model.EmailOutboxModel
	// Claim a batch with SKIP LOCKED so a second instance never double-sends.
	err := w.db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("outbox_status = ?", model.OutboxStatusPending).
			Where("(outbox_next_retry_at IS NULL OR outbox_next_retry_at <= ?)", now).
			Order("outbox_created_at ASC").
			Limit(w.batchSize).
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Find(&entries).Error
	})
	if err != nil {
		log.Printf("[OUTBOX] fetch pending: %v", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	for i := range entries {
		w.deliver(&entries[i])
	}
}

func (w *OutboxWorker) deliver(entry *model.EmailOutboxModel) {
	err := w.sender.Send(entry.OutboxRecipient, entry.OutboxSubject, entry.OutboxBody)
	entry.OutboxAttempts++

	if err == nil {
		entry.OutboxStatus = model.OutboxStatusSent
		entry.OutboxNextRetryAt = nil
		if saveErr := w.db.Save(entry).Error; saveErr != nil {
			log.Printf("[OUTBOX] mark sent %s: %v", entry.OutboxID, saveErr)
		}
		return
	}

	log.Printf("[OUTBOX] send %s attempt %d: %v", entry.OutboxID, entry.OutboxAttempts, err)

	if entry.OutboxAttempts >= maxAttempts {
		entry.OutboxStatus = model.OutboxStatusFailed
		entry.OutboxNextRetryAt = nil
	} else {
		// 1m, 2m, 4m, 8m
		backoff := time.Duration(1<<(entry.OutboxAttempts-1)) * time.Minute
		next := time.Now().Add(backoff)
		entry.OutboxNextRetryAt = &next
	}
	if saveErr := w.db.Save(entry).Error; saveErr != nil {
		log.Printf("[OUTBOX] mark retry %s: %v", entry.OutboxID, saveErr)
	}
}
