package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/helpo-services/helpo-backend/internal/app/repository"
	"github.com/helpo-services/helpo-backend/pkg/logger"
	"github.com/helpo-services/helpo-backend/pkg/mailer"
)

const digestRunTimeout = 5 * time.Minute

// LeadDigestScheduler mails each vendor a daily count of the callback
// requests received in the last 24 hours. Vendors with no new leads are
// skipped.
type LeadDigestScheduler struct {
	cron       *cron.Cron
	vendorRepo *repository.VendorRepository
	leadRepo   *repository.LeadRepository
	mailer     *mailer.Mailer
}

func NewLeadDigestScheduler(vendorRepo *repository.VendorRepository, leadRepo *repository.LeadRepository, m *mailer.Mailer) *LeadDigestScheduler {
	return &LeadDigestScheduler{
		cron:       cron.New(),
		vendorRepo: vendorRepo,
		leadRepo:   leadRepo,
		mailer:     m,
	}
}

func (s *LeadDigestScheduler) Start() error {
	// Daily at 8:00 AM server time
	_, err := s.cron.AddFunc("0 8 * * *", s.runOnce)
	if err != nil {
		logger.Error("Failed to add cron job for lead digest", err)
		return err
	}

	s.cron.Start()
	logger.Info("Lead digest scheduler started (daily at 8:00 AM)", nil)

	return nil
}

func (s *LeadDigestScheduler) Stop() {
	logger.Info("Stopping lead digest scheduler...", nil)
	s.cron.Stop()
	logger.Info("Lead digest scheduler stopped", nil)
}

func (s *LeadDigestScheduler) runOnce() {
	logger.Info("Starting scheduled lead digest run", nil)

	ctx, cancel := context.WithTimeout(context.Background(), digestRunTimeout)
	defer cancel()

	vendors, err := s.vendorRepo.ListAll(ctx)
	if err != nil {
		logger.Error("Lead digest: failed to list vendors", err)
		return
	}

	since := time.Now().Add(-24 * time.Hour)
	sent := 0
	for _, v := range vendors {
		if v.Email == "" {
			continue
		}

		count, err := s.leadRepo.CountByVendorSince(ctx, v.Phone, since)
		if err != nil {
			logger.Error("Lead digest: failed to count leads", err, map[string]interface{}{
				"phone": v.Phone,
			})
			continue
		}
		if count == 0 {
			continue
		}

		if err := s.mailer.SendLeadDigest(v.Email, v.BusinessName, count); err != nil {
			logger.Error("Lead digest: failed to send email", err, map[string]interface{}{
				"phone": v.Phone,
			})
			continue
		}
		sent++
	}

	logger.Info("Lead digest run completed", map[string]interface{}{
		"vendors": len(vendors),
		"sent":    sent,
	})
}
