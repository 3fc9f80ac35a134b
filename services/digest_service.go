package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tomatoplanet/leads-go/i18n"
	"github.com/tomatoplanet/leads-go/repositories"
	"github.com/tomatoplanet/leads-go/utils"
)

// DigestService mails the agency a daily summary of new applications.
type DigestService struct {
	repo     repositories.ApplicationRepo
	notifier Notifier
}

func NewDigestService(repos *repositories.Repos, notifier Notifier) *DigestService {
	return &DigestService{repo: repos.Application, notifier: notifier}
}

// SendDailyDigest counts submissions in the 24h before now and mails the
// summary. Days without submissions are skipped.
func (s *DigestService) SendDailyDigest(now time.Time) error {
	since := now.Add(-24 * time.Hour)

	brand, err := s.repo.CountBrand(since)
	if err != nil {
		return fmt.Errorf("count brand applications: %w", err)
	}
	creator, err := s.repo.CountCreator(since)
	if err != nil {
		return fmt.Errorf("count creator applications: %w", err)
	}
	contact, err := s.repo.CountContact(since)
	if err != nil {
		return fmt.Errorf("count contact submissions: %w", err)
	}

	total := brand + creator + contact
	if total == 0 {
		utils.Log.Info("no new applications, skipping digest")
		return nil
	}

	body := fmt.Sprintf(
		"Applications received since %s:\n\nBrand: %d\nCreator: %d\nContact form: %d\nTotal: %d\n",
		since.Format(time.RFC1123), brand, creator, contact, total)

	if err := s.notifier.Notify(i18n.Message(i18n.DefaultLocale, "digest_subject"), body); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	utils.Log.Info("digest sent", zap.Int64("total", total))
	return nil
}
