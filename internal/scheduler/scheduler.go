// Package scheduler restores plan allowances on a cron schedule. Gold
// never resets; its unlimited sentinel is permanent.
package scheduler

import (
	"context"
	"log"

	dom "github.com/Akanksha212004/twiller-2.0/internal/domain"
	"github.com/Akanksha212004/twiller-2.0/internal/repo"

	"github.com/robfig/cron/v3"
)

// resettablePlans are the tiers whose quota is a real counter.
var resettablePlans = []dom.Plan{dom.PlanFree, dom.PlanBronze, dom.PlanSilver}

// QuotaScheduler runs the periodic quota reset.
type QuotaScheduler struct {
	cron  *cron.Cron
	users repo.UserRepo
	spec  string
}

// New builds a scheduler with the given cron spec (e.g. "@monthly").
func New(users repo.UserRepo, spec string) *QuotaScheduler {
	return &QuotaScheduler{cron: cron.New(), users: users, spec: spec}
}

// Start registers the reset job and starts the cron loop.
func (s *QuotaScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		log.Printf("[scheduler] resetting tweet quotas (schedule: %s)...", s.spec)
		s.ResetQuotas(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Quota scheduler started with schedule: %s", s.spec)
	return nil
}

// Stop halts the cron loop.
func (s *QuotaScheduler) Stop() {
	s.cron.Stop()
}

// ResetQuotas restores every counted plan to its allowance. Failures
// are logged per plan; one tier failing does not stop the others.
func (s *QuotaScheduler) ResetQuotas(ctx context.Context) {
	for _, plan := range resettablePlans {
		n, err := s.users.ResetQuota(ctx, plan, plan.Quota())
		if err != nil {
			log.Printf("[scheduler] reset %s quotas: %v", plan, err)
			continue
		}
		log.Printf("[scheduler] reset %d %s accounts to %d tweets", n, plan, plan.Quota())
	}
}
