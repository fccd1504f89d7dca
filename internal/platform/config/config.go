package config

import (
	"os"
	"time"

	"lcflow/pkg/domain"
	platformstrings "lcflow/pkg/platform/strings"
)

// Core captures the configurable policy of the lifecycle core.
type Core struct {
	// TerminateRoles is the set of case roles allowed to cancel a case.
	// The transition table leaves terminate authorization open, so it is
	// deployment policy.
	TerminateRoles []domain.Role

	// SubmitWait bounds how long a submission waits on a busy case before
	// the caller gets an explicit retry signal.
	SubmitWait time.Duration
}

// FromEnv builds the core config from environment variables so wiring code
// stays lean. Malformed values fall back to defaults; this never fails.
func FromEnv() Core {
	cfg := Core{
		TerminateRoles: domain.CaseRoles(),
		SubmitWait:     2 * time.Second,
	}

	if raw := os.Getenv("LCFLOW_TERMINATE_ROLES"); raw != "" {
		var roles []domain.Role
		for _, part := range platformstrings.SplitList(raw, ",") {
			role, err := domain.ParseRole(part)
			if err != nil || role == domain.RoleCarrier {
				continue
			}
			roles = append(roles, role)
		}
		if len(roles) > 0 {
			cfg.TerminateRoles = roles
		}
	}

	if raw := os.Getenv("LCFLOW_SUBMIT_WAIT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.SubmitWait = d
		}
	}

	return cfg
}
