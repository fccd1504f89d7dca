package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lcflow/pkg/domain"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, domain.CaseRoles(), cfg.TerminateRoles)
	assert.Equal(t, 2*time.Second, cfg.SubmitWait)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LCFLOW_TERMINATE_ROLES", "issuing_bank, applicant")
	t.Setenv("LCFLOW_SUBMIT_WAIT", "250ms")

	cfg := FromEnv()
	assert.Equal(t, []domain.Role{domain.RoleIssuingBank, domain.RoleApplicant}, cfg.TerminateRoles)
	assert.Equal(t, 250*time.Millisecond, cfg.SubmitWait)
}

func TestFromEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("LCFLOW_TERMINATE_ROLES", "notary,carrier")
	t.Setenv("LCFLOW_SUBMIT_WAIT", "soon")

	cfg := FromEnv()
	assert.Equal(t, domain.CaseRoles(), cfg.TerminateRoles, "carrier and unknown roles cannot terminate")
	assert.Equal(t, 2*time.Second, cfg.SubmitWait)
}
