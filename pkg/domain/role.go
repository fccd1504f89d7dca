package domain

import (
	"strings"

	dErrors "lcflow/pkg/domain-errors"
)

// Role names the position a party holds on a letter-of-credit case. The four
// case roles are fixed at application time; RoleCarrier exists only as a
// document issuer and never appears on a case.
type Role string

const (
	RoleApplicant    Role = "applicant"
	RoleBeneficiary  Role = "beneficiary"
	RoleIssuingBank  Role = "issuing_bank"
	RoleAdvisingBank Role = "advising_bank"
	RoleCarrier      Role = "carrier"
)

var validRoles = map[Role]bool{
	RoleApplicant:    true,
	RoleBeneficiary:  true,
	RoleIssuingBank:  true,
	RoleAdvisingBank: true,
	RoleCarrier:      true,
}

// CaseRoles lists the four roles fixed on every case, in the order the
// parties appear on the application.
func CaseRoles() []Role {
	return []Role{RoleApplicant, RoleBeneficiary, RoleIssuingBank, RoleAdvisingBank}
}

// ParseRole constructs a Role from external input.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role cannot be empty")
	}
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !validRoles[r] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unsupported role %q", s)
	}
	return r, nil
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) String() string {
	return string(r)
}
