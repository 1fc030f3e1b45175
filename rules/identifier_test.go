package rules_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vouch-dev/vouch/rules"
)

func TestNonNilID(t *testing.T) {
	id := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")
	assert.Empty(t, rules.NonNilID()(id, "TenantID"))
	assert.Equal(t, "TenantID must not be the nil UUID", rules.NonNilID()(uuid.Nil, "TenantID"))
}

func TestNilID(t *testing.T) {
	id := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")
	assert.Empty(t, rules.NilID()(uuid.Nil, "TenantID"))
	assert.NotEmpty(t, rules.NilID()(id, "TenantID"))
}

func TestWellFormedID(t *testing.T) {
	r := rules.WellFormedID()
	assert.Empty(t, r("a3bb189e-8bf9-3888-9912-ace4e6543002", "ID"))

	for _, bad := range []string{
		"",
		"not-a-uuid",
		"a3bb189e8bf938889912ace4e6543002",      // no hyphens
		"a3bb189e-8bf9-3888-9912-ace4e654300",   // too short
		"a3bb189e-8bf9-3888-9912-ace4e65430022", // too long
		"g3bb189e-8bf9-3888-9912-ace4e6543002",  // bad hex
		"a3bb189e_8bf9-3888-9912-ace4e6543002",  // bad separator
	} {
		assert.Equal(t, "ID must be a valid UUID", r(bad, "ID"), "input %q", bad)
	}
}
