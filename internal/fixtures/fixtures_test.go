package fixtures_test

import (
	"testing"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d, err := fixtures.Default()
	require.NoError(t, err)

	assert.NotEmpty(t, d.Members)
	assert.NotEmpty(t, d.Projects)
	assert.NotEmpty(t, d.BankAccounts)
	assert.True(t, decimal.NewFromInt(50).Equal(d.MembershipFeeAmount))
	assert.Equal(t, "financeiro@community.com", d.PixKey)
	assert.Equal(t, domain.LanguagePtBR, d.Settings.Language)
	assert.Equal(t, "#ee9b00", d.Settings.ThemeColors.Accent)

	var admins int
	for _, m := range d.Members {
		if m.Role == domain.RoleAdmin {
			admins++
		}
		assert.Len(t, m.Fees, 3)
	}
	assert.Positive(t, admins)

	for _, p := range d.Projects {
		assert.NotNil(t, p.Files)
	}
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	raw := []byte(`
members:
  - {id: 1, name: A, role: MEMBER}
  - {id: 1, name: B, role: MEMBER}
`)
	_, err := fixtures.Parse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id 1")
}

func TestParse_RejectsUnknownRole(t *testing.T) {
	raw := []byte(`
members:
  - {id: 1, name: A, role: Associado}
`)
	_, err := fixtures.Parse(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestParse_Empty(t *testing.T) {
	d, err := fixtures.Parse([]byte("{}"))
	require.NoError(t, err)
	assert.Empty(t, d.Members)
	assert.True(t, d.MembershipFeeAmount.IsZero())
}
