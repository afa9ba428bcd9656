package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenewalLevel(t *testing.T) {
	assert.Equal(t, RenewalLevelExpiring, RenewalLevel(-10))
	assert.Equal(t, RenewalLevelExpiring, RenewalLevel(0))
	assert.Equal(t, RenewalLevelExpiring, RenewalLevel(6))
	assert.Equal(t, RenewalLevelSoon, RenewalLevel(7))
	assert.Equal(t, RenewalLevelSoon, RenewalLevel(29))
	assert.Equal(t, RenewalLevelOK, RenewalLevel(30))
	assert.Equal(t, RenewalLevelOK, RenewalLevel(NoExpirationDays))
}

func TestLegacyClient_ServiceNames(t *testing.T) {
	both := &LegacyClient{Services: []string{"TAM", "Suporte"}, ServiceName: "Onboarding"}
	assert.Equal(t, []string{"TAM", "Suporte"}, both.ServiceNames())

	single := &LegacyClient{ServiceName: "Onboarding"}
	assert.Equal(t, []string{"Onboarding"}, single.ServiceNames())

	empty := &LegacyClient{}
	assert.Nil(t, empty.ServiceNames())
}

func TestLegacyClient_Migratable(t *testing.T) {
	assert.True(t, (&LegacyClient{Services: []string{"TAM"}}).Migratable())
	assert.True(t, (&LegacyClient{ContractStartDate: "2023-01-01"}).Migratable())
	assert.False(t, (&LegacyClient{ServiceName: "Onboarding"}).Migratable())
	assert.False(t, (&LegacyClient{}).Migratable())
}

func TestContract_Transitions(t *testing.T) {
	assert.True(t, (&Contract{Status: StatusActive}).MayCancel())
	assert.True(t, (&Contract{Status: StatusInactive}).MayCancel())
	assert.False(t, (&Contract{Status: StatusCancelled}).MayCancel())

	assert.True(t, (&Contract{Status: StatusInactive}).MayReactivate())
	assert.False(t, (&Contract{Status: StatusActive}).MayReactivate())
	assert.False(t, (&Contract{Status: StatusCancelled}).MayReactivate())
}
