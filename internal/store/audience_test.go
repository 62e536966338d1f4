package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltline/internal/domain"
)

func TestAudienceStore_DefaultsToParticulier(t *testing.T) {
	s := NewAudienceStore()
	assert.Equal(t, domain.AudienceParticulier, s.Current())
}

func TestAudienceStore_Set(t *testing.T) {
	s := NewAudienceStore()

	require.NoError(t, s.Set(domain.AudiencePro))
	assert.Equal(t, domain.AudiencePro, s.Current())

	assert.Error(t, s.Set(domain.AudienceBoth))
	assert.Error(t, s.Set(domain.Audience("staff")))
	assert.Equal(t, domain.AudiencePro, s.Current())
}

func TestAudienceStore_SubscribersSeeChanges(t *testing.T) {
	s := NewAudienceStore()

	var seen []domain.Audience
	unsubscribe := s.Subscribe(func(a domain.Audience) { seen = append(seen, a) })

	require.NoError(t, s.Set(domain.AudiencePro))
	require.NoError(t, s.Set(domain.AudienceParticulier))
	assert.Equal(t, []domain.Audience{domain.AudiencePro, domain.AudienceParticulier}, seen)

	unsubscribe()
	require.NoError(t, s.Set(domain.AudiencePro))
	assert.Len(t, seen, 2)
}
