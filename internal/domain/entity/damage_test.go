package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDamageSource(t *testing.T) {
	for _, src := range []DamageSource{DamageLight, DamageSkill, DamageHeavy} {
		parsed, err := ParseDamageSource(src.String())
		require.NoError(t, err)
		assert.Equal(t, src, parsed)
	}

	_, err := ParseDamageSource("laser")
	assert.Error(t, err)
}

func TestDamageTable_Amount(t *testing.T) {
	table := DefaultDamageTable()

	assert.Equal(t, 2, table.Amount(DamageLight))
	assert.Equal(t, 5, table.Amount(DamageSkill))
	assert.Equal(t, 8, table.Amount(DamageHeavy))

	// Tables are data: overriding a value changes the outcome
	table[DamageLight] = 3
	assert.Equal(t, 3, table.Amount(DamageLight))

	assert.Equal(t, 0, DamageTable{}.Amount(DamageSkill))
}

func TestTagTable_Classify(t *testing.T) {
	tags := DefaultTagTable()

	tests := []struct {
		tag    string
		kind   OverlapKind
		source DamageSource
	}{
		{"Sword", OverlapDamage, DamageLight},
		{"Skill Q", OverlapDamage, DamageSkill},
		{"Skill E", OverlapDamage, DamageSkill},
		{"Hammer", OverlapDamage, DamageHeavy},
		{"Player", OverlapPlayerContact, 0},
		{"Wall", OverlapIgnored, 0},
		{"", OverlapIgnored, 0},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			kind, src := tags.Classify(tt.tag)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.source, src)
		})
	}
}
