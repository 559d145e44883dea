package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileRef_AgreesWithRole(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		role Role
		kind ProfileKind
	}{
		{role: RoleAdmin, kind: ProfileKindAdmin},
		{role: RoleTeacher, kind: ProfileKindTeacher},
		{role: RoleStudent, kind: ProfileKindStudent},
		{role: RoleWorkplace, kind: ProfileKindWorkplace},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			ref, err := NewProfileRef(tt.role, id)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, ref.Kind)
			assert.True(t, ref.IsLinked())
			assert.True(t, ref.AgreesWith(tt.role))
		})
	}
}

func TestNewProfileRef_Rejects(t *testing.T) {
	_, err := NewProfileRef(Role("ghost"), uuid.New())
	assert.Error(t, err)

	_, err = NewProfileRef(RoleTeacher, uuid.Nil)
	assert.Error(t, err)
}

func TestProfileRef_ZeroValueIsUnlinked(t *testing.T) {
	var ref ProfileRef
	assert.False(t, ref.IsLinked())
	assert.False(t, ref.AgreesWith(RoleTeacher))
}

func TestStudentLevel_AllowsYear(t *testing.T) {
	assert.True(t, LevelVocational.AllowsYear(1))
	assert.True(t, LevelVocational.AllowsYear(3))
	assert.False(t, LevelVocational.AllowsYear(4))

	assert.True(t, LevelHighVocational.AllowsYear(2))
	assert.False(t, LevelHighVocational.AllowsYear(3))
	assert.False(t, LevelHighVocational.AllowsYear(0))

	assert.False(t, StudentLevel("diploma").AllowsYear(1))
}
