package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single", "go", []string{"go"}},
		{"trims", " go , sql,docker ", []string{"go", "sql", "docker"}},
		{"drops empty", "go,, ,sql", []string{"go", "sql"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkills(tt.raw))
		})
	}
}

func TestProfile_RemoveMiddleExperience(t *testing.T) {
	p := New(uuid.New(), time.Now())
	first := p.AddExperience(Experience{Title: "first", Company: "a"})
	second := p.AddExperience(Experience{Title: "second", Company: "b"})
	third := p.AddExperience(Experience{Title: "third", Company: "c"})

	require.Equal(t, third.ID, p.Experience[0].ID, "newest entry first")

	require.NoError(t, p.RemoveExperience(second.ID))

	require.Len(t, p.Experience, 2)
	assert.Equal(t, third.ID, p.Experience[0].ID)
	assert.Equal(t, first.ID, p.Experience[1].ID)
}

func TestProfile_RemoveUnknownEntry(t *testing.T) {
	p := New(uuid.New(), time.Now())
	p.AddExperience(Experience{Title: "only", Company: "a"})
	p.AddEducation(Education{School: "uni"})

	assert.ErrorIs(t, p.RemoveExperience(uuid.New()), ErrExperienceNotFound)
	assert.ErrorIs(t, p.RemoveEducation(uuid.New()), ErrEducationNotFound)
	assert.Len(t, p.Experience, 1)
	assert.Len(t, p.Education, 1)
}

func TestProfile_ApplyKeepsOmittedFields(t *testing.T) {
	p := New(uuid.New(), time.Now())
	company := "Acme"
	p.Apply(Fields{Status: "Developer", Skills: []string{"go"}, Company: &company}, time.Now())

	p.Apply(Fields{Status: "Senior", Skills: []string{"go", "sql"}}, time.Now())

	assert.Equal(t, "Senior", p.Status)
	assert.Equal(t, []string{"go", "sql"}, p.Skills)
	assert.Equal(t, "Acme", p.Company)
}
