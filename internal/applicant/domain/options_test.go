package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchOptionsFor(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantCount int
		wantFirst string
	}{
		{name: "btech gets engineering branches", level: "btech", wantCount: 11, wantFirst: "computer-engineering"},
		{name: "be shares engineering branches", level: "be", wantCount: 11, wantFirst: "computer-engineering"},
		{name: "diploma branches", level: "diploma", wantCount: 10, wantFirst: "computer-engineering"},
		{name: "iti trades", level: "iti", wantCount: 12, wantFirst: "electrician"},
		{name: "mba specializations", level: "mba", wantCount: 12, wantFirst: "finance"},
		{name: "bachelor courses", level: "bachelor", wantCount: 14, wantFirst: "bsc-computer-science"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := BranchOptionsFor(tt.level)
			require.Len(t, options, tt.wantCount)
			assert.Equal(t, tt.wantFirst, options[0].Value)
			assert.Equal(t, "other", options[len(options)-1].Value)
		})
	}
}

func TestBranchOptionsForLevelsWithoutBranches(t *testing.T) {
	for _, level := range []string{"10th", "12th", "master", "phd", "other", ""} {
		assert.Nil(t, BranchOptionsFor(level), "level %q should have no branches", level)
		assert.False(t, BranchApplies(level))
	}
}

func TestStreamApplies(t *testing.T) {
	assert.True(t, StreamApplies("12th"))
	assert.False(t, StreamApplies("10th"))
	assert.False(t, StreamApplies("btech"))
}

func TestOptionListsEndWithOther(t *testing.T) {
	lists := map[string][]Option{
		"education levels": EducationLevels(),
		"streams":          StreamOptions(),
		"experience":       ExperienceBrackets(),
		"availability":     AvailabilityOptions(),
		"departments":      DepartmentOptions(),
	}
	for name, options := range lists {
		require.NotEmpty(t, options, name)
		assert.Equal(t, "other", options[len(options)-1].Value, name)
	}
}

func TestOptionListsReturnCopies(t *testing.T) {
	first := EducationLevels()
	first[0].Value = "mutated"
	assert.Equal(t, "10th", EducationLevels()[0].Value)
}
