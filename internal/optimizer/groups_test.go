package optimizer

import (
	"fmt"
	"testing"

	"github.com/jonathan/load-organizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleGroups_Empty(t *testing.T) {
	groups := AssembleGroups(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestAssembleGroups_SplitsOnTypeAndAltitude(t *testing.T) {
	ordered := []types.Jumper{
		jumper("t1", types.JumpTypeTandem, 14000),
		jumper("t2", types.JumpTypeTandem, 14000),
		jumper("t3", types.JumpTypeTandem, 12000),
		jumper("a1", types.JumpTypeAFF, 12000),
		jumper("f1", types.JumpTypeFunJump, 12000),
	}

	groups := AssembleGroups(ordered)
	require.Len(t, groups, 4)

	assert.Equal(t, "tandem-14000", groups[0].GroupType)
	assert.Equal(t, 14000, groups[0].ExitAltitude)
	assert.Equal(t, []string{"t1", "t2"}, ids(groups[0].Jumpers))
	assert.Equal(t, 70, groups[0].EstimatedTime)

	assert.Equal(t, "tandem-12000", groups[1].GroupType)
	assert.Equal(t, "aff-12000", groups[2].GroupType)
	assert.Equal(t, "fun_jump-12000", groups[3].GroupType)
	assert.Equal(t, 60, groups[3].EstimatedTime)
}

func TestAssembleGroups_CapsGroupSize(t *testing.T) {
	ordered := make([]types.Jumper, 0, 19)
	for i := 0; i < 19; i++ {
		ordered = append(ordered, jumper(fmt.Sprintf("f%d", i), types.JumpTypeFunJump, 13000))
	}

	groups := AssembleGroups(ordered)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Jumpers, MaxGroupSize)
	assert.Len(t, groups[1].Jumpers, MaxGroupSize)
	assert.Len(t, groups[2].Jumpers, 3)
	assert.Equal(t, 130, groups[0].EstimatedTime)
	assert.Equal(t, 80, groups[2].EstimatedTime)

	for _, g := range groups {
		assert.Equal(t, "fun_jump-13000", g.GroupType)
	}
}

func TestAssembleGroups_ConcatenationReproducesOrder(t *testing.T) {
	ordered := SortExitOrder(sampleRoster())
	groups := AssembleGroups(ordered)

	var flattened []types.Jumper
	for _, g := range groups {
		require.NotEmpty(t, g.Jumpers)
		assert.LessOrEqual(t, len(g.Jumpers), MaxGroupSize)
		flattened = append(flattened, g.Jumpers...)
	}
	assert.Equal(t, ordered, flattened)
}

func TestTiming_GroupTime(t *testing.T) {
	assert.Equal(t, 60, GroupTime(1))
	assert.Equal(t, 130, GroupTime(8))
	assert.Equal(t, 0, GroupTime(0))
}

func TestTiming_TotalTime(t *testing.T) {
	tests := []struct {
		name     string
		sizes    []int
		expected int
	}{
		{"no groups", nil, 1200},
		{"one group", []int{1}, 1200 + 60},
		{"two groups", []int{2, 3}, 1200 + 70 + 80 + 30},
		{"three groups", []int{8, 8, 1}, 1200 + 130 + 130 + 60 + 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := make([]types.JumpGroup, len(tt.sizes))
			for i, n := range tt.sizes {
				groups[i] = types.JumpGroup{EstimatedTime: GroupTime(n)}
			}
			assert.Equal(t, tt.expected, TotalTime(groups))
		})
	}
}
