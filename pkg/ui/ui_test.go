package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/dispatcher/pkg/sim"
)

func TestMissionBanner(t *testing.T) {
	tests := []struct {
		kind sim.MissionKind
		want string
		ok   bool
	}{
		{sim.MissionNone, "", false},
		{sim.CallAmbulance, "MISSION: CALL AMBULANCE (E)!", true},
		{sim.CallTow, "MISSION: CALL TOW TRUCK (D)!", true},
		{sim.CallBus, "MISSION: SEND SCHOOL BUS (S)!", true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			msg, _, ok := MissionBanner(tt.kind.String())
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestButtonContains(t *testing.T) {
	b := Button{X: 100, Y: 50, W: 200, H: 60}
	assert.True(t, b.Contains(100, 50))
	assert.True(t, b.Contains(299, 109))
	assert.False(t, b.Contains(300, 80))
	assert.False(t, b.Contains(150, 110))
	assert.False(t, b.Contains(99, 80))
}

func TestStarPoints(t *testing.T) {
	pts := StarPoints(10, 20, 15, 7)
	assert.InDelta(t, 10, pts[0][0], 1e-9)
	assert.InDelta(t, 5, pts[0][1], 1e-9, "first point straight up")

	for i, p := range pts {
		r := math.Hypot(p[0]-10, p[1]-20)
		want := 15.0
		if i%2 == 1 {
			want = 7
		}
		assert.InDelta(t, want, r, 1e-9, "point %d", i)
	}
}

func TestRulesNameEveryDispatchKey(t *testing.T) {
	keys := map[string]bool{}
	for _, r := range Rules {
		for _, k := range []string{"'E'", "'D'", "'S'", "'A'"} {
			if strings.Contains(r.Text, k) {
				keys[k] = true
			}
		}
	}
	assert.Len(t, keys, 4)
}
