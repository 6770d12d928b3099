package pose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandmarkName_String(t *testing.T) {
	assert.Equal(t, "nose", Nose.String())
	assert.Equal(t, "rightWrist", RightWrist.String())
	assert.Equal(t, "unknown", LandmarkCount.String())
	assert.Equal(t, "unknown", LandmarkName(-1).String())
}

func TestParseLandmarkName(t *testing.T) {
	for i := LandmarkName(0); i < LandmarkCount; i++ {
		got, ok := ParseLandmarkName(i.String())
		require.True(t, ok, i.String())
		assert.Equal(t, i, got)
	}

	_, ok := ParseLandmarkName("elbow")
	assert.False(t, ok)
}

func TestLandmark_Present(t *testing.T) {
	tests := []struct {
		name string
		l    Landmark
		want bool
	}{
		{"visible", Landmark{X: 0.5, Y: 0.5, Visibility: 0.9}, true},
		{"barely visible", Landmark{X: 0.5, Y: 0.5, Visibility: 0.01}, true},
		{"invisible", Landmark{X: 0.5, Y: 0.5, Visibility: 0}, false},
		{"nan visibility", Landmark{X: 0.5, Y: 0.5, Visibility: math.NaN()}, false},
		{"nan coordinate", Landmark{X: math.NaN(), Y: 0.5, Visibility: 1}, false},
		{"infinite coordinate", Landmark{X: 0.5, Y: math.Inf(1), Visibility: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.l.Present())
		})
	}
}

func TestLandmark_Clamped(t *testing.T) {
	l := Landmark{X: -0.2, Y: 1.4, Visibility: 2}.Clamped()
	assert.Equal(t, Landmark{X: 0, Y: 1, Visibility: 1}, l)
}

func TestSample_GetOnNil(t *testing.T) {
	var s *Sample
	assert.Equal(t, Landmark{}, s.Get(Nose))
	assert.Equal(t, 0.0, s.AverageVisibility())
}

func TestSample_MapRoundTrip(t *testing.T) {
	s := Standing()
	m := s.ToMap()
	require.Len(t, m, int(LandmarkCount))

	m["elbow"] = Landmark{X: 1, Y: 1, Visibility: 1} // ignored
	back := FromMap(m)
	assert.Equal(t, s.Landmarks, back.Landmarks)
}

func TestFromMediaPipe(t *testing.T) {
	points := make([]Landmark, 33)
	points[0] = Landmark{X: 0.5, Y: 0.1, Visibility: 0.8}
	points[11] = Landmark{X: 0.4, Y: 0.3, Visibility: 0.9}
	points[24] = Landmark{X: 0.55, Y: 0.6, Visibility: 0.7}

	s := FromMediaPipe(points)
	assert.Equal(t, points[0], s.Get(Nose))
	assert.Equal(t, points[11], s.Get(LeftShoulder))
	assert.Equal(t, points[24], s.Get(RightHip))

	// Short lists leave the rest invisible
	short := FromMediaPipe(points[:12])
	assert.Equal(t, points[11], short.Get(LeftShoulder))
	assert.False(t, short.Get(RightHip).Present())
}

func TestSample_Builders(t *testing.T) {
	s := Standing()
	assert.InDelta(t, 1.0, s.AverageVisibility(), 1e-9)

	s.Shift(0.1, 0)
	assert.InDelta(t, 0.55, s.Get(LeftShoulder).X, 1e-9)

	s.RaiseArms()
	assert.Less(t, s.Get(LeftWrist).Y, s.Get(LeftShoulder).Y)
	assert.Less(t, s.Get(RightWrist).Y, s.Get(RightShoulder).Y)

	c := s.Clone().WithVisibility(0, Nose)
	assert.Equal(t, 0.0, c.Get(Nose).Visibility)
	assert.Equal(t, 1.0, s.Get(Nose).Visibility, "clone must not alias the original")
}
