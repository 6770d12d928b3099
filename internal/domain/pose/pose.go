// Package pose defines the body landmark samples produced by the pose sensor.
//
// Coordinates are normalized to the camera frame: x and y lie in [0,1] with
// the origin in the top-left corner. Visibility is the detector's confidence
// for that landmark, also in [0,1].
package pose

import "math"

// LandmarkName identifies a body keypoint
type LandmarkName int

const (
	Nose LandmarkName = iota
	LeftShoulder
	RightShoulder
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle

	LandmarkCount
)

var landmarkNames = [LandmarkCount]string{
	Nose:          "nose",
	LeftShoulder:  "leftShoulder",
	RightShoulder: "rightShoulder",
	LeftWrist:     "leftWrist",
	RightWrist:    "rightWrist",
	LeftHip:       "leftHip",
	RightHip:      "rightHip",
	LeftKnee:      "leftKnee",
	RightKnee:     "rightKnee",
	LeftAnkle:     "leftAnkle",
	RightAnkle:    "rightAnkle",
}

// String returns the wire name of the landmark
func (n LandmarkName) String() string {
	if n < 0 || n >= LandmarkCount {
		return "unknown"
	}
	return landmarkNames[n]
}

// ParseLandmarkName returns the landmark for a wire name
func ParseLandmarkName(s string) (LandmarkName, bool) {
	for i, name := range landmarkNames {
		if name == s {
			return LandmarkName(i), true
		}
	}
	return 0, false
}

// MediaPipeIndex maps the 33-point MediaPipe pose topology onto our landmarks
var MediaPipeIndex = map[int]LandmarkName{
	0:  Nose,
	11: LeftShoulder,
	12: RightShoulder,
	15: LeftWrist,
	16: RightWrist,
	23: LeftHip,
	24: RightHip,
	25: LeftKnee,
	26: RightKnee,
	27: LeftAnkle,
	28: RightAnkle,
}

// Landmark is a single keypoint. Visibility 0 means the detector did not see it.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Visibility float64 `json:"v"`
}

// Present reports whether the landmark carries usable data
func (l Landmark) Present() bool {
	if l.Visibility <= 0 || math.IsNaN(l.Visibility) {
		return false
	}
	return isFinite(l.X) && isFinite(l.Y)
}

// Clamped returns the landmark with coordinates and visibility forced into [0,1]
func (l Landmark) Clamped() Landmark {
	return Landmark{
		X:          clamp01(l.X),
		Y:          clamp01(l.Y),
		Visibility: clamp01(l.Visibility),
	}
}

// Sample is one frame of sensor output
type Sample struct {
	Landmarks [LandmarkCount]Landmark
}

// Get returns the named landmark, or a zero landmark for an unknown name
func (s *Sample) Get(name LandmarkName) Landmark {
	if s == nil || name < 0 || name >= LandmarkCount {
		return Landmark{}
	}
	return s.Landmarks[name]
}

// Set stores the named landmark
func (s *Sample) Set(name LandmarkName, l Landmark) {
	if name < 0 || name >= LandmarkCount {
		return
	}
	s.Landmarks[name] = l
}

// AverageVisibility returns the mean visibility over all landmarks
func (s *Sample) AverageVisibility() float64 {
	if s == nil {
		return 0
	}
	sum := 0.0
	for _, l := range s.Landmarks {
		sum += clamp01(l.Visibility)
	}
	return sum / float64(LandmarkCount)
}

// FromMap builds a sample from wire-named landmarks, ignoring unknown names
func FromMap(m map[string]Landmark) *Sample {
	s := &Sample{}
	for name, l := range m {
		if n, ok := ParseLandmarkName(name); ok {
			s.Landmarks[n] = l
		}
	}
	return s
}

// ToMap returns the sample keyed by wire names
func (s *Sample) ToMap() map[string]Landmark {
	m := make(map[string]Landmark, LandmarkCount)
	for i, l := range s.Landmarks {
		m[LandmarkName(i).String()] = l
	}
	return m
}

// FromMediaPipe builds a sample from a 33-point MediaPipe landmark list.
// Missing indices stay at visibility 0.
func FromMediaPipe(points []Landmark) *Sample {
	s := &Sample{}
	for idx, name := range MediaPipeIndex {
		if idx < len(points) {
			s.Landmarks[name] = points[idx]
		}
	}
	return s
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
