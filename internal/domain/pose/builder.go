package pose

// Standing returns a fully visible, neutral upright pose centred in the frame.
// Shoulders at y=0.5, hips at y=0.75, wrists hanging below the shoulders.
func Standing() *Sample {
	s := &Sample{}
	s.Set(Nose, Landmark{X: 0.5, Y: 0.4, Visibility: 1})
	s.Set(LeftShoulder, Landmark{X: 0.45, Y: 0.5, Visibility: 1})
	s.Set(RightShoulder, Landmark{X: 0.55, Y: 0.5, Visibility: 1})
	s.Set(LeftWrist, Landmark{X: 0.42, Y: 0.7, Visibility: 1})
	s.Set(RightWrist, Landmark{X: 0.58, Y: 0.7, Visibility: 1})
	s.Set(LeftHip, Landmark{X: 0.47, Y: 0.75, Visibility: 1})
	s.Set(RightHip, Landmark{X: 0.53, Y: 0.75, Visibility: 1})
	s.Set(LeftKnee, Landmark{X: 0.47, Y: 0.87, Visibility: 1})
	s.Set(RightKnee, Landmark{X: 0.53, Y: 0.87, Visibility: 1})
	s.Set(LeftAnkle, Landmark{X: 0.47, Y: 0.97, Visibility: 1})
	s.Set(RightAnkle, Landmark{X: 0.53, Y: 0.97, Visibility: 1})
	return s
}

// Shift moves every landmark by dx, dy in normalized units
func (s *Sample) Shift(dx, dy float64) *Sample {
	for i := range s.Landmarks {
		s.Landmarks[i].X += dx
		s.Landmarks[i].Y += dy
	}
	return s
}

// RaiseArms puts both wrists above their shoulders
func (s *Sample) RaiseArms() *Sample {
	ls, rs := s.Get(LeftShoulder), s.Get(RightShoulder)
	s.Set(LeftWrist, Landmark{X: ls.X - 0.05, Y: ls.Y - 0.15, Visibility: 1})
	s.Set(RightWrist, Landmark{X: rs.X + 0.05, Y: rs.Y - 0.15, Visibility: 1})
	return s
}

// With replaces one landmark
func (s *Sample) With(name LandmarkName, l Landmark) *Sample {
	s.Set(name, l)
	return s
}

// WithVisibility overrides the visibility of the named landmarks
func (s *Sample) WithVisibility(v float64, names ...LandmarkName) *Sample {
	for _, n := range names {
		if n >= 0 && n < LandmarkCount {
			s.Landmarks[n].Visibility = v
		}
	}
	return s
}

// Clone returns a deep copy
func (s *Sample) Clone() *Sample {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
