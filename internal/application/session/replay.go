package session

import (
	"github.com/younwookim/polyhop/internal/application/replay"
	"github.com/younwookim/polyhop/internal/application/simulation"
	"github.com/younwookim/polyhop/internal/application/system"
)

// Result summarises a headless playback
type Result struct {
	Frames int
	Events []system.GameEvent
	Final  simulation.GameData
}

// Replay feeds every recorded frame through the tick path. Recorded frames
// already carry the resolved sample, so no holding is applied.
func (s *Session) Replay(r *replay.Replayer) Result {
	var res Result
	for {
		input, ok := r.GetInput()
		if !ok {
			break
		}
		res.Frames++
		_, events := s.step(input)
		res.Events = append(res.Events, events...)
	}
	res.Final = s.sim.GameData()
	return res
}
