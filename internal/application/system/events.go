package system

import "github.com/younwookim/polyhop/internal/domain/entity"

// GameEvent is something the simulation reports to its host after a tick
type GameEvent interface {
	isGameEvent()
}

// CoinCollected is emitted once per coin
type CoinCollected struct {
	CoinID     entity.EntityID
	ScoreDelta uint32
}

func (CoinCollected) isGameEvent() {}

// EnemyDefeated is emitted when a stomp drops an enemy to zero health
type EnemyDefeated struct {
	EnemyID    entity.EntityID
	ScoreDelta uint32
}

func (EnemyDefeated) isGameEvent() {}

// PlayerHit is emitted when the character touches an enemy from the side or below
type PlayerHit struct {
	Damage         int
	LivesRemaining int
}

func (PlayerHit) isGameEvent() {}

// LevelCompleted is emitted on the tick the last coin is collected
type LevelCompleted struct {
	Level int
	Score uint32
}

func (LevelCompleted) isGameEvent() {}

// GameOver is emitted on the tick the last life is lost
type GameOver struct {
	FinalScore uint32
	Level      int
}

func (GameOver) isGameEvent() {}
