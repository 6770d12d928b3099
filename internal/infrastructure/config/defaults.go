package config

// Default returns the stock tuning used when no game.json is available
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Framerate:    60,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			GroundLevel: 400,
		},
		Character: CharacterConfig{
			SpawnX:    100,
			SpawnY:    300,
			Speed:     5,
			JumpPower: 15,
			MaxHealth: 100,
			Lives:     3,
			SkinTone:  "medium",
			Outfit:    "adventurer",
			Hair:      "spiky",
		},
		Combat: CombatConfig{
			StompBounce:       10,
			StompDamage:       10,
			ContactDamage:     20,
			InvulnerableTicks: 0,
			EnemyScore:        100,
			CoinScore:         50,
		},
		Level: LevelConfig{
			Width:             2000,
			TileWidth:         100,
			TileHeight:        20,
			FloatingPlatforms: 15,
			Enemies:           8,
			Coins:             20,
			PlatformX:         RangeConfig{Min: 100, Max: 100},
			PlatformY:         RangeConfig{Min: 100, Max: 300},
			PlatformWidth:     RangeConfig{Min: 50, Max: 150},
			EnemyX:            RangeConfig{Min: 50, Max: 50},
			EnemySpeed:        RangeConfig{Min: -1, Max: 1},
			CoinX:             RangeConfig{Min: 25, Max: 25},
			CoinY:             RangeConfig{Min: 50, Max: 350},
		},
		Mapper: MapperConfig{
			JumpBodyY:     0.4,
			DuckBodyY:     0.7,
			DuckCompress:  0.15,
			LeanThreshold: 0.1,
			Mirror:        true,
		},
		Particles: ParticleConfig{
			Burst:   10,
			Life:    30,
			Spread:  5,
			Gravity: 0.1,
		},
	}
}
