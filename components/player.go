package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	SpeedX, SpeedY float64
	TargetAngle    float64 // Heading the sprite turns toward while moving
	InvulnFrames   int     // Invulnerability frames timer after a hit
}

var Player = donburi.NewComponentType[PlayerData]()

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()
