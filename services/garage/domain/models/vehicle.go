// Package models holds the garage domain: vehicles that share one movement
// rule but differ in wheels, top speed and description.
package models

import "time"

// Direction is the way a vehicle moves.
type Direction int

const (
	Forward Direction = iota
	Backwards
)

func (d Direction) String() string {
	if d == Backwards {
		return "backwards"
	}
	return "forward"
}

// Vehicle is satisfied by every garage vehicle.
type Vehicle interface {
	Wheels() int
	MaxSpeed() float64
	// DistanceTraveled is the signed total of every move so far.
	DistanceTraveled() float64
	Details() string
	// Move travels for d at speed clamped to [0, MaxSpeed] and returns the
	// signed distance covered, negative when moving backwards.
	Move(dir Direction, d time.Duration, speed float64) float64
}

// odometer is the shared movement rule. Embed it and call travel with the
// vehicle's own top speed.
type odometer struct {
	traveled float64
}

func (o *odometer) DistanceTraveled() float64 { return o.traveled }

func (o *odometer) travel(maxSpeed float64, dir Direction, d time.Duration, speed float64) float64 {
	speed = min(max(speed, 0), maxSpeed)
	distance := speed * d.Seconds()
	if dir == Backwards {
		distance = -distance
	}
	o.traveled += distance
	return distance
}
