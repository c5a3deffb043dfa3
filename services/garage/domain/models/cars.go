package models

import "time"

// FamilyCar implements Vehicle directly: 4 wheels, top speed 50.
type FamilyCar struct {
	odometer
}

func NewFamilyCar() *FamilyCar { return &FamilyCar{} }

func (c *FamilyCar) Wheels() int       { return 4 }
func (c *FamilyCar) MaxSpeed() float64 { return 50 }
func (c *FamilyCar) Details() string   { return "I am a family car" }

func (c *FamilyCar) Move(dir Direction, d time.Duration, speed float64) float64 {
	return c.travel(c.MaxSpeed(), dir, d, speed)
}

// Truck has 6 wheels by default and a top speed of 30. Its wheel count can
// be changed after construction.
type Truck struct {
	odometer
	wheels int
}

func NewTruck() *Truck { return &Truck{wheels: 6} }

func (t *Truck) Wheels() int       { return t.wheels }
func (t *Truck) SetWheels(n int)   { t.wheels = n }
func (t *Truck) MaxSpeed() float64 { return 30 }
func (t *Truck) Details() string   { return "I am a truck" }

func (t *Truck) Move(dir Direction, d time.Duration, speed float64) float64 {
	return t.travel(t.MaxSpeed(), dir, d, speed)
}

// BaseVehicle is a generic vehicle meant to be embedded: 4 wheels, top speed 100.
type BaseVehicle struct {
	odometer
}

func NewBaseVehicle() *BaseVehicle { return &BaseVehicle{} }

func (v *BaseVehicle) Wheels() int       { return 4 }
func (v *BaseVehicle) MaxSpeed() float64 { return 100 }
func (v *BaseVehicle) Details() string   { return "I am a vehicle" }

func (v *BaseVehicle) Move(dir Direction, d time.Duration, speed float64) float64 {
	return v.travel(v.MaxSpeed(), dir, d, speed)
}

// EmbeddedFamilyCar reuses BaseVehicle and overrides its top speed and
// details. Embedding has no virtual dispatch, so the promoted
// BaseVehicle.Move would still clamp to 100; Move is redefined to use the
// car's own limit.
type EmbeddedFamilyCar struct {
	BaseVehicle
}

func NewEmbeddedFamilyCar() *EmbeddedFamilyCar { return &EmbeddedFamilyCar{} }

func (c *EmbeddedFamilyCar) MaxSpeed() float64 { return 50 }
func (c *EmbeddedFamilyCar) Details() string   { return "I am a family car" }

func (c *EmbeddedFamilyCar) Move(dir Direction, d time.Duration, speed float64) float64 {
	return c.travel(c.MaxSpeed(), dir, d, speed)
}
