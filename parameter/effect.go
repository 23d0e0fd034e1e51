package parameter

import (
	"time"
)

// Confetti Effect
const (
	// ConfettiBursts is the number of bursts in one confetti call
	ConfettiBursts = 3
	// ConfettiPerBurst is pieces spawned per burst
	ConfettiPerBurst = 50
	// ConfettiBurstInterval separates consecutive bursts
	ConfettiBurstInterval = 200 * time.Millisecond
	// ConfettiStagger separates pieces within a burst
	ConfettiStagger = 30 * time.Millisecond

	ConfettiLifetimeMin = 2 * time.Second
	ConfettiLifetimeMax = 4 * time.Second

	// ConfettiSizeMin/Max are relative sizes in cells
	ConfettiSizeMin = 1.0
	ConfettiSizeMax = 3.0

	// ConfettiDrift is the max lateral speed in cells per second
	ConfettiDrift = 4.0
)

// Fallback Confetti, used when the particle catalog is not available
const (
	FallbackConfettiCount    = 50
	FallbackConfettiStagger  = 50 * time.Millisecond
	FallbackConfettiLifetime = 5 * time.Second
)

// Floating Hearts
const (
	HeartCount    = 15
	HeartStagger  = 200 * time.Millisecond
	HeartLifetime = 5 * time.Second
	// HeartSway is the max lateral speed in cells per second
	HeartSway = 3.0
)

// Star Shower
const (
	StarCount    = 25
	StarStagger  = 100 * time.Millisecond
	StarLifetime = 5 * time.Second
)

// Magic Particles
const (
	MagicCount    = 100
	MagicStagger  = 50 * time.Millisecond
	MagicLifetime = 8 * time.Second
)

// Fireworks
const (
	FireworkShells       = 8
	FireworkShellStagger = 800 * time.Millisecond
	FireworkSparks       = 25
	FireworkLifetime     = 1500 * time.Millisecond
	// FireworkSpeedMin/Max is the radial spark speed in cells per second
	FireworkSpeedMin = 6.0
	FireworkSpeedMax = 14.0
	// FireworkHeightRatio keeps shells in the upper part of the screen
	FireworkHeightRatio = 0.6
)

// Bubbles
const (
	BubbleCount       = 30
	BubbleStagger     = 200 * time.Millisecond
	BubbleLifetimeMin = 6 * time.Second
	BubbleLifetimeMax = 10 * time.Second
)

// Ripples
const (
	RippleCount    = 5
	RippleStagger  = 300 * time.Millisecond
	RippleLifetime = 2 * time.Second
	// RippleMaxRadius is the ring radius in cells at the end of its life
	RippleMaxRadius = 12.0
)

// Motion
const (
	// FallGravity pulls falling effects down (cells/sec²)
	FallGravity = 1.5
	// BuoyancyGravity is negative gravity for rising effects (cells/sec²)
	BuoyancyGravity = -0.5
)

// Petal Rain
const (
	PetalCount       = 50
	PetalStagger     = 150 * time.Millisecond
	PetalLifetimeMin = 4 * time.Second
	PetalLifetimeMax = 7 * time.Second
	// PetalSway is the max lateral speed in cells per second
	PetalSway = 2.0
)

// Heart Burst at a point
const (
	HeartBurstCount    = 20
	HeartBurstLifetime = 2 * time.Second
	// HeartBurstSpeedMin/Max is the radial speed in cells per second
	HeartBurstSpeedMin = 3.0
	HeartBurstSpeedMax = 12.0
)

// Click effect
const (
	ClickSparks       = 8
	ClickLifetime     = 800 * time.Millisecond
	ClickSpeedMin     = 6.0
	ClickSpeedMax     = 10.0
	ClickRippleRadius = 3.0
	ClickRippleLife   = time.Second
)

// Floating text
const (
	FloatingTextLifetime = 3 * time.Second
	// FloatingTextRise is the total rows the text climbs over its lifetime
	FloatingTextRise = 4.0
)

// Ambient background particles, running while the program is open
const (
	AmbientCount       = 100
	AmbientStagger     = 100 * time.Millisecond
	AmbientLifetimeMin = 6 * time.Second
	AmbientLifetimeMax = 10 * time.Second
	// AmbientRefresh re-seeds the background once the previous batch has been spawned
	AmbientRefresh = AmbientCount * AmbientStagger
	AmbientDrift   = 1.0
)
