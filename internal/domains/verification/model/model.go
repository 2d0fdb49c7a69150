package model

import (
	"time"
)

const (
	EntityName = "verification"
)

// State of the resend countdown gating the "send code again" action.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// Countdown is the reconstructed timer: Idle with zero remaining, or Running
// with the seconds left until the gated action unlocks.
type Countdown struct {
	State            State `json:"state"`
	SecondsRemaining int   `json:"seconds_remaining"`
}

func Idle() Countdown {
	return Countdown{State: StateIdle}
}

func Running(seconds int) Countdown {
	return Countdown{State: StateRunning, SecondsRemaining: seconds}
}

// Snapshot is the persisted form of a running countdown: the seconds value at
// capture time plus the capture timestamp, so the remaining time can be
// rebuilt after a reload.
type Snapshot struct {
	Seconds    int       `json:"seconds"`
	CapturedAt time.Time `json:"captured_at"`
}

func NewSnapshot(seconds int, now time.Time) Snapshot {
	return Snapshot{Seconds: seconds, CapturedAt: now}
}

// Reconstruct rebuilds the countdown from a persisted snapshot: remaining is
// the captured seconds minus the elapsed time since capture. A non-positive
// result, or a capture timestamp in the future (clock skew, tampering), maps
// to Idle.
func (s Snapshot) Reconstruct(now time.Time) Countdown {
	if s.Seconds <= 0 || s.CapturedAt.IsZero() || now.Before(s.CapturedAt) {
		return Idle()
	}

	elapsed := int(now.Sub(s.CapturedAt) / time.Second)

	remaining := s.Seconds - elapsed
	if remaining <= 0 {
		return Idle()
	}

	return Running(remaining)
}
