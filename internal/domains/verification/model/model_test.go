package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"voyago/internal/domains/verification/model"
)

func TestSnapshotReconstruct(t *testing.T) {
	capturedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		snapshot model.Snapshot
		now      time.Time
		want     model.Countdown
	}{
		{
			name:     "full duration remains immediately after capture",
			snapshot: model.NewSnapshot(600, capturedAt),
			now:      capturedAt,
			want:     model.Running(600),
		},
		{
			name:     "elapsed seconds are subtracted",
			snapshot: model.NewSnapshot(600, capturedAt),
			now:      capturedAt.Add(100 * time.Second),
			want:     model.Running(500),
		},
		{
			name:     "expiry during downtime maps to idle",
			snapshot: model.NewSnapshot(600, capturedAt),
			now:      capturedAt.Add(605 * time.Second),
			want:     model.Idle(),
		},
		{
			name:     "exact expiry maps to idle",
			snapshot: model.NewSnapshot(600, capturedAt),
			now:      capturedAt.Add(600 * time.Second),
			want:     model.Idle(),
		},
		{
			name:     "one second left",
			snapshot: model.NewSnapshot(600, capturedAt),
			now:      capturedAt.Add(599 * time.Second),
			want:     model.Running(1),
		},
		{
			name:     "capture in the future maps to idle",
			snapshot: model.NewSnapshot(600, capturedAt),
			now:      capturedAt.Add(-1 * time.Second),
			want:     model.Idle(),
		},
		{
			name:     "zero seconds maps to idle",
			snapshot: model.NewSnapshot(0, capturedAt),
			now:      capturedAt,
			want:     model.Idle(),
		},
		{
			name:     "negative seconds maps to idle",
			snapshot: model.NewSnapshot(-10, capturedAt),
			now:      capturedAt,
			want:     model.Idle(),
		},
		{
			name:     "zero snapshot maps to idle",
			snapshot: model.Snapshot{},
			now:      capturedAt,
			want:     model.Idle(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snapshot.Reconstruct(tt.now))
		})
	}
}

func TestSnapshotReconstruct_SubSecondElapsedTruncates(t *testing.T) {
	capturedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	snapshot := model.NewSnapshot(600, capturedAt)

	countdown := snapshot.Reconstruct(capturedAt.Add(1500 * time.Millisecond))

	assert.Equal(t, model.Running(599), countdown)
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		fallback int
		want     int
	}{
		{name: "seconds embedded in message", message: "too many requests, retry after 120 seconds", fallback: 600, want: 120},
		{name: "first integer wins", message: "limit 5 per 60 seconds", fallback: 600, want: 5},
		{name: "no integer falls back", message: "too many requests", fallback: 600, want: 600},
		{name: "empty message falls back", message: "", fallback: 600, want: 600},
		{name: "zero falls back", message: "retry after 0 seconds", fallback: 600, want: 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ParseRetryAfter(tt.message, tt.fallback))
		})
	}
}
