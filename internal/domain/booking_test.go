package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewBookingWindow(t *testing.T) {
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	window := NewBookingWindow(start)

	if !window.Start.Equal(start) {
		t.Errorf("Start = %v, want %v", window.Start, start)
	}
	if want := start.Add(DefaultBookingDuration); !window.End.Equal(want) {
		t.Errorf("End = %v, want %v", window.End, want)
	}
}

func TestNewCustomBookingWindow(t *testing.T) {
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		end     time.Time
		wantErr bool
	}{
		{"结束晚于开始", start.Add(2 * time.Hour), false},
		{"结束等于开始", start, true},
		{"结束早于开始", start.Add(-time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomBookingWindow(start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCustomBookingWindow() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidInterval) {
				t.Errorf("error = %v, want %v", err, ErrInvalidInterval)
			}
		})
	}
}

func TestNewCapacity(t *testing.T) {
	tests := []struct {
		name    string
		value   int32
		wantErr bool
	}{
		{"正常容量", 200, false},
		{"最小容量", 1, false},
		{"最大容量", MaxCapacity, false},
		{"零容量", 0, true},
		{"负容量", -1, true},
		{"超过上限", MaxCapacity + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capacity, err := NewCapacity(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCapacity(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && capacity.Value() != tt.value {
				t.Errorf("Value() = %d, want %d", capacity.Value(), tt.value)
			}
		})
	}

	if got := NewDefaultCapacity().Value(); got != DefaultCapacity {
		t.Errorf("NewDefaultCapacity().Value() = %d, want %d", got, DefaultCapacity)
	}
}
