package domain

import (
	"errors"
	"testing"
)

func TestNewShift(t *testing.T) {
	tests := []struct {
		name      string
		startDay  int32
		startTime string
		endDay    int32
		endTime   string
		wantErr   bool
	}{
		{"同一天且结束晚于开始", Monday, "00:00", Monday, "23:59", false},
		{"同一天且起止时间相同", Monday, "00:00", Monday, "00:00", true},
		{"同一天且结束早于开始", Monday, "23:59", Monday, "00:00", true},
		{"跨越整周", Monday, "00:00", Sunday, "23:59", false},
		{"不同天且时间相同", Monday, "00:00", Sunday, "00:00", false},
		{"不同天且结束时间更早", Monday, "23:59", Sunday, "00:00", false},
		{"跨周界", Sunday, "00:00", Monday, "23:59", false},
		{"跨周界且时间相同", Sunday, "00:00", Monday, "00:00", false},
		{"跨周界且结束时间更早", Sunday, "23:59", Monday, "00:00", false},
		{"起始日超出范围", 0, "09:00", Monday, "17:00", true},
		{"结束日超出范围", Monday, "09:00", 8, "17:00", true},
		{"时间没有补零", Monday, "9:00", Monday, "17:00", true},
		{"时间超出 24 小时制", Monday, "09:00", Monday, "25:00", true},
		{"时间格式非法", Monday, "0900", Monday, "17:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShift(tt.startDay, tt.startTime, tt.endDay, tt.endTime)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewShift() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShiftIsWrapping(t *testing.T) {
	wrapping := Shift{StartDay: Sunday, StartTime: "20:00", EndDay: Monday, EndTime: "04:00"}
	if !wrapping.IsWrapping() {
		t.Errorf("IsWrapping(%v) = false, want true", wrapping)
	}

	linear := Shift{StartDay: Monday, StartTime: "09:00", EndDay: Friday, EndTime: "17:00"}
	if linear.IsWrapping() {
		t.Errorf("IsWrapping(%v) = true, want false", linear)
	}
}

func TestShiftCompare(t *testing.T) {
	earlier := Shift{StartDay: Monday, StartTime: "09:00", EndDay: Monday, EndTime: "12:00"}
	later := Shift{StartDay: Monday, StartTime: "10:00", EndDay: Monday, EndTime: "11:00"}
	otherDay := Shift{StartDay: Tuesday, StartTime: "08:00", EndDay: Tuesday, EndTime: "10:00"}

	if earlier.Compare(later) >= 0 {
		t.Error("同一天内开始更早的班次应当排在前面")
	}
	if later.Compare(otherDay) >= 0 {
		t.Error("起始日更早的班次应当排在前面，与时间无关")
	}
	if earlier.Compare(earlier) != 0 {
		t.Error("班次与自身比较应当相等")
	}
}

func TestShiftValidationError(t *testing.T) {
	_, err := NewShift(Monday, "14:00", Monday, "12:00")
	if !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("NewShift() error = %v, want %v", err, ErrInvalidInterval)
	}
}
