package scheduler

import (
	"testing"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

func mustShift(t *testing.T, startDay int32, startTime string, endDay int32, endTime string) domain.Shift {
	t.Helper()
	shift, err := domain.NewShift(startDay, startTime, endDay, endTime)
	if err != nil {
		t.Fatalf("构造班次 (%d %s - %d %s) 失败: %v", startDay, startTime, endDay, endTime, err)
	}
	return shift
}

func TestConflictsWith(t *testing.T) {
	tests := []struct {
		name string
		a    domain.Shift
		b    domain.Shift
		want bool
	}{
		{
			name: "不同天的两个班次不冲突",
			a:    domain.Shift{StartDay: domain.Monday, StartTime: "12:00", EndDay: domain.Monday, EndTime: "14:00"},
			b:    domain.Shift{StartDay: domain.Tuesday, StartTime: "12:00", EndDay: domain.Tuesday, EndTime: "14:00"},
			want: false,
		},
		{
			name: "同一天部分重叠的班次冲突",
			a:    domain.Shift{StartDay: domain.Monday, StartTime: "12:00", EndDay: domain.Monday, EndTime: "14:00"},
			b:    domain.Shift{StartDay: domain.Monday, StartTime: "13:59", EndDay: domain.Tuesday, EndTime: "15:00"},
			want: true,
		},
		{
			name: "首尾恰好相接的班次不冲突",
			a:    domain.Shift{StartDay: domain.Monday, StartTime: "12:00", EndDay: domain.Monday, EndTime: "14:00"},
			b:    domain.Shift{StartDay: domain.Monday, StartTime: "14:00", EndDay: domain.Monday, EndTime: "16:00"},
			want: false,
		},
		{
			name: "跨周班次恰好结束于另一个班次开始的时刻时不冲突",
			a:    domain.Shift{StartDay: domain.Monday, StartTime: "12:00", EndDay: domain.Monday, EndTime: "14:00"},
			b:    domain.Shift{StartDay: domain.Sunday, StartTime: "12:00", EndDay: domain.Monday, EndTime: "12:00"},
			want: false,
		},
		{
			name: "几乎覆盖整周的跨周班次与紧随其后的班次不冲突",
			a:    domain.Shift{StartDay: domain.Sunday, StartTime: "00:00", EndDay: domain.Saturday, EndTime: "23:58"},
			b:    domain.Shift{StartDay: domain.Saturday, StartTime: "23:58", EndDay: domain.Saturday, EndTime: "23:59"},
			want: false,
		},
		{
			name: "同时接上跨周班次首尾两段的班次冲突",
			a:    domain.Shift{StartDay: domain.Sunday, StartTime: "00:00", EndDay: domain.Saturday, EndTime: "23:59"},
			b:    domain.Shift{StartDay: domain.Saturday, StartTime: "23:59", EndDay: domain.Sunday, EndTime: "00:00"},
			want: true,
		},
		{
			name: "跨周班次与落在其结尾段内的班次冲突",
			a:    domain.Shift{StartDay: domain.Friday, StartTime: "12:00", EndDay: domain.Wednesday, EndTime: "14:00"},
			b:    domain.Shift{StartDay: domain.Wednesday, StartTime: "13:59", EndDay: domain.Thursday, EndTime: "15:00"},
			want: true,
		},
		{
			name: "两个都跨周界的班次必然冲突",
			a:    domain.Shift{StartDay: domain.Saturday, StartTime: "22:00", EndDay: domain.Monday, EndTime: "06:00"},
			b:    domain.Shift{StartDay: domain.Sunday, StartTime: "23:00", EndDay: domain.Tuesday, EndTime: "01:00"},
			want: true,
		},
		{
			name: "落在跨周班次起始段内的班次冲突",
			a:    domain.Shift{StartDay: domain.Friday, StartTime: "12:00", EndDay: domain.Tuesday, EndTime: "08:00"},
			b:    domain.Shift{StartDay: domain.Thursday, StartTime: "10:00", EndDay: domain.Friday, EndTime: "12:01"},
			want: true,
		},
		{
			name: "完全落在跨周班次中间空档的班次不冲突",
			a:    domain.Shift{StartDay: domain.Friday, StartTime: "12:00", EndDay: domain.Tuesday, EndTime: "08:00"},
			b:    domain.Shift{StartDay: domain.Wednesday, StartTime: "09:00", EndDay: domain.Thursday, EndTime: "18:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConflictsWith(tt.a, tt.b); got != tt.want {
				t.Errorf("ConflictsWith(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// 冲突关系必须是对称的
			if got := ConflictsWith(tt.b, tt.a); got != tt.want {
				t.Errorf("ConflictsWith(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestConflictsWithSelf(t *testing.T) {
	shifts := []domain.Shift{
		{StartDay: domain.Monday, StartTime: "09:00", EndDay: domain.Monday, EndTime: "17:00"},
		{StartDay: domain.Friday, StartTime: "22:00", EndDay: domain.Saturday, EndTime: "06:00"},
		{StartDay: domain.Sunday, StartTime: "20:00", EndDay: domain.Monday, EndTime: "04:00"},
	}

	for _, shift := range shifts {
		if !ConflictsWith(shift, shift) {
			t.Errorf("班次应当与自身冲突: %v", shift)
		}
	}
}
