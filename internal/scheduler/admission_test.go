package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

// at 返回测试基准日当天的某个时刻
func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func booking(numPersons int32, start, end time.Time) *domain.Booking {
	return &domain.Booking{NumPersons: numPersons, StartTime: start, EndTime: end}
}

func mustCapacity(t *testing.T, value int32) domain.Capacity {
	t.Helper()
	capacity, err := domain.NewCapacity(value)
	if err != nil {
		t.Fatalf("构造容量 %d 失败: %v", value, err)
	}
	return capacity
}

func TestCanAccommodate(t *testing.T) {
	tests := []struct {
		name     string
		capacity int32
		bookings []*domain.Booking
		want     bool
	}{
		{
			name:     "没有预订时总是可行",
			capacity: 1,
			bookings: nil,
			want:     true,
		},
		{
			name:     "重叠时段的总人数超过容量时不可行",
			capacity: 10,
			bookings: []*domain.Booking{
				booking(6, at(10, 0), at(11, 0)),
				booking(5, at(10, 30), at(11, 30)),
			},
			want: false,
		},
		{
			name:     "前一桌离店的时刻恰好到店的客人可以接上空出的座位",
			capacity: 10,
			bookings: []*domain.Booking{
				booking(6, at(10, 0), at(11, 0)),
				booking(5, at(11, 0), at(12, 0)),
			},
			want: true,
		},
		{
			name:     "恰好用满容量时可行",
			capacity: 10,
			bookings: []*domain.Booking{
				booking(6, at(10, 0), at(11, 0)),
				booking(4, at(10, 30), at(11, 30)),
			},
			want: true,
		},
		{
			name:     "多桌客人在中间时刻叠加超过容量时不可行",
			capacity: 10,
			bookings: []*domain.Booking{
				booking(4, at(18, 0), at(20, 0)),
				booking(4, at(18, 30), at(19, 30)),
				booking(4, at(19, 0), at(21, 0)),
			},
			want: false,
		},
		{
			name:     "单桌人数超过容量时不可行",
			capacity: 5,
			bookings: []*domain.Booking{
				booking(6, at(12, 0), at(13, 0)),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capacity := mustCapacity(t, tt.capacity)
			if got := CanAccommodate(capacity, tt.bookings); got != tt.want {
				t.Errorf("CanAccommodate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// 容量的单调性：某个容量下可行的预订在更大的容量下必然仍然可行
func TestCanAccommodateMonotonic(t *testing.T) {
	bookings := []*domain.Booking{
		booking(6, at(10, 0), at(11, 0)),
		booking(4, at(10, 30), at(11, 30)),
		booking(3, at(11, 0), at(12, 0)),
	}

	feasibleAt := int32(-1)
	for value := int32(1); value <= 20; value++ {
		capacity := mustCapacity(t, value)
		if CanAccommodate(capacity, bookings) {
			feasibleAt = value
			break
		}
	}
	if feasibleAt < 0 {
		t.Fatal("预订在 1 到 20 的容量下都不可行")
	}

	for value := feasibleAt; value <= 20; value++ {
		capacity := mustCapacity(t, value)
		if !CanAccommodate(capacity, bookings) {
			t.Errorf("容量 %d 下可行但容量 %d 下不可行", feasibleAt, value)
		}
	}
}

func TestCanAddBookingDoesNotModifyExisting(t *testing.T) {
	capacity := mustCapacity(t, 10)
	existing := []*domain.Booking{
		booking(6, at(10, 0), at(11, 0)),
	}
	candidate := booking(5, at(10, 30), at(11, 30))

	if CanAddBooking(capacity, candidate, existing) {
		t.Error("超过容量的预订应当被拒绝")
	}
	if len(existing) != 1 {
		t.Errorf("检查之后已有预订的数量变成了 %d", len(existing))
	}

	candidate = booking(4, at(10, 30), at(11, 30))
	if !CanAddBooking(capacity, candidate, existing) {
		t.Error("没有超过容量的预订应当被接纳")
	}
}

func TestSuggestNextAvailableTime(t *testing.T) {
	capacity := mustCapacity(t, 10)

	t.Run("原定时间可行时返回原定时间", func(t *testing.T) {
		existing := []*domain.Booking{
			booking(4, at(10, 0), at(11, 0)),
		}
		candidate := booking(5, at(10, 30), at(11, 30))

		got, err := SuggestNextAvailableTime(capacity, candidate, existing)
		if err != nil {
			t.Fatalf("SuggestNextAvailableTime() error = %v", err)
		}
		if !got.Equal(candidate.StartTime) {
			t.Errorf("建议时间 = %v, want %v", got, candidate.StartTime)
		}
	})

	t.Run("原定时间不可行时建议最近一桌离店的时刻", func(t *testing.T) {
		existing := []*domain.Booking{
			booking(6, at(10, 0), at(11, 0)),
		}
		candidate := booking(5, at(10, 30), at(11, 30))

		got, err := SuggestNextAvailableTime(capacity, candidate, existing)
		if err != nil {
			t.Fatalf("SuggestNextAvailableTime() error = %v", err)
		}
		if want := at(11, 0); !got.Equal(want) {
			t.Errorf("建议时间 = %v, want %v", got, want)
		}
	})

	t.Run("跳过仍然不可行的离店时刻", func(t *testing.T) {
		existing := []*domain.Booking{
			booking(4, at(10, 0), at(11, 0)),
			booking(6, at(10, 30), at(12, 0)),
		}
		// 11:00 那桌离店后只空出 4 个座位，5 人的预订要等到 12:00 那桌离店
		candidate := booking(5, at(10, 15), at(11, 15))

		got, err := SuggestNextAvailableTime(capacity, candidate, existing)
		if err != nil {
			t.Fatalf("SuggestNextAvailableTime() error = %v", err)
		}
		if want := at(12, 0); !got.Equal(want) {
			t.Errorf("建议时间 = %v, want %v", got, want)
		}
	})

	t.Run("人数超过容量时报告前置条件错误", func(t *testing.T) {
		candidate := booking(11, at(10, 0), at(11, 0))

		_, err := SuggestNextAvailableTime(capacity, candidate, nil)
		if !errors.Is(err, domain.ErrPartySizeExceedsCapacity) {
			t.Errorf("error = %v, want %v", err, domain.ErrPartySizeExceedsCapacity)
		}
	})

	t.Run("已有预订本身超过容量时报告前置条件错误", func(t *testing.T) {
		existing := []*domain.Booking{
			booking(8, at(10, 0), at(11, 0)),
			booking(8, at(10, 0), at(11, 0)),
		}
		candidate := booking(2, at(10, 0), at(11, 0))

		_, err := SuggestNextAvailableTime(capacity, candidate, existing)
		if !errors.Is(err, domain.ErrBookingsOverCapacity) {
			t.Errorf("error = %v, want %v", err, domain.ErrBookingsOverCapacity)
		}
	})
}

// 建议的时间永远不会早于原定时间，并且代入建议时间之后预订必然可以被接纳
func TestSuggestNextAvailableTimeNeverRegresses(t *testing.T) {
	capacity := mustCapacity(t, 10)
	existing := []*domain.Booking{
		booking(6, at(10, 0), at(11, 0)),
		booking(4, at(10, 30), at(11, 30)),
		booking(7, at(11, 30), at(13, 0)),
	}

	for minute := 0; minute < 120; minute += 15 {
		candidate := booking(5, at(10, 0).Add(time.Duration(minute)*time.Minute), at(11, 0).Add(time.Duration(minute)*time.Minute))

		got, err := SuggestNextAvailableTime(capacity, candidate, existing)
		if err != nil {
			t.Fatalf("SuggestNextAvailableTime() error = %v", err)
		}
		if got.Before(candidate.StartTime) {
			t.Errorf("建议时间 %v 早于原定时间 %v", got, candidate.StartTime)
		}

		duration := candidate.EndTime.Sub(candidate.StartTime)
		shifted := booking(candidate.NumPersons, got, got.Add(duration))
		if !CanAddBooking(capacity, shifted, existing) {
			t.Errorf("代入建议时间 %v 之后预订仍然无法被接纳", got)
		}
	}
}
