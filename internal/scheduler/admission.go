package scheduler

import (
	"sort"
	"time"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

// occupancyEvent 表示某个时刻到店或离店带来的人数变化，
// delta 为正表示到店，为负表示离店
type occupancyEvent struct {
	delta int32
	at    time.Time
}

// CanAccommodate 检查一组预订是否在任意时刻都不超过餐厅容量。
// 不会修改传入的预订列表
func CanAccommodate(capacity domain.Capacity, bookings []*domain.Booking) bool {
	events := make([]occupancyEvent, 0, len(bookings)*2)
	for _, booking := range bookings {
		events = append(events, occupancyEvent{delta: booking.NumPersons, at: booking.StartTime})
		events = append(events, occupancyEvent{delta: -booking.NumPersons, at: booking.EndTime})
	}

	// 按时间排序；时间相同时 delta 小的在前，即离店先于到店，
	// 这正是左闭右开区间的语义：恰好在 T 离店的客人把座位让给恰好在 T 到店的客人
	sort.Slice(events, func(i, j int) bool {
		if !events[i].at.Equal(events[j].at) {
			return events[i].at.Before(events[j].at)
		}
		return events[i].delta < events[j].delta
	})

	var occupancy int32
	for _, event := range events {
		occupancy += event.delta
		if occupancy > capacity.Value() {
			// 此刻餐厅已满
			return false
		}
	}
	return true
}

// CanAddBooking 检查在已有预订之上再接纳 candidate 是否仍然满足容量约束。
// 无论结果如何都不会修改 existing
func CanAddBooking(capacity domain.Capacity, candidate *domain.Booking, existing []*domain.Booking) bool {
	all := make([]*domain.Booking, 0, len(existing)+1)
	all = append(all, existing...)
	all = append(all, candidate)
	return CanAccommodate(capacity, all)
}

// SuggestNextAvailableTime 在 candidate 原定时间不可行时，建议下一个可行的开始时刻。
// 建议保持原有的时长和人数，并且永远不会早于原定的开始时间。
//
// 前置条件：existing 本身必须满足容量约束，且 candidate 的人数不超过容量，
// 违反前置条件分别返回 ErrBookingsOverCapacity 和 ErrPartySizeExceedsCapacity，
// 它们是调用方的错误而不是普通的「这个时段订不上」
func SuggestNextAvailableTime(capacity domain.Capacity, candidate *domain.Booking, existing []*domain.Booking) (time.Time, error) {
	if !CanAccommodate(capacity, existing) {
		return time.Time{}, domain.ErrBookingsOverCapacity
	}
	if candidate.NumPersons > capacity.Value() {
		return time.Time{}, domain.ErrPartySizeExceedsCapacity
	}

	// 原定时间可行时不需要推迟
	if CanAddBooking(capacity, candidate, existing) {
		return candidate.StartTime, nil
	}

	// 占用人数只会在有客人离店的时刻下降，
	// 因此只需要按顺序检查晚于原定开始时间的各个离店时刻
	endTimes := make([]time.Time, 0, len(existing))
	for _, booking := range existing {
		endTimes = append(endTimes, booking.EndTime)
	}
	sort.Slice(endTimes, func(i, j int) bool {
		return endTimes[i].Before(endTimes[j])
	})

	duration := candidate.EndTime.Sub(candidate.StartTime)
	for _, endTime := range endTimes {
		if !endTime.After(candidate.StartTime) {
			continue
		}
		trial := &domain.Booking{
			MemberID:   candidate.MemberID,
			NumPersons: candidate.NumPersons,
			StartTime:  endTime,
			EndTime:    endTime.Add(duration),
		}
		if CanAddBooking(capacity, trial, existing) {
			return endTime, nil
		}
	}

	// 前置条件成立时必然能在某个离店时刻之后接纳预订，
	// 走到这里说明调用方传入的状态已经不一致
	return time.Time{}, domain.ErrNoSuggestion
}
