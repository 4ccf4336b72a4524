package domain

import (
	"time"
)

// DefaultBookingDuration 是只给出开始时间时预订的默认时长
const DefaultBookingDuration = time.Hour

// BookingWindow 表示一个预订占用的时间段，区间为左闭右开 [Start, End)，
// 即恰好在 End 时刻离店的客人不再占用座位。构造成功后不可变
type BookingWindow struct {
	Start time.Time `json:"startTime"`
	End   time.Time `json:"endTime"`
}

// NewBookingWindow 以默认时长构造一个预订时段
func NewBookingWindow(start time.Time) BookingWindow {
	return BookingWindow{
		Start: start,
		End:   start.Add(DefaultBookingDuration),
	}
}

// NewCustomBookingWindow 构造一个自定义结束时间的预订时段，
// 结束时间必须严格晚于开始时间
func NewCustomBookingWindow(start time.Time, end time.Time) (BookingWindow, error) {
	if !end.After(start) {
		return BookingWindow{}, ErrInvalidInterval
	}
	return BookingWindow{Start: start, End: end}, nil
}

// Booking 表示餐厅的一个预订。对预订的修改总是整体替换，
// 不会就地修改某个字段
type Booking struct {
	ID         int64     `json:"id"`
	MemberID   int64     `json:"memberId"`
	NumPersons int32     `json:"numPersons"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
	Version    int32     `json:"-"`
}

// Window 返回预订占用的时间段
func (b *Booking) Window() BookingWindow {
	return BookingWindow{Start: b.StartTime, End: b.EndTime}
}
