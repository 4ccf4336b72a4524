package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/scheduler"
)

// 邮件和建议时间展示用的时间格式
const bookingTimeLayout = "2006-01-02 15:04"

func (h *Handler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.repository.GetAllBookings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取预订列表成功", bookings)
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking := r.Context().Value(BookingCtx).(*domain.Booking)
	h.successResponse(w, r, "获取预订信息成功", booking)
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MemberID   int64      `json:"memberId" validate:"required"`
		NumPersons int32      `json:"numPersons" validate:"required,min=1"`
		StartTime  time.Time  `json:"startTime" validate:"required"`
		EndTime    *time.Time `json:"endTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 只给出开始时间时使用默认时长
	var window domain.BookingWindow
	if req.EndTime == nil {
		window = domain.NewBookingWindow(req.StartTime)
	} else {
		var err error
		window, err = domain.NewCustomBookingWindow(req.StartTime, *req.EndTime)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	member, err := h.repository.GetMemberByID(req.MemberID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "会员不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	capacity, err := h.currentCapacity(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 人数超过容量的预订在任何时刻都无法被接纳，
	// 必须在进入建议时间的流程之前被拒绝
	if req.NumPersons > capacity.Value() {
		h.errorResponse(w, r, domain.ErrPartySizeExceedsCapacity.Error())
		return
	}

	existing, err := h.repository.GetAllBookings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	candidate := &domain.Booking{
		MemberID:   member.ID,
		NumPersons: req.NumPersons,
		StartTime:  window.Start,
		EndTime:    window.End,
	}

	if !scheduler.CanAddBooking(capacity, candidate, existing) {
		h.rejectBooking(w, r, member, candidate, existing, capacity)
		return
	}

	if err := h.repository.CreateBooking(candidate); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "bookings_member_id_fkey":
				h.errorResponse(w, r, "会员不存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 向会员发送确认邮件
	mailMessage := domain.MailMessage{
		Type: "booking_confirmed",
		To:   member.Email,
		Data: domain.BookingConfirmedMailData{
			FullName:   member.FullName,
			StartTime:  candidate.StartTime.Format(bookingTimeLayout),
			EndTime:    candidate.EndTime.Format(bookingTimeLayout),
			NumPersons: candidate.NumPersons,
		},
	}

	if err := h.queueMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "预订成功", candidate)
}

func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NumPersons *int32     `json:"numPersons" validate:"omitempty,min=1"`
		StartTime  *time.Time `json:"startTime"`
		EndTime    *time.Time `json:"endTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	booking := r.Context().Value(BookingCtx).(*domain.Booking)

	// 修改即整体替换：在旧值的基础上构造新的预订，再校验能否被接纳
	replacement := *booking
	if req.NumPersons != nil {
		replacement.NumPersons = *req.NumPersons
	}
	switch {
	case req.StartTime != nil && req.EndTime == nil:
		// 只改开始时间时保持原有时长
		duration := booking.EndTime.Sub(booking.StartTime)
		replacement.StartTime = *req.StartTime
		replacement.EndTime = req.StartTime.Add(duration)
	case req.StartTime != nil || req.EndTime != nil:
		start := booking.StartTime
		if req.StartTime != nil {
			start = *req.StartTime
		}
		end := booking.EndTime
		if req.EndTime != nil {
			end = *req.EndTime
		}
		window, err := domain.NewCustomBookingWindow(start, end)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		replacement.StartTime = window.Start
		replacement.EndTime = window.End
	}

	capacity, err := h.currentCapacity(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if replacement.NumPersons > capacity.Value() {
		h.errorResponse(w, r, domain.ErrPartySizeExceedsCapacity.Error())
		return
	}

	all, err := h.repository.GetAllBookings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 替换语义：先从现有预订中挖掉旧值，再校验新值
	rest := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if b.ID != booking.ID {
			rest = append(rest, b)
		}
	}

	if !scheduler.CanAddBooking(capacity, &replacement, rest) {
		member, err := h.repository.GetMemberByID(booking.MemberID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.rejectBooking(w, r, member, &replacement, rest, capacity)
		return
	}

	if err := h.repository.UpdateBooking(&replacement); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新预订失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新预订成功", &replacement)
}

func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	booking := r.Context().Value(BookingCtx).(*domain.Booking)

	if err := h.repository.DeleteBooking(booking.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除预订成功", nil)
}

// rejectBooking 拒绝一个无法被接纳的预订，并在响应和邮件中附上建议的替代时间
func (h *Handler) rejectBooking(w http.ResponseWriter, r *http.Request, member *domain.Member, candidate *domain.Booking, existing []*domain.Booking, capacity domain.Capacity) {
	suggested, err := scheduler.SuggestNextAvailableTime(capacity, candidate, existing)
	if err != nil {
		// 前置条件已经检查过，这里出错说明存量数据已经不一致
		h.internalServerError(w, r, err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "booking_rejected",
		To:   member.Email,
		Data: domain.BookingRejectedMailData{
			FullName:      member.FullName,
			StartTime:     candidate.StartTime.Format(bookingTimeLayout),
			NumPersons:    candidate.NumPersons,
			SuggestedTime: suggested.Format(bookingTimeLayout),
		},
	}

	if err := h.queueMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.errorResponseWithData(w, r, domain.ErrCapacityExceeded.Error(), map[string]any{
		"suggestedTime": suggested,
	})
}
