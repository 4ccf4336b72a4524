package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/scheduler"
)

func (h *Handler) GetUserShifts(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	shifts, err := h.repository.GetShiftsByUserID(user.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次列表成功", shifts)
}

func (h *Handler) AddUserShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDay  int32  `json:"startDay" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
		EndDay    int32  `json:"endDay" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift, err := domain.NewShift(req.StartDay, req.StartTime, req.EndDay, req.EndTime)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	user := r.Context().Value(UserInfoCtx).(*domain.User)

	existing, err := h.repository.GetShiftsByUserID(user.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	roster, err := scheduler.NewShiftRosterFromShifts(existing)
	if err != nil {
		// 数据库中已有的班次互相冲突，说明存量数据已经损坏
		h.internalServerError(w, r, err)
		return
	}

	roster, err = roster.AddShift(shift)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleConflict):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.CreateShift(user.ID, shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "添加班次成功", roster.Shifts())
}

func (h *Handler) DeleteUserShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDay  int32  `json:"startDay" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
		EndDay    int32  `json:"endDay" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift, err := domain.NewShift(req.StartDay, req.StartTime, req.EndDay, req.EndTime)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	user := r.Context().Value(UserInfoCtx).(*domain.User)

	existing, err := h.repository.GetShiftsByUserID(user.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	roster, err := scheduler.NewShiftRosterFromShifts(existing)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if !roster.Contains(shift) {
		h.errorResponse(w, r, "班次不存在")
		return
	}

	roster = roster.DeleteShift(shift)

	if err := h.repository.DeleteShift(user.ID, shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除班次成功", roster.Shifts())
}
