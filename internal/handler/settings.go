package handler

import (
	"context"
	"net/http"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/scheduler"
)

const capacityCacheKey = "restaurant_capacity"

// currentCapacity 优先从 Redis 缓存读取容量，缓存未命中时回源数据库并回填
func (h *Handler) currentCapacity(ctx context.Context) (domain.Capacity, error) {
	cached, err := h.redisClient.Get(ctx, capacityCacheKey).Int()
	if err == nil {
		if capacity, err := domain.NewCapacity(int32(cached)); err == nil {
			return capacity, nil
		}
	}

	capacity, err := h.repository.GetCapacity()
	if err != nil {
		return domain.Capacity{}, err
	}

	if err := h.redisClient.Set(ctx, capacityCacheKey, int(capacity.Value()), 0).Err(); err != nil {
		return domain.Capacity{}, err
	}

	return capacity, nil
}

func (h *Handler) GetCapacity(w http.ResponseWriter, r *http.Request) {
	capacity, err := h.currentCapacity(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取餐厅容量成功", map[string]any{
		"capacity": capacity.Value(),
	})
}

func (h *Handler) UpdateCapacity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Capacity int32 `json:"capacity" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	capacity, err := domain.NewCapacity(req.Capacity)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	// 调小容量前必须确认现有预订在新容量下仍然全部可以被容纳
	bookings, err := h.repository.GetAllBookings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if !scheduler.CanAccommodate(capacity, bookings) {
		h.errorResponse(w, r, "新的容量无法容纳现有预订")
		return
	}

	if err := h.repository.UpdateCapacity(capacity); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.redisClient.Set(r.Context(), capacityCacheKey, int(capacity.Value()), 0).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新餐厅容量成功", map[string]any{
		"capacity": capacity.Value(),
	})
}
