package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

func (h *Handler) GetAllMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.repository.GetAllMembers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取会员列表成功", members)
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullName" validate:"required"`
		Phone    string `json:"phone" validate:"required,e164"`
		Email    string `json:"email" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	member := &domain.Member{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	}

	if err := h.repository.CreateMember(member); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "members_phone_key":
				h.badRequest(w, r, errors.New("该手机号已注册会员"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "会员创建成功", member)
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	member := r.Context().Value(MemberInfoCtx).(*domain.Member)
	h.successResponse(w, r, "获取会员信息成功", member)
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName      *string `json:"fullName"`
		Phone         *string `json:"phone" validate:"omitempty,e164"`
		Email         *string `json:"email" validate:"omitempty,email"`
		LoyaltyPoints *int32  `json:"loyaltyPoints" validate:"omitempty,min=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	member := r.Context().Value(MemberInfoCtx).(*domain.Member)

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.LoyaltyPoints != nil {
		member.LoyaltyPoints = *req.LoyaltyPoints
	}

	if err := h.repository.UpdateMember(member); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新会员信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新会员信息成功", member)
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	member := r.Context().Value(MemberInfoCtx).(*domain.Member)

	if err := h.repository.DeleteMember(member.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除会员成功", nil)
}
