package seed

import (
	"log/slog"
	"math/rand"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/repository"
	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/scheduler"
	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/utils"
)

// SeedUsers 插入 n 个随机员工
func SeedUsers(r *repository.Repository, n int, password string, emailDomain string) int {
	cnt := 0
	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(password, emailDomain)
		if err != nil {
			slog.Error("无法生成随机员工", slog.String("error", err.Error()))
			continue
		}

		if err := r.CreateUser(user); err != nil {
			slog.Error("无法插入员工", slog.String("error", err.Error()))
			continue
		}

		cnt++
	}
	return cnt
}

// SeedMembers 插入 n 个随机会员
func SeedMembers(r *repository.Repository, n int, emailDomain string) int {
	cnt := 0
	for i := 0; i < n; i++ {
		member := utils.GenerateRandomMember(emailDomain)
		if err := r.CreateMember(member); err != nil {
			slog.Error("无法插入会员", slog.String("error", err.Error()))
			continue
		}

		cnt++
	}
	return cnt
}

// SeedShifts 为每个员工插入最多 n 个互不冲突的随机班次
func SeedShifts(r *repository.Repository, n int) int {
	users, err := r.GetAllUsers()
	if err != nil {
		slog.Error("无法获取所有员工", slog.String("error", err.Error()))
		return 0
	}

	cnt := 0
	for _, user := range users {
		existing, err := r.GetShiftsByUserID(user.ID)
		if err != nil {
			slog.Error("无法获取员工的班次", slog.String("error", err.Error()))
			continue
		}

		roster, err := scheduler.NewShiftRosterFromShifts(existing)
		if err != nil {
			slog.Error("员工现有班次互相冲突", slog.Int64("user_id", user.ID))
			continue
		}

		// 随机生成的班次可能与已有班次冲突，冲突时直接丢弃重试
		inserted := 0
		for attempt := 0; inserted < n && attempt < n*10; attempt++ {
			shift := utils.GenerateRandomShift()

			next, err := roster.AddShift(shift)
			if err != nil {
				continue
			}

			if err := r.CreateShift(user.ID, shift); err != nil {
				slog.Error("无法插入班次", slog.String("error", err.Error()))
				continue
			}

			roster = next
			inserted++
			cnt++
		}
	}
	return cnt
}

// SeedBookings 插入最多 n 个能被当前容量接纳的随机预订
func SeedBookings(r *repository.Repository, n int) int {
	members, err := r.GetAllMembers()
	if err != nil {
		slog.Error("无法获取所有会员", slog.String("error", err.Error()))
		return 0
	}
	if len(members) == 0 {
		slog.Error("数据库中没有会员，请先插入会员")
		return 0
	}

	capacity, err := r.GetCapacity()
	if err != nil {
		slog.Error("无法获取餐厅容量", slog.String("error", err.Error()))
		return 0
	}

	existing, err := r.GetAllBookings()
	if err != nil {
		slog.Error("无法获取所有预订", slog.String("error", err.Error()))
		return 0
	}

	cnt := 0
	for attempt := 0; cnt < n && attempt < n*10; attempt++ {
		member := members[rand.Intn(len(members))]
		booking := utils.GenerateRandomBooking(member.ID)

		if !scheduler.CanAddBooking(capacity, booking, existing) {
			continue
		}

		if err := r.CreateBooking(booking); err != nil {
			slog.Error("无法插入预订", slog.String("error", err.Error()))
			continue
		}

		existing = append(existing, booking)
		cnt++
	}
	return cnt
}
