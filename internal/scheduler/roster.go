package scheduler

import (
	"slices"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

// ShiftRoster 是一名员工按 (起始日, 起始时间) 排序的班次集合，
// 维护集合内任意两个班次互不冲突的不变量。
// 所有修改操作都返回新的 roster，调用方持有的旧值保持不变
type ShiftRoster struct {
	shifts []domain.Shift
}

// NewShiftRoster 构造一个空的班次集合
func NewShiftRoster() ShiftRoster {
	return ShiftRoster{}
}

// NewShiftRosterFromShifts 从已有的班次列表构造 roster，
// 逐个加入并校验冲突，存在冲突时拒绝构造
func NewShiftRosterFromShifts(shifts []domain.Shift) (ShiftRoster, error) {
	roster := NewShiftRoster()
	for _, shift := range shifts {
		next, err := roster.AddShift(shift)
		if err != nil {
			return ShiftRoster{}, err
		}
		roster = next
	}
	return roster, nil
}

// ConflictsWith 检查 candidate 是否与集合中的任意一个班次冲突
func (r ShiftRoster) ConflictsWith(candidate domain.Shift) bool {
	for _, shift := range r.shifts {
		if ConflictsWith(shift, candidate) {
			return true
		}
	}
	return false
}

// AddShift 返回一个加入了 candidate 的新 roster。
// candidate 与已有班次冲突时返回 ErrScheduleConflict，原 roster 不受影响
func (r ShiftRoster) AddShift(candidate domain.Shift) (ShiftRoster, error) {
	if r.ConflictsWith(candidate) {
		return r, domain.ErrScheduleConflict
	}

	shifts := make([]domain.Shift, 0, len(r.shifts)+1)
	shifts = append(shifts, r.shifts...)
	shifts = append(shifts, candidate)
	slices.SortFunc(shifts, domain.Shift.Compare)

	return ShiftRoster{shifts: shifts}, nil
}

// DeleteShift 返回一个移除了第一个与 target 相等的班次的新 roster。
// target 不在集合中时等价于复制一份，需要「是否存在」语义的调用方
// 应当先用 Contains 检查
func (r ShiftRoster) DeleteShift(target domain.Shift) ShiftRoster {
	shifts := make([]domain.Shift, 0, len(r.shifts))
	deleted := false
	for _, shift := range r.shifts {
		if !deleted && shift == target {
			deleted = true
			continue
		}
		shifts = append(shifts, shift)
	}
	return ShiftRoster{shifts: shifts}
}

// Contains 检查集合中是否存在与 target 相等的班次
func (r ShiftRoster) Contains(target domain.Shift) bool {
	return slices.Contains(r.shifts, target)
}

// Shifts 返回集合中班次的一个副本，保持排序
func (r ShiftRoster) Shifts() []domain.Shift {
	shifts := make([]domain.Shift, len(r.shifts))
	copy(shifts, r.shifts)
	return shifts
}

// Len 返回集合中的班次数量
func (r ShiftRoster) Len() int {
	return len(r.shifts)
}
