package scheduler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

func TestShiftRosterAddShift(t *testing.T) {
	roster := NewShiftRoster()

	morning := mustShift(t, domain.Monday, "09:00", domain.Monday, "12:00")
	evening := mustShift(t, domain.Monday, "18:00", domain.Monday, "22:00")
	weekend := mustShift(t, domain.Saturday, "10:00", domain.Sunday, "02:00")

	var err error
	for _, shift := range []domain.Shift{evening, weekend, morning} {
		roster, err = roster.AddShift(shift)
		if err != nil {
			t.Fatalf("AddShift(%v) error = %v", shift, err)
		}
	}

	// 班次按 (起始日, 起始时间) 排序
	want := []domain.Shift{morning, evening, weekend}
	if got := roster.Shifts(); !reflect.DeepEqual(got, want) {
		t.Errorf("Shifts() = %v, want %v", got, want)
	}

	// 集合中任意两个班次互不冲突
	shifts := roster.Shifts()
	for i := 0; i < len(shifts); i++ {
		for j := i + 1; j < len(shifts); j++ {
			if ConflictsWith(shifts[i], shifts[j]) {
				t.Errorf("集合中存在冲突的班次: %v 和 %v", shifts[i], shifts[j])
			}
		}
	}
}

func TestShiftRosterAddShiftConflict(t *testing.T) {
	roster := NewShiftRoster()

	existing := mustShift(t, domain.Monday, "09:00", domain.Monday, "17:00")
	roster, err := roster.AddShift(existing)
	if err != nil {
		t.Fatalf("AddShift() error = %v", err)
	}
	before := roster.Shifts()

	conflicting := mustShift(t, domain.Monday, "16:00", domain.Monday, "20:00")
	_, err = roster.AddShift(conflicting)
	if !errors.Is(err, domain.ErrScheduleConflict) {
		t.Fatalf("AddShift() error = %v, want %v", err, domain.ErrScheduleConflict)
	}

	// 被拒绝的 AddShift 不能修改原有的集合
	if got := roster.Shifts(); !reflect.DeepEqual(got, before) {
		t.Errorf("被拒绝之后集合发生了变化: %v, want %v", got, before)
	}
}

func TestShiftRosterDeleteShift(t *testing.T) {
	morning := mustShift(t, domain.Monday, "09:00", domain.Monday, "12:00")
	evening := mustShift(t, domain.Monday, "18:00", domain.Monday, "22:00")

	roster, err := NewShiftRosterFromShifts([]domain.Shift{morning, evening})
	if err != nil {
		t.Fatalf("NewShiftRosterFromShifts() error = %v", err)
	}

	next := roster.DeleteShift(morning)
	if next.Contains(morning) {
		t.Error("删除之后集合中仍然存在该班次")
	}
	if !next.Contains(evening) {
		t.Error("删除操作移除了其他班次")
	}

	// 原有的集合保持不变
	if !roster.Contains(morning) {
		t.Error("删除操作修改了原有的集合")
	}

	// 删除不存在的班次等价于复制一份
	absent := mustShift(t, domain.Friday, "10:00", domain.Friday, "12:00")
	unchanged := next.DeleteShift(absent)
	if !reflect.DeepEqual(unchanged.Shifts(), next.Shifts()) {
		t.Errorf("删除不存在的班次改变了集合: %v, want %v", unchanged.Shifts(), next.Shifts())
	}
}

func TestNewShiftRosterFromShifts(t *testing.T) {
	a := mustShift(t, domain.Monday, "09:00", domain.Monday, "12:00")
	b := mustShift(t, domain.Monday, "11:00", domain.Monday, "14:00")

	if _, err := NewShiftRosterFromShifts([]domain.Shift{a, b}); !errors.Is(err, domain.ErrScheduleConflict) {
		t.Errorf("NewShiftRosterFromShifts() error = %v, want %v", err, domain.ErrScheduleConflict)
	}
}
