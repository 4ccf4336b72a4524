package domain

import (
	"fmt"
	"time"
)

// ShiftTimeLayout 是班次时间的格式，必须是补零的 24 小时制，
// 这样字符串比较和时间先后比较是一致的
const ShiftTimeLayout = "15:04"

// 一周的天数采用 ISO 编号，周一为 1，周日为 7
const (
	Monday int32 = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Shift 表示一名员工的一个每周重复的班次。
// 班次从 (StartDay, StartTime) 开始沿一周向后延伸直到 (EndDay, EndTime)，
// 允许跨过周日到周一的边界（例如周六晚班上到周日早上）。
// 构造成功后不可变，修改班次即整体替换
type Shift struct {
	StartDay  int32  `json:"startDay"`
	StartTime string `json:"startTime"`
	EndDay    int32  `json:"endDay"`
	EndTime   string `json:"endTime"`
}

// NewShift 构造一个班次并校验它的构造约束，
// 不满足约束的班次不会进入任何集合
func NewShift(startDay int32, startTime string, endDay int32, endTime string) (Shift, error) {
	if !IsValidWeekday(startDay) || !IsValidWeekday(endDay) {
		return Shift{}, fmt.Errorf("星期必须是 1（周一）到 7（周日）之间的整数")
	}
	if !IsValidShiftTime(startTime) || !IsValidShiftTime(endTime) {
		return Shift{}, fmt.Errorf("班次时间必须是 %s 格式", ShiftTimeLayout)
	}
	if !IsValidShift(startDay, startTime, endDay, endTime) {
		return Shift{}, ErrInvalidInterval
	}

	return Shift{
		StartDay:  startDay,
		StartTime: startTime,
		EndDay:    endDay,
		EndTime:   endTime,
	}, nil
}

func IsValidWeekday(day int32) bool {
	return day >= Monday && day <= Sunday
}

func IsValidShiftTime(s string) bool {
	parsed, err := time.Parse(ShiftTimeLayout, s)
	if err != nil {
		return false
	}
	// time.Parse 接受没有补零的小时，重新格式化比较一次排除掉这种情况
	return parsed.Format(ShiftTimeLayout) == s
}

// IsValidShift 检查班次的时长是否为正：
// 起止在同一天时结束时间必须晚于开始时间，起止在不同天时任意时间组合都合法
// （此时班次被解释为从起点出发沿一周向后直到终点，必要时跨过周界）
func IsValidShift(startDay int32, startTime string, endDay int32, endTime string) bool {
	if startDay == endDay {
		return endTime > startTime
	}
	return true
}

// IsWrapping 返回班次是否跨过了周日到周一的边界
func (s Shift) IsWrapping() bool {
	return s.StartDay > s.EndDay
}

// Compare 按 (StartDay, StartTime) 比较两个班次的先后，用于排序
func (s Shift) Compare(other Shift) int {
	if s.StartDay != other.StartDay {
		return int(s.StartDay - other.StartDay)
	}
	switch {
	case s.StartTime < other.StartTime:
		return -1
	case s.StartTime > other.StartTime:
		return 1
	default:
		return 0
	}
}

func (s Shift) String() string {
	return fmt.Sprintf("周%s %s 至 周%s %s",
		weekdayNames[s.StartDay], s.StartTime, weekdayNames[s.EndDay], s.EndTime)
}

var weekdayNames = map[int32]string{
	Monday:    "一",
	Tuesday:   "二",
	Wednesday: "三",
	Thursday:  "四",
	Friday:    "五",
	Saturday:  "六",
	Sunday:    "日",
}
