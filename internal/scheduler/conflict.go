package scheduler

import (
	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

// ConflictsWith 判断两个每周重复的班次是否在 7 天循环上重叠。
// 按班次是否跨过周日到周一的边界分成三种情况分别处理，
// 这个关系是对称的：ConflictsWith(a, b) == ConflictsWith(b, a)
func ConflictsWith(a domain.Shift, b domain.Shift) bool {
	switch {
	case !a.IsWrapping() && !b.IsWrapping():
		return linearOverlap(a, b)
	case a.IsWrapping() && b.IsWrapping():
		// 两个班次都跨周界时，各自的天数范围都超过了半周，必然重叠
		return true
	case a.IsWrapping():
		return wrappingOverlap(a, b)
	default:
		return wrappingOverlap(b, a)
	}
}

// pointBefore 按 (星期, 时间) 的字典序比较一周内的两个时间点，
// 时间字符串是补零的 HH:MM，直接比较即可
func pointBefore(day1 int32, time1 string, day2 int32, time2 string) bool {
	if day1 != day2 {
		return day1 < day2
	}
	return time1 < time2
}

// linearOverlap 处理两个都不跨周界的班次：
// 退化为一条直线上两个左闭右开区间的相交判断，
// 一个班次恰好在另一个班次开始的时刻结束时不算冲突
func linearOverlap(a domain.Shift, b domain.Shift) bool {
	return pointBefore(a.StartDay, a.StartTime, b.EndDay, b.EndTime) &&
		pointBefore(b.StartDay, b.StartTime, a.EndDay, a.EndTime)
}

// wrappingOverlap 处理 w 跨周界而 o 不跨的情况。
// w 的天数范围分成两段：起始日到周日，和周一到结束日。
// 只有当 o 的天数范围与两段都错开时才不冲突；
// o 恰好只接在某一段的边界日上时，再用当天的时间判定（同样左闭右开）；
// o 同时接上两段时它的中间部分必然落在 w 内，无条件冲突
func wrappingOverlap(w domain.Shift, o domain.Shift) bool {
	touchesHead := o.EndDay >= w.StartDay  // o 的结尾伸到了 w 的起始段
	touchesTail := o.StartDay <= w.EndDay  // o 的开头落在了 w 的结尾段

	switch {
	case !touchesHead && !touchesTail:
		return false
	case touchesHead && touchesTail:
		return true
	case touchesHead:
		// o 结束在 w 的起始段：只有恰好接在起始日且当天时间错开才不冲突
		return o.EndDay > w.StartDay || o.EndTime > w.StartTime
	default:
		// o 开始在 w 的结尾段：只有恰好接在结束日且当天时间错开才不冲突
		return o.StartDay < w.EndDay || o.StartTime < w.EndTime
	}
}
