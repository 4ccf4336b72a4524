package domain

import "errors"

var (
	// ErrInvalidInterval 表示预订时段或者班次不满足构造约束（时长不为正）
	ErrInvalidInterval = errors.New("时间段的结束时间必须晚于开始时间")

	// ErrInvalidCapacity 表示容量值不在 1 到 MaxCapacity 之间
	ErrInvalidCapacity = errors.New("容量必须是 1 到 10000 之间的整数")

	// ErrCapacityExceeded 表示接纳这个预订会在某个时刻超出餐厅容量
	ErrCapacityExceeded = errors.New("该时段餐厅已满")

	// ErrPartySizeExceedsCapacity 表示单个预订的人数就已经超过了餐厅容量，
	// 这种预订在任何时刻都无法被接纳，必须在建议时间之前被拒绝
	ErrPartySizeExceedsCapacity = errors.New("预订人数超过餐厅容量")

	// ErrScheduleConflict 表示新班次和该员工已有的班次在时间上重叠
	ErrScheduleConflict = errors.New("班次与已有班次冲突")

	// ErrBookingsOverCapacity 表示传入的已有预订本身就不满足容量约束，
	// 属于调用方的错误而不是普通的不可行
	ErrBookingsOverCapacity = errors.New("已有预订不满足容量约束")

	// ErrNoSuggestion 表示建议算法遍历了所有候选时间都没有找到可行解。
	// 在前置条件成立的情况下这不可能发生，出现则说明调用方传入的状态已经损坏
	ErrNoSuggestion = errors.New("无法找到可用的预订时间")
)
