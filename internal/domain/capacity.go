package domain

const (
	// MaxCapacity 是餐厅容量的上限
	MaxCapacity = 10000
	// DefaultCapacity 是未设置容量时的默认值
	DefaultCapacity = 200
)

// Capacity 表示餐厅在任意时刻能同时容纳的最大人数，
// 是一个不可变的值类型，修改容量即替换为新的值
type Capacity struct {
	value int32
}

// NewCapacity 构造一个容量值，取值必须在 1 到 MaxCapacity 之间
func NewCapacity(value int32) (Capacity, error) {
	if !IsValidCapacity(value) {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{value: value}, nil
}

// NewDefaultCapacity 返回默认容量
func NewDefaultCapacity() Capacity {
	return Capacity{value: DefaultCapacity}
}

func IsValidCapacity(value int32) bool {
	return value > 0 && value <= MaxCapacity
}

func (c Capacity) Value() int32 {
	return c.value
}
