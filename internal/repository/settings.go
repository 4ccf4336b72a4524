package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

// EnsureSettings 确保餐厅设置行存在，不存在时用默认容量初始化。
// 设置只有一行，主键固定为 1
func (r *Repository) EnsureSettings(defaultCapacity int32) error {
	query := `
		INSERT INTO restaurant_settings (id, capacity)
		VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, defaultCapacity); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetCapacity() (domain.Capacity, error) {
	query := `
		SELECT capacity FROM restaurant_settings WHERE id = 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var value int32
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&value); err != nil {
		return domain.Capacity{}, err
	}

	return domain.NewCapacity(value)
}

func (r *Repository) UpdateCapacity(capacity domain.Capacity) error {
	query := `
		UPDATE restaurant_settings SET capacity = $1 WHERE id = 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, capacity.Value()); err != nil {
		return err
	}

	return nil
}
