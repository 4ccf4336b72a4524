package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

// GetShiftsByUserID 返回一名员工的所有班次，按 (起始日, 起始时间) 排序，
// 和 roster 的排序保持一致
func (r *Repository) GetShiftsByUserID(userID int64) ([]domain.Shift, error) {
	query := `
		SELECT start_day, to_char(start_time, 'HH24:MI'), end_day, to_char(end_time, 'HH24:MI')
		FROM shifts WHERE user_id = $1
		ORDER BY start_day, start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]domain.Shift, 0)
	for rows.Next() {
		shift := domain.Shift{}
		dst := []any{&shift.StartDay, &shift.StartTime, &shift.EndDay, &shift.EndTime}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) CreateShift(userID int64, shift domain.Shift) error {
	query := `
		INSERT INTO shifts (user_id, start_day, start_time, end_day, end_time)
		VALUES ($1, $2, $3, $4, $5)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{userID, shift.StartDay, shift.StartTime, shift.EndDay, shift.EndTime}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

// DeleteShift 删除一名员工的一个班次，最多删除一条匹配的记录
func (r *Repository) DeleteShift(userID int64, shift domain.Shift) error {
	query := `
		DELETE FROM shifts WHERE id = (
			SELECT id FROM shifts
			WHERE user_id = $1 AND start_day = $2 AND start_time = $3 AND end_day = $4 AND end_time = $5
			LIMIT 1
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{userID, shift.StartDay, shift.StartTime, shift.EndDay, shift.EndTime}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}
