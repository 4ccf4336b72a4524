package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

func (r *Repository) GetAllBookings() ([]*domain.Booking, error) {
	query := `
		SELECT id, member_id, num_persons, start_time, end_time, created_at, version
		FROM bookings ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking := &domain.Booking{}
		dst := []any{&booking.ID, &booking.MemberID, &booking.NumPersons, &booking.StartTime, &booking.EndTime, &booking.CreatedAt, &booking.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *Repository) GetBookingByID(id int64) (*domain.Booking, error) {
	query := `
		SELECT member_id, num_persons, start_time, end_time, created_at, version
		FROM bookings WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	booking := &domain.Booking{
		ID: id,
	}

	dst := []any{&booking.MemberID, &booking.NumPersons, &booking.StartTime, &booking.EndTime, &booking.CreatedAt, &booking.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *Repository) GetBookingsByMemberID(memberID int64) ([]*domain.Booking, error) {
	query := `
		SELECT id, num_persons, start_time, end_time, created_at, version
		FROM bookings WHERE member_id = $1 ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking := &domain.Booking{
			MemberID: memberID,
		}
		dst := []any{&booking.ID, &booking.NumPersons, &booking.StartTime, &booking.EndTime, &booking.CreatedAt, &booking.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *Repository) CreateBooking(booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (member_id, num_persons, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{booking.MemberID, booking.NumPersons, booking.StartTime, booking.EndTime}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt, &booking.Version); err != nil {
		return err
	}

	return nil
}

// UpdateBooking 整体替换一个预订的时段和人数，使用乐观锁防止并发修改互相覆盖
func (r *Repository) UpdateBooking(booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET
			num_persons = $1,
			start_time = $2,
			end_time = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING member_id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{booking.NumPersons, booking.StartTime, booking.EndTime, booking.ID, booking.Version}
	dst := []any{&booking.MemberID, &booking.CreatedAt, &booking.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteBooking(id int64) error {
	query := `
		DELETE FROM bookings WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
