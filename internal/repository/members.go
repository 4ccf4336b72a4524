package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/restaurant-book/backend/internal/domain"
)

func (r *Repository) GetAllMembers() ([]*domain.Member, error) {
	query := `
		SELECT id, full_name, phone, email, loyalty_points, created_at, version
		FROM members ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		member := &domain.Member{}
		dst := []any{&member.ID, &member.FullName, &member.Phone, &member.Email, &member.LoyaltyPoints, &member.CreatedAt, &member.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *Repository) GetMemberByID(id int64) (*domain.Member, error) {
	query := `
		SELECT full_name, phone, email, loyalty_points, created_at, version
		FROM members WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	member := &domain.Member{
		ID: id,
	}

	dst := []any{&member.FullName, &member.Phone, &member.Email, &member.LoyaltyPoints, &member.CreatedAt, &member.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return member, nil
}

func (r *Repository) CreateMember(member *domain.Member) error {
	query := `
		INSERT INTO members (full_name, phone, email)
		VALUES ($1, $2, $3)
		RETURNING id, loyalty_points, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{member.FullName, member.Phone, member.Email}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&member.ID, &member.LoyaltyPoints, &member.CreatedAt, &member.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateMember(member *domain.Member) error {
	query := `
		UPDATE members
		SET
			full_name = $1,
			phone = $2,
			email = $3,
			loyalty_points = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{member.FullName, member.Phone, member.Email, member.LoyaltyPoints, member.ID, member.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&member.CreatedAt, &member.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteMember(id int64) error {
	query := `
		DELETE FROM members WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
