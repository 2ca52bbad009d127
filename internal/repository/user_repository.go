package repository

import (
	"context"
	"fmt"

	"task-report/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	pool   *pgxpool.Pool
	tables Tables
}

func NewUserRepository(pool *pgxpool.Pool, tables Tables) *UserRepository {
	return &UserRepository{pool: pool, tables: tables}
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := sqlx.Rebind(sqlx.DOLLAR, listUsersQuery(r.tables))

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Role); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
