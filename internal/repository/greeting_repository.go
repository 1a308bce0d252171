package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dhruvp2403/samajportal/internal/constant"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/google/uuid"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type GreetingRepository struct {
	Log *zap.Logger
	DB  *pgxpool.Pool
}

func NewGreetingRepository(zap *zap.Logger, db *pgxpool.Pool) *GreetingRepository {
	return &GreetingRepository{
		Log: zap,
		DB:  db,
	}
}

func (repository *GreetingRepository) CheckMemberExists(ctx context.Context, memberId uuid.UUID) (int, error) {
	query := "SELECT 1 FROM members WHERE id=$1"

	var exists int
	err := repository.DB.QueryRow(ctx, query, memberId).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exists, nil
		}

		return exists, err
	}

	return exists, nil
}

// Create persists a greeting unconditionally: flagged greetings are stored
// for audit, they just never come back from the approved reads.
func (repository *GreetingRepository) Create(ctx context.Context, greeting model.Greeting) error {
	query := `INSERT INTO greetings (id, member_id, sender_name, message, is_approved, create_datetime)
		VALUES ($1,$2,$3,$4,$5,$6)`

	_, err := repository.DB.Exec(ctx, query, greeting.Id, greeting.MemberId, greeting.SenderName,
		greeting.Message, greeting.IsApproved, greeting.CreateDatetime)
	if err != nil {
		return &model.PersistenceError{
			Code:    constant.ERR_PERSISTENCE_ERROR_CODE,
			Message: "Failed to persist greeting",
		}
	}

	return nil
}

func (repository *GreetingRepository) ListApproved(ctx context.Context, memberId uuid.UUID) ([]model.GreetingResponse, error) {
	query := `SELECT id, member_id, sender_name, message, create_datetime
		FROM greetings
		WHERE member_id=$1 AND is_approved=TRUE
		ORDER BY create_datetime DESC`

	rows, err := repository.DB.Query(ctx, query, memberId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	greetings := []model.GreetingResponse{}
	for rows.Next() {
		greeting := model.GreetingResponse{}
		err := rows.Scan(&greeting.Id, &greeting.MemberId, &greeting.SenderName,
			&greeting.Message, &greeting.CreateDatetime)
		if err != nil {
			return nil, err
		}
		greetings = append(greetings, greeting)
	}

	return greetings, rows.Err()
}

func (repository *GreetingRepository) CountApproved(ctx context.Context, memberId uuid.UUID) (int, error) {
	query := "SELECT COUNT(*) FROM greetings WHERE member_id=$1 AND is_approved=TRUE"

	var count int
	err := repository.DB.QueryRow(ctx, query, memberId).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (repository *GreetingRepository) CountRecentApproved(ctx context.Context, since time.Time) (int, error) {
	query := "SELECT COUNT(*) FROM greetings WHERE is_approved=TRUE AND create_datetime >= $1"

	var count int
	err := repository.DB.QueryRow(ctx, query, since).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
