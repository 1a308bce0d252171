package repository

import (
	"context"

	"github.com/dhruvp2403/samajportal/internal/constant"
	"github.com/dhruvp2403/samajportal/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AnnouncementRepository struct {
	Log *zap.Logger
	DB  *pgxpool.Pool
}

func NewAnnouncementRepository(zap *zap.Logger, db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		Log: zap,
		DB:  db,
	}
}

func (repository *AnnouncementRepository) Create(ctx context.Context, announcement model.Announcement) error {
	query := `INSERT INTO announcements (id, type, title, body, payload, create_datetime, create_admin_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := repository.DB.Exec(ctx, query, announcement.Id, announcement.Type, announcement.Title,
		announcement.Body, announcement.Payload, announcement.CreateDatetime, announcement.CreateAdminId)
	if err != nil {
		return &model.PersistenceError{
			Code:    constant.ERR_PERSISTENCE_ERROR_CODE,
			Message: "Failed to persist announcement",
		}
	}

	return nil
}

func (repository *AnnouncementRepository) List(ctx context.Context, typeFilter string, limit int) ([]model.AnnouncementResponse, error) {
	query := `SELECT id, type, title, body, payload, create_datetime
		FROM announcements
		WHERE ($1 = '' OR type = $1)
		ORDER BY create_datetime DESC
		LIMIT $2`

	rows, err := repository.DB.Query(ctx, query, typeFilter, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []model.AnnouncementResponse{}
	for rows.Next() {
		announcement := model.AnnouncementResponse{}
		err := rows.Scan(&announcement.Id, &announcement.Type, &announcement.Title,
			&announcement.Body, &announcement.Payload, &announcement.CreateDatetime)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, announcement)
	}

	return announcements, rows.Err()
}

func (repository *AnnouncementRepository) Count(ctx context.Context) (int, error) {
	query := "SELECT COUNT(*) FROM announcements"

	var count int
	err := repository.DB.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
