package repository

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/dhruvp2403/samajportal/internal/constant"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type MemberRepository struct {
	Log      *zap.Logger
	DB       *pgxpool.Pool
	DBObject *minio.Client
}

func NewMemberRepository(zap *zap.Logger, db *pgxpool.Pool, minio *minio.Client) *MemberRepository {
	return &MemberRepository{
		Log:      zap,
		DB:       db,
		DBObject: minio,
	}
}

const memberColumns = `id, full_name, father_name, mother_name, date_of_birth, gender, marital_status,
	address, city, state, pincode, gotra, sub_caste, qualification, occupation, blood_group,
	mobile, email, profile_picture_key, registration_status, create_datetime, update_datetime,
	approved_by, approved_at`

func scanMember(row pgx.Row) (model.Member, error) {
	member := model.Member{}
	err := row.Scan(&member.Id, &member.FullName, &member.FatherName, &member.MotherName,
		&member.DateOfBirth, &member.Gender, &member.MaritalStatus, &member.Address,
		&member.City, &member.State, &member.Pincode, &member.Gotra, &member.SubCaste,
		&member.Qualification, &member.Occupation, &member.BloodGroup, &member.Mobile,
		&member.Email, &member.ProfilePictureKey, &member.RegistrationStatus,
		&member.CreateDatetime, &member.UpdateDatetime, &member.ApprovedBy, &member.ApprovedAt)
	return member, err
}

// Postgresql
func (repository *MemberRepository) Register(ctx context.Context, member model.Member) error {
	query := `INSERT INTO members (` + memberColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)`

	_, err := repository.DB.Exec(ctx, query, member.Id, member.FullName, member.FatherName,
		member.MotherName, member.DateOfBirth, member.Gender, member.MaritalStatus,
		member.Address, member.City, member.State, member.Pincode, member.Gotra,
		member.SubCaste, member.Qualification, member.Occupation, member.BloodGroup,
		member.Mobile, member.Email, member.ProfilePictureKey, member.RegistrationStatus,
		member.CreateDatetime, member.UpdateDatetime, member.ApprovedBy, member.ApprovedAt)
	if err != nil {
		return &model.PersistenceError{
			Code:    constant.ERR_PERSISTENCE_ERROR_CODE,
			Message: "Failed to persist member record",
		}
	}

	return nil
}

func (repository *MemberRepository) GetById(ctx context.Context, id uuid.UUID) (model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id=$1 LIMIT 1`

	member, err := scanMember(repository.DB.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member, &model.NotFoundError{
				Code:    constant.ERR_NOT_FOUND_ERROR,
				Message: "Member not found",
				Param:   "memberId",
			}
		}
		return member, err
	}

	return member, nil
}

// UpdateStatus rewrites the full status variant: approval audit fields are
// set on transition into approved and cleared on any other transition, so a
// non-approved row can never carry stale approval metadata. Zero affected
// rows means the member id does not exist.
func (repository *MemberRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, approvedBy *uuid.UUID, approvedAt *time.Time, updateDatetime time.Time) error {
	query := `UPDATE members
		SET registration_status=$1, approved_by=$2, approved_at=$3, update_datetime=$4
		WHERE id=$5`

	tag, err := repository.DB.Exec(ctx, query, status, approvedBy, approvedAt, updateDatetime, id)
	if err != nil {
		return &model.PersistenceError{
			Code:    constant.ERR_PERSISTENCE_ERROR_CODE,
			Message: "Failed to update member status",
		}
	}

	if tag.RowsAffected() == 0 {
		return &model.NotFoundError{
			Code:    constant.ERR_NOT_FOUND_ERROR,
			Message: "Member not found",
			Param:   "memberId",
		}
	}

	return nil
}

// Delete removes the record permanently. Zero affected rows is an error,
// not a silent success, so stale UI state referencing an already-deleted id
// is surfaced to the caller.
func (repository *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM members WHERE id=$1"

	tag, err := repository.DB.Exec(ctx, query, id)
	if err != nil {
		return &model.PersistenceError{
			Code:    constant.ERR_PERSISTENCE_ERROR_CODE,
			Message: "Failed to delete member record",
		}
	}

	if tag.RowsAffected() == 0 {
		return &model.NotFoundError{
			Code:    constant.ERR_NOT_FOUND_ERROR,
			Message: "Member not found",
			Param:   "memberId",
		}
	}

	return nil
}

func (repository *MemberRepository) List(ctx context.Context) ([]model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY create_datetime DESC`

	rows, err := repository.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (repository *MemberRepository) ListApproved(ctx context.Context) ([]model.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE registration_status=$1 ORDER BY create_datetime DESC`

	rows, err := repository.DB.Query(ctx, query, model.StatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// CountByStatus recomputes the stats from the current population on every
// call, so total always equals pending + approved + rejected at read time.
func (repository *MemberRepository) CountByStatus(ctx context.Context) (model.MemberStats, error) {
	query := "SELECT registration_status, COUNT(*) FROM members GROUP BY registration_status"

	stats := model.MemberStats{}
	rows, err := repository.DB.Query(ctx, query)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return stats, err
		}

		switch status {
		case model.StatusPending:
			stats.Pending = count
		case model.StatusApproved:
			stats.Approved = count
		case model.StatusRejected:
			stats.Rejected = count
		}
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	stats.Total = stats.Pending + stats.Approved + stats.Rejected

	return stats, nil
}

// MinIO - Object storage
func (repository *MemberRepository) UploadProfileObject(ctx context.Context, bucketName string, objectName string, imageFile *bytes.Reader, imageSize int64) error {
	_, err := repository.DBObject.PutObject(ctx, bucketName, objectName, imageFile, imageSize,
		minio.PutObjectOptions{
			ContentType:  "image/webp",
			CacheControl: "public, max-age=31536000, immutable",
		})
	if err != nil {
		return &model.UploadError{
			Code:    constant.ERR_UPLOAD_ERROR_CODE,
			Message: "Failed to upload profile picture to object storage",
		}
	}

	return nil
}
