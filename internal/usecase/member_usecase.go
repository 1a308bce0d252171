package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dhruvp2403/samajportal/internal/birthday"
	"github.com/dhruvp2403/samajportal/internal/constant"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/dhruvp2403/samajportal/internal/notify"
	"github.com/dhruvp2403/samajportal/internal/observability"
	"github.com/dhruvp2403/samajportal/internal/repository"
	"github.com/dhruvp2403/samajportal/internal/util"
	"github.com/google/uuid"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type MemberUsecase struct {
	MemberRepository *repository.MemberRepository
	Bus              notify.Bus
	Validate         *validator.Validate
	DB               *pgxpool.Pool
	Log              *zap.Logger
	Config           *koanf.Koanf
}

func NewMemberUsecase(memberRepository *repository.MemberRepository, bus notify.Bus, db *pgxpool.Pool, zap *zap.Logger, koanf *koanf.Koanf) *MemberUsecase {
	return &MemberUsecase{
		MemberRepository: memberRepository,
		Bus:              bus,
		Validate:         validator.New(),
		DB:               db,
		Log:              zap,
		Config:           koanf,
	}
}

// Register creates a member in pending status. If a profile picture is
// supplied it goes to object storage first; an upload failure aborts the
// whole registration so no member row exists without its picture.
func (usecase *MemberUsecase) Register(ctx *fiber.Ctx, payload model.MemberRegisterRequest) (model.MemberResponse, error) {
	ctxContext := ctx.Context()
	response := model.MemberResponse{}

	err := usecase.Validate.Struct(payload)
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return response, &model.ValidationError{
				Code:    constant.ERR_VALIDATION_CODE,
				Message: fmt.Sprintf("Field %s failed validation on '%s'", fieldErrors[0].Field(), fieldErrors[0].Tag()),
				Param:   fieldErrors[0].Field(),
			}
		}
		return response, err
	}

	var dateOfBirth *time.Time
	if payload.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", payload.DateOfBirth)
		if err != nil {
			return response, &model.ValidationError{
				Code:    constant.ERR_VALIDATION_CODE,
				Message: "Date of birth must be in YYYY-MM-DD format",
				Param:   "dateOfBirth",
			}
		}
		dateOfBirth = &parsed
	}

	// Absent optional fields get documented defaults so downstream
	// consumers never see partial records.
	if payload.Qualification == "" {
		payload.Qualification = constant.DEFAULT_QUALIFICATION
	}
	if payload.BloodGroup == "" {
		payload.BloodGroup = constant.DEFAULT_BLOOD_GROUP
	}
	if payload.MaritalStatus == "" {
		payload.MaritalStatus = "single"
	}

	var email *string
	if payload.Email != "" {
		email = &payload.Email
	}

	memberId := uuid.New()

	var profilePictureKey *string
	fileHeader, err := ctx.FormFile("profilePicture")
	if err == nil && fileHeader != nil && fileHeader.Size != 0 {
		var imageFile *bytes.Reader
		var imageSize int64
		imageFile, imageSize, err = util.ValidateImage(fileHeader, "profilePicture")
		if err != nil {
			return response, err
		}

		bucketName := usecase.Config.String("MINIO_BUCKET_NAME")
		objectKey := fmt.Sprintf("member/profile/%s.webp", memberId)

		err = usecase.MemberRepository.UploadProfileObject(ctxContext, bucketName, objectKey, imageFile, imageSize)
		if err != nil {
			return response, err
		}

		profilePictureKey = &objectKey
	}

	now := time.Now().UTC()
	member := model.Member{
		Id:                 memberId,
		FullName:           payload.FullName,
		FatherName:         payload.FatherName,
		MotherName:         payload.MotherName,
		DateOfBirth:        dateOfBirth,
		Gender:             payload.Gender,
		MaritalStatus:      payload.MaritalStatus,
		Address:            payload.Address,
		City:               payload.City,
		State:              payload.State,
		Pincode:            payload.Pincode,
		Gotra:              payload.Gotra,
		SubCaste:           payload.SubCaste,
		Qualification:      payload.Qualification,
		Occupation:         payload.Occupation,
		BloodGroup:         payload.BloodGroup,
		Mobile:             payload.Mobile,
		Email:              email,
		ProfilePictureKey:  profilePictureKey,
		RegistrationStatus: model.StatusPending,
		CreateDatetime:     now,
		UpdateDatetime:     now,
	}

	err = usecase.MemberRepository.Register(ctxContext, member)
	if err != nil {
		return response, err
	}

	usecase.Bus.Publish(ctxContext, notify.TopicMembers, notify.ChangeCreated)

	return usecase.toResponse(member), nil
}

// SetStatus transitions the registration status. Any status may move to any
// other; approval audit fields exist only while the member is approved.
func (usecase *MemberUsecase) SetStatus(ctx *fiber.Ctx, memberId uuid.UUID, status string, adminId uuid.UUID) (model.MemberResponse, error) {
	ctxContext := ctx.Context()
	response := model.MemberResponse{}

	if !model.IsValidStatus(status) {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Status must be one of pending, approved or rejected",
			Param:   "status",
		}
	}

	now := time.Now().UTC()

	var approvedBy *uuid.UUID
	var approvedAt *time.Time
	if status == model.StatusApproved && adminId != uuid.Nil {
		approvedBy = &adminId
		approvedAt = &now
	}

	err := usecase.MemberRepository.UpdateStatus(ctxContext, memberId, status, approvedBy, approvedAt, now)
	if err != nil {
		return response, err
	}

	member, err := usecase.MemberRepository.GetById(ctxContext, memberId)
	if err != nil {
		return response, err
	}

	usecase.Bus.Publish(ctxContext, notify.TopicMembers, notify.ChangeUpdated)

	observability.WithContext(ctx.UserContext(), usecase.Log).Info("member status changed",
		zap.String("memberId", memberId.String()),
		zap.String("status", status),
		zap.String("adminId", adminId.String()))

	return usecase.toResponse(member), nil
}

func (usecase *MemberUsecase) Delete(ctx *fiber.Ctx, memberId uuid.UUID) error {
	ctxContext := ctx.Context()

	err := usecase.MemberRepository.Delete(ctxContext, memberId)
	if err != nil {
		return err
	}

	usecase.Bus.Publish(ctxContext, notify.TopicMembers, notify.ChangeDeleted)

	return nil
}

func (usecase *MemberUsecase) List(ctx *fiber.Ctx) ([]model.MemberResponse, error) {
	members, err := usecase.MemberRepository.List(ctx.Context())
	if err != nil {
		return nil, err
	}

	responses := make([]model.MemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, usecase.toResponse(member))
	}

	return responses, nil
}

func (usecase *MemberUsecase) Stats(ctx *fiber.Ctx) (model.MemberStats, error) {
	return usecase.MemberRepository.CountByStatus(ctx.Context())
}

func (usecase *MemberUsecase) TodaysBirthdays(ctx *fiber.Ctx) ([]model.MemberResponse, error) {
	members, err := usecase.MemberRepository.ListApproved(ctx.Context())
	if err != nil {
		return nil, err
	}

	matched := birthday.TodaysBirthdays(members, time.Now().UTC())

	responses := make([]model.MemberResponse, 0, len(matched))
	for _, member := range matched {
		responses = append(responses, usecase.toResponse(member))
	}

	return responses, nil
}

func (usecase *MemberUsecase) UpcomingBirthdays(ctx *fiber.Ctx, windowDays int) ([]model.MemberResponse, error) {
	if windowDays < 0 || windowDays > 366 {
		return nil, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Window must be between 0 and 366 days",
			Param:   "days",
		}
	}

	members, err := usecase.MemberRepository.ListApproved(ctx.Context())
	if err != nil {
		return nil, err
	}

	matched := birthday.UpcomingBirthdays(members, time.Now().UTC(), windowDays)

	responses := make([]model.MemberResponse, 0, len(matched))
	for _, member := range matched {
		responses = append(responses, usecase.toResponse(member))
	}

	return responses, nil
}

func (usecase *MemberUsecase) toResponse(member model.Member) model.MemberResponse {
	var dateOfBirth *string
	if member.DateOfBirth != nil {
		formatted := member.DateOfBirth.Format("2006-01-02")
		dateOfBirth = &formatted
	}

	var profilePictureUrl *string
	if member.ProfilePictureKey != nil {
		url := fmt.Sprintf("%s/%s", usecase.Config.String("MINIO_PUBLIC_URL"), *member.ProfilePictureKey)
		profilePictureUrl = &url
	}

	return model.MemberResponse{
		Id:                 member.Id,
		FullName:           member.FullName,
		FatherName:         member.FatherName,
		MotherName:         member.MotherName,
		DateOfBirth:        dateOfBirth,
		Gender:             member.Gender,
		MaritalStatus:      member.MaritalStatus,
		Address:            member.Address,
		City:               member.City,
		State:              member.State,
		Pincode:            member.Pincode,
		Gotra:              member.Gotra,
		SubCaste:           member.SubCaste,
		Qualification:      member.Qualification,
		Occupation:         member.Occupation,
		BloodGroup:         member.BloodGroup,
		Mobile:             member.Mobile,
		Email:              member.Email,
		ProfilePictureUrl:  profilePictureUrl,
		RegistrationStatus: member.RegistrationStatus,
		CreateDatetime:     member.CreateDatetime,
		UpdateDatetime:     member.UpdateDatetime,
		ApprovedBy:         member.ApprovedBy,
		ApprovedAt:         member.ApprovedAt,
	}
}
