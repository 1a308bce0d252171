package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Member struct {
	Id                 uuid.UUID
	FullName           string
	FatherName         string
	MotherName         string
	DateOfBirth        *time.Time
	Gender             string
	MaritalStatus      string
	Address            string
	City               string
	State              string
	Pincode            string
	Gotra              string
	SubCaste           string
	Qualification      string
	Occupation         string
	BloodGroup         string
	Mobile             string
	Email              *string
	ProfilePictureKey  *string
	RegistrationStatus string
	CreateDatetime     time.Time
	UpdateDatetime     time.Time
	ApprovedBy         *uuid.UUID
	ApprovedAt         *time.Time
}

type MemberRegisterRequest struct {
	FullName      string `json:"fullName" form:"fullName" validate:"required,min=2,max=100"`
	FatherName    string `json:"fatherName" form:"fatherName" validate:"required,min=2,max=100"`
	MotherName    string `json:"motherName" form:"motherName" validate:"max=100"`
	DateOfBirth   string `json:"dateOfBirth" form:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender        string `json:"gender" form:"gender" validate:"required,oneof=male female other"`
	MaritalStatus string `json:"maritalStatus" form:"maritalStatus" validate:"omitempty,oneof=single married widowed divorced"`
	Address       string `json:"address" form:"address" validate:"max=300"`
	City          string `json:"city" form:"city" validate:"max=100"`
	State         string `json:"state" form:"state" validate:"max=100"`
	Pincode       string `json:"pincode" form:"pincode" validate:"omitempty,len=6,numeric"`
	Gotra         string `json:"gotra" form:"gotra" validate:"max=100"`
	SubCaste      string `json:"subCaste" form:"subCaste" validate:"max=100"`
	Qualification string `json:"qualification" form:"qualification" validate:"max=100"`
	Occupation    string `json:"occupation" form:"occupation" validate:"max=100"`
	BloodGroup    string `json:"bloodGroup" form:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O- Unknown"`
	Mobile        string `json:"mobile" form:"mobile" validate:"required,min=10,max=15"`
	Email         string `json:"email" form:"email" validate:"omitempty,email"`
}

type MemberStatusUpdateRequest struct {
	Status string `json:"status"`
}

type MemberResponse struct {
	Id                 uuid.UUID  `json:"id"`
	FullName           string     `json:"fullName"`
	FatherName         string     `json:"fatherName"`
	MotherName         string     `json:"motherName"`
	DateOfBirth        *string    `json:"dateOfBirth"`
	Gender             string     `json:"gender"`
	MaritalStatus      string     `json:"maritalStatus"`
	Address            string     `json:"address"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	Pincode            string     `json:"pincode"`
	Gotra              string     `json:"gotra"`
	SubCaste           string     `json:"subCaste"`
	Qualification      string     `json:"qualification"`
	Occupation         string     `json:"occupation"`
	BloodGroup         string     `json:"bloodGroup"`
	Mobile             string     `json:"mobile"`
	Email              *string    `json:"email"`
	ProfilePictureUrl  *string    `json:"profilePictureUrl"`
	RegistrationStatus string     `json:"registrationStatus"`
	CreateDatetime     time.Time  `json:"createDatetime"`
	UpdateDatetime     time.Time  `json:"updateDatetime"`
	ApprovedBy         *uuid.UUID `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
}

type MemberStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
