package model

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const (
	AnnouncementTypeCelebratory = "celebratory"
	AnnouncementTypeCondolence  = "condolence"
	AnnouncementTypeGeneral     = "general"
)

func IsValidAnnouncementType(kind string) bool {
	switch kind {
	case AnnouncementTypeCelebratory, AnnouncementTypeCondolence, AnnouncementTypeGeneral:
		return true
	}
	return false
}

type Announcement struct {
	Id             uuid.UUID
	Type           string
	Title          string
	Body           string
	Payload        sonic.NoCopyRawMessage
	CreateDatetime time.Time
	CreateAdminId  uuid.UUID
}

type AnnouncementCreateRequest struct {
	Type    string                 `json:"type"`
	Title   string                 `json:"title"`
	Body    string                 `json:"body"`
	Payload sonic.NoCopyRawMessage `json:"payload"`
}

type AnnouncementResponse struct {
	Id             uuid.UUID              `json:"id"`
	Type           string                 `json:"type"`
	Title          string                 `json:"title"`
	Body           string                 `json:"body"`
	Payload        sonic.NoCopyRawMessage `json:"payload"`
	CreateDatetime time.Time              `json:"createDatetime"`
}
