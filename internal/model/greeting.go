package model

import (
	"time"

	"github.com/google/uuid"
)

type Greeting struct {
	Id             uuid.UUID
	MemberId       uuid.UUID
	SenderName     string
	Message        string
	IsApproved     bool
	CreateDatetime time.Time
}

type GreetingSubmitRequest struct {
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
}

type GreetingResponse struct {
	Id             uuid.UUID `json:"id"`
	MemberId       uuid.UUID `json:"memberId"`
	SenderName     string    `json:"senderName"`
	Message        string    `json:"message"`
	CreateDatetime time.Time `json:"createDatetime"`
}

// GreetingSubmitResponse reports whether the greeting was published
// immediately or held for review.
type GreetingSubmitResponse struct {
	Accepted bool             `json:"accepted"`
	Greeting GreetingResponse `json:"greeting"`
}
