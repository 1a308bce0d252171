package model

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	Id             uuid.UUID
	Username       string
	FullName       string
	Password       string
	CreateDatetime time.Time
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
