package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Password     string    `json:"-"` // argon2id hash, never serialized
	Nickname     string    `json:"nickname"`
	StartDate    time.Time `json:"startDate"`
	HasSeenGuide bool      `json:"hasSeenGuide"`
}

type SignupRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type CheckIDResponse struct {
	Available bool `json:"available"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
