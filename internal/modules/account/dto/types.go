package dto

import "time"

type RegisterOutput struct {
	UserID string
	Name   string
	// Token is only available at registration time.
	Token string
}

type AccountOutput struct {
	UserID    string
	Name      string
	CreatedAt time.Time
}
