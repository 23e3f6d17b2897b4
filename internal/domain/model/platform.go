package model

import "time"

const (
	PlatformCodeforces = "codeforces"
)

// PlatformConnection links a solvegrid user to their handle on an external
// judge. One connection per (user, platform).
type PlatformConnection struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Platform  string    `json:"platform"`
	Handle    string    `json:"handle"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
