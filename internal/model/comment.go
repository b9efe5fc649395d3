package model

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int64     `json:"userId"`
	MovieID   int64     `json:"movieId"`
}

// CommentWithAuthor joins a comment with the writing user's name for listing.
type CommentWithAuthor struct {
	ID        int64     `json:"id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
}
