package model

import "time"

// UserLogAction enumerates the kinds of actions recorded in the audit trail.
type UserLogAction int

const (
	ActionClick  UserLogAction = 0
	ActionAdd    UserLogAction = 1
	ActionUpdate UserLogAction = 2
	ActionDelete UserLogAction = 3
	ActionAuth   UserLogAction = 4
	ActionOther  UserLogAction = 100
)

func (a UserLogAction) Valid() bool {
	switch a {
	case ActionClick, ActionAdd, ActionUpdate, ActionDelete, ActionAuth, ActionOther:
		return true
	}
	return false
}

type UserLog struct {
	ID          int64         `json:"id"`
	Action      UserLogAction `json:"action"`
	Description string        `json:"description"`
	Details     string        `json:"details"`
	EventTime   time.Time     `json:"eventTime"`
	UserID      int64         `json:"userId"`
}

// UserLogWithUser joins a log entry with the acting user for admin listing.
type UserLogWithUser struct {
	UserLog
	Username string `json:"username"`
	RoleID   Role   `json:"roleId"`
}
