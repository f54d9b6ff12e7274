package entity

import (
	"time"
)

// MemberStatus is the availability state of a team member.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusOnLeave  MemberStatus = "on_leave"
)

// Valid reports whether s is one of the known member statuses.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive, MemberStatusOnLeave:
		return true
	}
	return false
}

// TeamMember is a directory entry, not an authenticated account.
type TeamMember struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      string
	Status    MemberStatus
	AvatarURL string
	JoinDate  time.Time
}
