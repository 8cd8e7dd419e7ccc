package models

// UserCountType is the only message type pushed over the live channel
const UserCountType = "userCount"

// UserCount is pushed to every live viewer when someone joins or leaves
type UserCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// NewUserCount returns a userCount message for the given count
func NewUserCount(count int) UserCount {
	return UserCount{Type: UserCountType, Count: count}
}
