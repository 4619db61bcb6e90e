package types

// User is the record owned by the user service, keyed as "user:{userId}".
type User struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
