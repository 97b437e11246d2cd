package models

import "time"

// Client is a registered customer, keyed by national identification
// (cédula/RUC). The identification is immutable once created. Lives on
// the public pool.
type Client struct {
	Identification string `gorm:"primaryKey;size:13" json:"identification"`
	Name           string `gorm:"size:255;not null"  json:"name"`
	Telephone      string `gorm:"size:20"            json:"telephone"`
	Email          string `gorm:"size:255"           json:"email"`
}

func (Client) TableName() string { return "clients" }

// User is the login credential row owned by a client. A row in this
// table always authenticates as a client; administrators are native
// database accounts and have no row here.
//
// The entity carries no role column: role is computed at the boundary,
// never stored.
type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Identification string    `gorm:"uniqueIndex;size:13;not null" json:"identification"`
	Username       string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password       string    `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
