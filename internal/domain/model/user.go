package model

import (
	"time"
)

// Photo is the stored reference to a profile image in the object store.
type Photo struct {
	Path             string `bson:"path" json:"path"`
	PathWithFilename string `bson:"pathWithFilename" json:"pathWithFilename"`
	Filename         string `bson:"filename" json:"filename"`
	CompletedURL     string `bson:"completedUrl" json:"completedUrl"`
	BaseURL          string `bson:"baseUrl" json:"baseUrl"`
	Mime             string `bson:"mime" json:"mime"`
	Size             int64  `bson:"size" json:"size"`
}

type User struct {
	ID                string     `bson:"_id" json:"_id"`
	Username          string     `bson:"username" json:"username"`
	Email             string     `bson:"email" json:"email"`
	MobileNumber      string     `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`
	Password          string     `bson:"password" json:"-"`
	PasswordCreated   time.Time  `bson:"passwordCreated" json:"-"`
	PasswordExpired   time.Time  `bson:"passwordExpired" json:"-"`
	PasswordAttempt   int        `bson:"passwordAttempt" json:"-"`
	IsActive          bool       `bson:"isActive" json:"isActive"`
	InactivePermanent bool       `bson:"inactivePermanent" json:"inactivePermanent"`
	Blocked           bool       `bson:"blocked" json:"blocked"`
	Role              string     `bson:"role" json:"role"`
	Photo             *Photo     `bson:"photo,omitempty" json:"photo,omitempty"`
	SignUpDate        time.Time  `bson:"signUpDate" json:"signUpDate"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt         *time.Time `bson:"deletedAt,omitempty" json:"-"` // soft delete marker
}
