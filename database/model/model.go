package model

import "time"

// Admin is the seeded credential checked by the Basic auth guard.
// Password holds a bcrypt hash and is never serialized.
type Admin struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Login     string    `json:"login" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Participant identity is the normalized email; the numeric id only orders
// listings (newest first).
type Participant struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	FirstName string    `json:"firstname" gorm:"not null"`
	LastName  string    `json:"lastname" gorm:"not null"`
	Dob       string    `json:"dob" gorm:"size:10;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Work is the one-to-one employment record, keyed by the participant's email.
// Rows are soft-deleted (IsDeleted) when the participant is deleted and
// revived by the next upsert.
type Work struct {
	Id               int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ParticipantEmail string    `json:"participantEmail" gorm:"uniqueIndex;not null"`
	CompanyName      string    `json:"companyname" gorm:"not null"`
	Salary           float64   `json:"salary" gorm:"type:decimal(12,2);not null"`
	Currency         string    `json:"currency" gorm:"not null"`
	IsDeleted        bool      `json:"isDeleted" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Home mirrors Work for the participant's home address.
type Home struct {
	Id               int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ParticipantEmail string    `json:"participantEmail" gorm:"uniqueIndex;not null"`
	Country          string    `json:"country" gorm:"not null"`
	City             string    `json:"city" gorm:"not null"`
	IsDeleted        bool      `json:"isDeleted" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
