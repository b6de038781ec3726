package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"type:varchar(36);primarykey;column:user_id_pk" json:"user_id_pk"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	LastName  string    `gorm:"type:varchar(255);not null;column:last_name" json:"last_name"`
	Hidden    bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
