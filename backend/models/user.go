package models

// User is a catalog account. Passwords are stored as-is: the service has no
// authentication layer and a single seeded identity.
type User struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"password" gorm:"not null"`
	Name     string `json:"name" gorm:"not null"`
}
