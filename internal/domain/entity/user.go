package entity

// User is an account able to authenticate against the API. A user owns zero
// or more todos through Todo.OwnerID; no handler enforces that ownership yet.
type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"size:255;not null;uniqueIndex"`
	HashedPassword string `json:"-" gorm:"not null"`
	Todos          []Todo `json:"-" gorm:"foreignKey:OwnerID"`
}
