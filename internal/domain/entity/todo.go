package entity

import "time"

// Todo is a single task record. Description stays a pointer so an absent
// description is distinguishable from an empty one.
type Todo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;index:idx_todos_title"`
	Description *string   `json:"description" gorm:"type:text"`
	Completed   bool      `json:"completed" gorm:"not null;default:false;index:idx_todos_completed;index:idx_todos_completed_created,priority:1"`
	OwnerID     *uint     `json:"owner_id,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;index:idx_todos_created_at;index:idx_todos_completed_created,priority:2"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null"`
}
