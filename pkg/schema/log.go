package schema

import "time"

// Log is a log record kept in the database.
type Log struct {
	ID uint `gorm:"column:id;primaryKey"`

	// Level is DEBUG, INFO, WARN or ERROR.
	Level string `gorm:"column:level;not null"`

	Msg string `gorm:"column:msg;not null"`

	// Pack is the component that wrote the record.
	Pack *string `gorm:"column:pack"`

	// Attrs are record attributes as JSON.
	Attrs *string `gorm:"column:attrs"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for Log.
func (Log) TableName() string { return "logs" }
