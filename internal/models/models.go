// Package models defines the database schema.
package models

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;size:150;not null"`
	Email    string `gorm:"size:254;not null"`
	PWHash   string `gorm:"not null"`

	Posts     []Post    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments  []Comment `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Following []Follow  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Followers []Follow  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// Group is a topic community. Its slug is the URL segment under /group/.
type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Slug        string `gorm:"uniqueIndex;size:200;not null"`
	Description string `gorm:"type:text"`

	// Deleting a group must keep its posts around, so the FK is SET NULL.
	Posts []Post `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}

type Post struct {
	ID       uint      `gorm:"primaryKey"`
	Text     string    `gorm:"type:text;not null"`
	PubDate  time.Time `gorm:"not null;index;autoCreateTime"`
	AuthorID uint      `gorm:"not null;index"`
	Author   User      `gorm:"foreignKey:AuthorID"`
	GroupID  *uint     `gorm:"index"`
	Group    *Group    `gorm:"foreignKey:GroupID"`
	// Image is the media-relative path of the attached picture, empty if none.
	Image string `gorm:"size:255"`
}

type Comment struct {
	ID       uint      `gorm:"primaryKey"`
	PostID   uint      `gorm:"not null;index"`
	Post     Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID uint      `gorm:"not null;index"`
	Author   User      `gorm:"foreignKey:AuthorID"`
	Text     string    `gorm:"type:text;not null"`
	Created  time.Time `gorm:"not null;autoCreateTime"`
}

// Follow is a directed edge: User follows Author. The composite unique index
// is the authoritative guard against duplicate edges; application-level
// existence checks are just a fast path (see feed.Service.Follow).
type Follow struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_follow_edge"`
	User     User `gorm:"foreignKey:UserID"`
	AuthorID uint `gorm:"not null;uniqueIndex:idx_follow_edge"`
	Author   User `gorm:"foreignKey:AuthorID"`
}
