package feed

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kirill-tkachenko7/yatube/internal/models"
)

// Follow makes userID follow the named author. Following yourself and
// following someone twice are silent no-ops. The existence check is only a
// fast path: the unique index on (user_id, author_id) is what actually
// prevents duplicate edges under concurrent requests, so a duplicate-key
// error from the insert is treated as the idempotent outcome.
func (s *Service) Follow(userID uint, username string) error {
	author, err := s.userByName(username)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return nil
	}

	var existing models.Follow
	err = s.db.Where("user_id = ? AND author_id = ?", userID, author.ID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	edge := models.Follow{UserID: userID, AuthorID: author.ID}
	if err := s.db.Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// Unfollow removes the edge from userID to the named author. A missing
// author or a missing edge is ErrNotFound.
func (s *Service) Unfollow(userID uint, username string) error {
	author, err := s.userByName(username)
	if err != nil {
		return err
	}
	res := s.db.Where("user_id = ? AND author_id = ?", userID, author.ID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsFollowing reports whether userID already follows the author. Used to
// decide which of the follow/unfollow links a profile page shows.
func (s *Service) IsFollowing(userID, authorID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var n int64
	err := s.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&n).Error
	return n > 0, err
}
