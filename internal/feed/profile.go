package feed

import (
	"github.com/kirill-tkachenko7/yatube/internal/models"
)

// Profile is a user together with the aggregate counts shown on their page.
// Counts are recomputed on every call rather than kept as denormalized
// counters; at this scale consistency is worth the extra queries.
type Profile struct {
	User           models.User
	PostCount      int64
	FollowerCount  int64
	FollowingCount int64
}

func (s *Service) Profile(username string) (*Profile, error) {
	user, err := s.userByName(username)
	if err != nil {
		return nil, err
	}
	p := &Profile{User: *user}

	if err := s.db.Model(&models.Post{}).
		Where("author_id = ?", user.ID).
		Count(&p.PostCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Follow{}).
		Where("author_id = ?", user.ID).
		Count(&p.FollowerCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Follow{}).
		Where("user_id = ?", user.ID).
		Count(&p.FollowingCount).Error; err != nil {
		return nil, err
	}
	return p, nil
}
