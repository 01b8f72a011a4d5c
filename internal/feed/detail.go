package feed

import (
	"github.com/kirill-tkachenko7/yatube/internal/models"
)

// Detail is everything the post page needs: the post with its comment count
// and the comments themselves, newest first.
type Detail struct {
	Post     Post
	Comments []models.Comment
}

// PostDetail resolves a post by its author's username and id. A wrong
// username, an unknown id, or an id belonging to a different author all
// come back as ErrNotFound.
func (s *Service) PostDetail(username string, postID uint) (*Detail, error) {
	author, err := s.userByName(username)
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = s.db.Preload("Author").Preload("Group").
		Where("id = ? AND author_id = ?", postID, author.ID).
		First(&post).Error
	if err != nil {
		return nil, translate(err)
	}

	var comments []models.Comment
	err = s.db.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created DESC").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	return &Detail{
		Post:     Post{Post: post, CommentCount: len(comments)},
		Comments: comments,
	}, nil
}
