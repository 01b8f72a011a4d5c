// Package feed builds the paginated post feeds and manages the follow graph.
package feed

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kirill-tkachenko7/yatube/internal/models"
)

// PerPage is the fixed feed page size.
const PerPage = 10

// ErrNotFound reports that a username, group slug or post id did not resolve.
var ErrNotFound = errors.New("not found")

type Mode int

const (
	ModeGlobal Mode = iota
	ModeGroup
	ModeAuthor
	ModeFollowing
)

// Request selects one feed view. Slug is used by ModeGroup, Username by
// ModeAuthor, ViewerID by ModeFollowing. Page is 1-based and out-of-range
// values clamp to the nearest valid page.
type Request struct {
	Mode     Mode
	Slug     string
	Username string
	ViewerID uint
	Page     int
}

// Post is a feed entry: the stored post plus its comment count, computed at
// query time.
type Post struct {
	models.Post
	CommentCount int
}

// Page is one rendered-ready slice of a feed.
type Page struct {
	Posts      []Post
	Number     int
	TotalPages int
	TotalPosts int64

	// Group is set for ModeGroup, Author for ModeAuthor.
	Group  *models.Group
	Author *models.User
}

func (p *Page) HasPrev() bool { return p.Number > 1 }
func (p *Page) HasNext() bool { return p.Number < p.TotalPages }
func (p *Page) Prev() int     { return p.Number - 1 }
func (p *Page) Next() int     { return p.Number + 1 }

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Compose returns the requested feed page, newest posts first. Ties on the
// publication timestamp are broken by id so pagination stays stable across
// requests.
func (s *Service) Compose(req Request) (*Page, error) {
	page := &Page{}

	q := s.db.Model(&models.Post{})
	switch req.Mode {
	case ModeGroup:
		var group models.Group
		if err := s.db.Where("slug = ?", req.Slug).First(&group).Error; err != nil {
			return nil, translate(err)
		}
		page.Group = &group
		q = q.Where("group_id = ?", group.ID)
	case ModeAuthor:
		author, err := s.userByName(req.Username)
		if err != nil {
			return nil, err
		}
		page.Author = author
		q = q.Where("author_id = ?", author.ID)
	case ModeFollowing:
		followed := s.db.Model(&models.Follow{}).
			Select("author_id").
			Where("user_id = ?", req.ViewerID)
		q = q.Where("author_id IN (?)", followed)
	}
	q = q.Session(&gorm.Session{})

	if err := q.Count(&page.TotalPosts).Error; err != nil {
		return nil, err
	}
	page.TotalPages = int((page.TotalPosts + PerPage - 1) / PerPage)
	if page.TotalPages < 1 {
		page.TotalPages = 1
	}
	page.Number = clamp(req.Page, page.TotalPages)

	var posts []models.Post
	err := q.Preload("Author").Preload("Group").
		Order("pub_date DESC").
		Order("id DESC").
		Limit(PerPage).
		Offset((page.Number - 1) * PerPage).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	counts, err := s.commentCounts(posts)
	if err != nil {
		return nil, err
	}
	page.Posts = make([]Post, len(posts))
	for i, p := range posts {
		page.Posts[i] = Post{Post: p, CommentCount: counts[p.ID]}
	}
	return page, nil
}

func clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func (s *Service) commentCounts(posts []models.Post) (map[uint]int, error) {
	counts := make(map[uint]int, len(posts))
	if len(posts) == 0 {
		return counts, nil
	}
	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	var rows []struct {
		PostID uint
		N      int
	}
	err := s.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.N
	}
	return counts, nil
}

func (s *Service) userByName(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
