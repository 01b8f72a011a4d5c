package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kirill-tkachenko7/yatube/internal/models"
	"github.com/kirill-tkachenko7/yatube/internal/storage"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := storage.OpenMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	return db
}

func TestDeleteGroupKeepsPosts(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Username: "alice", Email: "alice@example.com", PWHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	group := models.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, db.Create(&group).Error)
	post := models.Post{Text: "hello", AuthorID: user.ID, GroupID: &group.ID}
	require.NoError(t, db.Create(&post).Error)

	require.NoError(t, db.Delete(&group).Error)

	var kept models.Post
	require.NoError(t, db.First(&kept, post.ID).Error)
	assert.Nil(t, kept.GroupID, "post should be detached from the deleted group, not removed")
}

func TestDeletePostCascadesComments(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Username: "alice", Email: "alice@example.com", PWHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	post := models.Post{Text: "hello", AuthorID: user.ID}
	require.NoError(t, db.Create(&post).Error)
	comment := models.Comment{PostID: post.ID, AuthorID: user.ID, Text: "hi"}
	require.NoError(t, db.Create(&comment).Error)

	require.NoError(t, db.Delete(&post).Error)

	var n int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestDeleteUserCascadesPostsAndEdges(t *testing.T) {
	db := newTestDB(t)

	alice := models.User{Username: "alice", Email: "alice@example.com", PWHash: "x"}
	require.NoError(t, db.Create(&alice).Error)
	bob := models.User{Username: "bob", Email: "bob@example.com", PWHash: "x"}
	require.NoError(t, db.Create(&bob).Error)

	post := models.Post{Text: "hello", AuthorID: alice.ID}
	require.NoError(t, db.Create(&post).Error)
	edge := models.Follow{UserID: bob.ID, AuthorID: alice.ID}
	require.NoError(t, db.Create(&edge).Error)

	require.NoError(t, db.Delete(&alice).Error)

	var posts, edges int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Follow{}).Count(&edges).Error)
	assert.Equal(t, int64(0), posts)
	assert.Equal(t, int64(0), edges)
}

func TestDuplicateFollowEdgeRejected(t *testing.T) {
	db := newTestDB(t)

	alice := models.User{Username: "alice", Email: "alice@example.com", PWHash: "x"}
	require.NoError(t, db.Create(&alice).Error)
	bob := models.User{Username: "bob", Email: "bob@example.com", PWHash: "x"}
	require.NoError(t, db.Create(&bob).Error)

	first := models.Follow{UserID: bob.ID, AuthorID: alice.ID}
	require.NoError(t, db.Create(&first).Error)

	dup := models.Follow{UserID: bob.ID, AuthorID: alice.ID}
	err := db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
