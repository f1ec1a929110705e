package services

import (
	"testing"
	"time"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPostStartsPending(t *testing.T) {
	db := openTestDB(t)
	svc := NewFeedService(db)

	post, err := svc.SubmitPost(PostInput{AuthorName: "Awa Diabaté", Content: "Bonne chance à tous !"})
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusPending, post.Status)

	// Pending posts never reach the public feed.
	feed, err := svc.ListApprovedPosts(0)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestSubmitPostValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewFeedService(db)

	_, err := svc.SubmitPost(PostInput{AuthorName: "A", Content: "x"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.SubmitPost(PostInput{AuthorName: "Awa Diabaté"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestSetPostStatusStampsApproval(t *testing.T) {
	db := openTestDB(t)
	svc := NewFeedService(db)

	post, err := svc.SubmitPost(PostInput{AuthorName: "Awa Diabaté", Content: "Bonne chance !"})
	require.NoError(t, err)

	updated, err := svc.SetPostStatus(post.ID, models.ContentStatusApproved, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusApproved, updated.Status)
	assert.Equal(t, "admin", updated.ApprovedBy)
	assert.NotNil(t, updated.ApprovedAt)

	_, err = svc.SetPostStatus(post.ID, "bogus", "admin")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.SetPostStatus(999, models.ContentStatusRejected, "admin")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListApprovedPostsIncludesEngagementCounts(t *testing.T) {
	db := openTestDB(t)
	svc := NewFeedService(db)
	engagement := NewEngagementService(db)

	post, err := svc.SubmitPost(PostInput{AuthorName: "Awa Diabaté", Content: "Bonne chance !"})
	require.NoError(t, err)
	_, err = svc.SetPostStatus(post.ID, models.ContentStatusApproved, "admin")
	require.NoError(t, err)

	require.NoError(t, engagement.Like(models.ContentTypePost, post.ID, "ip:1.1.1.1"))
	require.NoError(t, engagement.Like(models.ContentTypePost, post.ID, "ip:2.2.2.2"))
	require.NoError(t, engagement.React(models.ContentTypePost, post.ID, "ip:1.1.1.1", models.ReactionHeart))
	require.NoError(t, engagement.Comment(models.ContentTypePost, post.ID, "ip:1.1.1.1", "Machallah"))
	require.NoError(t, engagement.Share(models.ContentTypePost, post.ID, "ip:1.1.1.1", "whatsapp"))

	feed, err := svc.ListApprovedPosts(0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.EqualValues(t, 2, feed[0].Likes)
	assert.EqualValues(t, 1, feed[0].ReactionsHeart)
	assert.EqualValues(t, 1, feed[0].Comments)
	assert.EqualValues(t, 1, feed[0].Shares)
}

func TestActiveStoriesFilterAndPurge(t *testing.T) {
	db := openTestDB(t)
	svc := NewFeedService(db)

	fresh, err := svc.SubmitStory(StoryInput{AuthorName: "Awa Diabaté", Content: "En route !"})
	require.NoError(t, err)
	_, err = svc.SetStoryStatus(fresh.ID, models.ContentStatusApproved, "admin")
	require.NoError(t, err)

	_, err = svc.SubmitStory(StoryInput{AuthorName: "Moussa Koné", Content: "Bientôt"})
	require.NoError(t, err)

	expired, err := svc.SubmitStory(StoryInput{AuthorName: "Fatou Traoré", Content: "Hier"})
	require.NoError(t, err)
	_, err = svc.SetStoryStatus(expired.ID, models.ContentStatusApproved, "admin")
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Story{}).
		Where("id = ?", expired.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	active, err := svc.ListActiveStories()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, fresh.ID, active[0].ID)

	// Expiry is based on creation time alone; the pending story stays until
	// its own deadline even though it was never approved.
	purged, err := svc.PurgeExpiredStories()
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	var remaining int64
	db.Model(&models.Story{}).Count(&remaining)
	assert.EqualValues(t, 2, remaining)
}

func TestDeletePostNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewFeedService(db)

	assert.True(t, apperr.IsKind(svc.DeletePost(99), apperr.KindNotFound))
	assert.True(t, apperr.IsKind(svc.DeleteStory(99), apperr.KindNotFound))
}
