package impl

import (
	"context"
	"testing"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service  usecase.AnalyticsUsecase
	blogs    *fakeBlogRepo
	stories  *fakeStoryRepo
	waitlist *fakeWaitlistRepo
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	t.Helper()

	blogs := newFakeBlogRepo()
	stories := newFakeStoryRepo()
	waitlist := newFakeWaitlistRepo()

	return analyticsServiceFixtures{
		service:  NewAnalyticsService(blogs, stories, waitlist, testLogger()),
		blogs:    blogs,
		stories:  stories,
		waitlist: waitlist,
	}
}

func seedBlog(repo *fakeBlogRepo, status entity.BlogStatus, views int64) {
	id := uuid.New()
	repo.put(&entity.Blog{
		ID:     id,
		Title:  "Post " + id.String()[:8],
		Slug:   "post-" + id.String()[:8],
		Status: status,
		Views:  views,
	})
}

func seedStory(repo *fakeStoryRepo, status entity.StoryStatus, category string, createdAt time.Time) {
	repo.put(&entity.Story{
		ID:        uuid.New(),
		Title:     "Story",
		Category:  category,
		Status:    status,
		CreatedAt: createdAt,
	})
}

func TestAnalyticsService_Overview(t *testing.T) {
	fx := createTestAnalyticsService(t)
	now := time.Now()

	seedBlog(fx.blogs, entity.BlogStatusPublished, 10)
	seedBlog(fx.blogs, entity.BlogStatusDraft, 0)

	seedStory(fx.stories, entity.StoryStatusPending, "travel", now)
	seedStory(fx.stories, entity.StoryStatusPending, "food", now)
	seedStory(fx.stories, entity.StoryStatusPublished, "travel", now)

	fx.waitlist.put(&entity.WaitlistEntry{ID: uuid.New(), Email: "a@example.com", Status: entity.WaitlistStatusPending})
	fx.waitlist.put(&entity.WaitlistEntry{ID: uuid.New(), Email: "b@example.com", Status: entity.WaitlistStatusNotified})

	out, err := fx.service.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), out.TotalBlogs)
	assert.Equal(t, int64(1), out.PublishedBlogs)
	assert.Equal(t, int64(3), out.TotalStories)
	assert.Equal(t, int64(2), out.PendingStories)
	assert.Equal(t, int64(2), out.TotalWaitlist)
	assert.Equal(t, int64(1), out.WaitlistByState[entity.WaitlistStatusNotified])
}

func TestAnalyticsService_Stories_DateRange(t *testing.T) {
	fx := createTestAnalyticsService(t)
	now := time.Now()
	lastMonth := now.AddDate(0, -1, 0)

	seedStory(fx.stories, entity.StoryStatusPending, "travel", now)
	seedStory(fx.stories, entity.StoryStatusApproved, "food", now)
	seedStory(fx.stories, entity.StoryStatusPending, "travel", lastMonth)

	from := now.AddDate(0, 0, -7)
	out, err := fx.service.Stories(context.Background(), usecase.AnalyticsRange{From: &from})

	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
	assert.Equal(t, int64(1), out.ByStatus[entity.StoryStatusPending])
	assert.Equal(t, int64(1), out.ByStatus[entity.StoryStatusApproved])

	categories := map[string]int64{}
	for _, row := range out.ByCategory {
		categories[row.Category] = row.Count
	}
	assert.Equal(t, int64(1), categories["travel"])
	assert.Equal(t, int64(1), categories["food"])
}

func TestAnalyticsService_Blogs_TopViewed(t *testing.T) {
	fx := createTestAnalyticsService(t)

	seedBlog(fx.blogs, entity.BlogStatusPublished, 5)
	seedBlog(fx.blogs, entity.BlogStatusPublished, 50)
	seedBlog(fx.blogs, entity.BlogStatusDraft, 100)

	out, err := fx.service.Blogs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Total)
	assert.Equal(t, int64(2), out.Published)
	assert.Equal(t, int64(1), out.Drafts)
	assert.Equal(t, int64(155), out.TotalViews)

	// Drafts never surface in the public top list.
	require.Len(t, out.TopViewed, 2)
	assert.Equal(t, int64(50), out.TopViewed[0].Views)
}
