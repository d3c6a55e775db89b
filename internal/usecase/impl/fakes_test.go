package impl

// In-memory repository and service fakes shared by the service tests.
// Each fake honors the interface contract, including sentinel errors, and
// exposes a forcedErr knob for failure-path tests.

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func timeInFuture() time.Time {
	return time.Now().Add(time.Hour)
}

// --- AdminRepository ---

type fakeAdminRepo struct {
	mu        sync.Mutex
	admins    map[uuid.UUID]*entity.Admin
	forcedErr error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[uuid.UUID]*entity.Admin{}}
}

func (f *fakeAdminRepo) put(admin *entity.Admin) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cloned := *admin
	f.admins[admin.ID] = &cloned
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.admins {
		if strings.EqualFold(existing.Email, admin.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	cloned := *admin
	f.admins[admin.ID] = &cloned

	return nil
}

func (f *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	admin, ok := f.admins[id]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}
	cloned := *admin

	return &cloned, nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, admin := range f.admins {
		if strings.EqualFold(admin.Email, email) {
			cloned := *admin

			return &cloned, nil
		}
	}

	return nil, repository.ErrAdminNotFound
}

func (f *fakeAdminRepo) List(_ context.Context, filter repository.AdminListFilter) ([]*entity.Admin, int64, error) {
	if f.forcedErr != nil {
		return nil, 0, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Admin
	for _, admin := range f.admins {
		if filter.Role != nil && admin.Role != *filter.Role {
			continue
		}
		if filter.IsActive != nil && admin.IsActive != *filter.IsActive {
			continue
		}
		cloned := *admin
		out = append(out, &cloned)
	}

	return out, int64(len(out)), nil
}

func (f *fakeAdminRepo) Update(_ context.Context, admin *entity.Admin) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.admins[admin.ID]; !ok {
		return repository.ErrAdminNotFound
	}
	for id, existing := range f.admins {
		if id != admin.ID && strings.EqualFold(existing.Email, admin.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	cloned := *admin
	f.admins[admin.ID] = &cloned

	return nil
}

func (f *fakeAdminRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.admins[id]; !ok {
		return repository.ErrAdminNotFound
	}
	delete(f.admins, id)

	return nil
}

// --- RefreshTokenRepository ---

type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*entity.RefreshToken // keyed by admin ID
	forcedErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*entity.RefreshToken{}}
}

func (f *fakeSessionRepo) Upsert(_ context.Context, adminID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[adminID] = &entity.RefreshToken{
		ID:        uuid.New(),
		AdminID:   adminID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	return nil
}

func (f *fakeSessionRepo) FindByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, session := range f.sessions {
		if session.TokenHash == tokenHash {
			if session.Expired(time.Now()) {
				return nil, repository.ErrRefreshTokenExpired
			}
			cloned := *session

			return &cloned, nil
		}
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (f *fakeSessionRepo) DeleteByHash(_ context.Context, tokenHash string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for adminID, session := range f.sessions {
		if session.TokenHash == tokenHash {
			delete(f.sessions, adminID)

			return nil
		}
	}

	return repository.ErrRefreshTokenNotFound
}

func (f *fakeSessionRepo) DeleteByAdminID(_ context.Context, adminID uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, adminID)

	return nil
}

func (f *fakeSessionRepo) DeleteExpired(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for adminID, session := range f.sessions {
		if session.Expired(now) {
			delete(f.sessions, adminID)
		}
	}

	return nil
}

func (f *fakeSessionRepo) sessionFor(adminID uuid.UUID) *entity.RefreshToken {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.sessions[adminID]
}

// --- PasswordResetTokenRepository ---

type fakeResetTokenRepo struct {
	mu        sync.Mutex
	tokens    map[uuid.UUID]*entity.PasswordResetToken
	forcedErr error
}

func newFakeResetTokenRepo() *fakeResetTokenRepo {
	return &fakeResetTokenRepo{tokens: map[uuid.UUID]*entity.PasswordResetToken{}}
}

func (f *fakeResetTokenRepo) Create(_ context.Context, token *entity.PasswordResetToken) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, existing := range f.tokens {
		if existing.AdminID == token.AdminID {
			delete(f.tokens, id)
		}
	}
	cloned := *token
	f.tokens[token.ID] = &cloned

	return nil
}

func (f *fakeResetTokenRepo) FindByHash(_ context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, token := range f.tokens {
		if token.TokenHash == tokenHash {
			if token.Expired(time.Now()) {
				return nil, repository.ErrResetTokenExpired
			}
			cloned := *token

			return &cloned, nil
		}
	}

	return nil, repository.ErrResetTokenNotFound
}

func (f *fakeResetTokenRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tokens[id]; !ok {
		return repository.ErrResetTokenNotFound
	}
	delete(f.tokens, id)

	return nil
}

func (f *fakeResetTokenRepo) DeleteExpired(context.Context) error {
	return nil
}

func (f *fakeResetTokenRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.tokens)
}

// --- BlogRepository ---

type fakeBlogRepo struct {
	mu        sync.Mutex
	blogs     map[uuid.UUID]*entity.Blog
	forcedErr error
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[uuid.UUID]*entity.Blog{}}
}

func (f *fakeBlogRepo) put(blog *entity.Blog) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cloned := *blog
	f.blogs[blog.ID] = &cloned
}

func (f *fakeBlogRepo) Create(_ context.Context, blog *entity.Blog) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.put(blog)

	return nil
}

func (f *fakeBlogRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Blog, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	blog, ok := f.blogs[id]
	if !ok {
		return nil, repository.ErrBlogNotFound
	}
	cloned := *blog

	return &cloned, nil
}

func (f *fakeBlogRepo) FindBySlug(_ context.Context, slug string) (*entity.Blog, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, blog := range f.blogs {
		if blog.Slug == slug {
			cloned := *blog

			return &cloned, nil
		}
	}

	return nil, repository.ErrBlogNotFound
}

func (f *fakeBlogRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	if f.forcedErr != nil {
		return false, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, blog := range f.blogs {
		if blog.Slug == slug && blog.ID != excludeID {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeBlogRepo) List(_ context.Context, filter repository.BlogListFilter) ([]*entity.Blog, int64, error) {
	if f.forcedErr != nil {
		return nil, 0, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Blog
	for _, blog := range f.blogs {
		if filter.Status != nil && blog.Status != *filter.Status {
			continue
		}
		cloned := *blog
		out = append(out, &cloned)
	}

	return out, int64(len(out)), nil
}

func (f *fakeBlogRepo) Update(_ context.Context, blog *entity.Blog) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[blog.ID]; !ok {
		return repository.ErrBlogNotFound
	}
	cloned := *blog
	f.blogs[blog.ID] = &cloned

	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[id]; !ok {
		return repository.ErrBlogNotFound
	}
	delete(f.blogs, id)

	return nil
}

func (f *fakeBlogRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if blog, ok := f.blogs[id]; ok {
		blog.Views++
	}

	return nil
}

func (f *fakeBlogRepo) Stats(context.Context) (*repository.BlogStats, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &repository.BlogStats{}
	for _, blog := range f.blogs {
		stats.Total++
		stats.TotalViews += blog.Views
		switch blog.Status {
		case entity.BlogStatusPublished:
			stats.Published++
		case entity.BlogStatusDraft:
			stats.Drafts++
		}
	}

	return stats, nil
}

func (f *fakeBlogRepo) TopViewed(_ context.Context, limit int) ([]*entity.Blog, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Blog
	for _, blog := range f.blogs {
		if blog.Status != entity.BlogStatusPublished {
			continue
		}
		cloned := *blog
		out = append(out, &cloned)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// --- StoryRepository ---

type fakeStoryRepo struct {
	mu        sync.Mutex
	stories   map[uuid.UUID]*entity.Story
	forcedErr error
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: map[uuid.UUID]*entity.Story{}}
}

func (f *fakeStoryRepo) put(story *entity.Story) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cloned := *story
	f.stories[story.ID] = &cloned
}

func (f *fakeStoryRepo) Create(_ context.Context, story *entity.Story) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now()
	}
	f.put(story)

	return nil
}

func (f *fakeStoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Story, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	story, ok := f.stories[id]
	if !ok {
		return nil, repository.ErrStoryNotFound
	}
	cloned := *story

	return &cloned, nil
}

func (f *fakeStoryRepo) List(_ context.Context, filter repository.StoryListFilter) ([]*entity.Story, int64, error) {
	if f.forcedErr != nil {
		return nil, 0, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Story
	for _, story := range f.stories {
		if filter.Status != nil && story.Status != *filter.Status {
			continue
		}
		if filter.Category != "" && story.Category != filter.Category {
			continue
		}
		cloned := *story
		out = append(out, &cloned)
	}

	return out, int64(len(out)), nil
}

func (f *fakeStoryRepo) Update(_ context.Context, story *entity.Story) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.stories[story.ID]; !ok {
		return repository.ErrStoryNotFound
	}
	cloned := *story
	f.stories[story.ID] = &cloned

	return nil
}

func (f *fakeStoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.stories[id]; !ok {
		return repository.ErrStoryNotFound
	}
	delete(f.stories, id)

	return nil
}

func (f *fakeStoryRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if story, ok := f.stories[id]; ok {
		story.Views++
	}

	return nil
}

func (f *fakeStoryRepo) CountByStatus(_ context.Context, from, to *time.Time) (map[entity.StoryStatus]int64, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[entity.StoryStatus]int64{}
	for _, story := range f.stories {
		if !inRange(story.CreatedAt, from, to) {
			continue
		}
		counts[story.Status]++
	}

	return counts, nil
}

func (f *fakeStoryRepo) CountByCategory(_ context.Context, from, to *time.Time) ([]repository.StoryCategoryCount, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[string]int64{}
	for _, story := range f.stories {
		if !inRange(story.CreatedAt, from, to) {
			continue
		}
		counts[story.Category]++
	}
	out := make([]repository.StoryCategoryCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, repository.StoryCategoryCount{Category: category, Count: count})
	}

	return out, nil
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(*to) {
		return false
	}

	return true
}

// --- WaitlistRepository ---

type fakeWaitlistRepo struct {
	mu        sync.Mutex
	entries   map[uuid.UUID]*entity.WaitlistEntry
	forcedErr error
}

func newFakeWaitlistRepo() *fakeWaitlistRepo {
	return &fakeWaitlistRepo{entries: map[uuid.UUID]*entity.WaitlistEntry{}}
}

func (f *fakeWaitlistRepo) put(entry *entity.WaitlistEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cloned := *entry
	f.entries[entry.ID] = &cloned
}

func (f *fakeWaitlistRepo) Create(_ context.Context, entry *entity.WaitlistEntry) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.entries {
		if strings.EqualFold(existing.Email, entry.Email) {
			return repository.ErrDuplicateWaitlistEmail
		}
	}
	cloned := *entry
	f.entries[entry.ID] = &cloned

	return nil
}

func (f *fakeWaitlistRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.WaitlistEntry, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[id]
	if !ok {
		return nil, repository.ErrWaitlistNotFound
	}
	cloned := *entry

	return &cloned, nil
}

func (f *fakeWaitlistRepo) List(_ context.Context, filter repository.WaitlistListFilter) ([]*entity.WaitlistEntry, int64, error) {
	if f.forcedErr != nil {
		return nil, 0, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.WaitlistEntry
	for _, entry := range f.entries {
		if filter.Status != nil && entry.Status != *filter.Status {
			continue
		}
		cloned := *entry
		out = append(out, &cloned)
	}

	return out, int64(len(out)), nil
}

func (f *fakeWaitlistRepo) Update(_ context.Context, entry *entity.WaitlistEntry) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[entry.ID]; !ok {
		return repository.ErrWaitlistNotFound
	}
	cloned := *entry
	f.entries[entry.ID] = &cloned

	return nil
}

func (f *fakeWaitlistRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[id]; !ok {
		return repository.ErrWaitlistNotFound
	}
	delete(f.entries, id)

	return nil
}

func (f *fakeWaitlistRepo) CountByStatus(context.Context) (map[entity.WaitlistStatus]int64, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[entity.WaitlistStatus]int64{}
	for _, entry := range f.entries {
		counts[entry.Status]++
	}

	return counts, nil
}

// --- NotificationRepository ---

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[uuid.UUID]*entity.Notification
	forcedErr     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[uuid.UUID]*entity.Notification{}}
}

func (f *fakeNotificationRepo) put(notification *entity.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cloned := *notification
	f.notifications[notification.ID] = &cloned
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.put(notification)

	return nil
}

func (f *fakeNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	notification, ok := f.notifications[id]
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}
	cloned := *notification

	return &cloned, nil
}

func (f *fakeNotificationRepo) List(_ context.Context, filter repository.NotificationListFilter) ([]*entity.Notification, int64, error) {
	if f.forcedErr != nil {
		return nil, 0, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Notification
	for _, notification := range f.notifications {
		if notification.RecipientID != filter.RecipientID {
			continue
		}
		if filter.UnreadOnly && notification.Read {
			continue
		}
		cloned := *notification
		out = append(out, &cloned)
	}

	return out, int64(len(out)), nil
}

func (f *fakeNotificationRepo) Update(_ context.Context, notification *entity.Notification) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.notifications[notification.ID]; !ok {
		return repository.ErrNotificationNotFound
	}
	cloned := *notification
	f.notifications[notification.ID] = &cloned

	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, recipientID uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for _, notification := range f.notifications {
		if notification.RecipientID == recipientID && !notification.Read {
			notification.Read = true
			notification.ReadAt = &now
		}
	}

	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.notifications[id]; !ok {
		return repository.ErrNotificationNotFound
	}
	delete(f.notifications, id)

	return nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, recipientID uuid.UUID) (int64, error) {
	if f.forcedErr != nil {
		return 0, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, notification := range f.notifications {
		if notification.RecipientID == recipientID && !notification.Read {
			count++
		}
	}

	return count, nil
}

// --- PasswordHasher ---

// fakeHasher marks hashes with a prefix so tests can assert re-hashing
// without paying bcrypt cost.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// --- TokenService ---

type fakeTokenService struct {
	mu      sync.Mutex
	counter int
	issued  map[string]uuid.UUID // access token -> admin
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{issued: map[string]uuid.UUID{}}
}

func (f *fakeTokenService) IssueAccessToken(adminID uuid.UUID) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter++
	token := "access-" + uuid.NewString()
	f.issued[token] = adminID

	return token, nil
}

func (f *fakeTokenService) IssueRefreshToken() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter++

	return "refresh-" + uuid.NewString(), nil
}

var errFakeTokenInvalid = errors.New("token not issued by this fake")

func (f *fakeTokenService) VerifyAccessToken(token string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if adminID, ok := f.issued[token]; ok {
		return adminID, nil
	}

	return uuid.Nil, errFakeTokenInvalid
}

func (f *fakeTokenService) VerifyRefreshToken(token string) error {
	if strings.HasPrefix(token, "refresh-") {
		return nil
	}

	return errFakeTokenInvalid
}

func (f *fakeTokenService) HashToken(token string) string {
	return "hash(" + token + ")"
}

func (f *fakeTokenService) AccessTokenDuration() time.Duration {
	return 5 * time.Hour
}

func (f *fakeTokenService) RefreshTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

// --- EventPublisher ---

type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event *service.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []*service.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.Event(nil), p.events...)
}

// --- ImageStore ---

type fakeImageStore struct {
	mu        sync.Mutex
	stored    map[string][]byte
	forcedErr error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{stored: map[string][]byte{}}
}

func (f *fakeImageStore) Upload(_ context.Context, data []byte, _ string) (*service.UploadedImage, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := "uploads/" + uuid.NewString()
	f.stored[key] = data

	return &service.UploadedImage{URL: "https://img.example.com/" + key, Key: key}, nil
}

func (f *fakeImageStore) Delete(_ context.Context, key string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stored, key)

	return nil
}
