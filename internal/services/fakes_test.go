package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"classifieds_backend/internal/email"
	"classifieds_backend/internal/models"
	"classifieds_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory fakes implementing the repository and collaborator interfaces.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) VerifyUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Verified = true
	u.VerificationToken = ""
	return nil
}

type fakeAdRepo struct {
	mu  sync.Mutex
	ads []*models.Ad
}

func newFakeAdRepo() *fakeAdRepo {
	return &fakeAdRepo{}
}

func (r *fakeAdRepo) Create(ad *models.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now().Add(time.Duration(len(r.ads)) * time.Millisecond)
	}
	cp := *ad
	r.ads = append(r.ads, &cp)
	return nil
}

func (r *fakeAdRepo) FindActive(filter repositories.AdFilter) ([]models.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Ad
	for _, ad := range r.ads {
		if !ad.Active {
			continue
		}
		if filter.Category != "" && filter.Category != models.FilterAll && string(ad.Category) != filter.Category {
			continue
		}
		if filter.Location != "" && filter.Location != models.FilterAll && string(ad.Location) != filter.Location {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(ad.Title), needle) &&
				!strings.Contains(strings.ToLower(ad.Description), needle) {
				continue
			}
		}
		out = append(out, *ad)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if filter.Skip > 0 {
		if filter.Skip >= len(out) {
			return nil, nil
		}
		out = out[filter.Skip:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeAdRepo) FindActiveByID(id string) (*models.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ad := range r.ads {
		if ad.ID == id && ad.Active {
			cp := *ad
			return &cp, nil
		}
	}
	return nil, repositories.ErrAdNotFound
}

func (r *fakeAdRepo) IncrementViews(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ad := range r.ads {
		if ad.ID == id {
			ad.Views++
			return nil
		}
	}
	return repositories.ErrAdNotFound
}

func (r *fakeAdRepo) Deactivate(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ad := range r.ads {
		if ad.ID == id && ad.UserID == userID && ad.Active {
			ad.Active = false
			return nil
		}
	}
	return repositories.ErrAdNotFound
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*models.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().Add(time.Duration(len(r.messages)) * time.Millisecond)
	}
	cp := *message
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *fakeMessageRepo) FindConversation(userID, otherUserID string) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Message
	for _, m := range r.messages {
		if (m.FromUserID == userID && m.ToUserID == otherUserID) ||
			(m.FromUserID == otherUserID && m.ToUserID == userID) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(fromUserID, toUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.FromUserID == fromUserID && m.ToUserID == toUserID {
			m.Read = true
		}
	}
	return nil
}

// fakeStorage keeps blobs in memory and records saved names.
type fakeStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{blobs: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[path] = data
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[path]
	if !ok {
		return nil, fmt.Errorf("not found: %s", path)
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/uploads/" + path, nil
}

func (s *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[path]
	if !ok {
		return 0, fmt.Errorf("not found: %s", path)
	}
	return int64(len(data)), nil
}

// fakeEmailProvider records verification sends on a channel so tests can
// wait for the async send without racing.
type fakeEmailProvider struct {
	sent chan string
}

func newFakeEmailProvider() *fakeEmailProvider {
	return &fakeEmailProvider{sent: make(chan string, 8)}
}

func (p *fakeEmailProvider) Send(msg *email.Email) error { return nil }

func (p *fakeEmailProvider) SendVerification(to string, token string) error {
	p.sent <- to + "|" + token
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }
