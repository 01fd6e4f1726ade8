package store

import (
	"sort"
	"sync"
	"time"

	"github.com/andriwidianto/securewatch/model"
	"github.com/andriwidianto/securewatch/util"
	"github.com/google/uuid"
)

// MemoryStore is the map-backed Store implementation. Each collection has
// its own lock; there are no cross-collection transactions. Password
// hashing always happens before a lock is taken so the CPU-bound work never
// serializes other requests.
type MemoryStore struct {
	hashParams util.Argon2Params

	usersMu sync.RWMutex
	users   map[string]*model.User

	logsMu sync.RWMutex
	logs   []*model.ActivityLog

	eventsMu sync.RWMutex
	events   []*model.SecurityEvent
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store hashing passwords with the default
// Argon2 work factor.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithParams(util.DefaultArgon2Params())
}

// NewMemoryStoreWithParams allows tests to lower the hashing work factor.
func NewMemoryStoreWithParams(p util.Argon2Params) *MemoryStore {
	return &MemoryStore{
		hashParams: p,
		users:      make(map[string]*model.User),
	}
}

func cloneUser(u *model.User) *model.User {
	c := *u
	return &c
}

func (s *MemoryStore) GetUser(id string) (*model.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) GetUserByUsername(username string) (*model.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) GetUserByEmail(email string) (*model.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) CreateUser(input model.NewUser) (*model.User, error) {
	// Hash before taking the lock.
	hashed, err := util.HashPasswordWithParams(input.Password, s.hashParams)
	if err != nil {
		return nil, err
	}

	role := model.RoleViewer
	if input.Role != "" {
		role, err = model.ParseRole(string(input.Role))
		if err != nil {
			return nil, err
		}
	}

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for _, u := range s.users {
		if u.Username == input.Username {
			return nil, ErrUsernameExists
		}
		if u.Email == input.Email {
			return nil, ErrEmailExists
		}
	}

	now := time.Now()
	user := &model.User{
		ID:        uuid.NewString(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		Role:      role,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[user.ID] = user
	return cloneUser(user), nil
}

func (s *MemoryStore) UpdateUser(id string, updates model.UserUpdate) (*model.User, error) {
	var hashed string
	if updates.Password != nil {
		var err error
		hashed, err = util.HashPasswordWithParams(*updates.Password, s.hashParams)
		if err != nil {
			return nil, err
		}
	}

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	// Validate every field before touching the record so a rejected update
	// leaves no partial state behind.
	var role model.Role
	if updates.Role != nil {
		var err error
		role, err = model.ParseRole(string(*updates.Role))
		if err != nil {
			return nil, err
		}
	}
	if updates.Username != nil && *updates.Username != user.Username {
		for _, u := range s.users {
			if u.ID != id && u.Username == *updates.Username {
				return nil, ErrUsernameExists
			}
		}
	}
	if updates.Email != nil && *updates.Email != user.Email {
		for _, u := range s.users {
			if u.ID != id && u.Email == *updates.Email {
				return nil, ErrEmailExists
			}
		}
	}

	if updates.Username != nil {
		user.Username = *updates.Username
	}
	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.Password != nil {
		user.Password = hashed
	}
	if updates.Role != nil {
		user.Role = role
	}
	if updates.FirstName != nil {
		user.FirstName = updates.FirstName
	}
	if updates.LastName != nil {
		user.LastName = updates.LastName
	}
	user.UpdatedAt = time.Now()
	return cloneUser(user), nil
}

func (s *MemoryStore) ListUsers() []*model.User {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, cloneUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users
}

func (s *MemoryStore) CreateActivityLog(entry model.NewActivityLog) *model.ActivityLog {
	status := entry.Status
	if status == "" {
		status = model.StatusSuccess
	}
	logEntry := &model.ActivityLog{
		ID:        uuid.NewString(),
		UserID:    entry.UserID,
		Username:  entry.Username,
		Action:    entry.Action,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
		Status:    status,
		Timestamp: time.Now(),
	}

	s.logsMu.Lock()
	defer s.logsMu.Unlock()
	s.logs = append(s.logs, logEntry)
	return logEntry
}

func (s *MemoryStore) ListActivityLogs(limit, offset int) []*model.ActivityLog {
	s.logsMu.RLock()
	logs := make([]*model.ActivityLog, len(s.logs))
	copy(logs, s.logs)
	s.logsMu.RUnlock()

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return paginate(logs, limit, offset)
}

func (s *MemoryStore) CreateSecurityEvent(entry model.NewSecurityEvent) *model.SecurityEvent {
	severity := entry.Severity
	if severity == "" {
		severity = model.SeverityInfo
	}
	event := &model.SecurityEvent{
		ID:          uuid.NewString(),
		Type:        entry.Type,
		Description: entry.Description,
		Severity:    severity,
		IPAddress:   entry.IPAddress,
		UserID:      entry.UserID,
		Resolved:    entry.Resolved,
		Timestamp:   time.Now(),
	}

	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	s.events = append(s.events, event)
	return event
}

func (s *MemoryStore) ListSecurityEvents(limit int) []*model.SecurityEvent {
	s.eventsMu.RLock()
	events := make([]*model.SecurityEvent, len(s.events))
	copy(events, s.events)
	s.eventsMu.RUnlock()

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return paginate(events, limit, 0)
}

func (s *MemoryStore) ListUnresolvedSecurityEvents() []*model.SecurityEvent {
	s.eventsMu.RLock()
	var events []*model.SecurityEvent
	for _, e := range s.events {
		if !e.Resolved {
			events = append(events, e)
		}
	}
	s.eventsMu.RUnlock()

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

func (s *MemoryStore) CountFailedLogins(since time.Time) int {
	s.logsMu.RLock()
	defer s.logsMu.RUnlock()
	count := 0
	for _, l := range s.logs {
		if l.Status == model.StatusFailed && !l.Timestamp.Before(since) {
			count++
		}
	}
	return count
}

func (s *MemoryStore) CountSecurityEvents(since time.Time) int {
	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()
	count := 0
	for _, e := range s.events {
		if !e.Timestamp.Before(since) {
			count++
		}
	}
	return count
}

// paginate bounds a newest-first slice by limit and offset.
func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
