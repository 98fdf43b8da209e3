package digest

import "sync"

// userLocks serializes work per user id. An entry lives only while someone holds or waits for it.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: map[string]*userLock{}}
}

// lock blocks until the user's lock is acquired, the returned func releases it
func (u *userLocks) lock(userID string) (unlock func()) {
	u.mu.Lock()
	l, ok := u.locks[userID]
	if !ok {
		l = &userLock{}
		u.locks[userID] = l
	}
	l.refs++
	u.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		u.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(u.locks, userID)
		}
		u.mu.Unlock()
	}
}

func (u *userLocks) size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.locks)
}
