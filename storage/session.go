package storage

import "encoding/json"

const (
	proStatusKey   = "pro_active"
	cachedEmailKey = "session_email"
)

// SessionStore holds the pro-subscription flag and the cached owner
// email used to restore the session display after a reload. The cached
// email is display-only; it plays no part in authentication.
type SessionStore struct {
	local *LocalStore
}

func NewSessionStore(local *LocalStore) *SessionStore {
	return &SessionStore{local: local}
}

// ProStatus reports whether the pro flag is set. Any read problem is
// treated as "not pro" rather than an error.
func (s *SessionStore) ProStatus() bool {
	data, ok, err := s.local.Get(proStatusKey)
	if err != nil || !ok {
		return false
	}
	var active bool
	if err := json.Unmarshal(data, &active); err != nil {
		return false
	}
	return active
}

// SetProStatus sets or clears the pro flag. Clearing removes the key
// entirely rather than storing false.
func (s *SessionStore) SetProStatus(active bool) error {
	if !active {
		return s.local.Delete(proStatusKey)
	}
	data, _ := json.Marshal(true)
	return s.local.Put(proStatusKey, data)
}

// CachedEmail returns the last stored owner email, or "".
func (s *SessionStore) CachedEmail() string {
	data, ok, err := s.local.Get(cachedEmailKey)
	if err != nil || !ok {
		return ""
	}
	var email string
	if err := json.Unmarshal(data, &email); err != nil {
		return ""
	}
	return email
}

// SetCachedEmail stores the owner email for display restore.
func (s *SessionStore) SetCachedEmail(email string) error {
	if email == "" {
		return s.local.Delete(cachedEmailKey)
	}
	data, _ := json.Marshal(email)
	return s.local.Put(cachedEmailKey, data)
}
