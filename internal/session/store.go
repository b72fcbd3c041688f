package session

import (
	"encoding/json"
	"os"

	"github.com/pageturner/pageturner-service/internal/model"
	"github.com/pkg/errors"
)

// IdentityStore persists at most one User record across restarts.
type IdentityStore interface {
	Load() (model.User, bool, error)
	Save(user model.User) error
	Clear() error
}

type fileStore struct {
	path string
}

func NewFileStore(path string) *fileStore {
	return &fileStore{path: path}
}

func (f *fileStore) Load() (model.User, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.User{}, false, nil
		}
		return model.User{}, false, errors.Wrap(err, "read identity file")
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return model.User{}, false, errors.Wrap(err, "decode identity file")
	}
	return user, true, nil
}

func (f *fileStore) Save(user model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode identity")
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *fileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove identity file")
	}
	return nil
}
