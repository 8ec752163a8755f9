package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/rogold/internal/domain"
	"github.com/sidereusnuntius/rogold/internal/service"
	"github.com/sidereusnuntius/rogold/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

func (s *AppService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)

	if err := validate.SignUpForm(username, password); err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[username]; taken {
		return service.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return err
	}

	s.accounts = append(s.accounts, domain.Account{
		ID:        s.newID(),
		Username:  username,
		Password:  string(hash),
		CreatedAt: s.now().UTC(),
	})
	i := len(s.accounts) - 1
	s.byID[s.accounts[i].ID] = i
	s.byName[username] = i

	return s.saveAccounts()
}

// Authenticate verifies the credentials and establishes the session. The
// hash comparison runs even when the account is missing, so the two failure
// modes take comparable time and report the same error.
func (s *AppService) Authenticate(ctx context.Context, username, password string) (domain.Account, error) {
	username = strings.TrimSpace(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	var account domain.Account
	i, ok := s.byName[username]
	if ok {
		account = s.accounts[i]
	}

	err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password))
	if !ok || err != nil {
		return domain.Account{}, service.ErrInvalidCredentials
	}

	s.session = sessionPointer{AccountID: account.ID}
	if err := s.saveSession(); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func (s *AppService) UpdateAccount(ctx context.Context, username, currentPassword, newUsername, newPassword string) (domain.Account, error) {
	username = strings.TrimSpace(username)
	newUsername = strings.TrimSpace(newUsername)

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byName[username]
	if !ok {
		return domain.Account{}, service.ErrInvalidCredentials
	}
	account := &s.accounts[i]

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(currentPassword)) != nil {
		return domain.Account{}, service.ErrInvalidCredentials
	}

	changed := false
	if newUsername != "" && newUsername != username {
		if err := validate.Username(newUsername); err != nil {
			return domain.Account{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
		}
		if _, taken := s.byName[newUsername]; taken {
			return domain.Account{}, service.ErrDuplicateUser
		}
		delete(s.byName, username)
		account.Username = newUsername
		s.byName[newUsername] = i
		changed = true
	}

	if newPassword != "" {
		if err := validate.Password(newPassword); err != nil {
			return domain.Account{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), BcryptCost)
		if err != nil {
			return domain.Account{}, err
		}
		account.Password = string(hash)
		changed = true
	}

	if changed {
		if err := s.saveAccounts(); err != nil {
			return domain.Account{}, err
		}
	}
	// The session pointer holds the account id, so a rename needs no session
	// update here.
	return *account, nil
}

func (s *AppService) ListUsernames(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, len(s.accounts))
	for i, a := range s.accounts {
		names[i] = a.Username
	}
	return names, nil
}
