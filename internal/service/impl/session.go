package core

import "context"

func (s *AppService) CurrentUser(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.AccountID == "" {
		return "", nil
	}
	name, ok := s.usernameOf(s.session.AccountID)
	if !ok {
		return "", nil
	}
	return name, nil
}

func (s *AppService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.AccountID == "" {
		return nil
	}
	s.session = sessionPointer{}
	return s.saveSession()
}
