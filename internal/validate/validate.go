package validate

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
	MaxUsernameLen = 64
	MaxTitleLen    = 200
)

func SignUpForm(name, password string) error {

	var errs = []error{}

	errs = append(errs, Username(name))

	errs = append(errs, Password(password))

	return errors.Join(errs...)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	if strings.TrimSpace(username) == "" {
		return errors.New("blank username")
	}
	return nil
}

// Title checks a user supplied display string, such as a game title or a
// forum topic title. The empty check runs against the trimmed form, so a
// title made only of whitespace is rejected too.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("empty title")
	}
	if len(title) > MaxTitleLen {
		return fmt.Errorf("title too long; max %d characters", MaxTitleLen)
	}
	return nil
}
