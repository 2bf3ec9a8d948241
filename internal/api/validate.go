package api

import (
	"regexp"
	"strings"

	"github.com/mkovacic/najdeno/internal/model"
)

// emailRx is a pragmatic email shape check, not a full RFC 5322 parser.
var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(email string) bool {
	return emailRx.MatchString(email)
}

func validateRegister(req registerRequest) []string {
	var errs []string
	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if !validEmail(req.Email) {
		errs = append(errs, "Valid email is required")
	}
	if len(req.Password) < model.MinPasswordLength {
		errs = append(errs, "Password must be at least 6 characters")
	}
	return errs
}

func validateLogin(req loginRequest) []string {
	var errs []string
	if !validEmail(req.Email) {
		errs = append(errs, "Valid email is required")
	}
	if req.Password == "" {
		errs = append(errs, "Password is required")
	}
	return errs
}

func validateCreateItem(req createItemRequest) []string {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, "Description is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, "Category is required")
	}
	if !model.ValidStatus(req.ItemStatus) {
		errs = append(errs, "Item status must be lost or found")
	}
	return errs
}
