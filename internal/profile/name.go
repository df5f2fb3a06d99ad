package profile

import "cartkit/internal/domain"

// Fallback is returned when a user or their name is absent.
const Fallback = "Unknown"

// DisplayName returns the user's name, or Fallback when there is no user or no name.
func DisplayName(u *domain.User) string {
	if u == nil || u.Name == nil {
		return Fallback
	}
	return *u.Name
}
