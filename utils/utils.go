package utils

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail checks basic email shape before it reaches the database.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
