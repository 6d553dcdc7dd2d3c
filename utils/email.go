package utils

import "strings"

// NormalizeEmail ทำ email ให้เป็นรูปเดียวกันก่อนเก็บหรือเทียบ ownership
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
