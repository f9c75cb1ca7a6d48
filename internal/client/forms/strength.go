package forms

import "unicode"

// Strength is an advisory password strength score for display. It never
// blocks submission.
type Strength struct {
	Score int
	Label string
}

var strengthLabels = [5]string{"Weak", "Fair", "Good", "Strong", "Very Strong"}

// PasswordStrength scores a password 0–5: one point each for length >= 6,
// length >= 10, an uppercase letter, a digit, and a non-alphanumeric rune.
// An empty password scores 0 with no label.
func PasswordStrength(password string) Strength {
	if password == "" {
		return Strength{}
	}

	score := 0
	if len(password) >= 6 {
		score++
	}
	if len(password) >= 10 {
		score++
	}

	var hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasOther = true
		}
	}
	if hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if hasOther {
		score++
	}

	label := ""
	if score > 0 {
		idx := score - 1
		if idx > len(strengthLabels)-1 {
			idx = len(strengthLabels) - 1
		}
		label = strengthLabels[idx]
	}
	return Strength{Score: score, Label: label}
}
