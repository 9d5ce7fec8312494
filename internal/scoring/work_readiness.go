// Package scoring computes the work-readiness score, a derived 0-100
// metric over a user's active credential set. It is pure: no storage,
// no side effects.
package scoring

import (
	"time"

	"workpass/internal/models"
)

const (
	requiredCredentialPoints = 30
	bonusCredentialPoints    = 10
	maxBonusPoints           = 40
	maxScore                 = 100
)

var requiredTypes = []string{
	models.CredentialTypeWhiteCard,
	models.CredentialTypeFirstAid,
}

var bonusTypes = map[string]bool{
	models.CredentialTypeTradeCertificate: true,
	models.CredentialTypeLicense:          true,
}

// Score returns the work-readiness score for a credential set,
// evaluated against the current time.
func Score(credentials []models.Credential) int {
	return ScoreAt(credentials, time.Now())
}

// ScoreAt evaluates the score at a given instant. Each required type
// (white card, first aid) contributes 30 points when a verified,
// unexpired credential of that type exists. Each verified, unexpired
// bonus credential contributes 10 points, capped at 40 in total.
func ScoreAt(credentials []models.Credential, now time.Time) int {
	if len(credentials) == 0 {
		return 0
	}

	score := 0
	for _, required := range requiredTypes {
		for _, cred := range credentials {
			if cred.Type == required && isValidAt(cred, now) {
				score += requiredCredentialPoints
				break
			}
		}
	}

	bonus := 0
	for _, cred := range credentials {
		if bonusTypes[cred.Type] && isValidAt(cred, now) {
			bonus += bonusCredentialPoints
		}
	}
	if bonus > maxBonusPoints {
		bonus = maxBonusPoints
	}

	score += bonus
	if score > maxScore {
		score = maxScore
	}
	return score
}

// isValidAt reports whether a credential counts toward the score: it
// must be verified and either never expire or expire after now.
func isValidAt(cred models.Credential, now time.Time) bool {
	if cred.VerificationStatus != models.VerificationVerified {
		return false
	}
	return cred.ExpiryDate == nil || cred.ExpiryDate.After(now)
}
