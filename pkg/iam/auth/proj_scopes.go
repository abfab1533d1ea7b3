package auth

// ============================================================================
// DOMAIN-SPECIFIC SUBJECTS
// ============================================================================

const (
	// SubjectCandidate marks tokens issued to candidates through the login endpoint
	SubjectCandidate = "headhunter-candidate"
)

// KnownSubjects lists every subject this service issues tokens for
var KnownSubjects = map[string]string{
	SubjectCandidate: "Candidate logged in with email and the shared passphrase",
}

// IsKnownSubject reports whether sub is issued by this service
func IsKnownSubject(sub string) bool {
	_, ok := KnownSubjects[sub]
	return ok
}
