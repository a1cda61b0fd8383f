package services

import "strings"

// Validation message codes.
const (
	CodeRequired           = "required"
	CodeLoginRequired      = "login_required"
	CodePasswordMismatch   = "password_mismatch"
	CodePasswordTooShort   = "password_too_short"
	CodeEmailTaken         = "email_taken"
	CodeInvalidCredentials = "invalid_credentials"
	CodeRegistrationFailed = "registration_failed"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// Messages maps validation codes to user-facing text in one language.
type Messages map[string]string

var catalogs = map[string]Messages{
	"en": {
		CodeRequired:           "all fields are required",
		CodeLoginRequired:      "email and password are required",
		CodePasswordMismatch:   "passwords do not match",
		CodePasswordTooShort:   "password must be at least 6 characters long",
		CodeEmailTaken:         "a user with this email address already exists",
		CodeInvalidCredentials: "invalid email or password",
		CodeRegistrationFailed: "registration failed",
	},
	"hr": {
		CodeRequired:           "Sva polja su obavezna",
		CodeLoginRequired:      "Email i lozinka su obavezni",
		CodePasswordMismatch:   "Lozinke se ne poklapaju",
		CodePasswordTooShort:   "Lozinka mora imati najmanje 6 znakova",
		CodeEmailTaken:         "Korisnik s ovom email adresom već postoji",
		CodeInvalidCredentials: "Neispravna email adresa ili lozinka",
		CodeRegistrationFailed: "Greška pri registraciji",
	},
}

// MessagesFor returns the catalog for locale, falling back to English.
func MessagesFor(locale string) Messages {
	if m, ok := catalogs[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return m
	}
	return catalogs["en"]
}

func (m Messages) text(code string) string {
	if s, ok := m[code]; ok {
		return s
	}
	return code
}
