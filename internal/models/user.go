package models

// User is an operator account. Password and SecurityAnswer hold bcrypt
// hashes, never plaintext. Users are created at registration and mutated
// only by password reset.
type User struct {
	Username         string
	Password         string
	SecurityQuestion string
	SecurityAnswer   string
}
