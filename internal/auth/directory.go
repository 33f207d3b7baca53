package auth

import (
	"fmt"
	"strings"
)

// ParseDirectory parses a user directory out of its env var form:
// "username:bcryptHash:role" entries, comma separated. Bcrypt hashes
// never contain ':' or ',' so no escaping is needed.
func ParseDirectory(raw string) (Directory, error) {
	users := Directory{}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid user entry %q, want username:bcryptHash:role", entry)
		}

		username, passwordHash, role := parts[0], parts[1], parts[2]
		if username == "" || passwordHash == "" {
			return nil, fmt.Errorf("invalid user entry %q, empty username or hash", entry)
		}
		if role != RolePatient && role != RoleTherapist {
			return nil, fmt.Errorf("invalid user entry %q, unknown role %q", entry, role)
		}
		if _, ok := users[username]; ok {
			return nil, fmt.Errorf("duplicate user %q", username)
		}

		users[username] = User{
			Username:     username,
			PasswordHash: passwordHash,
			Role:         role,
		}
	}
	return users, nil
}
