package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// DocumentUUID returns the stable identifier for a document at the given
// tree-relative path. The same path always yields the same ID across loads.
func DocumentUUID(path string) uuid.UUID {
	return UUID("go-content:document:" + strings.TrimSpace(path))
}

// ChecklistUUID returns the stable identifier for a planning checklist.
func ChecklistUUID(path string) uuid.UUID {
	return UUID("go-content:checklist:" + strings.TrimSpace(path))
}
