package identity

import (
	"strconv"
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

// PostUUID derives a stable identifier for a post from its numeric ID.
func PostUUID(postID int) uuid.UUID {
	return UUID("devlog:post:" + strconv.Itoa(postID))
}

// ExportUUID derives a stable identifier for an export envelope from the
// sorted post IDs it covers, so identical collections carry identical IDs.
func ExportUUID(postIDs []int) uuid.UUID {
	parts := make([]string, 0, len(postIDs))
	for _, id := range postIDs {
		parts = append(parts, strconv.Itoa(id))
	}
	return UUID("devlog:export:" + strings.Join(parts, ","))
}

// SlugUUID derives a stable identifier for a post slug.
func SlugUUID(slug string) uuid.UUID {
	return UUID("devlog:slug:" + strings.ToLower(strings.TrimSpace(slug)))
}
