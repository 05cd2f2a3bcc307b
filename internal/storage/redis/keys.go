package redis

import (
	"fmt"

	"github.com/arturyumaev/casinodesk/internal/model"
)

// Key prefix for all console-side data
const keyPrefix = "casinodesk"

// sessionKey returns the Redis key for a GridSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// draftKey returns the Redis key for an AssetDraft
func draftKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:draft:%s", keyPrefix, sessionID)
}

// notificationsKey returns the Redis key for a session's notification list
func notificationsKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:notifications:%s", keyPrefix, sessionID)
}
