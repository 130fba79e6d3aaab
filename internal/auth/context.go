package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CtxFirebaseUID is the Gin context key set by the Firebase auth middleware.
const CtxFirebaseUID = "firebase_uid"

// UserFirebaseUID extracts the Firebase UID from the Gin context
// This is set by FirebaseAuthMiddleware
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}
