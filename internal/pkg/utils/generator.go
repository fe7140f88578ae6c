package utils

import (
	"fmt"
	"mamacare-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateObjectName builds a collision free object key below folder.
func GenerateObjectName(folder, extension string) string {
	return fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), extension)
}
