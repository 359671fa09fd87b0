package dialog

import (
	"context"

	"multisport/models"
)

// Manager turns one parsed utterance into a French reply and an optional
// structured action for the orchestration layer.
type Manager interface {
	Handle(ctx context.Context, sessionID string, parse models.ParseResult) (string, models.Action, error)
}
