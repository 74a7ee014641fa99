package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
)

// Action is the human's twenty-one decision.
type Action string

const (
	Hit  Action = "hit"
	Stay Action = "stay"
)

func ParseAction(token string) (Action, error) {
	switch action := Action(strings.ToLower(strings.TrimSpace(token))); action {
	case Hit, Stay:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q is not hit or stay", apperror.ErrInvalidInput, token)
	}
}
