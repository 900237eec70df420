package pedido

import (
	"fmt"
	"strings"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
)

type Status string

const (
	StatusPending       Status = "pendente"
	StatusInProgress    Status = "em_progresso"
	StatusResponded     Status = "respondido"
	StatusAwaitingReply Status = "aguarda_resposta"
	StatusFound         Status = "encontrado"
	StatusCompleted     Status = "concluido"
	StatusCancelled     Status = "cancelado"
)

// InitialStatus is set by the backend when an order is created.
const InitialStatus = StatusPending

// canonical order, also used for dashboards and zero-filled counts
var statuses = []Status{
	StatusPending,
	StatusInProgress,
	StatusResponded,
	StatusAwaitingReply,
	StatusFound,
	StatusCompleted,
	StatusCancelled,
}

// targets selectable in the department status editor
var manualTargets = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusFound:      true,
	StatusCompleted:  true,
}

func Statuses() []Status { return append([]Status(nil), statuses...) }

func ManualTargets() []Status {
	out := make([]Status, 0, len(manualTargets))
	for _, s := range statuses {
		if manualTargets[s] {
			out = append(out, s)
		}
	}
	return out
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResponded, StatusAwaitingReply,
		StatusFound, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool { return s == StatusCompleted || s == StatusCancelled }

// Conversation reports whether the status belongs to the store/department
// message exchange, the only statuses that raise activity badges.
func (s Status) Conversation() bool { return s == StatusResponded || s == StatusAwaitingReply }

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", apperr.Invalid("status", fmt.Sprintf("estado desconhecido: %q", raw))
	}
	return s, nil
}

// CheckTransition validates a manual status change made through the order
// editor. Keeping the current status is always allowed so other fields can
// be saved on their own.
func CheckTransition(role Role, from, to Status) error {
	if !role.Internal() {
		return fmt.Errorf("%w: role %q cannot change status", apperr.ErrForbidden, role)
	}
	if !to.Valid() {
		return apperr.Invalid("status", fmt.Sprintf("estado desconhecido: %q", to))
	}
	if from == to {
		return nil
	}
	if from.Terminal() {
		return fmt.Errorf("%w: %s is final", apperr.ErrInvalidTransition, from)
	}
	if !manualTargets[to] {
		return fmt.Errorf("%w: %s -> %s not selectable", apperr.ErrInvalidTransition, from, to)
	}
	return nil
}

// AllowedTransitions lists the statuses the role may pick for an order that
// is currently in from. The current status is not included.
func AllowedTransitions(role Role, from Status) []Status {
	if !role.Internal() || from.Terminal() {
		return []Status{}
	}
	out := make([]Status, 0, len(manualTargets))
	for _, s := range ManualTargets() {
		if s != from {
			out = append(out, s)
		}
	}
	return out
}

// CheckCancel validates the dedicated cancel action.
func CheckCancel(role Role, from Status) error {
	if !role.Valid() {
		return fmt.Errorf("%w: role %q cannot cancel", apperr.ErrForbidden, role)
	}
	if from.Terminal() {
		return fmt.Errorf("%w: %s is final", apperr.ErrInvalidTransition, from)
	}
	return nil
}

// CommunicationTransition returns the status an order moves to as a side
// effect of a new update. A store reply answers a department question, and
// a store-visible department reply to an answered order asks again.
func CommunicationTransition(current Status, author Role, visibleToStore bool) (Status, bool) {
	switch {
	case author == RoleStore && current == StatusAwaitingReply:
		return StatusResponded, true
	case author.Internal() && visibleToStore && current == StatusResponded:
		return StatusAwaitingReply, true
	}
	return current, false
}
