package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
)

const MinPasswordLen = 6

// UserRequest payload of the user form (create and edit).
// swagger:model UserRequest
type UserRequest struct {
	Name     string      `json:"name"     example:"Ana Silva"`
	Email    string      `json:"email"    example:"ana@vidros.pt"`
	Password string      `json:"password" example:"segredo1"`
	Role     pedido.Role `json:"role"     example:"loja"`
	StoreID  *pedido.ID  `json:"loja_id"  swaggertype:"string"`
	Active   *bool       `json:"active,omitempty"`
}

// ResetPasswordRequest payload of the admin password reset.
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" example:"novasenha"`
}

// Payload is the body sent to the backend. Password is omitted when blank so
// an edit keeps the current one; loja_id is always sent, null for
// non-store users.
type Payload struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password,omitempty"`
	Role     pedido.Role `json:"role"`
	StoreID  *pedido.ID  `json:"loja_id"`
	Active   *bool       `json:"active,omitempty"`
}

// Normalize applies the user form rules. creating selects the create rules,
// where the password is mandatory.
func (r UserRequest) Normalize(creating bool) (Payload, error) {
	p := Payload{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
		Role:     r.Role,
		Active:   r.Active,
	}
	if p.Name == "" {
		return Payload{}, apperr.Invalid("name", "O nome é obrigatório")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return Payload{}, apperr.Invalid("email", "Email inválido")
	}
	if !p.Role.Valid() {
		return Payload{}, apperr.Invalid("role", fmt.Sprintf("perfil desconhecido: %q", r.Role))
	}
	if p.Role == pedido.RoleStore {
		if r.StoreID == nil || strings.TrimSpace(string(*r.StoreID)) == "" {
			return Payload{}, apperr.Invalid("loja_id", "Selecione a loja do utilizador")
		}
		id := pedido.ID(strings.TrimSpace(string(*r.StoreID)))
		p.StoreID = &id
	}
	if strings.TrimSpace(p.Password) == "" {
		if creating {
			return Payload{}, apperr.Invalid("password", "Password é obrigatória para novos utilizadores")
		}
		p.Password = ""
	} else if len(p.Password) < MinPasswordLen {
		return Payload{}, apperr.Invalid("password", fmt.Sprintf("A password deve ter pelo menos %d caracteres", MinPasswordLen))
	}
	return p, nil
}

// Check validates the reset form.
func (r ResetPasswordRequest) Check() error {
	if len(strings.TrimSpace(r.NewPassword)) < MinPasswordLen {
		return apperr.Invalid("new_password", fmt.Sprintf("A password deve ter pelo menos %d caracteres", MinPasswordLen))
	}
	return nil
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, in UserRequest) (*User, error) {
	p, err := in.Normalize(true)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id pedido.ID, in UserRequest) (*User, error) {
	if id == "" {
		return nil, apperr.Invalid("id", "id is required")
	}
	p, err := in.Normalize(false)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id pedido.ID) error {
	if id == "" {
		return apperr.Invalid("id", "id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, id pedido.ID, in ResetPasswordRequest) error {
	if err := in.Check(); err != nil {
		return err
	}
	if err := s.repo.ResetPassword(ctx, id, in.NewPassword); err != nil {
		return fmt.Errorf("reset password %s: %w", id, err)
	}
	return nil
}
