package pedido

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ID is a backend identifier. The backend emits numeric ids; they are kept as
// strings so routes and JSON stay uniform.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

type Role string

const (
	RoleStore      Role = "loja"
	RoleDepartment Role = "departamento"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStore, RoleDepartment, RoleAdmin:
		return true
	}
	return false
}

// Internal reports whether the role works on the department side and may
// see internal fields.
func (r Role) Internal() bool { return r == RoleDepartment || r == RoleAdmin }

// Order is a glass-replacement request (pedido) as returned by the backend.
type Order struct {
	ID          ID                  `json:"id"`
	Plate       string              `json:"matricula"`
	Make        string              `json:"marca_carro"`
	Model       string              `json:"modelo_carro"`
	Year        *int                `json:"ano_carro"`
	GlassType   string              `json:"tipo_vidro"`
	Description string              `json:"descricao"`
	Status      Status              `json:"status"`
	Value       decimal.NullDecimal `json:"valor"`
	Cost        decimal.NullDecimal `json:"custo"`
	Supplier    *string             `json:"fornecedor"`

	StoreID    ID     `json:"loja_id"`
	StoreName  string `json:"loja_name"`
	StoreEmail string `json:"loja_email"`
	StorePhone string `json:"loja_phone"`
	UserID     ID     `json:"user_id"`
	UserName   string `json:"user_name"`

	CreatedAt    time.Time `json:"created_at"`
	Photos       []Photo   `json:"fotos"`
	Updates      []Update  `json:"updates"`
	TotalPhotos  int       `json:"total_fotos"`
	TotalUpdates int       `json:"total_updates"`

	// NewActivity is raised by the backend when an update arrives while the
	// order is respondido or aguarda_resposta, and cleared when the order
	// detail is fetched.
	NewActivity bool `json:"nova_atualizacao"`
}

func (o Order) CurrentStatus() Status { return o.Status }
func (o Order) HasNewActivity() bool  { return o.NewActivity }

// GlassTypes splits the joined glass-type description.
func (o Order) GlassTypes() []string {
	parts := strings.Split(o.GlassType, GlassTypeSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type Photo struct {
	ID      ID     `json:"id"`
	OrderID ID     `json:"pedido_id,omitempty"`
	URL     string `json:"foto_url"`
}

func (p *Photo) UnmarshalJSON(b []byte) error {
	type alias Photo
	var raw struct {
		alias
		AltURL string `json:"url"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = Photo(raw.alias)
	if p.URL == "" {
		p.URL = raw.AltURL
	}
	return nil
}

type UpdateKind string

const (
	KindGeneral  UpdateKind = "geral"
	KindNote     UpdateKind = "nota"
	KindContact  UpdateKind = "contacto"
	KindPrice    UpdateKind = "preco"
	KindProduct  UpdateKind = "estado"
	KindDeadline UpdateKind = "prazo"
)

var updateKinds = []UpdateKind{KindGeneral, KindNote, KindContact, KindPrice, KindProduct, KindDeadline}

func UpdateKinds() []UpdateKind { return append([]UpdateKind(nil), updateKinds...) }

func (k UpdateKind) Valid() bool {
	for _, v := range updateKinds {
		if v == k {
			return true
		}
	}
	return false
}

// Update is an append-only note attached to an order.
type Update struct {
	ID             ID                  `json:"id"`
	OrderID        ID                  `json:"pedido_id,omitempty"`
	AuthorID       ID                  `json:"user_id,omitempty"`
	AuthorName     string              `json:"user_name,omitempty"`
	AuthorRole     Role                `json:"user_role,omitempty"`
	Kind           UpdateKind          `json:"tipo,omitempty"`
	Content        string              `json:"mensagem"`
	Price          decimal.NullDecimal `json:"preco" swaggertype:"number"`
	DeadlineDays   *int                `json:"prazo_dias"`
	VisibleToStore bool                `json:"visivel_loja"`
	CreatedAt      time.Time           `json:"created_at"`
}

// UnmarshalJSON accepts both content field names used by the backend
// (mensagem and conteudo).
func (u *Update) UnmarshalJSON(b []byte) error {
	type alias Update
	var raw struct {
		alias
		AltContent string `json:"conteudo"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*u = Update(raw.alias)
	if u.Content == "" {
		u.Content = raw.AltContent
	}
	return nil
}

// Store (loja) reference as embedded in department views.
type StoreRef struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
