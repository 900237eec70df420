package pedido

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderView is the role-scoped projection of an Order sent to the browser.
// Internal-only fields are pointers so that a store projection leaves them
// out of the JSON entirely.
type OrderView struct {
	ID          ID                  `json:"id"`
	Plate       string              `json:"matricula"`
	Make        string              `json:"marca_carro"`
	Model       string              `json:"modelo_carro"`
	Year        *int                `json:"ano_carro"`
	GlassType   string              `json:"tipo_vidro"`
	GlassTypes  []string            `json:"tipos_vidro"`
	Description string              `json:"descricao"`
	Status      Status              `json:"status"`
	StatusInfo  StatusDisplay       `json:"status_info"`
	Value       decimal.NullDecimal `json:"valor" swaggertype:"number"`
	ValueLabel  string              `json:"valor_label"`

	Cost      *decimal.NullDecimal `json:"custo,omitempty" swaggertype:"number"`
	CostLabel string               `json:"custo_label,omitempty"`
	Supplier  *string              `json:"fornecedor,omitempty"`
	Store     *StoreRef            `json:"loja,omitempty"`

	CreatedBy    string    `json:"user_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Photos       []Photo   `json:"fotos"`
	Updates      []Update  `json:"updates"`
	TotalPhotos  int       `json:"total_fotos"`
	TotalUpdates int       `json:"total_updates"`
	Unseen       bool      `json:"nova_atualizacao"`
}

func (v OrderView) CurrentStatus() Status { return v.Status }
func (v OrderView) HasNewActivity() bool  { return v.Unseen }

// Project builds the view of order for role. Cost, supplier, the owning
// store's identity and internal-only updates are only kept for department
// and admin roles. An invalid role gets the store projection.
func Project(o Order, role Role) OrderView {
	v := OrderView{
		ID:           o.ID,
		Plate:        o.Plate,
		Make:         o.Make,
		Model:        o.Model,
		Year:         o.Year,
		GlassType:    o.GlassType,
		GlassTypes:   o.GlassTypes(),
		Description:  o.Description,
		Status:       o.Status,
		StatusInfo:   StatusInfo(o.Status),
		Value:        o.Value,
		ValueLabel:   FormatValue(o.Value),
		CreatedBy:    o.UserName,
		CreatedAt:    o.CreatedAt,
		Photos:       append([]Photo{}, o.Photos...),
		TotalPhotos:  o.TotalPhotos,
		TotalUpdates: o.TotalUpdates,
		Unseen:       HasUnseenActivity(o),
	}

	if !role.Internal() {
		// the backend total counts internal notes too
		v.Updates = VisibleUpdates(o.Updates, role)
		v.TotalUpdates = len(v.Updates)
		return v
	}

	cost := o.Cost
	supplier := ""
	if o.Supplier != nil {
		supplier = *o.Supplier
	}
	v.Cost = &cost
	v.CostLabel = FormatValue(o.Cost)
	v.Supplier = &supplier
	v.Store = &StoreRef{ID: o.StoreID, Name: o.StoreName, Email: o.StoreEmail, Phone: o.StorePhone}
	v.Updates = append([]Update{}, o.Updates...)
	return v
}

// ProjectAll projects every order for role, keeping order.
func ProjectAll(orders []Order, role Role) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, Project(o, role))
	}
	return out
}

// VisibleUpdates filters updates down to what role may read.
func VisibleUpdates(updates []Update, role Role) []Update {
	if role.Internal() {
		return append([]Update{}, updates...)
	}
	out := make([]Update, 0, len(updates))
	for _, u := range updates {
		if u.VisibleToStore {
			out = append(out, u)
		}
	}
	return out
}

// Capabilities is the set of actions a role has on one order. The detail
// view renders forms from it instead of branching on the role.
type Capabilities struct {
	CanEditPricing        bool `json:"can_edit_pricing"`
	CanEditInternalFields bool `json:"can_edit_internal_fields"`
	CanChangeStatus       bool `json:"can_change_status"`
	CanReply              bool `json:"can_reply"`
	CanSetVisibility      bool `json:"can_set_visibility"`
	CanAddPhotos          bool `json:"can_add_photos"`
	CanCancel             bool `json:"can_cancel"`
}

// CapabilitiesFor derives the actions of role on an order in status. Only a
// cancelled order is closed to new updates; a completed one still takes
// notes.
func CapabilitiesFor(role Role, status Status) Capabilities {
	if !role.Valid() {
		return Capabilities{}
	}
	open := !status.Terminal()
	internal := role.Internal()
	return Capabilities{
		CanEditPricing:        internal,
		CanEditInternalFields: internal,
		CanChangeStatus:       internal && open,
		CanReply:              status != StatusCancelled,
		CanSetVisibility:      internal,
		CanAddPhotos:          open && role != RoleAdmin,
		CanCancel:             open,
	}
}

// DetailView is the single order detail payload shared by all roles.
type DetailView struct {
	OrderView
	Capabilities       Capabilities `json:"capabilities"`
	AllowedTransitions []Status     `json:"allowed_transitions"`
	UpdateKinds        []UpdateKind `json:"update_kinds"`
}

func Detail(o Order, role Role) DetailView {
	kinds := []UpdateKind{KindGeneral}
	if role.Internal() {
		kinds = UpdateKinds()
	}
	return DetailView{
		OrderView:          Project(o, role),
		Capabilities:       CapabilitiesFor(role, o.Status),
		AllowedTransitions: AllowedTransitions(role, o.Status),
		UpdateKinds:        kinds,
	}
}
