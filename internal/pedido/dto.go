package pedido

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
)

// MaxPhotoBytes is the largest decoded photo accepted on upload.
const MaxPhotoBytes = 5 * 1024 * 1024

// Optional tells an absent JSON key apart from an explicit null.
type Optional[T any] struct {
	Set   bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	return json.Unmarshal(b, &o.Value)
}

func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: v} }

// CreateOrderRequest payload of the new-order form.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Plate          string   `json:"matricula"        example:"AB-12-CD"`
	Make           string   `json:"marca_carro"      example:"RENAULT"`
	Model          string   `json:"modelo_carro"     example:"CLIO"`
	Year           *int     `json:"ano_carro"        example:"2019"`
	GlassTypes     []string `json:"tipos_vidro"`
	OtherGlassType string   `json:"outro_tipo_vidro"`
	GlassType      string   `json:"tipo_vidro"`
	Description    string   `json:"descricao"`
	Photos         []string `json:"fotos"`
}

// NewOrder is the create payload sent to the backend.
type NewOrder struct {
	Plate       string   `json:"matricula"`
	Make        string   `json:"marca_carro"`
	Model       string   `json:"modelo_carro"`
	Year        *int     `json:"ano_carro"`
	GlassType   string   `json:"tipo_vidro"`
	Description string   `json:"descricao"`
	Photos      []string `json:"fotos"`
}

// Normalize validates the form and produces the backend payload. now is
// used to bound the vehicle year.
func (r CreateOrderRequest) Normalize(now time.Time) (NewOrder, error) {
	out := NewOrder{
		Plate:       FormatPlate(r.Plate),
		Make:        strings.ToUpper(strings.TrimSpace(r.Make)),
		Model:       strings.ToUpper(strings.TrimSpace(r.Model)),
		Year:        r.Year,
		Description: strings.TrimSpace(r.Description),
		Photos:      []string{},
	}
	if out.Make == "" {
		return NewOrder{}, apperr.Invalid("marca_carro", "A marca é obrigatória")
	}
	if out.Model == "" {
		return NewOrder{}, apperr.Invalid("modelo_carro", "O modelo é obrigatório")
	}
	if r.Year != nil && (*r.Year < 1900 || *r.Year > now.Year()+1) {
		return NewOrder{}, apperr.Invalid("ano_carro", "Ano inválido")
	}

	types := make([]string, 0, len(r.GlassTypes)+2)
	seen := map[string]bool{}
	add := func(t string) {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" && !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	for _, t := range r.GlassTypes {
		add(t)
	}
	add(r.OtherGlassType)
	if len(types) == 0 {
		for _, t := range strings.Split(r.GlassType, ",") {
			add(t)
		}
	}
	if len(types) == 0 {
		return NewOrder{}, apperr.Invalid("tipo_vidro", "Selecione pelo menos um tipo de vidro")
	}
	out.GlassType = strings.Join(types, GlassTypeSeparator)

	for i, p := range r.Photos {
		if err := CheckPhoto(p); err != nil {
			return NewOrder{}, fmt.Errorf("foto %d: %w", i+1, err)
		}
		out.Photos = append(out.Photos, p)
	}
	return out, nil
}

// CheckPhoto accepts an http(s) URL or a base64 data URI of at most
// MaxPhotoBytes decoded bytes.
func CheckPhoto(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return apperr.Invalid("fotos", "Foto vazia")
	}
	if rest, ok := strings.CutPrefix(ref, "data:"); ok {
		meta, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(meta, ";base64") || !strings.HasPrefix(meta, "image/") {
			return apperr.Invalid("fotos", "Formato de foto inválido")
		}
		if base64.StdEncoding.DecodedLen(len(payload)) > MaxPhotoBytes+3 {
			return apperr.Invalid("fotos", "Cada foto deve ter no máximo 5MB")
		}
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return apperr.Invalid("fotos", "Formato de foto inválido")
		}
		if len(raw) > MaxPhotoBytes {
			return apperr.Invalid("fotos", "Cada foto deve ter no máximo 5MB")
		}
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperr.Invalid("fotos", "Formato de foto inválido")
	}
	return nil
}

// AddPhotoRequest payload of the add-photo action.
// swagger:model AddPhotoRequest
type AddPhotoRequest struct {
	URL string `json:"foto_url"`
}

// SaveOrderRequest is the department editor's atomic save. Absent keys are
// left untouched; an explicit null clears the field.
// swagger:model SaveOrderRequest
type SaveOrderRequest struct {
	Status   Optional[Status]              `json:"status"   swaggertype:"string" example:"concluido"`
	Value    Optional[decimal.NullDecimal] `json:"valor"    swaggertype:"number" example:"150.00"`
	Cost     Optional[decimal.NullDecimal] `json:"custo"    swaggertype:"number" example:"90.00"`
	Supplier Optional[*string]             `json:"fornecedor" swaggertype:"string"`
}

// OrderPatch is a validated SaveOrderRequest.
type OrderPatch SaveOrderRequest

func (r SaveOrderRequest) Normalize() (OrderPatch, error) {
	if !r.Status.Set && !r.Value.Set && !r.Cost.Set && !r.Supplier.Set {
		return OrderPatch{}, apperr.Invalid("", "Nada para atualizar")
	}
	if r.Status.Set && !r.Status.Value.Valid() {
		return OrderPatch{}, apperr.Invalid("status", fmt.Sprintf("estado desconhecido: %q", r.Status.Value))
	}
	if r.Value.Set && r.Value.Value.Valid && r.Value.Value.Decimal.IsNegative() {
		return OrderPatch{}, apperr.Invalid("valor", "O valor não pode ser negativo")
	}
	if r.Cost.Set && r.Cost.Value.Valid && r.Cost.Value.Decimal.IsNegative() {
		return OrderPatch{}, apperr.Invalid("custo", "O custo não pode ser negativo")
	}
	if r.Supplier.Set && r.Supplier.Value != nil {
		s := strings.TrimSpace(*r.Supplier.Value)
		if s == "" {
			r.Supplier.Value = nil
		} else {
			r.Supplier.Value = &s
		}
	}
	return OrderPatch(r), nil
}

// Body renders the backend PUT payload with only the keys that were set.
func (p OrderPatch) Body() map[string]any {
	body := map[string]any{}
	if p.Status.Set {
		body["status"] = p.Status.Value
	}
	if p.Value.Set {
		body["valor"] = decimalOrNil(p.Value.Value)
	}
	if p.Cost.Set {
		body["custo"] = decimalOrNil(p.Cost.Value)
	}
	if p.Supplier.Set {
		if p.Supplier.Value == nil {
			body["fornecedor"] = nil
		} else {
			body["fornecedor"] = *p.Supplier.Value
		}
	}
	return body
}

// Apply returns o with the patch applied, used to check the backend's answer.
func (p OrderPatch) Apply(o Order) Order {
	if p.Status.Set {
		o.Status = p.Status.Value
	}
	if p.Value.Set {
		o.Value = p.Value.Value
	}
	if p.Cost.Set {
		o.Cost = p.Cost.Value
	}
	if p.Supplier.Set {
		o.Supplier = p.Supplier.Value
	}
	return o
}

func decimalOrNil(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return json.Number(d.Decimal.String())
}

// AddUpdateRequest payload of the reply/update forms.
// swagger:model AddUpdateRequest
type AddUpdateRequest struct {
	Content        string              `json:"mensagem"     example:"Vidro encomendado ao fornecedor"`
	AltContent     string              `json:"conteudo"`
	Kind           UpdateKind          `json:"tipo"         example:"geral"`
	VisibleToStore *bool               `json:"visivel_loja" example:"true"`
	Price          decimal.NullDecimal `json:"preco"        swaggertype:"number"`
	DeadlineDays   *int                `json:"prazo_dias"`
}

// NewUpdate is the add-update payload sent to the backend.
type NewUpdate struct {
	Content        string      `json:"mensagem"`
	Kind           UpdateKind  `json:"tipo"`
	VisibleToStore bool        `json:"visivel_loja"`
	Price          json.Number `json:"preco,omitempty"`
	DeadlineDays   *int        `json:"prazo_dias,omitempty"`
}

// Normalize validates the form for role. Store replies are always general
// and internal-only; structured fields are kept only for their own subtype.
func (r AddUpdateRequest) Normalize(role Role) (NewUpdate, error) {
	content := strings.TrimSpace(r.Content)
	if content == "" {
		content = strings.TrimSpace(r.AltContent)
	}
	if content == "" {
		return NewUpdate{}, apperr.Invalid("mensagem", "O conteúdo é obrigatório")
	}
	if !role.Internal() {
		return NewUpdate{Content: content, Kind: KindGeneral, VisibleToStore: false}, nil
	}

	out := NewUpdate{Content: content, Kind: r.Kind}
	if out.Kind == "" {
		out.Kind = KindGeneral
	}
	if !out.Kind.Valid() {
		return NewUpdate{}, apperr.Invalid("tipo", fmt.Sprintf("tipo desconhecido: %q", r.Kind))
	}
	if r.VisibleToStore == nil {
		return NewUpdate{}, apperr.Invalid("visivel_loja", "Indique se a atualização é visível para a loja")
	}
	out.VisibleToStore = *r.VisibleToStore

	switch out.Kind {
	case KindPrice:
		if r.Price.Valid {
			if r.Price.Decimal.IsNegative() {
				return NewUpdate{}, apperr.Invalid("preco", "O preço não pode ser negativo")
			}
			out.Price = json.Number(r.Price.Decimal.String())
		}
	case KindDeadline:
		if r.DeadlineDays != nil {
			if *r.DeadlineDays <= 0 {
				return NewUpdate{}, apperr.Invalid("prazo_dias", "O prazo deve ser positivo")
			}
			d := *r.DeadlineDays
			out.DeadlineDays = &d
		}
	}
	return out, nil
}

// CancelRequest carries the explicit confirmation of the cancel action.
// swagger:model CancelRequest
type CancelRequest struct {
	Confirm bool `json:"confirm" example:"true"`
}

func (r CancelRequest) Check() error {
	if !r.Confirm {
		return apperr.Invalid("confirm", "Confirme o cancelamento do pedido")
	}
	return nil
}

