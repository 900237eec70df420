package pedido

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func TestCreateOrderRequest_Normalize(t *testing.T) {
	year := 2019
	req := CreateOrderRequest{
		Plate:          "ab12cd",
		Make:           " renault ",
		Model:          "clio",
		Year:           &year,
		GlassTypes:     []string{"1 - Pára-Brisas", "9 - Óculo Traseiro", "1 - pára-brisas"},
		OtherGlassType: "farolim",
		Photos:         []string{"https://cdn.example/a.jpg"},
	}
	out, err := req.Normalize(now)
	require.NoError(t, err)
	assert.Equal(t, "AB-12-CD", out.Plate)
	assert.Equal(t, "RENAULT", out.Make)
	assert.Equal(t, "CLIO", out.Model)
	assert.Equal(t, "1 - PÁRA-BRISAS, 9 - ÓCULO TRASEIRO, FAROLIM", out.GlassType)
	assert.Len(t, out.Photos, 1)
}

func TestCreateOrderRequest_NeedsGlassType(t *testing.T) {
	_, err := CreateOrderRequest{Make: "SEAT", Model: "IBIZA", OtherGlassType: "  "}.Normalize(now)
	require.ErrorIs(t, err, apperr.ErrValidation)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tipo_vidro", ve.Field)

	// the single-field form is accepted too
	out, err := CreateOrderRequest{Make: "SEAT", Model: "IBIZA", GlassType: "tecto"}.Normalize(now)
	require.NoError(t, err)
	assert.Equal(t, "TECTO", out.GlassType)
}

func TestCreateOrderRequest_Rejects(t *testing.T) {
	bad := 1850
	cases := map[string]CreateOrderRequest{
		"no make":   {Model: "X", GlassType: "a"},
		"no model":  {Make: "X", GlassType: "a"},
		"bad year":  {Make: "X", Model: "Y", GlassType: "a", Year: &bad},
		"bad photo": {Make: "X", Model: "Y", GlassType: "a", Photos: []string{"ftp://x/y.png"}},
	}
	for name, req := range cases {
		_, err := req.Normalize(now)
		assert.ErrorIs(t, err, apperr.ErrValidation, name)
	}
}

func TestCheckPhoto(t *testing.T) {
	small := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	assert.NoError(t, CheckPhoto(small))
	assert.NoError(t, CheckPhoto("http://host/p.jpg"))

	big := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(make([]byte, MaxPhotoBytes+1))
	err := CheckPhoto(big)
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Contains(t, apperr.Message(err), "5MB")

	assert.Error(t, CheckPhoto("data:text/plain;base64,aGk="))
	assert.Error(t, CheckPhoto("data:image/png;base64,***"))
	assert.Error(t, CheckPhoto(""))
}

func TestSaveOrderRequest_PartialBody(t *testing.T) {
	var req SaveOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"concluido","valor":150.0}`), &req))

	patch, err := req.Normalize()
	require.NoError(t, err)
	body := patch.Body()
	assert.Equal(t, StatusCompleted, body["status"])
	assert.Equal(t, json.Number("150"), body["valor"])
	assert.NotContains(t, body, "custo")
	assert.NotContains(t, body, "fornecedor")
}

func TestSaveOrderRequest_ExplicitNulls(t *testing.T) {
	var req SaveOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"valor":null,"custo":"12.30","fornecedor":"  "}`), &req))

	patch, err := req.Normalize()
	require.NoError(t, err)
	body := patch.Body()
	assert.Contains(t, body, "valor")
	assert.Nil(t, body["valor"])
	assert.Equal(t, json.Number("12.3"), body["custo"])
	assert.Contains(t, body, "fornecedor")
	assert.Nil(t, body["fornecedor"])
	assert.NotContains(t, body, "status")
}

func TestSaveOrderRequest_Rejects(t *testing.T) {
	for _, raw := range []string{`{}`, `{"status":"feito"}`, `{"status":null}`, `{"valor":-1}`, `{"custo":"-0.01"}`} {
		var req SaveOrderRequest
		require.NoError(t, json.Unmarshal([]byte(raw), &req), raw)
		_, err := req.Normalize()
		assert.ErrorIs(t, err, apperr.ErrValidation, raw)
	}
}

func TestAddUpdateRequest_StoreDefaultsToInternal(t *testing.T) {
	yes := true
	out, err := AddUpdateRequest{Content: "Any update", Kind: KindPrice, VisibleToStore: &yes, Price: money("10")}.Normalize(RoleStore)
	require.NoError(t, err)
	assert.False(t, out.VisibleToStore)
	assert.Equal(t, KindGeneral, out.Kind)
	assert.Empty(t, out.Price)
}

func TestAddUpdateRequest_ContentRequired(t *testing.T) {
	for _, role := range []Role{RoleStore, RoleDepartment} {
		_, err := AddUpdateRequest{Content: "   "}.Normalize(role)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	}
	out, err := AddUpdateRequest{AltContent: "via conteudo"}.Normalize(RoleStore)
	require.NoError(t, err)
	assert.Equal(t, "via conteudo", out.Content)
}

func TestAddUpdateRequest_Department(t *testing.T) {
	yes, no := true, false
	days := 5

	out, err := AddUpdateRequest{Content: "Preço", Kind: KindPrice, VisibleToStore: &yes, Price: money("99.90"), DeadlineDays: &days}.Normalize(RoleDepartment)
	require.NoError(t, err)
	assert.True(t, out.VisibleToStore)
	assert.Equal(t, json.Number("99.9"), out.Price)
	assert.Nil(t, out.DeadlineDays)

	out, err = AddUpdateRequest{Content: "Prazo", Kind: KindDeadline, VisibleToStore: &no, Price: money("1"), DeadlineDays: &days}.Normalize(RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, out.Price)
	require.NotNil(t, out.DeadlineDays)
	assert.Equal(t, 5, *out.DeadlineDays)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "preco"))

	out, err = AddUpdateRequest{Content: "x", VisibleToStore: &no}.Normalize(RoleDepartment)
	require.NoError(t, err)
	assert.Equal(t, KindGeneral, out.Kind)
}

func TestAddUpdateRequest_DepartmentRejects(t *testing.T) {
	yes := true
	zero := 0
	cases := map[string]AddUpdateRequest{
		"no visibility":  {Content: "x"},
		"unknown kind":   {Content: "x", Kind: "fofoca", VisibleToStore: &yes},
		"negative price": {Content: "x", Kind: KindPrice, VisibleToStore: &yes, Price: decimal.NewNullDecimal(decimal.NewFromInt(-3))},
		"zero deadline":  {Content: "x", Kind: KindDeadline, VisibleToStore: &yes, DeadlineDays: &zero},
	}
	for name, req := range cases {
		_, err := req.Normalize(RoleDepartment)
		assert.ErrorIs(t, err, apperr.ErrValidation, name)
	}
}

func TestCancelRequest_Check(t *testing.T) {
	assert.ErrorIs(t, CancelRequest{}.Check(), apperr.ErrValidation)
	assert.NoError(t, CancelRequest{Confirm: true}.Check())
}
