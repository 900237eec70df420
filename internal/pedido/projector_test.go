package pedido

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func strp(s string) *string { return &s }

func sampleOrder() Order {
	return Order{
		ID:          "42",
		Plate:       "AB-12-CD",
		Make:        "RENAULT",
		Model:       "CLIO",
		GlassType:   "1 - PÁRA-BRISAS",
		Status:      StatusAwaitingReply,
		Value:       money("150.00"),
		Cost:        money("90.50"),
		Supplier:    strp("Vidros Norte"),
		StoreID:     "7",
		StoreName:   "Loja Porto",
		UserName:    "Ana",
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Photos:      []Photo{{ID: "1", URL: "https://cdn.example/1.jpg"}},
		NewActivity: true,
		Updates: []Update{
			{ID: "1", Content: "Pedido recebido", VisibleToStore: true},
			{ID: "2", Content: "Fornecedor pede 90€", Kind: KindPrice, VisibleToStore: false},
			{ID: "3", Content: "Confirma a cor?", VisibleToStore: true},
		},
	}
}

func TestProject_StoreNeverSeesInternalFields(t *testing.T) {
	orders := []Order{sampleOrder(), {ID: "1", Status: StatusPending}, {ID: "2", Status: StatusCancelled, Cost: money("1")}}
	for _, o := range orders {
		v := Project(o, RoleStore)
		assert.Nil(t, v.Cost)
		assert.Nil(t, v.Supplier)
		assert.Nil(t, v.Store)
		assert.Empty(t, v.CostLabel)

		raw, err := json.Marshal(v)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		assert.NotContains(t, m, "custo")
		assert.NotContains(t, m, "fornecedor")
		assert.NotContains(t, m, "loja")
	}
}

func TestProject_StoreSeesOnlyVisibleUpdates(t *testing.T) {
	v := Project(sampleOrder(), RoleStore)
	require.Len(t, v.Updates, 2)
	for _, u := range v.Updates {
		assert.True(t, u.VisibleToStore)
	}
	assert.Equal(t, 2, v.TotalUpdates)
}

func TestProject_DepartmentSeesEverything(t *testing.T) {
	for _, role := range []Role{RoleDepartment, RoleAdmin} {
		v := Project(sampleOrder(), role)
		require.NotNil(t, v.Cost)
		assert.True(t, v.Cost.Decimal.Equal(decimal.RequireFromString("90.5")))
		assert.Equal(t, "€90.50", v.CostLabel)
		require.NotNil(t, v.Supplier)
		assert.Equal(t, "Vidros Norte", *v.Supplier)
		require.NotNil(t, v.Store)
		assert.Equal(t, "Loja Porto", v.Store.Name)
		assert.Len(t, v.Updates, 3)
	}
}

func TestProject_DepartmentNullCostIsExplicit(t *testing.T) {
	v := Project(Order{ID: "9", Status: StatusPending}, RoleDepartment)
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Contains(t, m, "custo")
	assert.Nil(t, m["custo"])
	assert.Equal(t, NotSet, m["valor_label"])
}

func TestProject_DoesNotAliasSlices(t *testing.T) {
	o := sampleOrder()
	v := Project(o, RoleDepartment)
	v.Updates[0].Content = "changed"
	v.Photos[0].URL = "changed"
	assert.Equal(t, "Pedido recebido", o.Updates[0].Content)
	assert.Equal(t, "https://cdn.example/1.jpg", o.Photos[0].URL)
}

func TestCapabilitiesFor(t *testing.T) {
	store := CapabilitiesFor(RoleStore, StatusPending)
	assert.Equal(t, Capabilities{CanReply: true, CanAddPhotos: true, CanCancel: true}, store)

	dept := CapabilitiesFor(RoleDepartment, StatusInProgress)
	assert.True(t, dept.CanEditPricing)
	assert.True(t, dept.CanEditInternalFields)
	assert.True(t, dept.CanChangeStatus)
	assert.True(t, dept.CanSetVisibility)

	closed := CapabilitiesFor(RoleDepartment, StatusCompleted)
	assert.False(t, closed.CanChangeStatus)
	assert.False(t, closed.CanCancel)
	assert.True(t, closed.CanReply)
	assert.True(t, closed.CanEditPricing)

	for _, role := range []Role{RoleStore, RoleDepartment, RoleAdmin} {
		cancelled := CapabilitiesFor(role, StatusCancelled)
		assert.False(t, cancelled.CanReply, role)
		assert.False(t, cancelled.CanAddPhotos, role)
		assert.False(t, cancelled.CanCancel, role)
	}

	assert.Equal(t, Capabilities{}, CapabilitiesFor(Role("x"), StatusPending))
}

func TestProject_StoreListCountsOnlyVisibleUpdates(t *testing.T) {
	// list rows come without nested updates
	o := Order{ID: "8", Status: StatusPending, TotalUpdates: 4, GlassType: "1 - PÁRA-BRISAS, TECTO"}

	v := Project(o, RoleStore)
	assert.Equal(t, 0, v.TotalUpdates)
	assert.Empty(t, v.Updates)
	assert.Equal(t, []string{"1 - PÁRA-BRISAS", "TECTO"}, v.GlassTypes)

	v = Project(o, RoleDepartment)
	assert.Equal(t, 4, v.TotalUpdates)
}

func TestDetail(t *testing.T) {
	d := Detail(sampleOrder(), RoleStore)
	assert.True(t, d.Unseen)
	assert.Empty(t, d.AllowedTransitions)
	assert.Equal(t, []UpdateKind{KindGeneral}, d.UpdateKinds)

	d = Detail(sampleOrder(), RoleDepartment)
	assert.Equal(t, ManualTargets(), d.AllowedTransitions)
	assert.Len(t, d.UpdateKinds, 6)
}
