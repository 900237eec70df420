package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/vidros-portal/internal/apperr"
	"github.com/MikeMC777/vidros-portal/internal/pedido"
	"github.com/MikeMC777/vidros-portal/internal/session"
)

func withSession(token string) context.Context {
	return session.WithSession(context.Background(), &session.Session{BackendToken: token, Role: pedido.RoleDepartment})
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 2*time.Second)
}

func TestListOrders_ForwardsTokenAndStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pedidos", r.URL.Path)
		assert.Equal(t, "cancelado", r.URL.Query().Get("status"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":1,"matricula":"AB-12-CD","status":"cancelado","valor":"150.00","custo":null,"nova_atualizacao":true}]`)
	})

	orders, err := c.ListOrders(withSession("tok-1"), "cancelado")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, pedido.ID("1"), orders[0].ID)
	assert.True(t, orders[0].Value.Decimal.Equal(decimal.NewFromInt(150)))
	assert.False(t, orders[0].Cost.Valid)
	assert.True(t, orders[0].NewActivity)
}

func TestGetOrder_DecodesNestedRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pedidos/42", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":"42","status":"respondido",
			"fotos":[{"id":3,"url":"https://cdn/x.jpg"}],
			"updates":[{"id":9,"conteudo":"Olá","visivel_loja":true,"preco":"12.5"}]}`)
	})

	o, err := c.GetOrder(withSession("t"), "42")
	require.NoError(t, err)
	require.Len(t, o.Photos, 1)
	assert.Equal(t, "https://cdn/x.jpg", o.Photos[0].URL)
	require.Len(t, o.Updates, 1)
	assert.Equal(t, "Olá", o.Updates[0].Content)
	assert.True(t, o.Updates[0].VisibleToStore)
}

func TestUpdateOrder_SendsOnlySetKeys(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	patch, err := pedido.SaveOrderRequest{
		Status: pedido.Some(pedido.StatusCompleted),
		Value:  pedido.Some(decimal.NewNullDecimal(decimal.NewFromInt(150))),
	}.Normalize()
	require.NoError(t, err)
	require.NoError(t, c.UpdateOrder(withSession("t"), "7", patch))

	assert.Equal(t, "concluido", got["status"])
	assert.EqualValues(t, 150, got["valor"])
	assert.NotContains(t, got, "custo")
	assert.NotContains(t, got, "fornecedor")
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, apperr.ErrValidation},
		{http.StatusUnprocessableEntity, apperr.ErrValidation},
		{http.StatusUnauthorized, apperr.ErrUnauthorized},
		{http.StatusForbidden, apperr.ErrForbidden},
		{http.StatusNotFound, apperr.ErrNotFound},
		{http.StatusConflict, apperr.ErrInvalidTransition},
		{http.StatusInternalServerError, apperr.ErrServer},
		{http.StatusBadGateway, apperr.ErrServer},
	}
	for _, tc := range cases {
		code := tc.code
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			_, _ = io.WriteString(w, `{"error":"Loja tem utilizadores associados"}`)
		})
		err := c.Stores().Delete(withSession("t"), "3")
		assert.ErrorIs(t, err, tc.want, "status %d", code)
		if code == http.StatusBadRequest {
			assert.Equal(t, "Loja tem utilizadores associados", apperr.Message(err))
		} else {
			assert.Contains(t, err.Error(), "Loja tem utilizadores associados")
		}
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	err := New(srv.URL, time.Second).CancelOrder(withSession("t"), "1")
	assert.ErrorIs(t, err, apperr.ErrNetwork)
}

func TestBadJSONIsServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>`)
	})
	_, err := c.ListUpdates(withSession("t"), "1")
	assert.ErrorIs(t, err, apperr.ErrServer)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var in LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Password != "certa" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"Credenciais inválidas"}`)
			return
		}
		assert.Equal(t, "loja@vidros.pt", in.Email)
		_, _ = io.WriteString(w, `{"token":"bt","user":{"id":5,"name":"Ana","role":"loja","loja_id":7,"loja_name":"Porto"}}`)
	})

	id, tok, err := c.Login(context.Background(), LoginRequest{Email: " Loja@Vidros.pt ", Password: "certa"})
	require.NoError(t, err)
	assert.Equal(t, "bt", tok)
	assert.Equal(t, pedido.RoleStore, id.Role)
	assert.Equal(t, pedido.ID("7"), id.StoreID)

	_, _, err = c.Login(context.Background(), LoginRequest{Email: "loja@vidros.pt", Password: "errada"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, _, err = c.Login(context.Background(), LoginRequest{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestResetPasswordBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/users/9/reset-password", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "novasenha", body["new_password"])
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.Users().ResetPassword(withSession("t"), "9", "novasenha"))
}

func TestStatsPending(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"total_lojas":3,"total_users":8,"total_pedidos":20,
			"pedidos_por_status":[{"status":"pendente","count":4},{"status":"concluido","count":16}]}`)
	})
	s, err := c.GetStats(withSession("t"))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Pending())
	assert.Equal(t, 3, s.TotalStores)
}
