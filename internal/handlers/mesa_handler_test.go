package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/mesa-api/internal/infra/cache"
	"github.com/BruksfildServices01/mesa-api/internal/models"
	"github.com/BruksfildServices01/mesa-api/internal/routes"
)

func setupMesaRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Mesa{}, &models.AuditLog{}))

	r := gin.New()
	routes.RegisterRoutes(r, db, cache.NewDisabledMesaCache())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMesa(t *testing.T, w *httptest.ResponseRecorder) models.Mesa {
	t.Helper()

	var m models.Mesa
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Code string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) (int, []models.Mesa) {
	t.Helper()

	var resp struct {
		Data  []models.Mesa `json:"data"`
		Total int           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Total, resp.Data
}

// ======================================================
// CENÁRIO COMPLETO (criação → desativação via PUT → leitura)
// ======================================================

func TestMesaCicloDeVidaCompleto(t *testing.T) {
	r := setupMesaRouter(t)

	// cria ativa, mesmo que o payload tente outro status
	w := doJSON(t, r, http.MethodPost, "/mesas", map[string]any{
		"capacidade": 4,
		"descricao":  "Mesa perto da janela",
		"local":      "Restaurante A",
		"status":     -1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeMesa(t, w)
	assert.Equal(t, 1, created.Status)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	// PUT com status -1 desativa
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/mesas/%d", created.ID), map[string]any{
		"status": -1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, decodeMesa(t, w).Status)

	// mesa desativada não aceita mais updates
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/mesas/%d", created.ID), map[string]any{
		"descricao": "x",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "mesa_desativada", decodeError(t, w))

	// leitura por id continua funcionando
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/mesas/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, decodeMesa(t, w).Status)

	// busca por local: default inclui a inativa
	w = doJSON(t, r, http.MethodGet, "/mesas/local/Restaurante%20A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	total, _ := decodeList(t, w)
	assert.Equal(t, 1, total)

	// com o filtro de ativas, o local fica vazio → 404
	w = doJSON(t, r, http.MethodGet, "/mesas/local/Restaurante%20A?somente_ativas=true", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "local_sem_mesas", decodeError(t, w))
}

// ======================================================
// CREATE
// ======================================================

func TestCreateMesaSemCapacidadeNaoCriaRegistro(t *testing.T) {
	r := setupMesaRouter(t)

	w := doJSON(t, r, http.MethodPost, "/mesas", map[string]any{
		"descricao": "Mesa perto da janela",
		"local":     "Restaurante A",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_required_field", decodeError(t, w))

	w = doJSON(t, r, http.MethodGet, "/mesas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	total, _ := decodeList(t, w)
	assert.Equal(t, 0, total)
}

func TestCreateMesaPayloadMalformado(t *testing.T) {
	r := setupMesaRouter(t)

	req, err := http.NewRequest(http.MethodPost, "/mesas", bytes.NewBufferString("{nope"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decodeError(t, w))
}

// ======================================================
// GET / LIST
// ======================================================

func TestGetMesaInexistente(t *testing.T) {
	r := setupMesaRouter(t)

	w := doJSON(t, r, http.MethodGet, "/mesas/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "mesa_not_found", decodeError(t, w))
}

func TestGetMesaIDInvalido(t *testing.T) {
	r := setupMesaRouter(t)

	w := doJSON(t, r, http.MethodGet, "/mesas/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", decodeError(t, w))
}

func TestListMesasVazia(t *testing.T) {
	r := setupMesaRouter(t)

	w := doJSON(t, r, http.MethodGet, "/mesas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	total, data := decodeList(t, w)
	assert.Equal(t, 0, total)
	assert.NotNil(t, data)
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateMesaStatusForaDoEnum(t *testing.T) {
	r := setupMesaRouter(t)

	w := doJSON(t, r, http.MethodPost, "/mesas", map[string]any{
		"capacidade": 4,
		"descricao":  "Mesa",
		"local":      "Salão",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeMesa(t, w)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/mesas/%d", created.ID), map[string]any{
		"status": 5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "status_invalido", decodeError(t, w))
}

func TestUpdateMesaInexistente(t *testing.T) {
	r := setupMesaRouter(t)

	w := doJSON(t, r, http.MethodPut, "/mesas/77", map[string]any{
		"descricao": "x",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "mesa_not_found", decodeError(t, w))
}

// ======================================================
// DELETE (lógico)
// ======================================================

func TestDeleteMesaEhLogicoEIdempotente(t *testing.T) {
	r := setupMesaRouter(t)

	w := doJSON(t, r, http.MethodPost, "/mesas", map[string]any{
		"capacidade": 2,
		"descricao":  "Bistrô",
		"local":      "Varanda",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeMesa(t, w)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/mesas/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, decodeMesa(t, w).Status)

	// repetir o DELETE continua 200
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/mesas/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// o registro não sumiu da listagem geral
	w = doJSON(t, r, http.MethodGet, "/mesas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	total, data := decodeList(t, w)
	require.Equal(t, 1, total)
	assert.Equal(t, -1, data[0].Status)
}

func TestDeleteMesaInexistente(t *testing.T) {
	r := setupMesaRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/mesas/5", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "mesa_not_found", decodeError(t, w))
}
