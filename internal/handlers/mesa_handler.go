package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/mesa-api/internal/httperr"
	"github.com/BruksfildServices01/mesa-api/internal/httpresp"
	ucMesa "github.com/BruksfildServices01/mesa-api/internal/usecase/mesa"
)

// ======================================================
// HANDLER
// ======================================================

type MesaHandler struct {
	create      *ucMesa.CreateMesa
	get         *ucMesa.GetMesa
	list        *ucMesa.ListMesas
	update      *ucMesa.UpdateMesa
	deactivate  *ucMesa.DeactivateMesa
	findByLocal *ucMesa.FindMesasByLocal
}

func NewMesaHandler(
	create *ucMesa.CreateMesa,
	get *ucMesa.GetMesa,
	list *ucMesa.ListMesas,
	update *ucMesa.UpdateMesa,
	deactivate *ucMesa.DeactivateMesa,
	findByLocal *ucMesa.FindMesasByLocal,
) *MesaHandler {
	return &MesaHandler{
		create:      create,
		get:         get,
		list:        list,
		update:      update,
		deactivate:  deactivate,
		findByLocal: findByLocal,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateMesaRequest struct {
	Capacidade int    `json:"capacidade"`
	Descricao  string `json:"descricao"`
	Local      string `json:"local"`
	// status é ignorado na criação: toda mesa nasce ativa
	Status int `json:"status"`
}

type UpdateMesaRequest struct {
	Capacidade *int    `json:"capacidade,omitempty"`
	Descricao  *string `json:"descricao,omitempty"`
	Local      *string `json:"local,omitempty"`
	Status     *int    `json:"status,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *MesaHandler) Create(c *gin.Context) {
	var req CreateMesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	m, err := h.create.Execute(c.Request.Context(), ucMesa.CreateMesaInput{
		Capacidade: req.Capacidade,
		Descricao:  req.Descricao,
		Local:      req.Local,
	})
	if err != nil {
		writeMesaError(c, err)
		return
	}

	httpresp.Created(c, m)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *MesaHandler) Get(c *gin.Context) {
	id, ok := parseMesaID(c)
	if !ok {
		return
	}

	m, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeMesaError(c, err)
		return
	}

	httpresp.OK(c, m)
}

func (h *MesaHandler) List(c *gin.Context) {
	mesas, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeMesaError(c, err)
		return
	}

	httpresp.List(c, mesas)
}

// ======================================================
// UPDATE
// ======================================================

func (h *MesaHandler) Update(c *gin.Context) {
	id, ok := parseMesaID(c)
	if !ok {
		return
	}

	var req UpdateMesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	m, err := h.update.Execute(c.Request.Context(), id, ucMesa.UpdateMesaInput{
		Capacidade: req.Capacidade,
		Descricao:  req.Descricao,
		Local:      req.Local,
		Status:     req.Status,
	})
	if err != nil {
		writeMesaError(c, err)
		return
	}

	httpresp.OK(c, m)
}

// ======================================================
// DEACTIVATE (delete lógico)
// ======================================================

func (h *MesaHandler) Deactivate(c *gin.Context) {
	id, ok := parseMesaID(c)
	if !ok {
		return
	}

	m, err := h.deactivate.Execute(c.Request.Context(), id)
	if err != nil {
		writeMesaError(c, err)
		return
	}

	httpresp.OK(c, m)
}

// ======================================================
// FIND BY LOCAL
// ======================================================

func (h *MesaHandler) FindByLocal(c *gin.Context) {
	local := c.Param("local")
	somenteAtivas := c.Query("somente_ativas") == "true"

	mesas, err := h.findByLocal.Execute(c.Request.Context(), local, somenteAtivas)
	if err != nil {
		writeMesaError(c, err)
		return
	}

	httpresp.List(c, mesas)
}

// ======================================================
// HELPERS
// ======================================================

func parseMesaID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func writeMesaError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_required_field"):
		httperr.BadRequest(c, "missing_required_field", "Campos obrigatórios ausentes.")

	case httperr.IsBusiness(err, "invalid_capacity"):
		httperr.BadRequest(c, "invalid_capacity", "Capacidade inválida.")

	case httperr.IsBusiness(err, "status_invalido"):
		httperr.BadRequest(c, "status_invalido", "Status inválido.")

	case httperr.IsBusiness(err, "mesa_desativada"):
		httperr.BadRequest(c, "mesa_desativada", "Mesa desativada.")

	case httperr.IsBusiness(err, "mesa_not_found"):
		httperr.NotFound(c, "mesa_not_found", "Mesa não encontrada.")

	case httperr.IsBusiness(err, "local_sem_mesas"):
		httperr.NotFound(c, "local_sem_mesas", "Nenhuma mesa encontrada para o local especificado.")

	default:
		// falha de storage: mensagem genérica, detalhe só no log
		httperr.Internal(c, "storage_error", "Erro interno.")
	}
}
