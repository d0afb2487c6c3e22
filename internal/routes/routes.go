package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/mesa-api/internal/audit"
	"github.com/BruksfildServices01/mesa-api/internal/handlers"
	"github.com/BruksfildServices01/mesa-api/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/mesa-api/internal/infra/repository"
	ucMesa "github.com/BruksfildServices01/mesa-api/internal/usecase/mesa"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, mesaCache cache.MesaCache) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	mesaRepo := infraRepo.NewMesaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — MESAS
	// ======================================================
	createMesaUC := ucMesa.NewCreateMesa(
		mesaRepo,
		mesaCache,
		auditDispatcher,
	)

	getMesaUC := ucMesa.NewGetMesa(
		mesaRepo,
		mesaCache,
	)

	listMesasUC := ucMesa.NewListMesas(
		mesaRepo,
	)

	updateMesaUC := ucMesa.NewUpdateMesa(
		mesaRepo,
		mesaCache,
		auditDispatcher,
	)

	deactivateMesaUC := ucMesa.NewDeactivateMesa(
		mesaRepo,
		mesaCache,
		auditDispatcher,
	)

	findMesasByLocalUC := ucMesa.NewFindMesasByLocal(
		mesaRepo,
		mesaCache,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	mesaHandler := handlers.NewMesaHandler(
		createMesaUC,
		getMesaUC,
		listMesasUC,
		updateMesaUC,
		deactivateMesaUC,
		findMesasByLocalUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================

	// ------------------------------
	// MESAS
	// ------------------------------
	r.GET("/mesas", mesaHandler.List)
	r.POST("/mesas", mesaHandler.Create)
	r.GET("/mesas/local/:local", mesaHandler.FindByLocal)
	r.GET("/mesas/:id", mesaHandler.Get)
	r.PUT("/mesas/:id", mesaHandler.Update)
	r.DELETE("/mesas/:id", mesaHandler.Deactivate)

	// ------------------------------
	// AUDITORIA
	// ------------------------------
	r.GET("/audit-logs", auditLogsHandler.List)
}
