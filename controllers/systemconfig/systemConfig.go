package systemConfigController

import (
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	systemConfigValidator "lms/validators/systemconfig"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadOrCreate returns the singleton config record, creating it with defaults
// on first access.
func loadOrCreate(db *gorm.DB) (models.SystemConfig, error) {
	var cfg models.SystemConfig
	err := db.First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = models.DefaultSystemConfig()
		err = db.Create(&cfg).Error
	}
	return cfg, err
}

// GetSystemConfig returns the global configuration record
func GetSystemConfig(c *fiber.Ctx) error {
	cfg, err := loadOrCreate(database.Database.Db)
	if err != nil {
		log.Printf("Erro ao obter configurações do sistema: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	return c.Status(fiber.StatusOK).JSON(cfg)
}

// UpdateSystemConfig applies a partial update to the singleton record
func UpdateSystemConfig(c *fiber.Ctx) error {
	reqData, ok := c.Locals("updateSystemConfigRequest").(*systemConfigValidator.UpdateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	db := database.Database.Db

	cfg, err := loadOrCreate(db)
	if err != nil {
		log.Printf("Erro ao obter configurações do sistema: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}

	updates := map[string]interface{}{}
	if reqData.AutoRegister != nil {
		updates["auto_register"] = *reqData.AutoRegister
	}
	if reqData.ManualApproval != nil {
		updates["manual_approval"] = *reqData.ManualApproval
	}
	if reqData.InactivityBlockDays != nil {
		updates["inactivity_block_days"] = *reqData.InactivityBlockDays
	}
	if reqData.InactivityBlockEnabled != nil {
		updates["inactivity_block_enabled"] = *reqData.InactivityBlockEnabled
	}
	if reqData.UserLimit != nil {
		updates["user_limit"] = *reqData.UserLimit
	}
	if reqData.UserLimitEnabled != nil {
		updates["user_limit_enabled"] = *reqData.UserLimitEnabled
	}

	if len(updates) > 0 {
		if err := db.Model(&cfg).Updates(updates).Error; err != nil {
			log.Printf("Erro ao atualizar configurações do sistema: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Erro interno do servidor")
		}
	}

	return c.Status(fiber.StatusOK).JSON(cfg)
}
