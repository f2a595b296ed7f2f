package v1alpha1

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	"github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/armory"
)

type generateWeaponsRequest struct {
	Player1Personality string `json:"player1_personality"`
	Player2Personality string `json:"player2_personality"`
	ArenaTheme         string `json:"arena_theme"`
	Count              int32  `json:"count"`
	Player1Power       *int32 `json:"player1_power"`
	Player2Power       *int32 `json:"player2_power"`
}

type weaponPayload struct {
	entities.WeaponRecord
	WebPath string `json:"web_path"`
}

func webPath(fileLocation string) string {
	if fileLocation == "" {
		return ""
	}
	return "/download/weapon/" + filepath.Base(fileLocation)
}

func weaponPayloads(weapons []entities.WeaponRecord) []weaponPayload {
	payloads := make([]weaponPayload, 0, len(weapons))
	for _, weapon := range weapons {
		payloads = append(payloads, weaponPayload{
			WeaponRecord: weapon,
			WebPath:      webPath(weapon.FileLocation),
		})
	}
	return payloads
}

func (h *Handler) generateWeapons(c *fiber.Ctx) error {
	var req generateWeaponsRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	output, err := h.armory.GenerateWeapons(c.Context(), &armory.GenerateWeaponsInput{
		Player1Personality: req.Player1Personality,
		Player2Personality: req.Player2Personality,
		ArenaTheme:         req.ArenaTheme,
		Count:              req.Count,
		Player1Power:       req.Player1Power,
		Player2Power:       req.Player2Power,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"weapons":         weaponPayloads(output.Weapons),
		"generation_time": output.GenerationSeconds,
		"arena_theme":     output.ArenaTheme,
		"timestamp":       h.clock.Now().Unix(),
	})
}

type createModelRequest struct {
	Description string `json:"description"`
	Filename    string `json:"filename"`
}

func (h *Handler) createModel(c *fiber.Ctx) error {
	var req createModelRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	output, err := h.armory.CreateModel(c.Context(), &armory.CreateModelInput{
		Description: req.Description,
		Filename:    req.Filename,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":          "completed",
		"model_path":      output.Path,
		"web_path":        webPath(output.Path),
		"from_backend":    output.FromBackend,
		"generation_time": output.GenerationSeconds,
	})
}

type batchCreateRequest struct {
	Weapons []struct {
		WeaponName   string `json:"weapon_name"`
		Description  string `json:"description"`
		FileLocation string `json:"file_location"`
	} `json:"weapons"`
}

func (h *Handler) batchCreateModels(c *fiber.Ctx) error {
	var req batchCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}
	if len(req.Weapons) == 0 {
		return errors.InvalidArgument("missing required field: weapons")
	}

	items := make([]armory.BatchItem, 0, len(req.Weapons))
	for _, weapon := range req.Weapons {
		filename := ""
		if weapon.FileLocation != "" {
			filename = filepath.Base(weapon.FileLocation)
		}
		items = append(items, armory.BatchItem{
			Name:        weapon.WeaponName,
			Description: weapon.Description,
			Filename:    filename,
		})
	}

	output, err := h.armory.BatchCreateModels(c.Context(), &armory.BatchCreateModelsInput{
		Items: items,
	})
	if err != nil {
		return err
	}

	results := make([]fiber.Map, 0, len(output.Results))
	for _, result := range output.Results {
		entry := fiber.Map{
			"weapon_name":     result.Name,
			"status":          result.Status,
			"generation_time": result.GenerationSeconds,
		}
		if result.Status == "completed" {
			entry["model_path"] = result.Path
			entry["web_path"] = webPath(result.Path)
		} else {
			entry["error"] = result.Error
		}
		results = append(results, entry)
	}

	return c.JSON(fiber.Map{
		"results": results,
		"summary": fiber.Map{
			"total":      len(output.Results),
			"successful": output.Successful,
			"failed":     output.Failed,
			"total_time": output.TotalSeconds,
		},
	})
}

func (h *Handler) listWeapons(c *fiber.Ctx) error {
	files, err := h.artifacts.List()
	if err != nil {
		return err
	}

	weapons := make([]fiber.Map, 0, len(files))
	for _, file := range files {
		weapons = append(weapons, fiber.Map{
			"filename":    file.Filename,
			"file_path":   file.Path,
			"web_path":    "/download/weapon/" + file.Filename,
			"size":        file.Size,
			"modified_at": file.ModifiedAt.Format("2006-01-02T15:04:05"),
		})
	}

	return c.JSON(fiber.Map{
		"weapons": weapons,
		"count":   len(weapons),
		"stats":   h.stats.Snapshot(),
	})
}

func (h *Handler) deleteWeapon(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.artifacts.Delete(id + ".obj"); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Weapon " + id + " deleted",
	})
}

func (h *Handler) weaponStats(c *fiber.Ctx) error {
	fileStats, err := h.artifacts.Stats()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"generation_stats": h.stats.Snapshot(),
		"file_stats": fiber.Map{
			"total_files": fileStats.TotalFiles,
			"total_size":  fileStats.TotalSize,
			"oldest_file": fileStats.OldestFile,
			"newest_file": fileStats.NewestFile,
		},
		"system_stats": fiber.Map{
			"text_backend": h.textBackend,
			"mesh_backend": h.meshBackend,
		},
	})
}
