package v1alpha1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	"github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/armory"
)

func (h *Handler) startJob(c *fiber.Ctx) error {
	var req generateWeaponsRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	output, err := h.armory.StartGeneration(c.Context(), &armory.StartGenerationInput{
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

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"job_id": output.JobID,
		"status": output.Status,
	})
}

func (h *Handler) getJob(c *fiber.Ctx) error {
	output, err := h.armory.GetJob(c.Context(), &armory.GetJobInput{
		JobID: c.Params("id"),
	})
	if err != nil {
		return err
	}

	job := output.Job
	payload := fiber.Map{
		"job_id":   job.ID,
		"status":   job.Status,
		"progress": job.Progress,
	}
	if len(job.Weapons) > 0 {
		payload["weapons"] = weaponPayloads(job.Weapons)
	}
	if job.Error != "" {
		payload["error"] = job.Error
	}

	return c.JSON(payload)
}

func (h *Handler) cleanupJob(c *fiber.Ctx) error {
	output, err := h.armory.CleanupJob(c.Context(), &armory.CleanupJobInput{
		JobID: c.Params("id"),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"files_deleted": output.FilesDeleted,
	})
}
