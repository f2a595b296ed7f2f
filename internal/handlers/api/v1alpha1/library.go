package v1alpha1

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	"github.com/Samer-Gassouma/aeon-generator/internal/repositories/personalities"
)

func (h *Handler) listPersonalities(c *fiber.Ctx) error {
	output, err := h.personalityRepo.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"personalities": output.Names,
		"count":         len(output.Names),
	})
}

type registerPersonalityRequest struct {
	Name           string   `json:"name"`
	WeaponTypes    []string `json:"weapon_types"`
	Materials      []string `json:"materials"`
	Effects        []string `json:"effects"`
	Descriptors    []string `json:"descriptors"`
	DamageModifier float64  `json:"damage_modifier"`
	SpeedModifier  float64  `json:"speed_modifier"`
}

func (h *Handler) registerPersonality(c *fiber.Ctx) error {
	var req registerPersonalityRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	output, err := h.personalityRepo.Register(c.Context(), personalities.RegisterInput{
		Profile: &entities.PersonalityProfile{
			Name:           req.Name,
			WeaponTypes:    req.WeaponTypes,
			Materials:      req.Materials,
			Effects:        req.Effects,
			Descriptors:    req.Descriptors,
			DamageModifier: req.DamageModifier,
			SpeedModifier:  req.SpeedModifier,
		},
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"name":     req.Name,
		"replaced": output.Replaced,
	})
}

func (h *Handler) downloadWeapon(c *fiber.Ctx) error {
	filename := c.Params("filename")

	path, err := h.artifacts.Resolve(filename)
	if err != nil {
		return err
	}

	return c.Download(path, filename)
}

func (h *Handler) downloadBatch(c *fiber.Ctx) error {
	var buf bytes.Buffer
	count, err := h.artifacts.WriteZip(&buf)
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.NotFound("no weapon files to download")
	}

	zipName := fmt.Sprintf("aeon_weapons_%d.zip", h.clock.Now().Unix())
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, zipName))

	return c.Send(buf.Bytes())
}
