package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/exts"
	"github.com/pulseworks/pulsecheck/pkg/internal/services"
)

func listDepartments(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}

	departments, err := services.ListDepartments()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(departments)
}

func setDepartmentHeadcount(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}

	var data struct {
		Headcount int `json:"headcount" validate:"min=0"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	department, err := services.SetDepartmentHeadcount(name, data.Headcount)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(department)
}
