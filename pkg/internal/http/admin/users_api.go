package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/exts"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/pulseworks/pulsecheck/pkg/internal/services"
)

func listUsers(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}

	take := c.QueryInt("take", 50)
	offset := c.QueryInt("offset", 0)

	accounts, err := services.ListAccounts(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(accounts)
}

func setUserStatus(c *fiber.Ctx) error {
	userId := c.Params("userId")

	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}

	var data struct {
		IsActive bool `json:"is_active"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.GetAccount(userId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if account, err = services.SetAccountActive(account, data.IsActive); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(account)
}

func setUserRole(c *fiber.Ctx) error {
	userId := c.Params("userId")

	if err := exts.EnsureSuperAdmin(c); err != nil {
		return err
	}
	operator := c.Locals("user").(models.Account)

	var data struct {
		IsAdmin bool `json:"is_admin"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.GetAccount(userId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if account, err = services.SetAccountAdmin(account, operator, data.IsAdmin); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	return c.JSON(account)
}

func deleteUser(c *fiber.Ctx) error {
	userId := c.Params("userId")

	if err := exts.EnsureSuperAdmin(c); err != nil {
		return err
	}
	operator := c.Locals("user").(models.Account)

	account, err := services.GetAccount(userId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteAccount(account, operator); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	return c.JSON(account)
}
