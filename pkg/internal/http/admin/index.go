package admin

import "github.com/gofiber/fiber/v2"

func MapControllers(app *fiber.App, baseURL string) {
	admin := app.Group(baseURL)
	{
		admin.Get("/users", listUsers)
		admin.Put("/users/:userId/status", setUserStatus)
		admin.Put("/users/:userId/role", setUserRole)
		admin.Delete("/users/:userId", deleteUser)

		admin.Get("/departments", listDepartments)
		admin.Put("/departments/:name", setDepartmentHeadcount)
	}
}
