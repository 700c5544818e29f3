package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	peopleController "campushub_backend/internals/features/people/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

func PeopleRoutes(api fiber.Router, db *gorm.DB) {
	guides := peopleController.NewGuideController(db)
	experts := peopleController.NewExternalExpertController(db)
	racMembers := peopleController.NewRACMemberController(db)

	auth := authMw.AuthMiddleware(db)
	staffOnly := authMw.OnlyRoles(db,
		constants.RoleErrorStaff("personnel registries"), constants.StaffAndAbove...)

	g := api.Group("/guides", auth)
	g.Get("/", guides.List)
	g.Post("/", staffOnly, guides.Create)
	g.Put("/:id", staffOnly, guides.Update)
	g.Delete("/:id", staffOnly, guides.Delete)

	e := api.Group("/external-experts", auth)
	e.Get("/", experts.List)
	e.Post("/", staffOnly, experts.Create)
	e.Put("/:id", staffOnly, experts.Update)
	e.Delete("/:id", staffOnly, experts.Delete)

	r := api.Group("/rac-members", auth)
	r.Get("/", racMembers.List)
	r.Post("/", staffOnly, racMembers.Create)
	r.Put("/:id", staffOnly, racMembers.Update)
	r.Delete("/:id", staffOnly, racMembers.Delete)
}
