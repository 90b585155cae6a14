package handlers

import (
	"strconv"
	"strings"

	"postbox/internal/app"
	mailboxController "postbox/internal/controllers/mailboxes"
	"postbox/internal/listview"
	"postbox/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type MailboxHandler struct {
	Handler
	mailboxController mailboxController.MailboxControllerInterface
}

func NewMailboxHandler(app app.App, router fiber.Router) *MailboxHandler {
	log := logger.New("handlers").File("mailbox_handler")
	return &MailboxHandler{
		mailboxController: app.Controllers.Mailbox,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *MailboxHandler) Register() {
	mailboxes := h.router.Group("/mailboxes")
	mailboxes.Get("", h.getMailboxes)
	mailboxes.Get("/view", h.getMailboxView)
	mailboxes.Post("", h.createMailbox)
	mailboxes.Put("/:id", h.updateMailbox)
}

// getMailboxes returns the whole collection with nested cleaning history,
// newest mailbox first.
func (h *MailboxHandler) getMailboxes(c *fiber.Ctx) error {
	mailboxes, err := h.mailboxController.GetAll(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get mailboxes",
		})
	}

	return c.JSON(mailboxes)
}

// getMailboxView evaluates the filter/sort/page state server-side and
// returns one page of the collection.
func (h *MailboxHandler) getMailboxView(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	state := listview.ViewState{
		Search:        c.Query("search"),
		Jurisdiction:  c.Query("jurisdiction"),
		PostOffice:    c.Query("postOffice"),
		OverdueOnly:   c.QueryBool("overdueOnly"),
		SortColumn:    listview.SortColumn(c.Query("sortColumn")),
		SortDirection: listview.SortDirection(c.Query("sortDirection")),
		Page:          page,
	}

	result, err := h.mailboxController.GetView(c.UserContext(), state)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "invalid") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": errMsg,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get mailbox view",
		})
	}

	return c.JSON(result)
}

func (h *MailboxHandler) createMailbox(c *fiber.Ctx) error {
	var req mailboxController.CreateMailboxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	mailbox, err := h.mailboxController.Create(c.UserContext(), &req)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "required") ||
			strings.Contains(errMsg, "invalid") ||
			strings.Contains(errMsg, "unknown") ||
			strings.Contains(errMsg, "must be") ||
			strings.Contains(errMsg, "out of range") ||
			strings.Contains(errMsg, "exceed") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": errMsg,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create mailbox",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(mailbox)
}

// updateMailbox replaces the editable fields of one mailbox. The id,
// created_at and cleaning history of the stored row are never touched.
func (h *MailboxHandler) updateMailbox(c *fiber.Ctx) error {
	idParam := c.Params("id")
	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid mailbox ID",
		})
	}

	var req mailboxController.UpdateMailboxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	mailbox, err := h.mailboxController.Update(c.UserContext(), id, &req)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": errMsg,
			})
		}
		if strings.Contains(errMsg, "required") ||
			strings.Contains(errMsg, "invalid") ||
			strings.Contains(errMsg, "unknown") ||
			strings.Contains(errMsg, "must be") ||
			strings.Contains(errMsg, "out of range") ||
			strings.Contains(errMsg, "exceed") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": errMsg,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update mailbox",
		})
	}

	return c.JSON(mailbox)
}
