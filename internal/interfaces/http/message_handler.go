package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/rs/zerolog"
)

// MessageHandler mensajes directos.
type MessageHandler struct {
	uc  *usecase.MessageUseCase
	log zerolog.Logger
}

// NewMessageHandler construye el handler.
func NewMessageHandler(uc *usecase.MessageUseCase, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, log: log}
}

// Send godoc
// @Summary      Enviar mensaje
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendMessageRequest  true  "destinatario y cuerpo"
// @Success      201  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Send(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Buzón de mensajes
// @Tags         messages
// @Produce      json
// @Param        box     query  string  false  "inbox (default) o sent"
// @Param        limit   query  int     false  "máx. 100"
// @Param        offset  query  int     false  "offset"
// @Success      200  {object}  dto.MessageListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/messages [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c), c.Query("box"), pageFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar mensaje como leído
// @Tags         messages
// @Produce      json
// @Param        id   path  string  true  "ID del mensaje"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.MarkRead(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
