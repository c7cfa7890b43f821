package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/dto"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/rs/zerolog"
)

// AthleteHandler perfil propio, rankings, matches y rating de atletas.
type AthleteHandler struct {
	uc  *usecase.AthleteUseCase
	log zerolog.Logger
}

// NewAthleteHandler construye el handler.
func NewAthleteHandler(uc *usecase.AthleteUseCase, log zerolog.Logger) *AthleteHandler {
	return &AthleteHandler{uc: uc, log: log}
}

// GetMine godoc
// @Summary      Perfil de atleta propio
// @Tags         athletes
// @Produce      json
// @Success      200  {object}  dto.AthleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/athletes/me [get]
func (h *AthleteHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateMine godoc
// @Summary      Actualizar perfil de atleta propio
// @Tags         athletes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateAthleteRequest  true  "perfil"
// @Success      200  {object}  dto.AthleteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/athletes/me [put]
func (h *AthleteHandler) UpdateMine(c *fiber.Ctx) error {
	var in dto.UpdateAthleteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateMine(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Rankings godoc
// @Summary      Ranking de atletas
// @Tags         athletes
// @Produce      json
// @Param        sport            query  string  false  "deporte"
// @Param        graduation_year  query  int     false  "año de graduación"
// @Param        limit            query  int     false  "máx. 100"
// @Param        offset           query  int     false  "offset"
// @Success      200  {object}  dto.AthleteListResponse
// @Router       /api/athletes [get]
func (h *AthleteHandler) Rankings(c *fiber.Ctx) error {
	q := dto.RankingsQuery{
		Sport:          c.Query("sport"),
		GraduationYear: c.QueryInt("graduation_year"),
		PageRequest:    pageFromQuery(c),
	}
	out, err := h.uc.Rankings(c.UserContext(), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener atleta
// @Tags         athletes
// @Produce      json
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.AthleteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/athletes/{id} [get]
func (h *AthleteHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Matches godoc
// @Summary      Atletas del deporte del reclutador
// @Tags         recruiters
// @Produce      json
// @Success      200  {object}  dto.AthleteListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recruiters/me/matches [get]
func (h *AthleteHandler) Matches(c *fiber.Ctx) error {
	out, err := h.uc.Matches(c.UserContext(), GetUserID(c), pageFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Rate godoc
// @Summary      Calificar atleta (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del perfil"
// @Param        body  body  dto.UpdateRatingRequest  true  "0.00 – 5.00"
// @Success      200  {object}  dto.AthleteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/athletes/{id}/rating [put]
func (h *AthleteHandler) Rate(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.UpdateRatingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Rate(c.UserContext(), id, in.Rating)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
}
