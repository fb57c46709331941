package controller

import (
	"errors"
	"sort"

	"github.com/benbeisheim/chessboard-backend/internal/model"
	"github.com/benbeisheim/chessboard-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	FEN string `json:"fen"`
}

// statusFor maps service and model errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrTooManyGames):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrInvalidSquare),
		errors.Is(err, model.ErrOutOfBounds),
		errors.Is(err, model.ErrInvalidFEN):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrEmptySquare),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func writeError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// badBody answers 400 for any request body that does not decode.
func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func clientID(c *fiber.Ctx) string {
	id, _ := c.Locals("clientID").(string)
	return id
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c, err)
		}
	}

	gameID, err := gc.gameService.CreateGame(clientID(c), req.FEN)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	ids := gc.gameService.ListGames()
	sort.Strings(ids)
	return c.JSON(fiber.Map{
		"games": ids,
	})
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId"), clientID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetFEN(c *fiber.Ctx) error {
	fen, err := gc.gameService.GetFEN(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"fen": fen,
	})
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	square, err := model.ParseSquare(c.Params("square"))
	if err != nil {
		return writeError(c, err)
	}
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), square)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"square": square,
		"moves":  moves,
	})
}

func (gc *GameController) Select(c *fiber.Ctx) error {
	var req model.WSSquare
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	moves, err := gc.gameService.HandleSelect(c.Params("gameId"), clientID(c), req.Square)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"selectedSquare": req.Square,
		"legalMoves":     moves,
	})
}

func (gc *GameController) Click(c *fiber.Ctx) error {
	var req model.WSSquare
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	record, err := gc.gameService.HandleClick(c.Params("gameId"), clientID(c), req.Square)
	if err != nil {
		return writeError(c, err)
	}
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"move":  record,
		"state": gameState,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req model.WSMove
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	record, err := gc.gameService.HandleMove(c.Params("gameId"), clientID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(record)
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	undone, err := gc.gameService.HandleUndo(c.Params("gameId"), clientID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"undone": undone,
	})
}

func (gc *GameController) Restart(c *fiber.Ctx) error {
	if err := gc.gameService.HandleRestart(c.Params("gameId"), clientID(c)); err != nil {
		return writeError(c, err)
	}
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(gameState)
}

// RegisterRoutes mounts the game endpoints below router.
func RegisterRoutes(router fiber.Router, gc *GameController) {
	router.Get("/games", gc.ListGames)

	gameRoutes := router.Group("/game")
	gameRoutes.Post("/create", gc.CreateGame)
	gameRoutes.Get("/:gameId", gc.GetGameState)
	gameRoutes.Delete("/:gameId", gc.DeleteGame)
	gameRoutes.Get("/:gameId/fen", gc.GetFEN)
	gameRoutes.Get("/:gameId/moves/:square", gc.GetLegalMoves)
	gameRoutes.Post("/:gameId/select", gc.Select)
	gameRoutes.Post("/:gameId/click", gc.Click)
	gameRoutes.Post("/:gameId/move", gc.MakeMove)
	gameRoutes.Post("/:gameId/undo", gc.Undo)
	gameRoutes.Post("/:gameId/restart", gc.Restart)
}
