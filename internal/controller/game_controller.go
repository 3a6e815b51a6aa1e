package controller

import (
	"errors"
	"time"

	"github.com/AprajitaMaan/CIs17C-Project2-BoardGame/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, service.ErrGameNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch game state",
		})
	}

	return c.JSON(gameState)
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to join matchmaking",
		})
	}

	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

// WaitForMatch long-polls for a pairing. The matchmaking loop delivers a
// MatchFoundEvent on the registered channel; a closed channel means a newer
// poll superseded this one.
func (gc *GameController) WaitForMatch(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	ch := make(chan string, 1)
	if err := gc.gameService.RegisterMatchmakingChannel(playerID, ch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register for matchmaking events",
		})
	}
	defer gc.gameService.UnregisterMatchmakingChannel(playerID)

	select {
	case payload, ok := <-ch:
		if !ok {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "superseded by a newer matchmaking poll",
			})
		}
		c.Set("Content-Type", "application/json")
		return c.SendString(payload)
	case <-time.After(30 * time.Second):
		return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
			"status": "waiting",
		})
	}
}
