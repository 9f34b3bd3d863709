package handlers

import (
	"fmt"
	"strings"

	"labquote/internal/dto"
	"labquote/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// parseCartLines converts request line payloads into model cart lines,
// parsing the optional item ID and the decimal unit price.
func parseCartLines(reqLines []dto.QuoteLineRequest) ([]models.CartLine, error) {
	lines := make([]models.CartLine, 0, len(reqLines))
	for i, rl := range reqLines {
		price, err := decimal.NewFromString(rl.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid unit price %q", i+1, rl.UnitPrice)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("line %d: unit price cannot be negative", i+1)
		}

		line := models.CartLine{
			Name:      strings.TrimSpace(rl.Name),
			UnitPrice: price,
		}
		if rl.ItemID != "" {
			id, err := uuid.Parse(rl.ItemID)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid item ID %q", i+1, rl.ItemID)
			}
			line.ItemID = id
		}
		lines = append(lines, line)
	}
	return lines, nil
}
