package middleware

import (
	"net/http"

	"brewlocal/internal/repo"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireSeller resolves the caller's seller storefront and stores it in the
// context under "seller" / "seller_id". Dashboard routes depend on it.
func RequireSeller(sellerRepo *repo.SellerRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(uuid.UUID)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			seller, err := sellerRepo.GetByOwner(userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "No seller profile for this account")
			}

			if !seller.IsActive {
				return echo.NewHTTPError(http.StatusForbidden, "Seller account is deactivated")
			}

			c.Set("seller", seller)
			c.Set("seller_id", seller.ID)

			return next(c)
		}
	}
}
