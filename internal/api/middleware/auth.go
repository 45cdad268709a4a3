package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pathwise/career-advisor/internal/api/metrics"
	"github.com/pathwise/career-advisor/internal/core/domain"
	"github.com/pathwise/career-advisor/internal/core/ports"
)

// AccountIDKey is the context key under which Auth stores the verified
// account ID for downstream handlers.
const AccountIDKey = "account_id"

// Auth verifies the bearer token and injects the account ID into the request
// context. Every failure collapses to a single 401 for the client; the
// sub-reason goes to the debug log and the verification counter only.
func Auth(issuer ports.TokenIssuer, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			accountID, err := issuer.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(AccountIDKey, accountID)

			return next(c)
		}
	}
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenMissing):
		return "missing"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "signature_invalid"
	default:
		return "malformed"
	}
}
