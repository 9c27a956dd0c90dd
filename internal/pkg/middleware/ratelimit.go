package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"delegacia/internal/api/response"
	"delegacia/internal/domain"
	"delegacia/internal/pkg/cache"
	"delegacia/internal/pkg/logger"
)

const MsgLimiteExcedido = "Muitas requisições. Tente novamente mais tarde."

// RateLimiter limita requisições por IP numa janela fixa. O contador vive no Redis
// (INCR + EXPIRE na primeira requisição da janela). Falhas do Redis não bloqueiam
// o tráfego.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Limitador de taxa indisponível; requisição liberada.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, window); err != nil {
					log.Warn("Falha ao definir janela do limitador de taxa.", map[string]interface{}{"error": err.Error()})
				}
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))

			if count > int64(limit) {
				retryAfter := window
				if ttl, err := client.TTL(ctx, key); err == nil && ttl > 0 {
					retryAfter = ttl
				}
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))

				log.Info("Limite de requisições excedido.", map[string]interface{}{"ip": ip, "count": count})
				response.JSON(w, http.StatusTooManyRequests, domain.ErrorResponse{
					Status:  http.StatusTooManyRequests,
					Message: MsgLimiteExcedido,
					Errors:  []string{},
				})
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
