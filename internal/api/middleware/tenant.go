package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/tenant"
)

const (
	// TenantQueryParam явное указание тенанта, имеет приоритет над поддоменом
	TenantQueryParam = "tenant"

	msgTenantNotFound = "тенант не найден"
)

type tenantKey struct{}

// WithTenant кладет тенанта в контекст
func WithTenant(ctx context.Context, tenant *domain.Tenant) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenant)
}

// GetTenant возвращает тенанта, определенного middleware Tenant
func GetTenant(ctx context.Context) (*domain.Tenant, bool) {
	tenant, ok := ctx.Value(tenantKey{}).(*domain.Tenant)
	return tenant, ok && tenant != nil
}

// ResolveTenantID определяет id тенанта: ?tenant=, иначе первая метка хоста
// вида <tenant>.<domain>.<tld>. Для localhost и 127.0.0.1 поддомен не используется.
func ResolveTenantID(r *http.Request) string {
	if tenant := strings.TrimSpace(r.URL.Query().Get(TenantQueryParam)); tenant != "" {
		return strings.ToLower(tenant)
	}

	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	if strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1") {
		return ""
	}

	parts := strings.Split(host, ".")
	if len(parts) >= 3 {
		return strings.ToLower(parts[0])
	}

	return ""
}

// Tenant загружает тенанта запроса. Неизвестный тенант: 404 tenant_not_found.
func Tenant(repo TenantRepository, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenantID := ResolveTenantID(r)
			if tenantID == "" {
				logger.Warn("Tenant: unable to resolve tenant for host=%s path=%s", r.Host, r.URL.Path)
				handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
				return
			}

			tenant, err := repo.GetByID(r.Context(), tenantID)
			if err != nil {
				if errors.Is(err, tenantRepo.ErrTenantNotFound) {
					logger.Warn("Tenant: tenant=%s not found", tenantID)
					handlers.RespondNotFound(w, handlers.CodeTenantNotFound, msgTenantNotFound)
					return
				}
				logger.Error("Tenant: failed to load tenant=%s: %v", tenantID, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), tenant)))
		})
	}
}
