package middleware

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/tenant/usecases"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/authorization"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

const (
	// ContextKeyEffective holds the resolved *tenant.EffectiveContext.
	ContextKeyEffective = "effective_context"
	// ContextKeyRestrictions holds the *tenant.RestrictionSet built for
	// the effective context.
	ContextKeyRestrictions = "restriction_set"
)

// TenancyMiddleware resolves the per-request tenancy context after
// authentication: who the caller effectively is (impersonation applied)
// and which upstream entities their active company may see.
type TenancyMiddleware struct {
	resolveContext    *usecases.ResolveContextUseCase
	buildRestrictions *usecases.BuildRestrictionsUseCase
	logger            logger.Interface
}

func NewTenancyMiddleware(
	resolveContext *usecases.ResolveContextUseCase,
	buildRestrictions *usecases.BuildRestrictionsUseCase,
	logger logger.Interface,
) *TenancyMiddleware {
	return &TenancyMiddleware{
		resolveContext:    resolveContext,
		buildRestrictions: buildRestrictions,
		logger:            logger,
	}
}

func (m *TenancyMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextKeyUserID)

		effective, err := m.resolveContext.Execute(c.Request.Context(), usecases.ResolveContextCommand{UserID: userID})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		restrictions, err := m.buildRestrictions.Execute(c.Request.Context(), effective)
		if err != nil {
			m.logger.Errorw("failed to build restriction set", "user_id", userID, "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextKeyEffective, effective)
		c.Set(ContextKeyRestrictions, restrictions)
		c.Set(authorization.ContextKeyRealAdmin, effective.IsRealAdmin)
		c.Next()
	}
}

// EffectiveFrom extracts the tenancy context stored by Resolve. The bool
// is false on routes that never ran the middleware.
func EffectiveFrom(c *gin.Context) (*tenant.EffectiveContext, bool) {
	v, ok := c.Get(ContextKeyEffective)
	if !ok {
		return nil, false
	}
	effective, ok := v.(*tenant.EffectiveContext)
	return effective, ok
}

// RestrictionsFrom extracts the restriction set stored by Resolve.
func RestrictionsFrom(c *gin.Context) (*tenant.RestrictionSet, bool) {
	v, ok := c.Get(ContextKeyRestrictions)
	if !ok {
		return nil, false
	}
	restrictions, ok := v.(*tenant.RestrictionSet)
	return restrictions, ok
}
