package rest

import (
	"context"
	"net/http"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/TableScout/pkg/auth"
)

// ServiceName is reported by the gRPC health checker.
const ServiceName = "tablescout.v1.TableScout"

func NewRouter(handler *Handler, authManager *auth.Manager, logger *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(RequestID(), AccessLog(logger), Recovery(logger))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Message: MessageSuccess})
	})

	handler.RegisterRoutes(&engine.RouterGroup, authManager)
	mountProbes(engine, logger)

	return engine
}

// mountProbes serves the gRPC health and reflection protocols next to the JSON API.
func mountProbes(engine *gin.Engine, logger *zap.Logger) {
	interceptors := connect.WithInterceptors(loggingInterceptor(logger))

	checker := grpchealth.NewStaticChecker(ServiceName)
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)

	path, probe := grpchealth.NewHandler(checker, interceptors)
	engine.Any(path+"*procedure", gin.WrapH(probe))

	path, probe = grpcreflect.NewHandlerV1(reflector, interceptors)
	engine.Any(path+"*procedure", gin.WrapH(probe))

	path, probe = grpcreflect.NewHandlerV1Alpha(reflector, interceptors)
	engine.Any(path+"*procedure", gin.WrapH(probe))
}

func loggingInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			res, err := next(ctx, req)
			if err != nil {
				logger.Warn("probe failed", zap.String("procedure", req.Spec().Procedure), zap.Error(err))

				return res, err
			}

			logger.Debug("probe", zap.String("procedure", req.Spec().Procedure))

			return res, nil
		}
	}
}
