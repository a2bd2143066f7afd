package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/agrovia/portal/config"
	"github.com/agrovia/portal/internal/portal"
)

func New(logger *slog.Logger, source portal.Source, content config.Content) *zenrpc.Server {
	rpcService := NewContentService(source, content)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("content", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "agrovia-portal", nil))

	return rpcServer
}
