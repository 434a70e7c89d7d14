package main

import (
	"context"
	"os"

	"github.com/brendoncarroll/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/tychoish/until/untilcmd"
)

func main() {
	ctx := context.Background()

	conf := untilcmd.NewConfig()
	lcfg := zap.NewProductionConfig()
	lcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	l, err := lcfg.Build()
	if err != nil {
		panic(err)
	}
	defer l.Sync() //nolint:errcheck
	ctx = logctx.NewContext(ctx, l)

	cmd := untilcmd.NewCmd(ctx, conf, lcfg.Level)
	if err := cmd.Execute(); err != nil {
		l.Error("command failed", zap.Error(err))
		l.Sync() //nolint:errcheck
		os.Exit(1)
	}
}
