package actions

import (
	"github.com/daimeng/gloamwood/internal/engine/handlers"
	"github.com/daimeng/gloamwood/pkg/api"
)

func HandleFlag(ctx handlers.Context, p api.FlagPayload) (handlers.Result, error) {
	w := ctx.World
	if ctx.Game.Status().IsOver() || !w.InBounds(p.X, p.Y) || w.Open[p.Y][p.X] {
		return handlers.EmptyResult(), nil
	}
	ctx.Game.FlagTile(p.X, p.Y, p.Value)
	return handlers.Result{Changed: true}, nil
}

func HandleCycleFlag(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	w := ctx.World
	if ctx.Game.Status().IsOver() || !w.InBounds(p.X, p.Y) || w.Open[p.Y][p.X] {
		return handlers.EmptyResult(), nil
	}
	ctx.Game.FlagTileCycle(p.X, p.Y)
	return handlers.Result{Changed: true}, nil
}
